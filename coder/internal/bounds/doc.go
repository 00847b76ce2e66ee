// Package bounds provides overflow-checked size arithmetic and the safety
// limits used by the decoder.
//
// Every size derived from untrusted input passes through SafeMul/SafeAdd
// before it is compared against the bytes actually present.
//
// This package is internal to the coder.
package bounds
