// Package kind defines the value kind enumeration shared by the soltype
// descriptors and values.
//
// This package is internal to soltype. Use the re-exports in soltype.
package kind
