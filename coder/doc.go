// Package coder provides the contract ABI head/tail encoder and decoder.
//
// Values are driven through the codec by the Token interface. Each token
// knows its size in words and writes or reads itself through an Encoder or
// Decoder, so no reflection is involved.
//
// # Word Layout
//
// Every value occupies whole 32-byte words:
//
//	Kind            Head    Tail
//	──────────────────────────────────────────────────
//	bool/uintN/intN 1       -      right aligned
//	address         1       -      right aligned
//	bytesN          1       -      left aligned
//	bytes/string    1       len word + padded data
//	T[]             1       count word + elements
//	T[k]/tuple      sum     (when any member is dynamic: 1, members)
//
// # Head and Tail
//
// A sequence writes one head slot per member, then the tails of its dynamic
// members in order. The head slot of a dynamic member holds the byte offset
// of its tail, measured from the start of the sequence:
//
//	(bool, string) as params:
//	  0x00  0000...0001        true
//	  0x20  0000...0040        offset of string tail
//	  0x40  0000...0005        length
//	  0x60  68656c6c6f00...    "hello"
//
// The encoder keeps a stack of tail offsets, one per open sequence, and the
// decoder keeps a stack of frames, so nesting depth never uses the Go stack
// of the codec itself beyond the token recursion.
//
// # Entry Points
//
//	Encode(seq)        sequence as is
//	EncodeSingle(tok)  tok wrapped in a 1-tuple
//	EncodeParams(seq)  tuples flat, anything else as EncodeSingle
//
// Decode, DecodeSingle and DecodeParams mirror them and take a destination
// token that is filled in place.
//
// # Decoding Untrusted Input
//
// The decoder rejects, before allocating:
//
//   - input whose length is not a multiple of 32 or exceeds MaxInputSize
//   - offsets that are unaligned, out of range, or point into the head
//     of their own sequence
//   - counts and byte lengths larger than the remaining input
//   - reads beyond ReadBudgetMultiple times the input length
//
// Failures match the sentinels in package errors:
//
//	if errors.Is(err, abierrors.ErrInvalidOffset) { ... }
package coder
