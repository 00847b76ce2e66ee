package coder

import (
	abicodec "github.com/wippyai/abi-codec"
)

type Word = abicodec.Word

const WordSize = abicodec.WordSize

// Token is the contract every encodable value kind satisfies.
//
// IsDynamic and HeadWords are properties of the type: they must not depend on
// the contents of the value. A dynamic token occupies exactly one head word
// (the offset of its tail).
type Token interface {
	IsDynamic() bool
	HeadWords() int
	TailWords() int
	TotalWords() int

	// HeadAppend writes the inline encoding of a static token, or the
	// indirection pointer of a dynamic one.
	HeadAppend(enc *Encoder)
	// TailAppend writes the tail of a dynamic token. Static tokens write nothing.
	TailAppend(enc *Encoder)

	// DecodeFrom reads the token in place from dec. Composite tokens must be
	// shaped (fixed array length, tuple members) before decoding.
	DecodeFrom(dec *Decoder) error
}

// TokenSeq is implemented by ordered collections: tuples, fixed arrays and
// dynamic arrays.
type TokenSeq interface {
	Token

	// CanBeParams reports whether the sequence may be encoded as a flattened
	// function parameter list. Only tuples return true.
	CanBeParams() bool

	// EncodeSequence writes the members using the head/tail layout, without a
	// leading pointer or count.
	EncodeSequence(enc *Encoder)
	// DecodeSequence mirrors EncodeSequence.
	DecodeSequence(dec *Decoder) error
}
