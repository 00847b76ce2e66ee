package coder

import (
	"encoding/binary"

	"github.com/wippyai/abi-codec/coder/internal/bounds"
)

// PadUint64 returns v right-aligned in a zero-filled word.
func PadUint64(v uint64) Word {
	var w Word
	binary.BigEndian.PutUint64(w[WordSize-8:], v)
	return w
}

// PadUint32 returns v right-aligned in a zero-filled word.
func PadUint32(v uint32) Word {
	var w Word
	binary.BigEndian.PutUint32(w[WordSize-4:], v)
	return w
}

// PadInt64 returns v right-aligned in a sign-filled word.
func PadInt64(v int64) Word {
	var w Word
	if v < 0 {
		for i := range w[:WordSize-8] {
			w[i] = 0xff
		}
	}
	binary.BigEndian.PutUint64(w[WordSize-8:], uint64(v))
	return w
}

// LeftAligned returns b in the high-order bytes of a zero-filled word.
// b must not be longer than a word.
func LeftAligned(b []byte) Word {
	var w Word
	copy(w[:], b)
	return w
}

// CheckUintPadding reports whether every byte above the low bits/8 bytes
// is zero.
func CheckUintPadding(w Word, bits int) bool {
	for _, b := range w[:WordSize-bits/8] {
		if b != 0 {
			return false
		}
	}
	return true
}

// CheckIntPadding reports whether every byte above the low bits/8 bytes is
// the sign extension of the value held in those bytes.
func CheckIntPadding(w Word, bits int) bool {
	pad := WordSize - bits/8
	if pad == 0 {
		return true
	}
	var fill byte
	if w[pad]&0x80 != 0 {
		fill = 0xff
	}
	for _, b := range w[:pad] {
		if b != fill {
			return false
		}
	}
	return true
}

// CheckLeftAligned reports whether every byte after the first size bytes
// is zero.
func CheckLeftAligned(w Word, size int) bool {
	for _, b := range w[size:] {
		if b != 0 {
			return false
		}
	}
	return true
}

// WordsFor returns the number of words needed to hold n bytes.
func WordsFor(n int) int {
	return bounds.WordsFor(n)
}
