package abicodec

import (
	"encoding/binary"
	"encoding/hex"
)

const (
	// WordSize is the size in bytes of one encoding unit.
	WordSize = 32

	// SelectorSize is the size in bytes of a function selector.
	SelectorSize = 4
)

// Word is the atomic 32-byte storage granule of the wire format.
// It carries no sign or type; interpretation depends on the value kind.
type Word [WordSize]byte

// Selector is the 4-byte function identifier prefixed to call data.
type Selector [SelectorSize]byte

// IsZero reports whether every byte of the word is zero.
func (w Word) IsZero() bool {
	return w == Word{}
}

// Uint64 returns the low-order 8 bytes as a big-endian integer.
// ok is false when any of the high-order 24 bytes is set.
func (w Word) Uint64() (v uint64, ok bool) {
	for _, b := range w[:WordSize-8] {
		if b != 0 {
			return 0, false
		}
	}
	return binary.BigEndian.Uint64(w[WordSize-8:]), true
}

func (w Word) String() string {
	return "0x" + hex.EncodeToString(w[:])
}

func (s Selector) String() string {
	return "0x" + hex.EncodeToString(s[:])
}

// WordFromUint64 returns v right-aligned in a zero-filled word.
func WordFromUint64(v uint64) Word {
	var w Word
	binary.BigEndian.PutUint64(w[WordSize-8:], v)
	return w
}

// BytesToWords splits b into words. ok is false when len(b) is not a
// multiple of WordSize.
func BytesToWords(b []byte) (words []Word, ok bool) {
	if len(b)%WordSize != 0 {
		return nil, false
	}
	words = make([]Word, len(b)/WordSize)
	for i := range words {
		copy(words[i][:], b[i*WordSize:])
	}
	return words, true
}

// WordsToBytes concatenates words into a new byte slice.
func WordsToBytes(words []Word) []byte {
	out := make([]byte, len(words)*WordSize)
	for i := range words {
		copy(out[i*WordSize:], words[i][:])
	}
	return out
}
