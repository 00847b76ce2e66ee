package soltype

import (
	"encoding/hex"
	"fmt"

	"github.com/wippyai/abi-codec/coder"
	abierrors "github.com/wippyai/abi-codec/errors"
)

// FixedBytes is a bytesN value (N in 1..32), left aligned in its word.
// A zero Size means 32.
type FixedBytes struct {
	Size int
	Data [32]byte
}

// NewFixedBytes returns a bytesN value with N = len(b).
// It panics unless 1 <= len(b) <= 32.
func NewFixedBytes(b []byte) *FixedBytes {
	if len(b) < 1 || len(b) > coder.WordSize {
		panic(fmt.Sprintf("soltype: fixed bytes width %d out of range", len(b)))
	}
	f := &FixedBytes{Size: len(b)}
	copy(f.Data[:], b)
	return f
}

func (f *FixedBytes) width() int {
	if f.Size == 0 {
		return coder.WordSize
	}
	return f.Size
}

// Bytes returns the N significant bytes.
func (f *FixedBytes) Bytes() []byte {
	return f.Data[:f.width()]
}

func (f *FixedBytes) TypeName() string { return fmt.Sprintf("bytes%d", f.width()) }
func (f *FixedBytes) String() string { return "0x" + hex.EncodeToString(f.Bytes()) }

func (f *FixedBytes) IsDynamic() bool { return false }
func (f *FixedBytes) HeadWords() int { return 1 }
func (f *FixedBytes) TailWords() int { return 0 }
func (f *FixedBytes) TotalWords() int { return 1 }
func (f *FixedBytes) TailAppend(*coder.Encoder) {}

func (f *FixedBytes) HeadAppend(enc *coder.Encoder) {
	enc.AppendWord(coder.LeftAligned(f.Bytes()))
}

func (f *FixedBytes) DecodeFrom(dec *coder.Decoder) error {
	w, err := dec.TakeWord()
	if err != nil {
		return err
	}
	n := f.width()
	if !coder.CheckLeftAligned(w, n) {
		return abierrors.NonCanonicalPadding(f.TypeName(), w)
	}
	f.Data = [32]byte{}
	copy(f.Data[:n], w[:n])
	return nil
}
