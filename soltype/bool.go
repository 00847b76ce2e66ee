package soltype

import (
	"strconv"

	"github.com/wippyai/abi-codec/coder"
	abierrors "github.com/wippyai/abi-codec/errors"
)

// Bool is a boolean encoded as the word 0 or 1.
type Bool bool

func (b *Bool) TypeName() string { return "bool" }
func (b *Bool) String() string { return strconv.FormatBool(bool(*b)) }

func (b *Bool) IsDynamic() bool { return false }
func (b *Bool) HeadWords() int { return 1 }
func (b *Bool) TailWords() int { return 0 }
func (b *Bool) TotalWords() int { return 1 }
func (b *Bool) TailAppend(*coder.Encoder) {}

func (b *Bool) HeadAppend(enc *coder.Encoder) {
	var w coder.Word
	if *b {
		w[coder.WordSize-1] = 1
	}
	enc.AppendWord(w)
}

func (b *Bool) DecodeFrom(dec *coder.Decoder) error {
	w, err := dec.TakeWord()
	if err != nil {
		return err
	}
	if !coder.CheckUintPadding(w, 8) || w[coder.WordSize-1] > 1 {
		return abierrors.InvalidBool(w)
	}
	*b = w[coder.WordSize-1] == 1
	return nil
}
