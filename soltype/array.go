package soltype

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wippyai/abi-codec/coder"
	abierrors "github.com/wippyai/abi-codec/errors"
)

// Array is a dynamic array T[]. New creates a zero element of the right
// shape and is required for decoding and for type names of empty arrays.
type Array[T Value] struct {
	New   func() T
	Elems []T
}

// NewArray returns a T[] holding elems.
func NewArray[T Value](newElem func() T, elems ...T) *Array[T] {
	return &Array[T]{New: newElem, Elems: elems}
}

func (a *Array[T]) proto() T {
	if a.New != nil {
		return a.New()
	}
	if len(a.Elems) > 0 {
		return a.Elems[0]
	}
	panic("soltype: array without element constructor")
}

// Len returns the number of elements.
func (a *Array[T]) Len() int { return len(a.Elems) }

func (a *Array[T]) TypeName() string { return a.proto().TypeName() + "[]" }
func (a *Array[T]) String() string { return joinValues("[", a.Elems, "]") }
func (a *Array[T]) IsDynamic() bool { return true }
func (a *Array[T]) HeadWords() int { return 1 }
func (a *Array[T]) TailWords() int { return 1 + coder.SeqTotalWords(a.Elems) }
func (a *Array[T]) TotalWords() int { return 1 + a.TailWords() }
func (a *Array[T]) CanBeParams() bool { return false }

func (a *Array[T]) HeadAppend(enc *coder.Encoder) { enc.AppendTailPointer(a.TailWords()) }

func (a *Array[T]) TailAppend(enc *coder.Encoder) {
	enc.AppendSeqLen(len(a.Elems))
	a.EncodeSequence(enc)
}

// EncodeSequence writes the elements without the count word.
func (a *Array[T]) EncodeSequence(enc *coder.Encoder) {
	coder.EncodeMembers(enc, a.Elems)
}

func (a *Array[T]) DecodeFrom(dec *coder.Decoder) error {
	if a.New == nil {
		return abierrors.New(abierrors.PhaseDecode, abierrors.KindInvalidInput).
			GoType(fmt.Sprintf("%T", a)).
			Detail("array has no element constructor").
			Build()
	}
	if err := dec.TakeIndirection(); err != nil {
		return err
	}
	p := a.proto()
	minWords := 1
	if !p.IsDynamic() {
		minWords = p.HeadWords()
	}
	n, err := dec.TakeSeqLen(minWords)
	if err != nil {
		return err
	}
	elems := make([]T, n)
	for i := range elems {
		elems[i] = a.New()
	}
	a.Elems = elems
	if err := a.DecodeSequence(dec); err != nil {
		return err
	}
	dec.PopIndirection()
	return nil
}

// DecodeSequence reads len(a.Elems) elements without a count word.
func (a *Array[T]) DecodeSequence(dec *coder.Decoder) error {
	return coder.DecodeMembers(dec, a.Elems)
}

// FixedArray is a fixed-length array T[k]. Its length is the length of
// Elems and is never changed by decoding.
type FixedArray[T Value] struct {
	New   func() T
	Elems []T
}

// NewFixedArray returns a T[n] of zero elements.
func NewFixedArray[T Value](n int, newElem func() T) *FixedArray[T] {
	elems := make([]T, n)
	for i := range elems {
		elems[i] = newElem()
	}
	return &FixedArray[T]{New: newElem, Elems: elems}
}

// FixedArrayOf returns a T[len(elems)] holding elems.
func FixedArrayOf[T Value](newElem func() T, elems ...T) *FixedArray[T] {
	return &FixedArray[T]{New: newElem, Elems: elems}
}

func (f *FixedArray[T]) proto() T {
	if f.New != nil {
		return f.New()
	}
	if len(f.Elems) > 0 {
		return f.Elems[0]
	}
	panic("soltype: fixed array without element constructor")
}

// Len returns the fixed length.
func (f *FixedArray[T]) Len() int { return len(f.Elems) }

func (f *FixedArray[T]) TypeName() string {
	return f.proto().TypeName() + "[" + strconv.Itoa(len(f.Elems)) + "]"
}

func (f *FixedArray[T]) String() string { return joinValues("[", f.Elems, "]") }
func (f *FixedArray[T]) CanBeParams() bool { return false }

func (f *FixedArray[T]) IsDynamic() bool {
	return len(f.Elems) > 0 && f.proto().IsDynamic()
}

func (f *FixedArray[T]) HeadWords() int {
	if f.IsDynamic() {
		return 1
	}
	return coder.SeqHeadWords(f.Elems)
}

func (f *FixedArray[T]) TailWords() int {
	if f.IsDynamic() {
		return coder.SeqTotalWords(f.Elems)
	}
	return 0
}

func (f *FixedArray[T]) TotalWords() int {
	if f.IsDynamic() {
		return 1 + f.TailWords()
	}
	return f.HeadWords()
}

func (f *FixedArray[T]) HeadAppend(enc *coder.Encoder) {
	if f.IsDynamic() {
		enc.AppendTailPointer(f.TailWords())
		return
	}
	for _, e := range f.Elems {
		e.HeadAppend(enc)
	}
}

func (f *FixedArray[T]) TailAppend(enc *coder.Encoder) {
	if f.IsDynamic() {
		f.EncodeSequence(enc)
	}
}

func (f *FixedArray[T]) EncodeSequence(enc *coder.Encoder) {
	coder.EncodeMembers(enc, f.Elems)
}

func (f *FixedArray[T]) DecodeFrom(dec *coder.Decoder) error {
	return coder.DecodeSeqToken(dec, f)
}

func (f *FixedArray[T]) DecodeSequence(dec *coder.Decoder) error {
	return coder.DecodeMembers(dec, f.Elems)
}

func joinValues[T Value](lhs string, vals []T, rhs string) string {
	var b strings.Builder
	b.WriteString(lhs)
	for i, v := range vals {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.String())
	}
	b.WriteString(rhs)
	return b.String()
}
