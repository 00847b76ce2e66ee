package soltype

import (
	"strings"

	"github.com/wippyai/abi-codec/coder"
)

// Tuple is a heterogeneous sequence. Tuples are the only sequences that can
// be encoded as a flat parameter list.
type Tuple struct {
	Members []Value
}

// NewTuple returns a tuple of members. Members are held by reference, so
// decoding into the tuple fills the values passed in.
func NewTuple(members ...Value) *Tuple {
	return &Tuple{Members: members}
}

// Len returns the number of members.
func (t *Tuple) Len() int { return len(t.Members) }

// At returns member i.
func (t *Tuple) At(i int) Value { return t.Members[i] }

func (t *Tuple) TypeName() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, m := range t.Members {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(m.TypeName())
	}
	b.WriteByte(')')
	return b.String()
}

func (t *Tuple) String() string { return joinValues("(", t.Members, ")") }
func (t *Tuple) CanBeParams() bool { return true }
func (t *Tuple) IsDynamic() bool { return coder.AnyDynamic(t.Members) }

func (t *Tuple) HeadWords() int {
	if t.IsDynamic() {
		return 1
	}
	return coder.SeqHeadWords(t.Members)
}

func (t *Tuple) TailWords() int {
	if t.IsDynamic() {
		return coder.SeqTotalWords(t.Members)
	}
	return 0
}

func (t *Tuple) TotalWords() int {
	if t.IsDynamic() {
		return 1 + t.TailWords()
	}
	return t.HeadWords()
}

func (t *Tuple) HeadAppend(enc *coder.Encoder) {
	if t.IsDynamic() {
		enc.AppendTailPointer(t.TailWords())
		return
	}
	for _, m := range t.Members {
		m.HeadAppend(enc)
	}
}

func (t *Tuple) TailAppend(enc *coder.Encoder) {
	if t.IsDynamic() {
		t.EncodeSequence(enc)
	}
}

func (t *Tuple) EncodeSequence(enc *coder.Encoder) {
	coder.EncodeMembers(enc, t.Members)
}

func (t *Tuple) DecodeFrom(dec *coder.Decoder) error {
	return coder.DecodeSeqToken(dec, t)
}

func (t *Tuple) DecodeSequence(dec *coder.Decoder) error {
	return coder.DecodeMembers(dec, t.Members)
}
