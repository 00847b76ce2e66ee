package coder

import (
	"strconv"

	abierrors "github.com/wippyai/abi-codec/errors"
)

// Helpers shared by sequence kinds. They are generic so that homogeneous
// arrays can pass their element slices without copying into []Token.

// SeqHeadWords sums the head sizes of members.
func SeqHeadWords[T Token](members []T) int {
	n := 0
	for _, m := range members {
		n += m.HeadWords()
	}
	return n
}

// SeqTotalWords sums the full encoded sizes of members.
func SeqTotalWords[T Token](members []T) int {
	n := 0
	for _, m := range members {
		n += m.TotalWords()
	}
	return n
}

// AnyDynamic reports whether any member is dynamic.
func AnyDynamic[T Token](members []T) bool {
	for _, m := range members {
		if m.IsDynamic() {
			return true
		}
	}
	return false
}

// EncodeMembers writes members as one sequence: every head, then every tail,
// inside a fresh offset context.
func EncodeMembers[T Token](enc *Encoder, members []T) {
	enc.PushOffset(SeqHeadWords(members))
	for _, m := range members {
		m.HeadAppend(enc)
	}
	for _, m := range members {
		m.TailAppend(enc)
	}
	enc.PopOffset()
}

// DecodeMembers mirrors EncodeMembers. Errors carry the member index in
// their path.
func DecodeMembers[T Token](dec *Decoder, members []T) error {
	if err := dec.PushSequence(SeqHeadWords(members)); err != nil {
		return err
	}
	for i, m := range members {
		if err := m.DecodeFrom(dec); err != nil {
			return abierrors.PrependPath(err, strconv.Itoa(i))
		}
	}
	dec.PopSequence()
	return nil
}

// DecodeSeqToken decodes a sequence that appears as a member of another
// sequence: through an indirection when dynamic, inline otherwise.
func DecodeSeqToken(dec *Decoder, seq TokenSeq) error {
	if !seq.IsDynamic() {
		return seq.DecodeSequence(dec)
	}
	if err := dec.TakeIndirection(); err != nil {
		return err
	}
	if err := seq.DecodeSequence(dec); err != nil {
		return err
	}
	dec.PopIndirection()
	return nil
}
