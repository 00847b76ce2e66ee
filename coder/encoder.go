package coder

import (
	"fmt"

	abicodec "github.com/wippyai/abi-codec"
)

// Encoder is an append-only word buffer with a stack of suffix offsets.
//
// Each entry on the offset stack is the byte offset, relative to the start of
// the sequence currently being written, at which the next dynamic tail will
// land. Token implementations drive the encoder; most callers want Encode,
// EncodeSingle or EncodeParams instead.
//
// An Encoder is not safe for concurrent use.
type Encoder struct {
	buf          *[]Word
	suffixOffset []int
}

// NewEncoder creates an encoder with room for capacityWords words.
func NewEncoder(capacityWords int) *Encoder {
	if capacityWords < 0 {
		capacityWords = 0
	}
	return &Encoder{
		buf:          getWords(capacityWords + 1),
		suffixOffset: make([]int, 0, 4),
	}
}

// Len returns the number of words written so far.
func (e *Encoder) Len() int {
	if e.buf == nil {
		return 0
	}
	return len(*e.buf)
}

// Depth returns the number of open offset contexts.
func (e *Encoder) Depth() int {
	return len(e.suffixOffset)
}

// SuffixOffset returns the current tail offset in bytes.
// It panics when no offset context is open.
func (e *Encoder) SuffixOffset() int {
	if len(e.suffixOffset) == 0 {
		panic("coder: SuffixOffset with empty offset stack")
	}
	return e.suffixOffset[len(e.suffixOffset)-1]
}

// PushOffset opens an offset context for a sequence whose head is words long.
func (e *Encoder) PushOffset(words int) {
	e.suffixOffset = append(e.suffixOffset, words*WordSize)
}

// PopOffset closes the innermost offset context and returns its final value.
// It panics when no offset context is open.
func (e *Encoder) PopOffset() int {
	n := len(e.suffixOffset)
	if n == 0 {
		panic("coder: PopOffset with empty offset stack")
	}
	off := e.suffixOffset[n-1]
	e.suffixOffset = e.suffixOffset[:n-1]
	return off
}

// BumpOffset advances the innermost offset context by words.
// It panics when no offset context is open.
func (e *Encoder) BumpOffset(words int) {
	n := len(e.suffixOffset)
	if n == 0 {
		panic("coder: BumpOffset with empty offset stack")
	}
	e.suffixOffset[n-1] += words * WordSize
}

// AppendWord appends one raw word.
func (e *Encoder) AppendWord(w Word) {
	if e.buf == nil {
		e.buf = getWords(poolInitWords)
	}
	*e.buf = append(*e.buf, w)
}

// AppendIndirection appends a pointer to the current tail offset.
func (e *Encoder) AppendIndirection() {
	e.AppendWord(PadUint64(uint64(e.SuffixOffset())))
}

// AppendTailPointer writes the head of a dynamic token whose tail is
// tailWords long: a pointer to the current tail offset, which is then
// advanced past the tail.
func (e *Encoder) AppendTailPointer(tailWords int) {
	e.AppendIndirection()
	e.BumpOffset(tailWords)
}

// AppendSeqLen appends an element count or byte length.
func (e *Encoder) AppendSeqLen(n int) {
	e.AppendWord(PadUint64(uint64(n)))
}

// AppendPackedSeq appends the length of b followed by b right-padded with
// zeros to a word boundary.
func (e *Encoder) AppendPackedSeq(b []byte) {
	e.AppendSeqLen(len(b))
	for len(b) > 0 {
		var w Word
		n := copy(w[:], b)
		e.AppendWord(w)
		b = b[n:]
	}
}

// AppendHeadTail writes a sequence using the head/tail layout.
func (e *Encoder) AppendHeadTail(seq TokenSeq) {
	seq.EncodeSequence(e)
}

// Finish returns the encoded words and resets the encoder.
// The caller owns the returned slice.
func (e *Encoder) Finish() []Word {
	e.checkBalanced()
	out := make([]Word, e.Len())
	if e.buf != nil {
		copy(out, *e.buf)
	}
	e.release()
	return out
}

// Bytes returns the encoded bytes and resets the encoder.
func (e *Encoder) Bytes() []byte {
	e.checkBalanced()
	var out []byte
	if e.buf != nil {
		out = abicodec.WordsToBytes(*e.buf)
	} else {
		out = []byte{}
	}
	e.release()
	return out
}

func (e *Encoder) checkBalanced() {
	if len(e.suffixOffset) != 0 {
		panic(fmt.Sprintf("coder: %d offset contexts left open", len(e.suffixOffset)))
	}
}

// release returns the buffer to the pool. The next append takes a fresh one.
func (e *Encoder) release() {
	if e.buf != nil {
		putWords(e.buf)
		e.buf = nil
	}
	e.suffixOffset = e.suffixOffset[:0]
}
