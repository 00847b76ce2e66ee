package coder

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"

	"github.com/wippyai/abi-codec/coder/internal/bounds"
	abierrors "github.com/wippyai/abi-codec/errors"
)

// frame is one level of the decoder's cursor stack.
//
// Sequence frames are opened by PushSequence. Their base is the origin for
// offsets read from their head and head is the head length in bytes. Jump
// frames are opened by TakeIndirection and only move the cursor.
type frame struct {
	base int
	pos  int
	head int
	seq  bool
}

// Decoder reads tokens from an immutable byte slice.
//
// All validation of untrusted input happens here: token implementations only
// see lengths and counts that already fit in the remaining input. Every read
// is charged against a budget proportional to the input length.
//
// A Decoder is not safe for concurrent use.
type Decoder struct {
	data   []byte
	frames []frame
	budget int
	high   int
	cfg    Config
}

// NewDecoder creates a decoder over data with default limits.
func NewDecoder(data []byte) (*Decoder, error) {
	return NewDecoderWithConfig(data, nil)
}

// NewDecoderWithConfig creates a decoder over data. A nil cfg means defaults.
// The input is rejected when its length is not a whole number of words or
// exceeds the configured maximum.
func NewDecoderWithConfig(data []byte, cfg *Config) (*Decoder, error) {
	c := cfg.resolve()
	if len(data) > c.MaxInputSize {
		return nil, abierrors.Overrun("input of %d bytes exceeds limit of %d", len(data), c.MaxInputSize)
	}
	if len(data)%WordSize != 0 {
		return nil, abierrors.New(abierrors.PhaseDecode, abierrors.KindInvalidEncoding).
			Value(len(data)).
			Detail("input length %d is not a multiple of %d", len(data), WordSize).
			Build()
	}
	budget, ok := bounds.SafeMul(len(data), c.ReadBudgetMultiple)
	if !ok {
		budget = len(data)
	}
	frames := make([]frame, 1, 8)
	frames[0] = frame{seq: true}
	return &Decoder{
		data:   data,
		frames: frames,
		budget: budget,
		cfg:    c,
	}, nil
}

func (d *Decoder) top() *frame {
	return &d.frames[len(d.frames)-1]
}

// enclosingSeq returns the innermost sequence frame.
func (d *Decoder) enclosingSeq() *frame {
	for i := len(d.frames) - 1; i > 0; i-- {
		if d.frames[i].seq {
			return &d.frames[i]
		}
	}
	return &d.frames[0]
}

func (d *Decoder) charge(n int) error {
	if n > d.budget {
		return abierrors.Overrun("read budget exhausted: %d bytes requested, %d left", n, d.budget)
	}
	d.budget -= n
	return nil
}

func (d *Decoder) mark(end int) {
	if end > d.high {
		d.high = end
	}
}

// Remaining returns the number of bytes between the cursor and the end of
// input.
func (d *Decoder) Remaining() int {
	return len(d.data) - d.top().pos
}

// Depth returns the number of open frames above the root.
func (d *Decoder) Depth() int {
	return len(d.frames) - 1
}

// Consumed returns the end of the furthest byte range read so far.
func (d *Decoder) Consumed() int {
	return d.high
}

// Finished reports whether every input byte up to the end was reached.
func (d *Decoder) Finished() bool {
	return d.high == len(d.data)
}

// ValidateUTF8 reports whether string values must be valid UTF-8.
func (d *Decoder) ValidateUTF8() bool {
	return d.cfg.ValidateUTF8
}

// CheckUTF8 returns an error when UTF-8 validation is enabled and b is not
// valid UTF-8.
func (d *Decoder) CheckUTF8(b []byte) error {
	if d.cfg.ValidateUTF8 && !utf8.Valid(b) {
		return abierrors.InvalidUTF8(b)
	}
	return nil
}

// PeekWord returns the word at the cursor without advancing.
func (d *Decoder) PeekWord() (Word, error) {
	var w Word
	f := d.top()
	if f.pos+WordSize > len(d.data) {
		return w, abierrors.BufferTooShort(WordSize, len(d.data)-f.pos)
	}
	if err := d.charge(WordSize); err != nil {
		return w, err
	}
	copy(w[:], d.data[f.pos:])
	return w, nil
}

// TakeWord returns the word at the cursor and advances past it.
func (d *Decoder) TakeWord() (Word, error) {
	w, err := d.PeekWord()
	if err != nil {
		return w, err
	}
	f := d.top()
	f.pos += WordSize
	d.mark(f.pos)
	return w, nil
}

// TakeUint32 reads a word holding a zero-padded uint32.
func (d *Decoder) TakeUint32() (uint32, error) {
	w, err := d.TakeWord()
	if err != nil {
		return 0, err
	}
	if !CheckUintPadding(w, 32) {
		return 0, abierrors.NonCanonicalPadding("uint32", w)
	}
	return binary.BigEndian.Uint32(w[WordSize-4:]), nil
}

// TakeIndirection reads an offset word and moves the cursor to the target
// in a new frame. The offset is relative to the start of the enclosing
// sequence and must land past that sequence's head, so every jump moves
// strictly forward.
func (d *Decoder) TakeIndirection() error {
	w, err := d.TakeWord()
	if err != nil {
		return err
	}
	off, ok := w.Uint64()
	if !ok {
		return abierrors.New(abierrors.PhaseDecode, abierrors.KindInvalidOffset).
			Value(w).
			Detail("offset %s does not fit in 64 bits", w).
			Build()
	}
	if off%WordSize != 0 {
		return abierrors.InvalidOffset(off, "not word aligned")
	}
	seq := d.enclosingSeq()
	if off < uint64(seq.head) {
		return abierrors.InvalidOffset(off, fmt.Sprintf("points into the %d byte head of its sequence", seq.head))
	}
	if off >= uint64(len(d.data)-seq.base) {
		return abierrors.InvalidOffset(off, fmt.Sprintf("beyond end of input (%d bytes from base %d)", len(d.data), seq.base))
	}
	target := seq.base + int(off)
	d.frames = append(d.frames, frame{base: target, pos: target})
	return nil
}

// PopIndirection closes the frame opened by TakeIndirection. The cursor of
// the parent frame stays after the offset word.
// It panics when the innermost frame is not an indirection.
func (d *Decoder) PopIndirection() {
	if len(d.frames) == 1 || d.top().seq {
		panic("coder: PopIndirection without matching TakeIndirection")
	}
	d.frames = d.frames[:len(d.frames)-1]
}

// PushSequence opens a sequence whose head is headWords long at the cursor.
func (d *Decoder) PushSequence(headWords int) error {
	f := d.top()
	head, ok := bounds.SafeMul(headWords, WordSize)
	if !ok || head > len(d.data)-f.pos {
		return abierrors.BufferTooShort(head, len(d.data)-f.pos)
	}
	d.frames = append(d.frames, frame{base: f.pos, pos: f.pos, head: head, seq: true})
	return nil
}

// PopSequence closes the innermost sequence and advances the parent cursor
// past its head.
// It panics when the innermost frame is not a sequence.
func (d *Decoder) PopSequence() {
	if len(d.frames) == 1 || !d.top().seq {
		panic("coder: PopSequence without matching PushSequence")
	}
	s := d.frames[len(d.frames)-1]
	d.frames = d.frames[:len(d.frames)-1]
	parent := d.top()
	if end := s.base + s.head; end > parent.pos {
		parent.pos = end
	}
}

// TakeSeqLen reads an element count. Each element is assumed to need at
// least minElemWords words (never less than one), and the count is rejected
// when that many elements cannot fit in the remaining input. The minimum
// size of the elements is charged against the read budget.
func (d *Decoder) TakeSeqLen(minElemWords int) (int, error) {
	w, err := d.TakeWord()
	if err != nil {
		return 0, err
	}
	n, ok := w.Uint64()
	if !ok || n > uint64(len(d.data)) {
		return 0, abierrors.Overrun("sequence length %s exceeds input of %d bytes", w, len(d.data))
	}
	if minElemWords < 1 {
		minElemWords = 1
	}
	need, ok := bounds.SafeMul(int(n), minElemWords*WordSize)
	if rem := d.Remaining(); !ok || need > rem {
		return 0, abierrors.Overrun("sequence of %d elements needs at least %d words each, %d bytes remain", n, minElemWords, rem)
	}
	// The caller allocates n elements; charge for them even when the
	// elements themselves read nothing.
	if err := d.charge(need); err != nil {
		return 0, err
	}
	return int(n), nil
}

// TakePackedSeq reads a length-prefixed byte string and returns a copy of
// its contents. The padding after the data must be zero.
func (d *Decoder) TakePackedSeq() ([]byte, error) {
	w, err := d.TakeWord()
	if err != nil {
		return nil, err
	}
	rem := d.Remaining()
	n, ok := w.Uint64()
	if !ok || n > uint64(rem) {
		return nil, abierrors.Overrun("byte length %s exceeds remaining %d bytes", w, rem)
	}
	padded := bounds.PaddedLen(int(n))
	if padded > rem {
		return nil, abierrors.Overrun("padded length %d exceeds remaining %d bytes", padded, rem)
	}
	if err := d.charge(padded); err != nil {
		return nil, err
	}
	f := d.top()
	data := d.data[f.pos : f.pos+padded]
	for _, b := range data[n:] {
		if b != 0 {
			return nil, abierrors.InvalidEncoding("non-zero padding after %d byte packed value", n)
		}
	}
	out := make([]byte, n)
	copy(out, data)
	f.pos += padded
	d.mark(f.pos)
	return out, nil
}
