package soltype

import (
	"encoding/hex"

	"github.com/wippyai/abi-codec/coder"
)

// Bytes is a dynamic byte string.
type Bytes []byte

func (b *Bytes) TypeName() string { return "bytes" }
func (b *Bytes) String() string { return "0x" + hex.EncodeToString(*b) }
func (b *Bytes) IsDynamic() bool { return true }
func (b *Bytes) HeadWords() int { return 1 }
func (b *Bytes) TailWords() int { return 1 + coder.WordsFor(len(*b)) }
func (b *Bytes) TotalWords() int { return 1 + b.TailWords() }

func (b *Bytes) HeadAppend(enc *coder.Encoder) { enc.AppendTailPointer(b.TailWords()) }
func (b *Bytes) TailAppend(enc *coder.Encoder) { enc.AppendPackedSeq(*b) }

func (b *Bytes) DecodeFrom(dec *coder.Decoder) error {
	if err := dec.TakeIndirection(); err != nil {
		return err
	}
	data, err := dec.TakePackedSeq()
	if err != nil {
		return err
	}
	dec.PopIndirection()
	*b = data
	return nil
}

// String is a dynamic UTF-8 string. Decoding checks UTF-8 only when the
// decoder is configured to.
type String string

func (s *String) TypeName() string { return "string" }
func (s *String) String() string { return string(*s) }
func (s *String) IsDynamic() bool { return true }
func (s *String) HeadWords() int { return 1 }
func (s *String) TailWords() int { return 1 + coder.WordsFor(len(*s)) }
func (s *String) TotalWords() int { return 1 + s.TailWords() }

func (s *String) HeadAppend(enc *coder.Encoder) { enc.AppendTailPointer(s.TailWords()) }
func (s *String) TailAppend(enc *coder.Encoder) { enc.AppendPackedSeq([]byte(*s)) }

func (s *String) DecodeFrom(dec *coder.Decoder) error {
	if err := dec.TakeIndirection(); err != nil {
		return err
	}
	data, err := dec.TakePackedSeq()
	if err != nil {
		return err
	}
	if err := dec.CheckUTF8(data); err != nil {
		return err
	}
	dec.PopIndirection()
	*s = String(data)
	return nil
}
