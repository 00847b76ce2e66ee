package coder

import (
	abierrors "github.com/wippyai/abi-codec/errors"
)

// Encode writes seq with the head/tail layout and no wrapping.
func Encode(seq TokenSeq) []byte {
	enc := NewEncoder(seq.TotalWords())
	enc.AppendHeadTail(seq)
	return enc.Bytes()
}

// EncodeSingle encodes tok as the only member of a tuple. A dynamic token is
// therefore preceded by one offset word.
func EncodeSingle(tok Token) []byte {
	return Encode(singleton{tok})
}

// EncodeParams encodes seq as a function parameter list. Tuples are written
// flat; any other sequence is wrapped as by EncodeSingle.
func EncodeParams(seq TokenSeq) []byte {
	if seq.CanBeParams() {
		return Encode(seq)
	}
	return EncodeSingle(seq)
}

// Decode reads seq as Encode wrote it. seq must be shaped before the call:
// fixed arrays and tuples need their members, dynamic arrays their element
// factory. On error the contents of seq are unspecified and must be
// discarded.
func Decode(data []byte, seq TokenSeq) error {
	return DecodeWithConfig(data, seq, nil)
}

// DecodeWithConfig is Decode with explicit limits.
func DecodeWithConfig(data []byte, seq TokenSeq, cfg *Config) error {
	return decode("decode", data, seq, cfg)
}

// DecodeSingle reads tok as EncodeSingle wrote it.
func DecodeSingle(data []byte, tok Token) error {
	return DecodeSingleWithConfig(data, tok, nil)
}

// DecodeSingleWithConfig is DecodeSingle with explicit limits.
func DecodeSingleWithConfig(data []byte, tok Token, cfg *Config) error {
	return decode("decode_single", data, singleton{tok}, cfg)
}

// DecodeParams reads seq as EncodeParams wrote it.
func DecodeParams(data []byte, seq TokenSeq) error {
	return DecodeParamsWithConfig(data, seq, nil)
}

// DecodeParamsWithConfig is DecodeParams with explicit limits.
func DecodeParamsWithConfig(data []byte, seq TokenSeq, cfg *Config) error {
	if seq.CanBeParams() {
		return decode("decode_params", data, seq, cfg)
	}
	return decode("decode_params", data, singleton{seq}, cfg)
}

func decode(op string, data []byte, seq TokenSeq, cfg *Config) error {
	dec, err := NewDecoderWithConfig(data, cfg)
	if err != nil {
		logRejected(op, len(data), err)
		return err
	}
	if err := seq.DecodeSequence(dec); err != nil {
		logRejected(op, len(data), err)
		return err
	}
	if dec.cfg.Strict && !dec.Finished() {
		err := abierrors.New(abierrors.PhaseDecode, abierrors.KindInvalidEncoding).
			Value(len(data) - dec.Consumed()).
			Detail("%d trailing bytes after %d consumed", len(data)-dec.Consumed(), dec.Consumed()).
			Build()
		logRejected(op, len(data), err)
		return err
	}
	return nil
}

// singleton is the one-member tuple used for top-level wrapping.
type singleton struct {
	tok Token
}

func (s singleton) IsDynamic() bool { return s.tok.IsDynamic() }

func (s singleton) HeadWords() int {
	if s.tok.IsDynamic() {
		return 1
	}
	return s.tok.HeadWords()
}

func (s singleton) TailWords() int {
	if s.tok.IsDynamic() {
		return s.tok.TotalWords()
	}
	return 0
}

func (s singleton) TotalWords() int {
	if s.tok.IsDynamic() {
		return 1 + s.TailWords()
	}
	return s.HeadWords()
}

func (s singleton) HeadAppend(enc *Encoder) {
	if s.tok.IsDynamic() {
		enc.AppendTailPointer(s.TailWords())
		return
	}
	s.tok.HeadAppend(enc)
}

func (s singleton) TailAppend(enc *Encoder) {
	if s.tok.IsDynamic() {
		s.EncodeSequence(enc)
	}
}

func (s singleton) DecodeFrom(dec *Decoder) error {
	return DecodeSeqToken(dec, s)
}

func (s singleton) CanBeParams() bool { return true }

func (s singleton) EncodeSequence(enc *Encoder) {
	EncodeMembers(enc, []Token{s.tok})
}

func (s singleton) DecodeSequence(dec *Decoder) error {
	return DecodeMembers(dec, []Token{s.tok})
}
