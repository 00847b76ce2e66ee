package soltype

import (
	"encoding/binary"
	"strconv"

	"github.com/holiman/uint256"

	"github.com/wippyai/abi-codec/coder"
	abierrors "github.com/wippyai/abi-codec/errors"
)

// Native signed integers. Each is right aligned and sign extended.
type (
	Int8  int8
	Int16 int16
	Int32 int32
	Int64 int64
)

func takeInt(dec *coder.Decoder, bits int) (int64, error) {
	w, err := dec.TakeWord()
	if err != nil {
		return 0, err
	}
	if !coder.CheckIntPadding(w, bits) {
		return 0, abierrors.NonCanonicalPadding("int"+strconv.Itoa(bits), w)
	}
	return int64(binary.BigEndian.Uint64(w[coder.WordSize-8:])), nil
}

func signOf(v int64) Sign {
	if v < 0 {
		return Negative
	}
	return Positive
}

func (i *Int8) TypeName() string { return "int8" }
func (i *Int8) String() string { return strconv.FormatInt(int64(*i), 10) }
func (i *Int8) Sign() Sign { return signOf(int64(*i)) }
func (i *Int8) IsDynamic() bool { return false }
func (i *Int8) HeadWords() int { return 1 }
func (i *Int8) TailWords() int { return 0 }
func (i *Int8) TotalWords() int { return 1 }
func (i *Int8) TailAppend(*coder.Encoder) {}
func (i *Int8) HeadAppend(enc *coder.Encoder) { enc.AppendWord(coder.PadInt64(int64(*i))) }

func (i *Int8) DecodeFrom(dec *coder.Decoder) error {
	v, err := takeInt(dec, 8)
	*i = Int8(v)
	return err
}

func (i *Int16) TypeName() string { return "int16" }
func (i *Int16) String() string { return strconv.FormatInt(int64(*i), 10) }
func (i *Int16) Sign() Sign { return signOf(int64(*i)) }
func (i *Int16) IsDynamic() bool { return false }
func (i *Int16) HeadWords() int { return 1 }
func (i *Int16) TailWords() int { return 0 }
func (i *Int16) TotalWords() int { return 1 }
func (i *Int16) TailAppend(*coder.Encoder) {}
func (i *Int16) HeadAppend(enc *coder.Encoder) { enc.AppendWord(coder.PadInt64(int64(*i))) }

func (i *Int16) DecodeFrom(dec *coder.Decoder) error {
	v, err := takeInt(dec, 16)
	*i = Int16(v)
	return err
}

func (i *Int32) TypeName() string { return "int32" }
func (i *Int32) String() string { return strconv.FormatInt(int64(*i), 10) }
func (i *Int32) Sign() Sign { return signOf(int64(*i)) }
func (i *Int32) IsDynamic() bool { return false }
func (i *Int32) HeadWords() int { return 1 }
func (i *Int32) TailWords() int { return 0 }
func (i *Int32) TotalWords() int { return 1 }
func (i *Int32) TailAppend(*coder.Encoder) {}
func (i *Int32) HeadAppend(enc *coder.Encoder) { enc.AppendWord(coder.PadInt64(int64(*i))) }

func (i *Int32) DecodeFrom(dec *coder.Decoder) error {
	v, err := takeInt(dec, 32)
	*i = Int32(v)
	return err
}

func (i *Int64) TypeName() string { return "int64" }
func (i *Int64) String() string { return strconv.FormatInt(int64(*i), 10) }
func (i *Int64) Sign() Sign { return signOf(int64(*i)) }
func (i *Int64) IsDynamic() bool { return false }
func (i *Int64) HeadWords() int { return 1 }
func (i *Int64) TailWords() int { return 0 }
func (i *Int64) TotalWords() int { return 1 }
func (i *Int64) TailAppend(*coder.Encoder) {}
func (i *Int64) HeadAppend(enc *coder.Encoder) { enc.AppendWord(coder.PadInt64(int64(*i))) }

func (i *Int64) DecodeFrom(dec *coder.Decoder) error {
	v, err := takeInt(dec, 64)
	*i = Int64(v)
	return err
}

// Int is a signed integer of any width from 8 to 256 bits in steps of 8,
// held as a sign-extended 256-bit two's complement value.
// The zero value is an int256 holding 0.
type Int struct {
	bits int
	v    uint256.Int
}

// NewInt returns an intN holding v, interpreted as two's complement and
// truncated to bits.
// It panics when bits is not a multiple of 8 in 8..256.
func NewInt(bits int, v *uint256.Int) *Int {
	checkBits(bits)
	i := &Int{bits: bits}
	i.Set(v)
	return i
}

// NewInt256 returns an int256 holding v.
func NewInt256(v int64) *Int {
	return NewInt(256, fromInt64(v))
}

// NewInt128 returns an int128 holding v.
func NewInt128(v int64) *Int {
	return NewInt(128, fromInt64(v))
}

func fromInt64(v int64) *uint256.Int {
	if v >= 0 {
		return uint256.NewInt(uint64(v))
	}
	abs := uint256.NewInt(uint64(-(v + 1)) + 1)
	return abs.Neg(abs)
}

// Bits returns the declared width.
func (i *Int) Bits() int {
	if i.bits == 0 {
		return 256
	}
	return i.bits
}

// Value returns a copy of the held 256-bit two's complement value.
func (i *Int) Value() *uint256.Int {
	return i.v.Clone()
}

// Set stores v truncated to the declared width and sign extended.
func (i *Int) Set(v *uint256.Int) {
	i.v.ExtendSign(v, uint256.NewInt(uint64(i.Bits()/8-1)))
}

// Sign returns the sign of the value. Zero is positive.
func (i *Int) Sign() Sign {
	if i.v.Sign() < 0 {
		return Negative
	}
	return Positive
}

// Abs returns the magnitude of the value.
func (i *Int) Abs() *uint256.Int {
	return new(uint256.Int).Abs(&i.v)
}

func (i *Int) TypeName() string { return "int" + strconv.Itoa(i.Bits()) }
func (i *Int) String() string { return i.Sign().String() + i.Abs().Dec() }
func (i *Int) IsDynamic() bool { return false }
func (i *Int) HeadWords() int { return 1 }
func (i *Int) TailWords() int { return 0 }
func (i *Int) TotalWords() int { return 1 }
func (i *Int) TailAppend(*coder.Encoder) {}
func (i *Int) HeadAppend(enc *coder.Encoder) { enc.AppendWord(i.v.Bytes32()) }

func (i *Int) DecodeFrom(dec *coder.Decoder) error {
	w, err := dec.TakeWord()
	if err != nil {
		return err
	}
	if !coder.CheckIntPadding(w, i.Bits()) {
		return abierrors.NonCanonicalPadding(i.TypeName(), w)
	}
	i.v.SetBytes32(w[:])
	return nil
}
