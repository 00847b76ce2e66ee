package soltype

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"github.com/holiman/uint256"

	"github.com/wippyai/abi-codec/coder"
	abierrors "github.com/wippyai/abi-codec/errors"
)

// Native unsigned integers. Each is right aligned and zero padded.
type (
	Uint8  uint8
	Uint16 uint16
	Uint32 uint32
	Uint64 uint64
)

func takeUint(dec *coder.Decoder, bits int) (uint64, error) {
	w, err := dec.TakeWord()
	if err != nil {
		return 0, err
	}
	if !coder.CheckUintPadding(w, bits) {
		return 0, abierrors.NonCanonicalPadding("uint"+strconv.Itoa(bits), w)
	}
	return binary.BigEndian.Uint64(w[coder.WordSize-8:]), nil
}

func (u *Uint8) TypeName() string { return "uint8" }
func (u *Uint8) String() string { return strconv.FormatUint(uint64(*u), 10) }
func (u *Uint8) IsDynamic() bool { return false }
func (u *Uint8) HeadWords() int { return 1 }
func (u *Uint8) TailWords() int { return 0 }
func (u *Uint8) TotalWords() int { return 1 }
func (u *Uint8) TailAppend(*coder.Encoder) {}
func (u *Uint8) HeadAppend(enc *coder.Encoder) { enc.AppendWord(coder.PadUint64(uint64(*u))) }

func (u *Uint8) DecodeFrom(dec *coder.Decoder) error {
	v, err := takeUint(dec, 8)
	*u = Uint8(v)
	return err
}

func (u *Uint16) TypeName() string { return "uint16" }
func (u *Uint16) String() string { return strconv.FormatUint(uint64(*u), 10) }
func (u *Uint16) IsDynamic() bool { return false }
func (u *Uint16) HeadWords() int { return 1 }
func (u *Uint16) TailWords() int { return 0 }
func (u *Uint16) TotalWords() int { return 1 }
func (u *Uint16) TailAppend(*coder.Encoder) {}
func (u *Uint16) HeadAppend(enc *coder.Encoder) { enc.AppendWord(coder.PadUint64(uint64(*u))) }

func (u *Uint16) DecodeFrom(dec *coder.Decoder) error {
	v, err := takeUint(dec, 16)
	*u = Uint16(v)
	return err
}

func (u *Uint32) TypeName() string { return "uint32" }
func (u *Uint32) String() string { return strconv.FormatUint(uint64(*u), 10) }
func (u *Uint32) IsDynamic() bool { return false }
func (u *Uint32) HeadWords() int { return 1 }
func (u *Uint32) TailWords() int { return 0 }
func (u *Uint32) TotalWords() int { return 1 }
func (u *Uint32) TailAppend(*coder.Encoder) {}
func (u *Uint32) HeadAppend(enc *coder.Encoder) { enc.AppendWord(coder.PadUint32(uint32(*u))) }

func (u *Uint32) DecodeFrom(dec *coder.Decoder) error {
	v, err := dec.TakeUint32()
	*u = Uint32(v)
	return err
}

func (u *Uint64) TypeName() string { return "uint64" }
func (u *Uint64) String() string { return strconv.FormatUint(uint64(*u), 10) }
func (u *Uint64) IsDynamic() bool { return false }
func (u *Uint64) HeadWords() int { return 1 }
func (u *Uint64) TailWords() int { return 0 }
func (u *Uint64) TotalWords() int { return 1 }
func (u *Uint64) TailAppend(*coder.Encoder) {}
func (u *Uint64) HeadAppend(enc *coder.Encoder) { enc.AppendWord(coder.PadUint64(uint64(*u))) }

func (u *Uint64) DecodeFrom(dec *coder.Decoder) error {
	v, err := takeUint(dec, 64)
	*u = Uint64(v)
	return err
}

// Uint is an unsigned integer of any width from 8 to 256 bits in steps of 8.
// The zero value is a uint256 holding 0.
type Uint struct {
	bits int
	v    uint256.Int
}

// NewUint returns a uintN holding v truncated to bits.
// It panics when bits is not a multiple of 8 in 8..256.
func NewUint(bits int, v *uint256.Int) *Uint {
	checkBits(bits)
	u := &Uint{bits: bits}
	u.Set(v)
	return u
}

// NewUint256 returns a uint256 holding v.
func NewUint256(v uint64) *Uint {
	return NewUint(256, uint256.NewInt(v))
}

// NewUint128 returns a uint128 holding v.
func NewUint128(v uint64) *Uint {
	return NewUint(128, uint256.NewInt(v))
}

func checkBits(bits int) {
	if bits < 8 || bits > 256 || bits%8 != 0 {
		panic(fmt.Sprintf("soltype: invalid integer width %d", bits))
	}
}

// maxUint returns 2^bits - 1.
func maxUint(bits int) *uint256.Int {
	m := new(uint256.Int).Lsh(uint256.NewInt(1), uint(bits))
	return m.SubUint64(m, 1)
}

// Bits returns the declared width.
func (u *Uint) Bits() int {
	if u.bits == 0 {
		return 256
	}
	return u.bits
}

// Value returns a copy of the held value.
func (u *Uint) Value() *uint256.Int {
	return u.v.Clone()
}

// Set stores v truncated to the declared width.
func (u *Uint) Set(v *uint256.Int) {
	u.v.And(v, maxUint(u.Bits()))
}

func (u *Uint) TypeName() string { return "uint" + strconv.Itoa(u.Bits()) }
func (u *Uint) String() string { return u.v.Dec() }
func (u *Uint) IsDynamic() bool { return false }
func (u *Uint) HeadWords() int { return 1 }
func (u *Uint) TailWords() int { return 0 }
func (u *Uint) TotalWords() int { return 1 }
func (u *Uint) TailAppend(*coder.Encoder) {}
func (u *Uint) HeadAppend(enc *coder.Encoder) { enc.AppendWord(u.v.Bytes32()) }

func (u *Uint) DecodeFrom(dec *coder.Decoder) error {
	w, err := dec.TakeWord()
	if err != nil {
		return err
	}
	if !coder.CheckUintPadding(w, u.Bits()) {
		return abierrors.NonCanonicalPadding(u.TypeName(), w)
	}
	u.v.SetBytes32(w[:])
	return nil
}
