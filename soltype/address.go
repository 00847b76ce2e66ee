package soltype

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/wippyai/abi-codec/coder"
	abierrors "github.com/wippyai/abi-codec/errors"
)

const AddressSize = 20

// Address is a 20-byte account identifier, right aligned in its word.
type Address [AddressSize]byte

// ParseAddress parses a 0x-prefixed or bare 40 digit hex string.
// Mixed-case input must carry a valid checksum.
func ParseAddress(s string) (Address, error) {
	var a Address
	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(digits) != 2*AddressSize {
		return a, abierrors.InvalidInput(abierrors.PhaseParse, "address must be 40 hex digits: "+s)
	}
	if _, err := hex.Decode(a[:], []byte(digits)); err != nil {
		return a, abierrors.Wrap(abierrors.PhaseParse, abierrors.KindInvalidInput, err, "address "+s)
	}
	if digits != strings.ToLower(digits) && digits != strings.ToUpper(digits) {
		if a.Hex()[2:] != digits {
			return a, abierrors.InvalidInput(abierrors.PhaseParse, "bad address checksum: "+s)
		}
	}
	return a, nil
}

// Hex returns the mixed-case checksummed form of the address.
func (a *Address) Hex() string {
	lower := hex.EncodeToString(a[:])
	h := sha3.NewLegacyKeccak256()
	_, _ = h.Write([]byte(lower))
	sum := h.Sum(nil)

	out := []byte(lower)
	for i := range out {
		if out[i] < 'a' {
			continue
		}
		nibble := sum[i/2]
		if i%2 == 0 {
			nibble >>= 4
		}
		if nibble&0xf >= 8 {
			out[i] -= 'a' - 'A'
		}
	}
	return "0x" + string(out)
}

func (a *Address) TypeName() string { return "address" }
func (a *Address) String() string { return a.Hex() }

func (a *Address) IsDynamic() bool { return false }
func (a *Address) HeadWords() int { return 1 }
func (a *Address) TailWords() int { return 0 }
func (a *Address) TotalWords() int { return 1 }
func (a *Address) TailAppend(*coder.Encoder) {}

func (a *Address) HeadAppend(enc *coder.Encoder) {
	var w coder.Word
	copy(w[coder.WordSize-AddressSize:], a[:])
	enc.AppendWord(w)
}

func (a *Address) DecodeFrom(dec *coder.Decoder) error {
	w, err := dec.TakeWord()
	if err != nil {
		return err
	}
	if !coder.CheckUintPadding(w, 8*AddressSize) {
		return abierrors.NonCanonicalPadding("address", w)
	}
	copy(a[:], w[coder.WordSize-AddressSize:])
	return nil
}
