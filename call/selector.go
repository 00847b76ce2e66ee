package call

import (
	"golang.org/x/crypto/sha3"

	abicodec "github.com/wippyai/abi-codec"
	"github.com/wippyai/abi-codec/soltype"
)

// Keccak256 hashes the concatenation of data.
func Keccak256(data ...[]byte) abicodec.Word {
	h := sha3.NewLegacyKeccak256()
	for _, b := range data {
		_, _ = h.Write(b)
	}
	var w abicodec.Word
	h.Sum(w[:0])
	return w
}

// Selector returns the function selector of a canonical signature such as
// "transfer(address,uint256)". The signature is hashed as given.
func Selector(signature string) abicodec.Selector {
	w := Keccak256([]byte(signature))
	var s abicodec.Selector
	copy(s[:], w[:abicodec.SelectorSize])
	return s
}

// EventTopic returns topic 0 of an event with the given canonical signature.
func EventTopic(signature string) abicodec.Word {
	return Keccak256([]byte(signature))
}

// Signature returns the canonical signature of a function or event called
// name taking args.
func Signature(name string, args *soltype.Tuple) string {
	return name + args.TypeName()
}

// SplitCallData separates the selector from the encoded arguments.
func SplitCallData(data []byte) (abicodec.Selector, []byte, bool) {
	var s abicodec.Selector
	if len(data) < abicodec.SelectorSize {
		return s, nil, false
	}
	copy(s[:], data)
	return s, data[abicodec.SelectorSize:], true
}
