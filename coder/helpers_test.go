package coder_test

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/abi-codec/soltype"
)

// encoded joins hex words into bytes.
func encoded(t *testing.T, words ...string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.Join(words, ""))
	require.NoError(t, err)
	require.Zero(t, len(b)%32, "test vector is not word aligned")
	return b
}

// num is a right aligned number word.
func num(v uint64) string {
	return fmt.Sprintf("%064x", v)
}

// addrWord is the word holding an address filled with b.
func addrWord(b byte) string {
	return strings.Repeat("00", 12) + strings.Repeat(fmt.Sprintf("%02x", b), 20)
}

// padRight right-pads hex data to a word boundary.
func padRight(h string) string {
	if r := len(h) % 64; r != 0 {
		h += strings.Repeat("0", 64-r)
	}
	return h
}

func addr(b byte) *soltype.Address {
	var a soltype.Address
	for i := range a {
		a[i] = b
	}
	return &a
}

func newAddr() *soltype.Address { return new(soltype.Address) }

func boolean(v bool) *soltype.Bool {
	b := soltype.Bool(v)
	return &b
}

func u8(v uint8) *soltype.Uint8 {
	u := soltype.Uint8(v)
	return &u
}

func newU8() *soltype.Uint8 { return new(soltype.Uint8) }

func u16(v uint16) *soltype.Uint16 {
	u := soltype.Uint16(v)
	return &u
}

func newU16() *soltype.Uint16 { return new(soltype.Uint16) }

func i8(v int8) *soltype.Int8 {
	i := soltype.Int8(v)
	return &i
}

func str(s string) *soltype.String {
	v := soltype.String(s)
	return &v
}

func newStr() *soltype.String { return new(soltype.String) }

func byteStr(t *testing.T, h string) *soltype.Bytes {
	t.Helper()
	b, err := hex.DecodeString(h)
	require.NoError(t, err)
	v := soltype.Bytes(b)
	return &v
}

func newBytes() *soltype.Bytes { return new(soltype.Bytes) }

func repeatedU256(b byte) *soltype.Uint {
	v := new(uint256.Int).SetBytes32(bytes.Repeat([]byte{b}, 32))
	return soltype.NewUint(256, v)
}

func addrArray(bs ...byte) *soltype.Array[*soltype.Address] {
	elems := make([]*soltype.Address, len(bs))
	for i, b := range bs {
		elems[i] = addr(b)
	}
	return soltype.NewArray(newAddr, elems...)
}

func newAddrArray() *soltype.Array[*soltype.Address] {
	return soltype.NewArray(newAddr)
}

func addrPair(a, b byte) *soltype.FixedArray[*soltype.Address] {
	return soltype.FixedArrayOf(newAddr, addr(a), addr(b))
}

func newAddrPair() *soltype.FixedArray[*soltype.Address] {
	return soltype.NewFixedArray(2, newAddr)
}
