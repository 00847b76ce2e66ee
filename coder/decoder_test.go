package coder_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wippyai/abi-codec/coder"
	abierrors "github.com/wippyai/abi-codec/errors"
	"github.com/wippyai/abi-codec/soltype"
)

func TestDecodeRejects(t *testing.T) {
	ff := strings.Repeat("ff", 32)

	tests := []struct {
		name  string
		typ   string
		data  []byte
		want  error
		path  string
		param bool
	}{
		{
			name: "length_not_word_multiple",
			typ:  "bool",
			data: make([]byte, 33),
			want: abierrors.ErrInvalidEncoding,
		},
		{
			name: "empty_input",
			typ:  "uint256",
			data: nil,
			want: abierrors.ErrBufferTooShort,
		},
		{
			name: "static_tuple_longer_than_input",
			typ:  "(uint256,uint256)",
			data: encoded(t, num(1)),
			want: abierrors.ErrBufferTooShort,
		},
		{
			name: "bool_two",
			typ:  "bool",
			data: encoded(t, num(2)),
			want: abierrors.ErrInvalidEncoding,
		},
		{
			name: "bool_high_byte",
			typ:  "bool",
			data: encoded(t, "01"+strings.Repeat("0", 62)),
			want: abierrors.ErrInvalidEncoding,
		},
		{
			name: "uint8_padding",
			typ:  "uint8",
			data: encoded(t, num(0x100)),
			want: abierrors.ErrInvalidEncoding,
		},
		{
			name: "uint24_padding",
			typ:  "uint24",
			data: encoded(t, num(0x1000000)),
			want: abierrors.ErrInvalidEncoding,
		},
		{
			name: "address_padding",
			typ:  "address",
			data: encoded(t, "01"+addrWord(0x11)[2:]),
			want: abierrors.ErrInvalidEncoding,
		},
		{
			name: "int8_not_sign_extended",
			typ:  "int8",
			data: encoded(t, num(0x80)),
			want: abierrors.ErrInvalidEncoding,
		},
		{
			name: "int64_negative_zero_padded",
			typ:  "int64",
			data: encoded(t, num(0xffffffffffffffff)),
			want: abierrors.ErrInvalidEncoding,
		},
		{
			name: "bytes4_trailing",
			typ:  "bytes4",
			data: encoded(t, "1122334455"+strings.Repeat("0", 54)),
			want: abierrors.ErrInvalidEncoding,
		},
		{
			name: "offset_unaligned",
			typ:  "string",
			data: encoded(t, num(0x21), num(0), num(0)),
			want: abierrors.ErrInvalidOffset,
		},
		{
			name: "offset_past_end",
			typ:  "string",
			data: encoded(t, num(0x40), num(0)),
			want: abierrors.ErrInvalidOffset,
		},
		{
			name: "offset_too_large",
			typ:  "string",
			data: encoded(t, ff),
			want: abierrors.ErrInvalidOffset,
		},
		{
			name:  "offset_into_head",
			typ:   "(uint256,string)",
			data:  encoded(t, num(1), num(0), num(0)),
			want:  abierrors.ErrInvalidOffset,
			path:  "1",
			param: true,
		},
		{
			name: "offset_to_itself",
			typ:  "bytes",
			data: encoded(t, num(0)),
			want: abierrors.ErrInvalidOffset,
		},
		{
			name: "bytes_length_past_end",
			typ:  "bytes",
			data: encoded(t, num(0x20), num(33), num(0)),
			want: abierrors.ErrOverrun,
		},
		{
			name: "bytes_length_huge",
			typ:  "bytes",
			data: encoded(t, num(0x20), ff),
			want: abierrors.ErrOverrun,
		},
		{
			name: "bytes_dirty_padding",
			typ:  "bytes",
			data: encoded(t, num(0x20), num(1), "11"+strings.Repeat("0", 61)+"1"),
			want: abierrors.ErrInvalidEncoding,
		},
		{
			name: "array_count_past_end",
			typ:  "uint256[]",
			data: encoded(t, num(0x20), num(3), num(1), num(2)),
			want: abierrors.ErrOverrun,
		},
		{
			name: "array_count_huge",
			typ:  "uint256[]",
			data: encoded(t, num(0x20), num(1<<40)),
			want: abierrors.ErrOverrun,
		},
		{
			name: "array_of_static_tuples_count",
			typ:  "(uint256,uint256)[]",
			data: encoded(t, num(0x20), num(2), num(1), num(2), num(3)),
			want: abierrors.ErrOverrun,
		},
		{
			name: "nested_bad_element",
			typ:  "bool[]",
			data: encoded(t, num(0x20), num(2), num(1), num(7)),
			want: abierrors.ErrInvalidEncoding,
			path: "0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ := soltype.MustParse(tt.typ)
			var err error
			if tt.param {
				err = coder.DecodeParams(tt.data, typ.New().(coder.TokenSeq))
			} else {
				err = coder.DecodeSingle(tt.data, typ.New())
			}
			require.Error(t, err)
			require.True(t, errors.Is(err, tt.want), "got %v, want %v", err, tt.want)

			if tt.path != "" {
				var e *abierrors.Error
				require.True(t, errors.As(err, &e))
				require.Equal(t, tt.path, strings.Join(e.Path, "."))
			}
		})
	}
}

func TestDecode_OversizedLengthDoesNotAllocate(t *testing.T) {
	data := encoded(t, num(0x20), num(1<<62))
	typ := soltype.MustParse("uint8[]")

	allocs := testing.AllocsPerRun(10, func() {
		err := coder.DecodeSingle(data, typ.New())
		if !errors.Is(err, abierrors.ErrOverrun) {
			t.Fatalf("expected overrun, got %v", err)
		}
	})
	require.Less(t, allocs, float64(32))
}

func TestDecode_UTF8Validation(t *testing.T) {
	data := encoded(t, num(0x20), num(2), padRight("fffe"))

	var s soltype.String
	require.NoError(t, coder.DecodeSingle(data, &s))
	require.Equal(t, "\xff\xfe", string(s))

	err := coder.DecodeSingleWithConfig(data, &s, &coder.Config{ValidateUTF8: true})
	require.ErrorIs(t, err, abierrors.ErrInvalidEncoding)
}

func TestDecoder_ValidateUTF8(t *testing.T) {
	data := coder.EncodeSingle(u8(1))

	dec, err := coder.NewDecoder(data)
	require.NoError(t, err)
	require.False(t, dec.ValidateUTF8())

	dec, err = coder.NewDecoderWithConfig(data, &coder.Config{ValidateUTF8: true})
	require.NoError(t, err)
	require.True(t, dec.ValidateUTF8())
}

func TestDecode_Strict(t *testing.T) {
	data := append(coder.EncodeSingle(u8(9)), make([]byte, 32)...)

	var v soltype.Uint8
	require.NoError(t, coder.DecodeSingle(data, &v))
	require.Equal(t, soltype.Uint8(9), v)

	err := coder.DecodeSingleWithConfig(data, &v, &coder.Config{Strict: true})
	require.ErrorIs(t, err, abierrors.ErrInvalidEncoding)

	exact := coder.EncodeSingle(str("strict"))
	require.NoError(t, coder.DecodeSingleWithConfig(exact, newStr(), &coder.Config{Strict: true}))
}

func TestDecode_MaxInputSize(t *testing.T) {
	data := coder.EncodeSingle(byteStr(t, strings.Repeat("ab", 100)))

	err := coder.DecodeSingleWithConfig(data, newBytes(), &coder.Config{MaxInputSize: 64})
	require.ErrorIs(t, err, abierrors.ErrOverrun)
	require.NoError(t, coder.DecodeSingleWithConfig(data, newBytes(), &coder.Config{MaxInputSize: len(data)}))
}

// aliasedStrings builds (string[]) params whose n elements all point at one
// tail of size bytes.
func aliasedStrings(t *testing.T, n, size int) []byte {
	words := []string{num(0x20), num(uint64(n))}
	for i := 0; i < n; i++ {
		words = append(words, num(uint64(n*32)))
	}
	words = append(words, num(uint64(size)), padRight(strings.Repeat("61", size)))
	return encoded(t, words...)
}

func TestDecode_ReadBudget(t *testing.T) {
	data := aliasedStrings(t, 64, 2048)
	typ := soltype.MustParse("(string[])")

	err := coder.DecodeParams(data, typ.NewTuple())
	require.ErrorIs(t, err, abierrors.ErrOverrun)
	require.Contains(t, err.Error(), "budget")

	dst := typ.NewTuple()
	require.NoError(t, coder.DecodeParamsWithConfig(data, dst, &coder.Config{ReadBudgetMultiple: 64}))
	arr := dst.At(0).(*soltype.Array[soltype.Value])
	require.Equal(t, 64, arr.Len())
	require.Equal(t, strings.Repeat("a", 2048), arr.Elems[63].String())
}

func TestDecode_CanonicalWithinDefaultBudget(t *testing.T) {
	typ := soltype.MustParse("(uint256[][],string[],bytes32[3])")
	tup := typ.NewTuple()

	outer := tup.At(0).(*soltype.Array[soltype.Value])
	for i := 0; i < 8; i++ {
		inner := soltype.NewArray[soltype.Value](typ.Members[0].Elem.Elem.New)
		for j := 0; j <= i; j++ {
			inner.Elems = append(inner.Elems, soltype.NewUint256(uint64(i*j)))
		}
		outer.Elems = append(outer.Elems, inner)
	}
	strs := tup.At(1).(*soltype.Array[soltype.Value])
	for i := 0; i < 5; i++ {
		strs.Elems = append(strs.Elems, str(strings.Repeat("x", i*17)))
	}

	data := coder.EncodeParams(tup)
	dst := typ.NewTuple()
	require.NoError(t, coder.DecodeParamsWithConfig(data, dst, &coder.Config{ReadBudgetMultiple: 2, Strict: true}))
	require.Equal(t, data, coder.EncodeParams(dst))
}

func TestDecoder_Frames(t *testing.T) {
	data := encoded(t, num(1), num(0x40), num(2), padRight("abcd"))

	dec, err := coder.NewDecoder(data)
	require.NoError(t, err)
	require.Equal(t, 0, dec.Depth())

	require.NoError(t, dec.PushSequence(2))
	w, err := dec.TakeWord()
	require.NoError(t, err)
	v, ok := w.Uint64()
	require.True(t, ok)
	require.Equal(t, uint64(1), v)

	require.NoError(t, dec.TakeIndirection())
	require.Equal(t, 2, dec.Depth())
	b, err := dec.TakePackedSeq()
	require.NoError(t, err)
	require.Equal(t, []byte{0xab, 0xcd}, b)
	dec.PopIndirection()

	dec.PopSequence()
	require.Equal(t, 0, dec.Depth())
	require.Equal(t, len(data)-64, dec.Remaining())
	require.True(t, dec.Finished())
	require.Equal(t, len(data), dec.Consumed())

	require.Panics(t, func() { dec.PopSequence() })
	require.Panics(t, func() { dec.PopIndirection() })
}

func TestDecoder_PeekDoesNotAdvance(t *testing.T) {
	dec, err := coder.NewDecoder(encoded(t, num(7)))
	require.NoError(t, err)

	w1, err := dec.PeekWord()
	require.NoError(t, err)
	w2, err := dec.TakeWord()
	require.NoError(t, err)
	require.Equal(t, w1, w2)
	require.Zero(t, dec.Remaining())

	_, err = dec.TakeWord()
	require.ErrorIs(t, err, abierrors.ErrBufferTooShort)
}

func TestDecoder_TakeUint32(t *testing.T) {
	dec, err := coder.NewDecoder(encoded(t, num(0xdeadbeef), num(1<<32)))
	require.NoError(t, err)

	v, err := dec.TakeUint32()
	require.NoError(t, err)
	require.Equal(t, uint32(0xdeadbeef), v)

	_, err = dec.TakeUint32()
	require.ErrorIs(t, err, abierrors.ErrInvalidEncoding)
}
