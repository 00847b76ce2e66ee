package coder_test

import (
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/wippyai/abi-codec/coder"
	abierrors "github.com/wippyai/abi-codec/errors"
	"github.com/wippyai/abi-codec/soltype"
)

func sampleTuple(n uint64, flag bool, data []byte, s string, addrs []uint8) *soltype.Tuple {
	u := soltype.Uint64(n)
	b := soltype.Bool(flag)
	bs := soltype.Bytes(data)
	st := soltype.String(s)
	arr := soltype.NewArray(newAddr)
	for _, a := range addrs {
		arr.Elems = append(arr.Elems, addr(a))
	}
	return soltype.NewTuple(&u, &b, &bs, &st, arr,
		soltype.NewTuple(soltype.FixedArrayOf(newStr, str(s), str("")), &b))
}

const sampleType = "(uint64,bool,bytes,string,address[],(string[2],bool))"

func TestProperties_RoundTrip(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("decode(encode(v)) re-encodes identically", prop.ForAll(
		func(n uint64, flag bool, data []byte, s string, addrs []uint8) bool {
			v := sampleTuple(n, flag, data, s, addrs)
			enc := coder.EncodeParams(v)

			dst := soltype.MustParse(sampleType).NewTuple()
			if err := coder.DecodeParamsWithConfig(enc, dst, &coder.Config{Strict: true}); err != nil {
				return false
			}
			return string(coder.EncodeParams(dst)) == string(enc)
		},
		gen.UInt64(),
		gen.Bool(),
		gen.SliceOf(gen.UInt8()),
		gen.AnyString(),
		gen.SliceOf(gen.UInt8()),
	))

	properties.Property("encoded length matches TotalWords", prop.ForAll(
		func(n uint64, data []byte, s string, addrs []uint8) bool {
			v := sampleTuple(n, true, data, s, addrs)
			single := coder.EncodeSingle(v)
			return len(single)%32 == 0 && len(single) == 32*v.TotalWords()
		},
		gen.UInt64(),
		gen.SliceOf(gen.UInt8()),
		gen.AlphaString(),
		gen.SliceOf(gen.UInt8()),
	))

	properties.Property("single is params plus one word for dynamic tuples", prop.ForAll(
		func(data []byte, s string) bool {
			v := sampleTuple(1, false, data, s, nil)
			single := coder.EncodeSingle(v)
			params := coder.EncodeParams(v)
			return len(single) == len(params)+32 && string(single[32:]) == string(params)
		},
		gen.SliceOf(gen.UInt8()),
		gen.AnyString(),
	))

	properties.Property("static tuples are never wrapped", prop.ForAll(
		func(a, b uint64, flag bool) bool {
			ua, ub, fl := soltype.Uint64(a), soltype.Uint64(b), soltype.Bool(flag)
			v := soltype.NewTuple(&ua, soltype.NewTuple(&ub, &fl))
			return string(coder.EncodeSingle(v)) == string(coder.EncodeParams(v))
		},
		gen.UInt64(),
		gen.UInt64(),
		gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestProperties_HostileInput(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Small word values make offsets and counts land in range often enough
	// to reach the deeper decoder paths.
	wordGen := gen.OneGenOf(
		gen.UInt64Range(0, 8).Map(func(v uint64) uint64 { return v * 32 }),
		gen.UInt64Range(0, 4),
		gen.UInt64(),
	)

	properties.Property("decoding arbitrary words never panics", prop.ForAll(
		func(vals []uint64) bool {
			words := make([]string, len(vals))
			for i, v := range vals {
				words[i] = num(v)
			}
			data := encoded(t, words...)
			dst := soltype.MustParse(sampleType).NewTuple()

			err := coder.DecodeParams(data, dst)
			if err == nil {
				return true
			}
			var e *abierrors.Error
			return errors.As(err, &e) && e.Phase == abierrors.PhaseDecode
		},
		gen.SliceOfN(24, wordGen),
	))

	properties.TestingRun(t)
}
