// Package soltype provides the concrete value kinds of the contract ABI and
// a parser for type strings.
//
// Every value is a pointer type implementing coder.Token:
//
//	Type string         Go value
//	─────────────────────────────────────────
//	bool                *Bool
//	address             *Address
//	uint8..uint64       *Uint8 .. *Uint64
//	uintN               *Uint (uint256 backed)
//	int8..int64         *Int8 .. *Int64
//	intN                *Int (two's complement)
//	bytesN              *FixedBytes
//	bytes               *Bytes
//	string              *String
//	T[]                 *Array[T]
//	T[k]                *FixedArray[T]
//	(T1,...,Tn)         *Tuple
//
// Composite values must be shaped before they are decoded into: a fixed
// array needs its elements, a dynamic array its element constructor and a
// tuple its members. Type.New builds such a value from a type string:
//
//	t := soltype.MustParse("(address,uint256[])")
//	v := t.NewTuple()
//	err := coder.DecodeParams(data, v)
//
// Parsed types are cached and shared between goroutines.
package soltype
