package soltype

import (
	"github.com/wippyai/abi-codec/coder"
	"github.com/wippyai/abi-codec/soltype/internal/kind"
)

type Kind = kind.Kind

const (
	KindInvalid    = kind.Invalid
	KindBool       = kind.Bool
	KindUint       = kind.Uint
	KindInt        = kind.Int
	KindAddress    = kind.Address
	KindFixedBytes = kind.FixedBytes
	KindBytes      = kind.Bytes
	KindString     = kind.String
	KindArray      = kind.Array
	KindFixedArray = kind.FixedArray
	KindTuple      = kind.Tuple
)

// Value is a token that knows its canonical type name.
type Value interface {
	coder.Token

	// TypeName returns the canonical type string, e.g. "uint256[]".
	TypeName() string
	String() string
}

// Seq is a Value that is also a sequence.
type Seq interface {
	Value
	coder.TokenSeq
}

// Compile-time interface checks
var (
	_ Value = (*Bool)(nil)
	_ Value = (*Address)(nil)
	_ Value = (*Uint8)(nil)
	_ Value = (*Uint16)(nil)
	_ Value = (*Uint32)(nil)
	_ Value = (*Uint64)(nil)
	_ Value = (*Uint)(nil)
	_ Value = (*Int8)(nil)
	_ Value = (*Int16)(nil)
	_ Value = (*Int32)(nil)
	_ Value = (*Int64)(nil)
	_ Value = (*Int)(nil)
	_ Value = (*FixedBytes)(nil)
	_ Value = (*Bytes)(nil)
	_ Value = (*String)(nil)
	_ Seq   = (*Array[Value])(nil)
	_ Seq   = (*FixedArray[Value])(nil)
	_ Seq   = (*Tuple)(nil)
)
