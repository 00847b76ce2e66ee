package soltype

import (
	"fmt"
)

// Sign is the sign of a signed integer value.
type Sign int8

const (
	Positive Sign = 1
	Negative Sign = -1
)

// Mul returns the sign of a product of values with signs s and o.
func (s Sign) Mul(o Sign) Sign {
	if s == o {
		return Positive
	}
	return Negative
}

// Neg returns the opposite sign.
func (s Sign) Neg() Sign {
	if s == Negative {
		return Positive
	}
	return Negative
}

func (s Sign) IsPositive() bool { return s != Negative }
func (s Sign) IsNegative() bool { return s == Negative }

// Char returns '+' or '-'.
func (s Sign) Char() byte {
	if s == Negative {
		return '-'
	}
	return '+'
}

// String returns "-" for negative and "" for positive values.
func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return ""
}

// Format implements fmt.Formatter. The '+' flag prints positive signs.
func (s Sign) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		if s == Negative || f.Flag('+') {
			_, _ = f.Write([]byte{s.Char()})
		}
	case 'd':
		fmt.Fprintf(f, "%d", int8(s))
	default:
		fmt.Fprintf(f, "%%!%c(soltype.Sign=%d)", verb, int8(s))
	}
}
