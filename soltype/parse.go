package soltype

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	abierrors "github.com/wippyai/abi-codec/errors"
)

// Limits for parsed type strings.
const (
	MaxTypeDepth = 32
	MaxTypeWords = 1 << 16 // values and static head words of one parsed type
)

// Type describes a value kind parsed from a type string such as
// "(address,uint256[])". Parsed types are shared through a cache and must
// not be modified.
type Type struct {
	Kind    Kind
	Size    int     // bits for uint/int, width for bytesN, length for T[k]
	Elem    *Type   // arrays
	Members []*Type // tuples
	Names   []string
}

// Param is one entry of a parameter list.
type Param struct {
	Type    *Type
	Name    string
	Indexed bool
}

var typeCache sync.Map // string -> *Type

// Parse parses a type string. Whitespace and member names inside tuples are
// allowed; "uint" and "int" mean 256 bits.
func Parse(s string) (*Type, error) {
	if cached, ok := typeCache.Load(s); ok {
		return cached.(*Type), nil
	}
	p := &parser{in: s}
	t, err := p.parseType(0)
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, p.errorf("unexpected %q", p.in[p.pos])
	}
	actual, _ := typeCache.LoadOrStore(s, t)
	return actual.(*Type), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) *Type {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseParams parses a parenthesized parameter list, e.g.
// "(address indexed from, uint256 value)".
func ParseParams(s string) ([]Param, error) {
	p := &parser{in: s}
	params, err := p.parseParamList(0)
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, p.errorf("unexpected %q", p.in[p.pos])
	}
	return params, nil
}

// TupleOf returns the tuple type with the given member types.
func TupleOf(members ...*Type) *Type {
	return &Type{Kind: KindTuple, Members: members}
}

// String returns the canonical type string.
func (t *Type) String() string {
	var b strings.Builder
	t.write(&b)
	return b.String()
}

func (t *Type) write(b *strings.Builder) {
	switch t.Kind {
	case KindUint:
		b.WriteString("uint")
		b.WriteString(strconv.Itoa(t.Size))
	case KindInt:
		b.WriteString("int")
		b.WriteString(strconv.Itoa(t.Size))
	case KindFixedBytes:
		b.WriteString("bytes")
		b.WriteString(strconv.Itoa(t.Size))
	case KindArray:
		t.Elem.write(b)
		b.WriteString("[]")
	case KindFixedArray:
		t.Elem.write(b)
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(t.Size))
		b.WriteByte(']')
	case KindTuple:
		b.WriteByte('(')
		for i, m := range t.Members {
			if i > 0 {
				b.WriteByte(',')
			}
			m.write(b)
		}
		b.WriteByte(')')
	default:
		b.WriteString(t.Kind.String())
	}
}

// IsDynamic reports whether values of this type are dynamic.
func (t *Type) IsDynamic() bool {
	switch t.Kind {
	case KindBytes, KindString, KindArray:
		return true
	case KindFixedArray:
		return t.Size > 0 && t.Elem.IsDynamic()
	case KindTuple:
		for _, m := range t.Members {
			if m.IsDynamic() {
				return true
			}
		}
	}
	return false
}

// HeadWords returns the head size of values of this type.
func (t *Type) HeadWords() int {
	if t.IsDynamic() {
		return 1
	}
	switch t.Kind {
	case KindFixedArray:
		return t.Size * t.Elem.HeadWords()
	case KindTuple:
		n := 0
		for _, m := range t.Members {
			n += m.HeadWords()
		}
		return n
	}
	return 1
}

// shape returns the number of values New allocates up front. It bounds
// static head sizes as well, since every static leaf is one value.
func (t *Type) shape() int {
	switch t.Kind {
	case KindFixedArray:
		return t.Size * t.Elem.shape()
	case KindTuple:
		n := 1
		for _, m := range t.Members {
			n += m.shape()
		}
		return n
	}
	return 1
}

// New returns a zero value of this type, shaped so it can be decoded into.
func (t *Type) New() Value {
	switch t.Kind {
	case KindBool:
		return new(Bool)
	case KindAddress:
		return new(Address)
	case KindUint:
		switch t.Size {
		case 8:
			return new(Uint8)
		case 16:
			return new(Uint16)
		case 32:
			return new(Uint32)
		case 64:
			return new(Uint64)
		}
		return &Uint{bits: t.Size}
	case KindInt:
		switch t.Size {
		case 8:
			return new(Int8)
		case 16:
			return new(Int16)
		case 32:
			return new(Int32)
		case 64:
			return new(Int64)
		}
		return &Int{bits: t.Size}
	case KindFixedBytes:
		return &FixedBytes{Size: t.Size}
	case KindBytes:
		return new(Bytes)
	case KindString:
		return new(String)
	case KindArray:
		return NewArray[Value](t.Elem.New)
	case KindFixedArray:
		return NewFixedArray[Value](t.Size, t.Elem.New)
	case KindTuple:
		return t.NewTuple()
	}
	panic(fmt.Sprintf("soltype: New on %v type", t.Kind))
}

// NewTuple returns a zero tuple of this type. It panics when t is not a
// tuple type.
func (t *Type) NewTuple() *Tuple {
	if t.Kind != KindTuple {
		panic(fmt.Sprintf("soltype: NewTuple on %s", t))
	}
	members := make([]Value, len(t.Members))
	for i, m := range t.Members {
		members[i] = m.New()
	}
	return NewTuple(members...)
}

type parser struct {
	in  string
	pos int
}

func (p *parser) eof() bool { return p.pos >= len(p.in) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.in[p.pos]
}

func (p *parser) skipSpace() {
	for !p.eof() && (p.in[p.pos] == ' ' || p.in[p.pos] == '\t' || p.in[p.pos] == '\n') {
		p.pos++
	}
}

func (p *parser) errorf(format string, args ...any) *abierrors.Error {
	return abierrors.InvalidType(p.in, fmt.Sprintf("at %d: ", p.pos)+fmt.Sprintf(format, args...))
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func (p *parser) ident() string {
	start := p.pos
	for !p.eof() && isIdentByte(p.in[p.pos]) {
		p.pos++
	}
	return p.in[start:p.pos]
}

func (p *parser) digits() string {
	start := p.pos
	for !p.eof() && p.in[p.pos] >= '0' && p.in[p.pos] <= '9' {
		p.pos++
	}
	return p.in[start:p.pos]
}

func (p *parser) parseType(depth int) (*Type, error) {
	if depth > MaxTypeDepth {
		return nil, p.errorf("nesting deeper than %d", MaxTypeDepth)
	}
	p.skipSpace()

	var t *Type
	if p.peek() == '(' {
		tt, err := p.parseTuple(depth)
		if err != nil {
			return nil, err
		}
		t = tt
	} else {
		start := p.pos
		name := p.ident()
		if name == "tuple" && p.peek() == '(' {
			tt, err := p.parseTuple(depth)
			if err != nil {
				return nil, err
			}
			t = tt
		} else {
			tt, err := p.elementary(name, start)
			if err != nil {
				return nil, err
			}
			t = tt
		}
	}

	for p.peek() == '[' {
		p.pos++
		depth++
		if depth > MaxTypeDepth {
			return nil, p.errorf("nesting deeper than %d", MaxTypeDepth)
		}
		n := p.digits()
		if p.peek() != ']' {
			return nil, p.errorf("expected ']'")
		}
		p.pos++
		if n == "" {
			t = &Type{Kind: KindArray, Elem: t}
			continue
		}
		size, err := strconv.Atoi(n)
		if err != nil || size < 1 || size > MaxTypeWords {
			return nil, p.errorf("fixed array length %s out of range", n)
		}
		t = &Type{Kind: KindFixedArray, Size: size, Elem: t}
		if t.shape() > MaxTypeWords {
			return nil, p.errorf("type exceeds %d values", MaxTypeWords)
		}
	}
	return t, nil
}

func (p *parser) elementary(name string, start int) (*Type, error) {
	switch name {
	case "":
		if p.eof() {
			return nil, p.errorf("unexpected end of input")
		}
		return nil, p.errorf("unexpected %q", p.in[p.pos])
	case "bool":
		return &Type{Kind: KindBool}, nil
	case "address":
		return &Type{Kind: KindAddress}, nil
	case "string":
		return &Type{Kind: KindString}, nil
	case "bytes":
		return &Type{Kind: KindBytes}, nil
	case "uint":
		return &Type{Kind: KindUint, Size: 256}, nil
	case "int":
		return &Type{Kind: KindInt, Size: 256}, nil
	case "function":
		return nil, abierrors.Unsupported(abierrors.PhaseParse, "function types")
	}

	var (
		k      Kind
		digits string
	)
	switch {
	case strings.HasPrefix(name, "uint"):
		k, digits = KindUint, name[4:]
	case strings.HasPrefix(name, "int"):
		k, digits = KindInt, name[3:]
	case strings.HasPrefix(name, "bytes"):
		k, digits = KindFixedBytes, name[5:]
	case strings.HasPrefix(name, "fixed"), strings.HasPrefix(name, "ufixed"):
		return nil, abierrors.Unsupported(abierrors.PhaseParse, "fixed point types")
	default:
		p.pos = start
		return nil, p.errorf("unknown type %q", name)
	}

	n, err := strconv.Atoi(digits)
	if err != nil || digits[0] == '0' {
		p.pos = start
		return nil, p.errorf("bad width in %q", name)
	}
	if k == KindFixedBytes {
		if n < 1 || n > 32 {
			p.pos = start
			return nil, p.errorf("bytes width %d out of range 1..32", n)
		}
	} else if n < 8 || n > 256 || n%8 != 0 {
		p.pos = start
		return nil, p.errorf("integer width %d must be a multiple of 8 in 8..256", n)
	}
	return &Type{Kind: k, Size: n}, nil
}

func (p *parser) parseTuple(depth int) (*Type, error) {
	params, err := p.parseParamList(depth + 1)
	if err != nil {
		return nil, err
	}
	t := &Type{Kind: KindTuple, Members: make([]*Type, len(params))}
	named := false
	for i, prm := range params {
		t.Members[i] = prm.Type
		named = named || prm.Name != ""
	}
	if named {
		t.Names = make([]string, len(params))
		for i, prm := range params {
			t.Names[i] = prm.Name
		}
	}
	if t.shape() > MaxTypeWords {
		return nil, p.errorf("type exceeds %d values", MaxTypeWords)
	}
	return t, nil
}

// parseParamList parses "(type [indexed] [name], ...)".
func (p *parser) parseParamList(depth int) ([]Param, error) {
	p.skipSpace()
	if p.peek() != '(' {
		return nil, p.errorf("expected '('")
	}
	p.pos++
	p.skipSpace()
	if p.peek() == ')' {
		p.pos++
		return nil, nil
	}

	var params []Param
	for {
		t, err := p.parseType(depth)
		if err != nil {
			return nil, err
		}
		prm := Param{Type: t}
		for {
			p.skipSpace()
			if !isIdentByte(p.peek()) {
				break
			}
			word := p.ident()
			switch {
			case word == "indexed":
				prm.Indexed = true
			case word == "memory" || word == "calldata" || word == "storage":
			case prm.Name == "":
				prm.Name = word
			default:
				return nil, p.errorf("unexpected %q after parameter %q", word, prm.Name)
			}
		}
		params = append(params, prm)

		switch p.peek() {
		case ',':
			p.pos++
		case ')':
			p.pos++
			return params, nil
		default:
			if p.eof() {
				return nil, p.errorf("unexpected end of input")
			}
			return nil, p.errorf("expected ',' or ')', got %q", p.in[p.pos])
		}
	}
}
