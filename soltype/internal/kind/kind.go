package kind

type Kind uint8

const (
	Invalid Kind = iota
	Bool
	Uint
	Int
	Address
	FixedBytes
	Bytes
	String
	Array
	FixedArray
	Tuple
)

var kindNames = [...]string{
	Invalid:    "invalid",
	Bool:       "bool",
	Uint:       "uint",
	Int:        "int",
	Address:    "address",
	FixedBytes: "fixed_bytes",
	Bytes:      "bytes",
	String:     "string",
	Array:      "array",
	FixedArray: "fixed_array",
	Tuple:      "tuple",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsAtomic reports whether values of the kind occupy exactly one word.
func (k Kind) IsAtomic() bool {
	return k >= Bool && k <= FixedBytes
}

// IsPacked reports whether the kind is a length-prefixed byte string.
func (k Kind) IsPacked() bool {
	return k == Bytes || k == String
}

// IsSequence reports whether the kind holds ordered members.
func (k Kind) IsSequence() bool {
	return k >= Array && k <= Tuple
}

// AlwaysDynamic reports whether every value of the kind is dynamic
// regardless of its members.
func (k Kind) AlwaysDynamic() bool {
	return k == Bytes || k == String || k == Array
}
