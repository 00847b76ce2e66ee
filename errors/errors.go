package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode   Phase = "encode"   // Go to wire
	PhaseDecode   Phase = "decode"   // wire to Go
	PhaseValidate Phase = "validate" // data validation
	PhaseParse    Phase = "parse"    // type and signature strings
	PhaseCall     Phase = "call"     // call data and event framing
)

// Kind categorizes the error
type Kind string

const (
	KindBufferTooShort   Kind = "buffer_too_short"
	KindInvalidOffset    Kind = "invalid_offset"
	KindOverrun          Kind = "overrun"
	KindInvalidEncoding  Kind = "invalid_encoding"
	KindTypeMismatch     Kind = "type_mismatch"
	KindUnsupported      Kind = "unsupported"
	KindInvalidInput     Kind = "invalid_input"
	KindSelectorMismatch Kind = "selector_mismatch"
	KindInvalidType      Kind = "invalid_type"
)

// Sentinels for errors.Is. Matching compares Phase and Kind only.
var (
	ErrBufferTooShort  = &Error{Phase: PhaseDecode, Kind: KindBufferTooShort}
	ErrInvalidOffset   = &Error{Phase: PhaseDecode, Kind: KindInvalidOffset}
	ErrOverrun         = &Error{Phase: PhaseDecode, Kind: KindOverrun}
	ErrInvalidEncoding = &Error{Phase: PhaseDecode, Kind: KindInvalidEncoding}
)

// Error is the structured error type used throughout the module
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	GoType  string
	SolType string
	Detail  string
	Path    []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.GoType != "" || e.SolType != "" {
		b.WriteString(": ")
		if e.GoType != "" && e.SolType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
			b.WriteString(", ABI type ")
			b.WriteString(e.SolType)
		} else if e.GoType != "" {
			b.WriteString("Go type ")
			b.WriteString(e.GoType)
		} else {
			b.WriteString("ABI type ")
			b.WriteString(e.SolType)
		}
	}

	if e.Detail != "" {
		if e.GoType != "" || e.SolType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// GoType sets the Go type name
func (b *Builder) GoType(t string) *Builder {
	b.err.GoType = t
	return b
}

// SolType sets the ABI type name
func (b *Builder) SolType(t string) *Builder {
	b.err.SolType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// PrependPath adds elem in front of the path of err when err is an *Error.
// Other errors are returned unchanged.
func PrependPath(err error, elem string) error {
	e, ok := err.(*Error)
	if !ok {
		return err
	}
	e.Path = append([]string{elem}, e.Path...)
	return e
}

// Decoder errors

// BufferTooShort creates an error for a fixed-size read past the end of input
func BufferTooShort(need, have int) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindBufferTooShort,
		Detail: fmt.Sprintf("need %d bytes, have %d", need, have),
		Value:  need,
	}
}

// InvalidOffset creates an error for a bad indirection pointer
func InvalidOffset(offset uint64, detail string) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidOffset,
		Detail: fmt.Sprintf("offset %#x: %s", offset, detail),
		Value:  offset,
	}
}

// Overrun creates an error for a declared size that exceeds the input
func Overrun(detail string, args ...any) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindOverrun,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// InvalidEncoding creates an error for non-canonical input
func InvalidEncoding(detail string, args ...any) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidEncoding,
		Detail: fmt.Sprintf(detail, args...),
	}
}

// InvalidBool creates an error for a bool word other than 0 or 1
func InvalidBool(word fmt.Stringer) *Error {
	return &Error{
		Phase:   PhaseDecode,
		Kind:    KindInvalidEncoding,
		SolType: "bool",
		Detail:  fmt.Sprintf("invalid bool word %s", word),
		Value:   word,
	}
}

// NonCanonicalPadding creates an error for padding bytes that an encoder
// would never emit
func NonCanonicalPadding(solType string, word fmt.Stringer) *Error {
	return &Error{
		Phase:   PhaseDecode,
		Kind:    KindInvalidEncoding,
		SolType: solType,
		Detail:  fmt.Sprintf("non-canonical padding in word %s", word),
		Value:   word,
	}
}

// InvalidUTF8 creates an invalid UTF-8 error
func InvalidUTF8(data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:   PhaseDecode,
		Kind:    KindInvalidEncoding,
		SolType: "string",
		Detail:  fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// Other phases

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, goType, solType string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindTypeMismatch,
		Path:    path,
		GoType:  goType,
		SolType: solType,
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// SelectorMismatch creates an error for call data addressed to another function
func SelectorMismatch(want, got fmt.Stringer) *Error {
	return &Error{
		Phase:  PhaseCall,
		Kind:   KindSelectorMismatch,
		Detail: fmt.Sprintf("selector %s, want %s", got, want),
		Value:  got,
	}
}

// InvalidType creates an error for a malformed type or signature string
func InvalidType(input string, detail string) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidType,
		Detail: fmt.Sprintf("%q: %s", input, detail),
		Value:  input,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// ParseFailed creates a parsing error
func ParseFailed(what string, cause error) *Error {
	return &Error{
		Phase:  PhaseParse,
		Kind:   KindInvalidType,
		Detail: fmt.Sprintf("parse %s", what),
		Cause:  cause,
	}
}
