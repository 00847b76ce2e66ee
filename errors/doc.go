// Package errors provides structured error types for the abi-codec module.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: member path, Go/ABI type names, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindOverrun).
//		Path("1", "0").
//		SolType("bytes").
//		Detail("length %d exceeds remaining %d bytes", n, remaining).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.BufferTooShort(32, 7)
//	err := errors.InvalidOffset(0x21, "not word aligned")
//
// Decoder failures match the package sentinels with errors.Is:
//
//	if errors.Is(err, abierrors.ErrOverrun) { ... }
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
