// Package abicodec provides a Go implementation of the contract ABI wire format
// used to pass function-call arguments and event data to a VM-based ledger.
//
// The format is word oriented: every value occupies whole 32-byte words, and
// values whose size depends on their contents are reached through offsets.
// Every conformant encoder produces identical bytes, so the codec is strict
// in both directions: encoders always emit canonical padding and decoders
// reject anything else.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	abicodec/            Root package with the shared Word and Selector types
//	├── coder/           Encoder, Decoder and the top-level entry points
//	├── soltype/         Concrete value kinds and type-string descriptors
//	├── call/            Function selectors, call data and event framing
//	├── errors/          Structured error types for debugging
//	└── cmd/abidump/     Inspect and decode call data from the command line
//
// # Quick Start
//
// Encode a function call and decode it back:
//
//	transfer := call.MustParseFunction("transfer(address,uint256)")
//
//	to := soltype.Address{0x11}
//	amount := soltype.NewUint256(1000)
//	data, err := transfer.EncodeCall(soltype.NewTuple(&to, amount))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	args := transfer.Args()
//	if err := transfer.DecodeCall(data, args); err != nil {
//	    log.Fatal(err)
//	}
//
// # Value Model
//
// Every value kind implements coder.Token:
//
//   - Atomic: bool, uintN, intN, address, bytesN (one word each)
//   - Packed: bytes, string (length word plus padded data)
//   - Sequences: T[] (count word plus elements), T[k] and tuples
//
// A token is "dynamic" when its encoded size depends on the value. Dynamic
// members of a sequence are stored in the tail and referenced from the head
// by a byte offset relative to the start of the enclosing sequence.
//
// # Top-Level Wrapping
//
// Function parameters are a flattened tuple and are never wrapped, while a
// dynamic tuple passed as a single value is preceded by one offset word:
//
//	coder.EncodeParams(tuple)  // head of the tuple directly
//	coder.EncodeSingle(tuple)  // 0x20, then the tuple
//
// # Thread Safety
//
// Encoder and Decoder instances belong to the call that created them. Package
// level functions are safe for concurrent use.
//
// # Untrusted Input
//
// Decoders validate every offset and length against the bytes actually present
// before allocating, and charge all reads against a budget proportional to the
// input size, so crafted headers cannot force large allocations.
package abicodec
