// Package call frames encoded parameters as function calls, return data and
// event logs.
//
// A function is identified on the wire by its selector, the first four bytes
// of the Keccak-256 hash of its canonical signature:
//
//	transfer := call.MustParseFunction("transfer(address to, uint256 amount) returns (bool)")
//	transfer.Signature() // "transfer(address,uint256)"
//	transfer.Selector()  // 0xa9059cbb
//
// Call data is the selector followed by the arguments encoded as a flat
// parameter list. DecodeCall checks the selector before decoding anything.
//
// Events are identified by the full hash of their signature (topic 0).
// Indexed parameters travel as topics, the rest as ABI-encoded log data.
package call
