package call

import (
	"strings"

	abicodec "github.com/wippyai/abi-codec"
	"github.com/wippyai/abi-codec/coder"
	abierrors "github.com/wippyai/abi-codec/errors"
	"github.com/wippyai/abi-codec/soltype"
)

// Function describes a callable contract function.
type Function struct {
	Name    string
	Inputs  []soltype.Param
	Outputs []soltype.Param

	args      *soltype.Type
	returns   *soltype.Type
	signature string
	selector  abicodec.Selector
}

// NewFunction returns the function name(inputs) returning outputs.
func NewFunction(name string, inputs, outputs []soltype.Param) *Function {
	f := &Function{
		Name:    name,
		Inputs:  inputs,
		Outputs: outputs,
		args:    paramTypes(inputs),
		returns: paramTypes(outputs),
	}
	f.signature = name + f.args.String()
	f.selector = Selector(f.signature)
	return f
}

// ParseFunction parses a human-readable function signature. All of these
// are accepted:
//
//	balanceOf(address)
//	balanceOf(address owner)(uint256)
//	function balanceOf(address owner) external view returns (uint256)
func ParseFunction(sig string) (*Function, error) {
	name, in, rest, err := splitSignature(sig, "function")
	if err != nil {
		return nil, err
	}
	inputs, err := soltype.ParseParams(in)
	if err != nil {
		return nil, abierrors.ParseFailed("function "+quote(sig), err)
	}

	mods, out := rest, ""
	if i := strings.IndexByte(rest, '('); i >= 0 {
		mods, out = rest[:i], rest[i:]
	}
	for _, m := range strings.Fields(mods) {
		if !functionModifiers[m] {
			return nil, abierrors.InvalidType(sig, "unexpected "+quote(m))
		}
	}

	var outputs []soltype.Param
	if out != "" {
		outputs, err = soltype.ParseParams(out)
		if err != nil {
			return nil, abierrors.ParseFailed("function "+quote(sig)+" returns", err)
		}
	}
	return NewFunction(name, inputs, outputs), nil
}

// MustParseFunction is like ParseFunction but panics on error.
func MustParseFunction(sig string) *Function {
	f, err := ParseFunction(sig)
	if err != nil {
		panic(err)
	}
	return f
}

// Signature returns the canonical signature, e.g. "transfer(address,uint256)".
func (f *Function) Signature() string { return f.signature }

// Selector returns the 4-byte function identifier.
func (f *Function) Selector() abicodec.Selector { return f.selector }

func (f *Function) String() string {
	if len(f.Outputs) == 0 {
		return f.signature
	}
	return f.signature + " returns " + f.returns.String()
}

// Args returns a zero argument tuple to fill before EncodeCall or to decode
// into with DecodeCall.
func (f *Function) Args() *soltype.Tuple { return f.args.NewTuple() }

// Returns returns a zero tuple of the return values.
func (f *Function) Returns() *soltype.Tuple { return f.returns.NewTuple() }

// EncodeCall returns the selector followed by the encoded arguments.
func (f *Function) EncodeCall(args *soltype.Tuple) ([]byte, error) {
	if err := checkTuple(f.args, args); err != nil {
		return nil, err
	}
	params := coder.EncodeParams(args)
	out := make([]byte, 0, abicodec.SelectorSize+len(params))
	out = append(out, f.selector[:]...)
	return append(out, params...), nil
}

// DecodeCall checks the selector of data and decodes the arguments into dst.
func (f *Function) DecodeCall(data []byte, dst *soltype.Tuple) error {
	return f.DecodeCallWithConfig(data, dst, nil)
}

// DecodeCallWithConfig is DecodeCall with explicit decoder limits.
func (f *Function) DecodeCallWithConfig(data []byte, dst *soltype.Tuple, cfg *coder.Config) error {
	sel, params, ok := SplitCallData(data)
	if !ok {
		return abierrors.BufferTooShort(abicodec.SelectorSize, len(data))
	}
	if sel != f.selector {
		return abierrors.SelectorMismatch(f.selector, sel)
	}
	if err := checkTuple(f.args, dst); err != nil {
		return err
	}
	return coder.DecodeParamsWithConfig(params, dst, cfg)
}

// EncodeReturn encodes return values as a flat parameter list.
func (f *Function) EncodeReturn(vals *soltype.Tuple) ([]byte, error) {
	if err := checkTuple(f.returns, vals); err != nil {
		return nil, err
	}
	return coder.EncodeParams(vals), nil
}

// DecodeReturn decodes return data into dst.
func (f *Function) DecodeReturn(data []byte, dst *soltype.Tuple) error {
	return f.DecodeReturnWithConfig(data, dst, nil)
}

// DecodeReturnWithConfig is DecodeReturn with explicit decoder limits.
func (f *Function) DecodeReturnWithConfig(data []byte, dst *soltype.Tuple, cfg *coder.Config) error {
	if err := checkTuple(f.returns, dst); err != nil {
		return err
	}
	return coder.DecodeParamsWithConfig(data, dst, cfg)
}

func checkTuple(want *soltype.Type, got *soltype.Tuple) error {
	if got == nil {
		return abierrors.InvalidInput(abierrors.PhaseCall, "nil tuple for "+want.String())
	}
	if name := got.TypeName(); name != want.String() {
		return abierrors.New(abierrors.PhaseCall, abierrors.KindTypeMismatch).
			GoType(name).
			SolType(want.String()).
			Detail("tuple does not match parameter list").
			Build()
	}
	return nil
}
