package main

import (
	"fmt"
	"strings"

	"github.com/kr/pretty"

	"github.com/wippyai/abi-codec/call"
	"github.com/wippyai/abi-codec/coder"
	"github.com/wippyai/abi-codec/soltype"
)

// decodeRequest describes how to interpret the input.
type decodeRequest struct {
	sig     string
	params  bool
	verbose bool
	cfg     *coder.Config
}

type decodedArg struct {
	name  string
	typ   string
	value soltype.Value
}

// decodeInput decodes cd with a function signature ("f(uint256,bytes)") or
// a bare type list ("(uint256,bytes)"). A function signature checks the
// selector when the input carries one.
func decodeInput(cd callData, req decodeRequest) ([]decodedArg, error) {
	sig := strings.TrimSpace(req.sig)

	if strings.HasPrefix(sig, "(") {
		params, err := soltype.ParseParams(sig)
		if err != nil {
			return nil, err
		}
		types := make([]*soltype.Type, len(params))
		for i, p := range params {
			types[i] = p.Type
		}
		tuple := soltype.TupleOf(types...).NewTuple()
		if req.params {
			err = coder.DecodeParamsWithConfig(cd.args, tuple, req.cfg)
		} else {
			err = coder.DecodeSingleWithConfig(cd.args, tuple, req.cfg)
		}
		if err != nil {
			return nil, err
		}
		return collect(params, tuple), nil
	}

	fn, err := call.ParseFunction(sig)
	if err != nil {
		return nil, err
	}
	args := fn.Args()
	if cd.hasSelector {
		data := make([]byte, 0, len(cd.selector)+len(cd.args))
		data = append(append(data, cd.selector[:]...), cd.args...)
		err = fn.DecodeCallWithConfig(data, args, req.cfg)
	} else {
		err = coder.DecodeParamsWithConfig(cd.args, args, req.cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn.Signature(), err)
	}
	return collect(fn.Inputs, args), nil
}

func collect(params []soltype.Param, tuple *soltype.Tuple) []decodedArg {
	out := make([]decodedArg, tuple.Len())
	for i := range out {
		name := fmt.Sprintf("arg%d", i)
		if params[i].Name != "" {
			name = params[i].Name
		}
		out[i] = decodedArg{name: name, typ: params[i].Type.String(), value: tuple.At(i)}
	}
	return out
}

func formatArgs(args []decodedArg, verbose bool, st styles) string {
	var b strings.Builder
	for i, a := range args {
		fmt.Fprintf(&b, "[%d] %s %s = %s\n", i, st.label.Render(a.name), st.note.Render(a.typ), st.value.Render(a.value.String()))
		if verbose {
			fmt.Fprintf(&b, "    %# v\n", pretty.Formatter(a.value))
		}
	}
	return b.String()
}
