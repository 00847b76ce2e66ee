package call

import (
	"strings"

	abierrors "github.com/wippyai/abi-codec/errors"
	"github.com/wippyai/abi-codec/soltype"
)

// Words allowed between a function's parameter list and its return list.
var functionModifiers = map[string]bool{
	"returns":    true,
	"external":   true,
	"public":     true,
	"internal":   true,
	"private":    true,
	"view":       true,
	"pure":       true,
	"payable":    true,
	"nonpayable": true,
}

// splitSignature splits "keyword name(params) rest" into its parts. The
// keyword is optional.
func splitSignature(sig, keyword string) (name, params, rest string, err error) {
	s := strings.TrimSpace(sig)
	if after, ok := strings.CutPrefix(s, keyword+" "); ok {
		s = strings.TrimSpace(after)
	}

	open := strings.IndexByte(s, '(')
	if open < 0 {
		return "", "", "", abierrors.InvalidType(sig, "missing parameter list")
	}
	name = strings.TrimSpace(s[:open])
	if !isIdent(name) {
		return "", "", "", abierrors.InvalidType(sig, "invalid name "+quote(name))
	}

	end := closingParen(s, open)
	if end < 0 {
		return "", "", "", abierrors.InvalidType(sig, "unbalanced parentheses")
	}
	return name, s[open : end+1], strings.TrimSpace(s[end+1:]), nil
}

// closingParen returns the index of the parenthesis closing the one at open,
// or -1.
func closingParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func isIdent(s string) bool {
	if s == "" || s[0] >= '0' && s[0] <= '9' {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '_' && c != '$' && (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

func quote(s string) string {
	return "\"" + s + "\""
}

func paramTypes(params []soltype.Param) *soltype.Type {
	types := make([]*soltype.Type, len(params))
	for i, p := range params {
		types[i] = p.Type
	}
	return soltype.TupleOf(types...)
}
