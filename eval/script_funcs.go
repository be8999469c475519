package eval

import (
	"os"
	"strings"

	"github.com/beevik/etree"
	"github.com/expr-lang/expr"
	"github.com/signadot/manifest-merge/xmlns"
)

// exprOpts gives the functions available to placeholders. whereami and
// getattr need the element holding the attribute being expanded and are
// left out when e is nil.
func exprOpts(e *etree.Element) []expr.Option {
	res := []expr.Option{
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
	if e == nil {
		return res
	}
	return append(res,
		expr.Function("whereami", func(params ...any) (any, error) {
			return e.GetPath(), nil
		},
			new(func() string)),
		expr.Function("getattr", func(params ...any) (any, error) {
			v, _ := xmlns.Value(e, attrKey(e, params[0].(string)))
			return v, nil
		},
			new(func(string) string)))
}

// attrKey resolves a prefix:local attribute name in scope at e.
func attrKey(e *etree.Element, name string) xmlns.Key {
	prefix, local, ok := strings.Cut(name, ":")
	if !ok {
		return xmlns.Key{Local: name}
	}
	return xmlns.Key{Space: xmlns.Resolve(e, prefix), Local: local}
}
