package eval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/signadot/manifest-merge/debug"
	"github.com/signadot/manifest-merge/xmlns"
)

// Eval compiles and runs a single expression. Names missing from env are
// an error.
func Eval(input string, env Env) (any, error) {
	return evalAt(input, env, nil)
}

func evalAt(input string, env Env, e *etree.Element) (any, error) {
	opts := append(exprOpts(e), expr.Env(map[string]any(env)))
	program, err := expr.Compile(input, opts...)
	if err != nil {
		return nil, err
	}
	return vm.Run(program, map[string]any(env))
}

// ExpandString replaces every ${expr} in v with the value of expr.
func ExpandString(v string, env Env) (string, error) {
	return expandAt(v, env, nil)
}

func expandAt(v string, env Env, e *etree.Element) (string, error) {
	if !strings.Contains(v, "${") {
		return v, nil
	}
	var (
		outBuf    []byte
		keyBuf    []byte
		exprStart = -1
		n         = len(v)
	)
	for i := 0; i < n; i++ {
		c := v[i]
		if exprStart == -1 {
			if c == '$' && i+1 < n && v[i+1] == '{' {
				exprStart = i
				keyBuf = keyBuf[:0]
				i++
				continue
			}
			outBuf = append(outBuf, c)
			continue
		}
		switch c {
		case '\\':
			if i+1 < n {
				i++
				keyBuf = append(keyBuf, v[i])
				continue
			}
			keyBuf = append(keyBuf, c)
		case '}':
			key := strings.TrimSpace(string(keyBuf))
			x, err := evalAt(key, env, e)
			if err != nil {
				return "", fmt.Errorf("error evaluating %q: %w", key, err)
			}
			if debug.Eval() {
				debug.Logf("eval %q gave %#v\n", key, x)
			}
			s, err := anyToString(x)
			if err != nil {
				return "", fmt.Errorf("placeholder %q: %w", key, err)
			}
			outBuf = append(outBuf, s...)
			exprStart = -1
		default:
			keyBuf = append(keyBuf, c)
		}
	}
	if exprStart != -1 {
		outBuf = append(outBuf, v[exprStart:]...)
	}
	return string(outBuf), nil
}

// ExpandDoc expands placeholders in the attribute values of every element
// of doc, namespace declarations aside. It returns the number of attributes
// whose value changed.
func ExpandDoc(doc *etree.Document, env Env) (int, error) {
	root := doc.Root()
	if root == nil {
		return 0, nil
	}
	return expandElement(root, env)
}

func expandElement(e *etree.Element, env Env) (int, error) {
	n := 0
	for i := range e.Attr {
		a := &e.Attr[i]
		if xmlns.IsDecl(a) {
			continue
		}
		v, err := expandAt(a.Value, env, e)
		if err != nil {
			return n, fmt.Errorf("<%s %s>: %w", e.FullTag(), a.FullKey(), err)
		}
		if v != a.Value {
			a.Value = v
			n++
		}
	}
	for _, c := range e.ChildElements() {
		m, err := expandElement(c, env)
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

func anyToString(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case uint64:
		return strconv.FormatUint(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	case fmt.Stringer:
		return x.String(), nil
	}
	return "", fmt.Errorf("cannot use %T in an attribute value", v)
}
