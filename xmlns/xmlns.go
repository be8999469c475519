package xmlns

import (
	"strings"

	"github.com/beevik/etree"
)

const (
	AndroidURI    = "http://schemas.android.com/apk/res/android"
	AndroidPrefix = "android"

	XMLURI    = "http://www.w3.org/XML/1998/namespace"
	xmlPrefix = "xml"
	declSpace = "xmlns"
)

// Key is a namespace qualified name. Space holds the namespace URI, never a
// prefix.
type Key struct {
	Space string
	Local string
}

// AndroidName is the key attribute used to tell same-tag elements apart.
var AndroidName = Key{Space: AndroidURI, Local: "name"}

func (k Key) String() string {
	if k.Space == "" {
		return k.Local
	}
	return "{" + k.Space + "}" + k.Local
}

// Compare orders keys by namespace URI and then by local name.
func Compare(a, b Key) int {
	if c := strings.Compare(a.Space, b.Space); c != 0 {
		return c
	}
	return strings.Compare(a.Local, b.Local)
}

// IsDecl reports whether a is a namespace declaration (xmlns or xmlns:p).
func IsDecl(a *etree.Attr) bool {
	return a.Space == declSpace || (a.Space == "" && a.Key == declSpace)
}

// Resolve returns the namespace URI bound to prefix in scope at e. The empty
// prefix resolves the default namespace. Unbound prefixes resolve to "".
func Resolve(e *etree.Element, prefix string) string {
	if prefix == xmlPrefix {
		return XMLURI
	}
	for p := e; p != nil; p = p.Parent() {
		for i := range p.Attr {
			a := &p.Attr[i]
			if prefix == "" {
				if a.Space == "" && a.Key == declSpace {
					return a.Value
				}
				continue
			}
			if a.Space == declSpace && a.Key == prefix {
				return a.Value
			}
		}
	}
	return ""
}

// Bound reports whether prefix is declared in scope at e.
func Bound(e *etree.Element, prefix string) bool {
	if prefix == xmlPrefix {
		return true
	}
	for p := e; p != nil; p = p.Parent() {
		for i := range p.Attr {
			a := &p.Attr[i]
			if a.Space == declSpace && a.Key == prefix {
				return true
			}
		}
	}
	return false
}

// Scope returns every prefix binding in effect at e, the default namespace
// under the empty prefix. Inner declarations shadow outer ones.
func Scope(e *etree.Element) map[string]string {
	var chain []*etree.Element
	for p := e; p != nil; p = p.Parent() {
		chain = append(chain, p)
	}
	res := map[string]string{}
	for i := len(chain) - 1; i >= 0; i-- {
		for _, a := range chain[i].Attr {
			switch {
			case a.Space == declSpace:
				res[a.Key] = a.Value
			case a.Space == "" && a.Key == declSpace:
				res[""] = a.Value
			}
		}
	}
	return res
}

// ElementKey returns the qualified tag of e.
func ElementKey(e *etree.Element) Key {
	return Key{Space: Resolve(e, e.Space), Local: e.Tag}
}

// AttrKey returns the qualified name of attribute a of element e. Unprefixed
// attributes are in no namespace.
func AttrKey(e *etree.Element, a *etree.Attr) Key {
	if a.Space == "" {
		return Key{Local: a.Key}
	}
	return Key{Space: Resolve(e, a.Space), Local: a.Key}
}

// Lookup finds the attribute of e named by key, skipping namespace
// declarations.
func Lookup(e *etree.Element, key Key) (*etree.Attr, bool) {
	for i := range e.Attr {
		a := &e.Attr[i]
		if IsDecl(a) {
			continue
		}
		if AttrKey(e, a) == key {
			return a, true
		}
	}
	return nil, false
}

// Value returns the value of the attribute named by key and whether it is
// present.
func Value(e *etree.Element, key Key) (string, bool) {
	a, ok := Lookup(e, key)
	if !ok {
		return "", false
	}
	return a.Value, true
}

// Set sets the attribute named by key to value. An existing attribute keeps
// its prefix. A new attribute uses a prefix already bound to key.Space,
// declaring one on the document root if there is none.
func Set(e *etree.Element, key Key, value string) *etree.Attr {
	if a, ok := Lookup(e, key); ok {
		a.Value = value
		return a
	}
	if key.Space == "" {
		return e.CreateAttr(key.Local, value)
	}
	prefix := Declare(e, key.Space, "")
	return e.CreateAttr(prefix+":"+key.Local, value)
}
