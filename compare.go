package manifest

import (
	"cmp"
	"slices"
	"strings"

	"github.com/beevik/etree"
	"github.com/signadot/manifest-merge/xmlns"
)

// Compare returns an integer comparing two elements structurally.
// The result will be 0 if a and b are equal, -1 if a < b, and +1 if a > b.
//
// Elements are ordered by qualified tag, then by their attributes sorted by
// qualified name, then by text, then by child elements in document order.
// Namespace prefixes, namespace declarations, comments and whitespace
// around text do not take part.
func Compare(a, b *etree.Element) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := xmlns.Compare(xmlns.ElementKey(a), xmlns.ElementKey(b)); c != 0 {
		return c
	}
	if c := compareAttrs(attrsOf(a), attrsOf(b)); c != 0 {
		return c
	}
	if c := strings.Compare(textOf(a), textOf(b)); c != 0 {
		return c
	}
	return compareChildren(a.ChildElements(), b.ChildElements())
}

// Equal reports whether a and b are structurally equal.
func Equal(a, b *etree.Element) bool {
	return Compare(a, b) == 0
}

type attr struct {
	key   xmlns.Key
	value string
}

func compareAttr(a, b attr) int {
	if c := xmlns.Compare(a.key, b.key); c != 0 {
		return c
	}
	return strings.Compare(a.value, b.value)
}

func attrsOf(e *etree.Element) []attr {
	res := make([]attr, 0, len(e.Attr))
	for i := range e.Attr {
		a := &e.Attr[i]
		if xmlns.IsDecl(a) {
			continue
		}
		res = append(res, attr{key: xmlns.AttrKey(e, a), value: a.Value})
	}
	slices.SortFunc(res, compareAttr)
	return res
}

func compareAttrs(a, b []attr) int {
	for i := 0; i < min(len(a), len(b)); i++ {
		if c := compareAttr(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareChildren(a, b []*etree.Element) int {
	for i := 0; i < min(len(a), len(b)); i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func textOf(e *etree.Element) string {
	return strings.TrimSpace(e.Text())
}
