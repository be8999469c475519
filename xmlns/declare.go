package xmlns

import (
	"fmt"
	"maps"
	"slices"

	"github.com/beevik/etree"
	"github.com/signadot/manifest-merge/debug"
)

// Root returns the outermost element above e, or e itself when it is
// detached.
func Root(e *etree.Element) *etree.Element {
	top := e
	for p := e.Parent(); p != nil && p.Tag != ""; p = p.Parent() {
		top = p
	}
	return top
}

// Declare returns a prefix bound to uri in scope at e. The hint is preferred
// when it is already bound to uri, or when a new binding is needed and the
// hint is free. A new binding is declared on the root of e.
func Declare(e *etree.Element, uri, hint string) string {
	if uri == XMLURI {
		return xmlPrefix
	}
	if hint == "" && uri == AndroidURI {
		hint = AndroidPrefix
	}
	if hint != "" && Resolve(e, hint) == uri {
		return hint
	}
	scope := Scope(e)
	for _, p := range slices.Sorted(maps.Keys(scope)) {
		if p != "" && scope[p] == uri {
			return p
		}
	}
	prefix := hint
	if prefix == "" || prefix == xmlPrefix || prefix == declSpace || Bound(e, prefix) {
		for i := 0; ; i++ {
			prefix = fmt.Sprintf("ns%d", i)
			if !Bound(e, prefix) {
				break
			}
		}
	}
	top := Root(e)
	top.CreateAttr(declSpace+":"+prefix, uri)
	if debug.NS() {
		debug.Logf("declared xmlns:%s=%q on <%s>\n", prefix, uri, top.FullTag())
	}
	return prefix
}

// Rebind rewrites the prefixes of the detached subtree elem so that, once
// attached under dst, its names resolve to the URIs they had under scope.
// Bindings missing from dst are declared on its root. Prefixes declared
// inside elem are left alone.
func Rebind(dst, elem *etree.Element, scope map[string]string) {
	r := &rebinder{
		dst:     dst,
		scope:   scope,
		renames: map[string]string{},
	}
	r.rebind(elem, nil)
	if def := scope[""]; def != Resolve(dst, "") && !declaresDefault(elem) {
		elem.CreateAttr(declSpace, def)
	}
}

type rebinder struct {
	dst     *etree.Element
	scope   map[string]string
	renames map[string]string
}

func (r *rebinder) rebind(e *etree.Element, local map[string]bool) {
	cloned := false
	for i := range e.Attr {
		a := &e.Attr[i]
		if a.Space != declSpace {
			continue
		}
		if !cloned {
			local = maps.Clone(local)
			if local == nil {
				local = map[string]bool{}
			}
			cloned = true
		}
		local[a.Key] = true
	}
	e.Space = r.rename(e.Space, local)
	for i := range e.Attr {
		a := &e.Attr[i]
		if a.Space == "" || IsDecl(a) {
			continue
		}
		a.Space = r.rename(a.Space, local)
	}
	for _, c := range e.ChildElements() {
		r.rebind(c, local)
	}
}

func (r *rebinder) rename(prefix string, local map[string]bool) string {
	if prefix == "" || prefix == xmlPrefix || local[prefix] {
		return prefix
	}
	if to, ok := r.renames[prefix]; ok {
		return to
	}
	uri, ok := r.scope[prefix]
	if !ok {
		return prefix
	}
	to := Declare(r.dst, uri, prefix)
	if debug.NS() && to != prefix {
		debug.Logf("rebound prefix %s -> %s (%s)\n", prefix, to, uri)
	}
	r.renames[prefix] = to
	return to
}

func declaresDefault(e *etree.Element) bool {
	for i := range e.Attr {
		if a := &e.Attr[i]; a.Space == "" && a.Key == declSpace {
			return true
		}
	}
	return false
}
