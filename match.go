package manifest

import (
	"github.com/beevik/etree"
	"github.com/signadot/manifest-merge/debug"
	"github.com/signadot/manifest-merge/xmlns"
)

// FindTarget returns the first child element of root that p merges into,
// or nil.
//
// A candidate must have the same qualified tag as p. If p carries a
// non-empty key attribute the candidate must carry the same value. If p
// carries no key attribute, or an empty one, the candidate must not carry
// the key attribute at all.
func FindTarget(root, p *etree.Element, key xmlns.Key) *etree.Element {
	tag := xmlns.ElementKey(p)
	want, _ := xmlns.Value(p, key)
	for _, c := range root.ChildElements() {
		if xmlns.ElementKey(c) != tag {
			continue
		}
		got, has := xmlns.Value(c, key)
		var ok bool
		if want != "" {
			ok = has && got == want
		} else {
			ok = !has
		}
		if debug.Match() {
			debug.Logf("match <%s> %s=%q against %q (present %t): %t\n", c.FullTag(), key.Local, want, got, has, ok)
		}
		if ok {
			return c
		}
	}
	return nil
}

func findDuplicate(root, p *etree.Element) *etree.Element {
	tag := xmlns.ElementKey(p)
	for _, c := range root.ChildElements() {
		if xmlns.ElementKey(c) == tag && Equal(c, p) {
			return c
		}
	}
	return nil
}
