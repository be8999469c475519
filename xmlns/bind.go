package xmlns

import (
	"fmt"

	"github.com/beevik/etree"
)

// BindAndroid gives doc the canonical Android binding: every prefix bound to
// AndroidURI is renamed to "android", the now redundant declarations are
// dropped and xmlns:android is declared first on the root element.
func BindAndroid(doc *etree.Document) error {
	root := doc.Root()
	if root == nil {
		return nil
	}
	var err error
	walk(root, func(e *etree.Element) {
		for i := range e.Attr {
			a := &e.Attr[i]
			if err == nil && a.Space == declSpace && a.Key == AndroidPrefix && a.Value != AndroidURI {
				err = fmt.Errorf("%w: %s:%s is bound to %q on <%s>", ErrPrefixConflict, declSpace, AndroidPrefix, a.Value, e.FullTag())
			}
		}
	})
	if err != nil {
		return err
	}

	walk(root, func(e *etree.Element) {
		if e.Space != "" && e.Space != AndroidPrefix && Resolve(e, e.Space) == AndroidURI {
			e.Space = AndroidPrefix
		}
		for i := range e.Attr {
			a := &e.Attr[i]
			if a.Space == "" || IsDecl(a) || a.Space == AndroidPrefix {
				continue
			}
			if Resolve(e, a.Space) == AndroidURI {
				a.Space = AndroidPrefix
			}
		}
	})

	declared := false
	walk(root, func(e *etree.Element) {
		keep := make([]etree.Attr, 0, len(e.Attr))
		for _, a := range e.Attr {
			if a.Space == declSpace && a.Value == AndroidURI {
				if e != root || a.Key != AndroidPrefix || declared {
					continue
				}
				declared = true
			}
			keep = append(keep, a)
		}
		e.Attr = keep
	})
	if declared {
		return nil
	}
	root.CreateAttr(declSpace+":"+AndroidPrefix, AndroidURI)
	n := len(root.Attr)
	decl := root.Attr[n-1]
	copy(root.Attr[1:], root.Attr[:n-1])
	root.Attr[0] = decl
	return nil
}

func walk(e *etree.Element, f func(*etree.Element)) {
	f(e)
	for _, c := range e.ChildElements() {
		walk(c, f)
	}
}
