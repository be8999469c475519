package parse

import "github.com/beevik/etree"

// Clone returns a deep copy of doc. Unlike etree's Document.Copy, the
// top level tokens of the copy are parented to the copy itself, so they can
// be removed and replaced through it.
func Clone(doc *etree.Document) *etree.Document {
	res := etree.NewDocument()
	res.ReadSettings = doc.ReadSettings
	res.WriteSettings = doc.WriteSettings
	for _, t := range doc.Child {
		switch x := t.(type) {
		case *etree.Element:
			res.AddChild(x.Copy())
		case *etree.CharData:
			if x.IsCData() {
				res.AddChild(etree.NewCData(x.Data))
			} else {
				// SetData recomputes the whitespace flag NewText leaves unset.
				cd := etree.NewText("")
				cd.SetData(x.Data)
				res.AddChild(cd)
			}
		case *etree.Comment:
			res.AddChild(etree.NewComment(x.Data))
		case *etree.Directive:
			res.AddChild(etree.NewDirective(x.Data))
		case *etree.ProcInst:
			res.AddChild(etree.NewProcInst(x.Target, x.Inst))
		}
	}
	return res
}
