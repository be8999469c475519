package encode

import (
	"bytes"
	"io"

	"github.com/beevik/etree"
	"github.com/google/renameio/v2"
	"github.com/signadot/manifest-merge/debug"
	"github.com/signadot/manifest-merge/parse"
	"github.com/signadot/manifest-merge/xmlns"
)

// Declaration is the XML declaration written ahead of every document.
const Declaration = `version="1.0" encoding="utf-8"`

type EncState struct {
	indent int
	decl   bool
	colors *Colors
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{indent: -1, decl: true}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

// Encode writes doc to w.
func Encode(doc *etree.Document, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	out, err := es.prepare(doc)
	if err != nil {
		return err
	}
	if es.colors == nil {
		_, err = out.WriteTo(w)
		return err
	}
	buf := bytes.NewBuffer(nil)
	for _, t := range out.Child {
		es.writeToken(buf, t, &out.WriteSettings)
	}
	_, err = w.Write(buf.Bytes())
	return err
}

// WriteFile encodes doc in memory and then atomically replaces the file at
// path with the result, keeping the permissions of an existing file.
// Colouring options are ignored.
func WriteFile(path string, doc *etree.Document, opts ...EncodeOption) error {
	buf := bytes.NewBuffer(nil)
	opts = append(opts, EncodeColors(nil))
	if err := Encode(doc, buf, opts...); err != nil {
		return err
	}
	if debug.Write() {
		debug.Logf("writing %d bytes to %s\n", buf.Len(), path)
	}
	return renameio.WriteFile(path, buf.Bytes(), 0644)
}

func (es *EncState) prepare(doc *etree.Document) (*etree.Document, error) {
	out := parse.Clone(doc)
	if err := xmlns.BindAndroid(out); err != nil {
		return nil, err
	}
	if es.indent >= 0 {
		out.Indent(es.indent)
	}
	setDeclaration(out, es.decl)
	endWithNewline(out)
	return out, nil
}

// setDeclaration drops any XML declaration doc has and, if decl is set,
// writes the canonical one in its place.
func setDeclaration(doc *etree.Document, decl bool) {
	for i := 0; i < len(doc.Child); {
		if p, ok := doc.Child[i].(*etree.ProcInst); ok && p.Target == "xml" {
			doc.RemoveChildAt(i)
			continue
		}
		i++
	}
	if !decl {
		return
	}
	doc.InsertChildAt(0, etree.NewProcInst("xml", Declaration))
	if len(doc.Child) > 1 {
		if cd, ok := doc.Child[1].(*etree.CharData); ok && cd.IsWhitespace() {
			return
		}
	}
	doc.InsertChildAt(1, etree.NewText("\n"))
}

// endWithNewline replaces whitespace after the last token of doc with a
// single newline.
func endWithNewline(doc *etree.Document) {
	for n := len(doc.Child); n > 0; n = len(doc.Child) {
		cd, ok := doc.Child[n-1].(*etree.CharData)
		if !ok || !cd.IsWhitespace() {
			break
		}
		doc.RemoveChildAt(n - 1)
	}
	nl := etree.NewText("")
	nl.SetData("\n")
	doc.AddChild(nl)
}
