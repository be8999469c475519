package parse

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beevik/etree"
	"github.com/signadot/manifest-merge/xmlns"
)

// Parse parses data into a document.
func Parse(data []byte, opts ...ParseOption) (*etree.Document, error) {
	o := &parseOpts{}
	for _, f := range opts {
		f(o)
	}
	doc := etree.NewDocument()
	doc.ReadSettings = o.readSettings()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, newParseError(o.filename, locate(data, o, err))
	}
	root := doc.Root()
	if root == nil {
		return nil, &ParseError{Filename: o.filename, Err: errNoRoot}
	}
	if err := checkTopLevel(doc); err != nil {
		return nil, &ParseError{Filename: o.filename, Err: err}
	}
	if err := checkPrefixes(root); err != nil {
		return nil, &ParseError{Filename: o.filename, Err: err}
	}
	return doc, nil
}

// ParseFile reads and parses the file at path. Read failures are returned
// as is, malformed content as a *ParseError.
func ParseFile(path string, opts ...ParseOption) (*etree.Document, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(d, append([]ParseOption{ParseFilename(path)}, opts...)...)
}

func newParseError(filename string, err error) *ParseError {
	pe := &ParseError{Filename: filename, Err: err}
	var se *xml.SyntaxError
	if errors.As(err, &se) {
		pe.Line = se.Line
		pe.Err = errors.New(se.Msg)
	}
	return pe
}

// locate rescans data with the standard decoder so that a failed read can
// be reported with the line it failed on. err is returned unchanged when the
// decoder finds nothing more specific.
func locate(data []byte, o *parseOpts, err error) error {
	var se *xml.SyntaxError
	if errors.As(err, &se) {
		return err
	}
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = !o.permissive
	dec.CharsetReader = func(_ string, r io.Reader) (io.Reader, error) { return r, nil }
	for {
		_, terr := dec.Token()
		if terr == nil {
			continue
		}
		if errors.As(terr, &se) {
			return se
		}
		return err
	}
}

// checkTopLevel rejects content outside the root element other than
// whitespace, comments, directives and processing instructions.
func checkTopLevel(doc *etree.Document) error {
	roots := 0
	for _, t := range doc.Child {
		switch x := t.(type) {
		case *etree.Element:
			roots++
			if roots > 1 {
				return fmt.Errorf("%w <%s>", errExtraRoot, x.FullTag())
			}
		case *etree.CharData:
			if strings.TrimSpace(x.Data) != "" {
				return fmt.Errorf("%w %q", errStrayText, strings.TrimSpace(x.Data))
			}
		}
	}
	return nil
}

func checkPrefixes(e *etree.Element) error {
	if e.Space != "" && !xmlns.Bound(e, e.Space) {
		return fmt.Errorf("%w %q on <%s>", errUnboundPrefix, e.Space, e.FullTag())
	}
	for i := range e.Attr {
		a := &e.Attr[i]
		if a.Space == "" || xmlns.IsDecl(a) {
			continue
		}
		if !xmlns.Bound(e, a.Space) {
			return fmt.Errorf("%w %q on attribute %s of <%s>", errUnboundPrefix, a.Space, a.FullKey(), e.FullTag())
		}
	}
	for _, c := range e.ChildElements() {
		if err := checkPrefixes(c); err != nil {
			return err
		}
	}
	return nil
}
