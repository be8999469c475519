package xmlns

import (
	"errors"
	"testing"

	"github.com/beevik/etree"
	"github.com/google/go-cmp/cmp"
)

func readDoc(t *testing.T, s string) *etree.Document {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromString(s); err != nil {
		t.Fatal(err)
	}
	return doc
}

func writeDoc(t *testing.T, doc *etree.Document) string {
	t.Helper()
	s, err := doc.WriteToString()
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestResolve(t *testing.T) {
	doc := readDoc(t, `<m xmlns="urn:d" xmlns:a="urn:a"><c xmlns:a="urn:a2"><d x="1"/></c></m>`)
	m := doc.Root()
	d := m.FindElement("c/d")
	tests := []struct {
		e      *etree.Element
		prefix string
		uri    string
	}{
		{m, "a", "urn:a"},
		{d, "a", "urn:a2"},
		{d, "", "urn:d"},
		{d, "xml", XMLURI},
		{d, "zz", ""},
	}
	for _, tt := range tests {
		if got := Resolve(tt.e, tt.prefix); got != tt.uri {
			t.Errorf("Resolve(<%s>, %q) = %q, want %q", tt.e.Tag, tt.prefix, got, tt.uri)
		}
	}
	if diff := cmp.Diff(map[string]string{"": "urn:d", "a": "urn:a2"}, Scope(d)); diff != "" {
		t.Errorf("scope mismatch (-want +got):\n%s", diff)
	}
	if got := ElementKey(d); got != (Key{Space: "urn:d", Local: "d"}) {
		t.Errorf("element key %v", got)
	}
	if got := AttrKey(d, &d.Attr[0]); got != (Key{Local: "x"}) {
		t.Errorf("unprefixed attribute took the default namespace: %v", got)
	}
	if !Bound(d, "a") || Bound(d, "zz") {
		t.Error("Bound")
	}
}

func TestKey(t *testing.T) {
	if got := AndroidName.String(); got != "{"+AndroidURI+"}name" {
		t.Errorf("got %q", got)
	}
	if got := (Key{Local: "package"}).String(); got != "package" {
		t.Errorf("got %q", got)
	}
	if Compare(Key{Local: "b"}, Key{Space: "urn:a", Local: "a"}) != -1 {
		t.Error("keys without namespace sort first")
	}
	if Compare(Key{Space: "u", Local: "a"}, Key{Space: "u", Local: "b"}) != -1 {
		t.Error("local name order")
	}
}

func TestLookupSet(t *testing.T) {
	doc := readDoc(t, `<m xmlns:a="`+AndroidURI+`"><e a:name="n" name="plain"/></m>`)
	e := doc.Root().SelectElement("e")

	if v, ok := Value(e, AndroidName); !ok || v != "n" {
		t.Errorf("android:name = %q, %t", v, ok)
	}
	if v, ok := Value(e, Key{Local: "name"}); !ok || v != "plain" {
		t.Errorf("name = %q, %t", v, ok)
	}
	if _, ok := Lookup(e, Key{Space: AndroidURI, Local: "exported"}); ok {
		t.Error("unexpected attribute")
	}

	Set(e, AndroidName, "m")
	Set(e, Key{Space: AndroidURI, Local: "exported"}, "true")
	Set(e, Key{Space: "urn:new", Local: "x"}, "1")
	Set(e, Key{Local: "plain"}, "p")

	want := `<m xmlns:a="` + AndroidURI + `" xmlns:ns0="urn:new"><e a:name="m" name="plain" a:exported="true" ns0:x="1" plain="p"/></m>`
	if diff := cmp.Diff(want, writeDoc(t, doc)); diff != "" {
		t.Errorf("set mismatch (-want +got):\n%s", diff)
	}
}

func TestDeclare(t *testing.T) {
	doc := readDoc(t, `<m xmlns:ns0="urn:taken"><e/></m>`)
	e := doc.Root().SelectElement("e")
	tests := []struct {
		uri, hint, prefix string
	}{
		{"urn:tools", "tools", "tools"},
		{"urn:tools", "tools", "tools"},
		{"urn:tools", "", "tools"},
		{"urn:other", "tools", "ns1"},
		{"urn:taken", "x", "ns0"},
		{XMLURI, "", "xml"},
		{AndroidURI, "", "android"},
	}
	for _, tt := range tests {
		if got := Declare(e, tt.uri, tt.hint); got != tt.prefix {
			t.Errorf("Declare(%q, %q) = %q, want %q", tt.uri, tt.hint, got, tt.prefix)
		}
	}
	want := `<m xmlns:ns0="urn:taken" xmlns:tools="urn:tools" xmlns:ns1="urn:other" xmlns:android="` + AndroidURI + `"><e/></m>`
	if diff := cmp.Diff(want, writeDoc(t, doc)); diff != "" {
		t.Errorf("declare mismatch (-want +got):\n%s", diff)
	}
}

func TestRebind(t *testing.T) {
	dst := readDoc(t, `<manifest xmlns:android="`+AndroidURI+`"><application/></manifest>`)
	src := readDoc(t, `<manifest xmlns:a="`+AndroidURI+`" xmlns:t="urn:tools"><e a:name="x" t:node="remove"><f xmlns:a="urn:local" a:y="1"/></e></manifest>`)
	root := dst.Root()
	c := src.Root().SelectElement("e").Copy()
	Rebind(root, c, Scope(src.Root()))
	root.AddChild(c)

	want := `<manifest xmlns:android="` + AndroidURI + `" xmlns:t="urn:tools"><application/><e android:name="x" t:node="remove"><f xmlns:a="urn:local" a:y="1"/></e></manifest>`
	if diff := cmp.Diff(want, writeDoc(t, dst)); diff != "" {
		t.Errorf("rebind mismatch (-want +got):\n%s", diff)
	}
	f := c.SelectElement("f")
	if got := AttrKey(f, &f.Attr[1]); got != (Key{Space: "urn:local", Local: "y"}) {
		t.Errorf("local binding lost: %v", got)
	}
}

func TestRebindDefault(t *testing.T) {
	dst := readDoc(t, `<m/>`)
	src := readDoc(t, `<m xmlns="urn:d"><e/></m>`)
	c := src.Root().SelectElement("e").Copy()
	Rebind(dst.Root(), c, Scope(src.Root()))
	dst.Root().AddChild(c)
	if got := ElementKey(c); got != (Key{Space: "urn:d", Local: "e"}) {
		t.Errorf("element key %v", got)
	}
}

func TestBindAndroid(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{
			in:  `<m/>`,
			out: `<m xmlns:android="` + AndroidURI + `"/>`,
		},
		{
			in:  `<m xmlns:android="` + AndroidURI + `" a="1"/>`,
			out: `<m xmlns:android="` + AndroidURI + `" a="1"/>`,
		},
		{
			in:  `<m xmlns:a="` + AndroidURI + `" xmlns:t="urn:t"><e a:name="x"><f xmlns:b="` + AndroidURI + `" b:v="1" t:w="2"/></e></m>`,
			out: `<m xmlns:android="` + AndroidURI + `" xmlns:t="urn:t"><e android:name="x"><f android:v="1" t:w="2"/></e></m>`,
		},
		{
			in:  `<a:m xmlns:a="` + AndroidURI + `"/>`,
			out: `<android:m xmlns:android="` + AndroidURI + `"/>`,
		},
	}
	for _, tt := range tests {
		doc := readDoc(t, tt.in)
		if err := BindAndroid(doc); err != nil {
			t.Errorf("%s: %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.out, writeDoc(t, doc)); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", tt.in, diff)
		}
	}

	doc := readDoc(t, `<m><e xmlns:android="urn:x"/></m>`)
	if err := BindAndroid(doc); !errors.Is(err, ErrPrefixConflict) {
		t.Errorf("expected prefix conflict, got %v", err)
	}
}
