package encode

import (
	"bytes"
	"strings"

	"github.com/beevik/etree"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	TagColor ColorAttr = iota
	AttrColor
	NSAttrColor
	ValueColor
	SepColor
	TextColor
	CommentColor
	ProcInstColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			TagColor:      color.RGB(128, 168, 196).SprintfFunc(),
			AttrColor:     color.RGB(196, 96, 16).SprintfFunc(),
			NSAttrColor:   color.RGB(196, 168, 128).SprintfFunc(),
			ValueColor:    color.RGB(8, 196, 16).SprintfFunc(),
			SepColor:      color.RGB(255, 0, 196).SprintfFunc(),
			TextColor:     color.RGB(198, 198, 46).SprintfFunc(),
			CommentColor:  color.New(color.FgBlue).SprintfFunc(),
			ProcInstColor: color.RGB(96, 96, 96).SprintfFunc(),
		},
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	f := c.Map[a]
	if f == nil {
		return c.Default
	}
	return f
}

func (es *EncState) writeToken(buf *bytes.Buffer, t etree.Token, s *etree.WriteSettings) {
	c := es.colors
	switch x := t.(type) {
	case *etree.Element:
		buf.WriteString(c.Color(SepColor, "<"))
		buf.WriteString(c.Color(TagColor, x.FullTag()))
		for i := range x.Attr {
			a := &x.Attr[i]
			buf.WriteByte(' ')
			attr := AttrColor
			if a.Space != "" {
				attr = NSAttrColor
			}
			key, val, _ := strings.Cut(raw(a, s), "=")
			buf.WriteString(c.Color(attr, key))
			buf.WriteString(c.Color(SepColor, "="))
			buf.WriteString(c.Color(ValueColor, val))
		}
		if len(x.Child) == 0 && !s.CanonicalEndTags {
			buf.WriteString(c.Color(SepColor, "/>"))
			return
		}
		buf.WriteString(c.Color(SepColor, ">"))
		for _, ch := range x.Child {
			es.writeToken(buf, ch, s)
		}
		buf.WriteString(c.Color(SepColor, "</"))
		buf.WriteString(c.Color(TagColor, x.FullTag()))
		buf.WriteString(c.Color(SepColor, ">"))
	case *etree.CharData:
		if x.IsWhitespace() {
			x.WriteTo(buf, s)
			return
		}
		buf.WriteString(c.Color(TextColor, raw(x, s)))
	case *etree.Comment:
		buf.WriteString(c.Color(CommentColor, raw(x, s)))
	default:
		buf.WriteString(c.Color(ProcInstColor, raw(t, s)))
	}
}

type writable interface {
	WriteTo(etree.Writer, *etree.WriteSettings)
}

func raw(t writable, s *etree.WriteSettings) string {
	buf := bytes.NewBuffer(nil)
	t.WriteTo(buf, s)
	return buf.String()
}
