package libdiff

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type writeOpts struct {
	context  int
	from, to string
	color    bool
}

type WriteOption func(*writeOpts)

// WriteContext sets the number of unchanged lines shown around each change.
// A negative value shows every line in a single hunk.
func WriteContext(n int) WriteOption {
	return func(o *writeOpts) { o.context = n }
}

// WriteNames sets the names printed in the ---/+++ header. The header is
// omitted when both are empty.
func WriteNames(from, to string) WriteOption {
	return func(o *writeOpts) { o.from, o.to = from, to }
}

// WriteColor colours insertions, deletions and hunk headers.
func WriteColor(v bool) WriteOption {
	return func(o *writeOpts) { o.color = v }
}

var (
	insertColor = color.New(color.FgGreen)
	deleteColor = color.New(color.FgRed)
	hunkColor   = color.New(color.FgCyan)
	headColor   = color.New(color.Bold)
)

// Write prints lines as unified diff hunks. Nothing is written when lines
// contain no change.
func Write(w io.Writer, lines []Line, opts ...WriteOption) error {
	o := &writeOpts{context: 3}
	for _, opt := range opts {
		opt(o)
	}
	if !Changed(lines) {
		return nil
	}
	ud := difflib.UnifiedDiff{
		FromFile: o.from,
		ToFile:   o.to,
		Context:  o.context,
	}
	for i := range lines {
		ln := &lines[i]
		if ln.Op != diffpatch.DiffInsert {
			ud.A = append(ud.A, ln.Text+"\n")
		}
		if ln.Op != diffpatch.DiffDelete {
			ud.B = append(ud.B, ln.Text+"\n")
		}
	}
	if ud.Context < 0 {
		ud.Context = len(ud.A) + len(ud.B)
	}
	if !o.color {
		return difflib.WriteUnifiedDiff(w, ud)
	}
	buf := bytes.NewBuffer(nil)
	if err := difflib.WriteUnifiedDiff(buf, ud); err != nil {
		return err
	}
	head := 0
	if o.from != "" || o.to != "" {
		head = 2
	}
	bw := bufio.NewWriter(w)
	for i, ln := range strings.SplitAfter(buf.String(), "\n") {
		if ln == "" {
			continue
		}
		bw.WriteString(paint(i < head, ln))
	}
	return bw.Flush()
}

// paint colours one diff line, keeping the newline outside the escapes.
func paint(head bool, ln string) string {
	text := strings.TrimSuffix(ln, "\n")
	var c *color.Color
	switch {
	case head:
		c = headColor
	case strings.HasPrefix(text, "@@"):
		c = hunkColor
	case strings.HasPrefix(text, "+"):
		c = insertColor
	case strings.HasPrefix(text, "-"):
		c = deleteColor
	default:
		return ln
	}
	return c.Sprint(text) + ln[len(text):]
}
