package libdiff

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func TestLines(t *testing.T) {
	from := "a\nb\nc\n"
	to := "a\nx\nc\nd\n"
	got := Lines(from, to)
	want := []Line{
		{Op: diffpatch.DiffEqual, Text: "a", From: 1, To: 1},
		{Op: diffpatch.DiffDelete, Text: "b", From: 2},
		{Op: diffpatch.DiffInsert, Text: "x", To: 2},
		{Op: diffpatch.DiffEqual, Text: "c", From: 3, To: 3},
		{Op: diffpatch.DiffInsert, Text: "d", To: 4},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("lines mismatch (-want +got):\n%s", diff)
	}
	if !Changed(got) {
		t.Error("expected change")
	}
	if Changed(Lines(from, from)) {
		t.Error("identical inputs reported as changed")
	}
}

func TestWrite(t *testing.T) {
	var from, to string
	for i := 0; i < 20; i++ {
		line := string(rune('a'+i)) + "\n"
		from += line
		if i == 10 {
			to += "changed\n"
			continue
		}
		to += line
	}
	buf := bytes.NewBuffer(nil)
	if err := Write(buf, Lines(from, to), WriteNames("base.xml", "merged"), WriteContext(2)); err != nil {
		t.Fatal(err)
	}
	want := `--- base.xml
+++ merged
@@ -9,5 +9,5 @@
 i
 j
-k
+changed
 l
 m
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("write mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteAppend(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Write(buf, Lines("a\nb\n", "a\nb\nc\n"), WriteContext(1)); err != nil {
		t.Fatal(err)
	}
	want := "@@ -2 +2,2 @@\n b\n+c\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("write mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteAllContext(t *testing.T) {
	from := strings.Repeat("x\n", 10) + "a\n" + strings.Repeat("y\n", 10)
	to := strings.Repeat("x\n", 10) + "b\n" + strings.Repeat("y\n", 10)
	buf := bytes.NewBuffer(nil)
	if err := Write(buf, Lines(from, to), WriteContext(-1)); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.HasPrefix(got, "@@ -1,21 +1,21 @@\n") {
		t.Errorf("expected a single hunk over every line, got:\n%s", got)
	}
	if n := strings.Count(got, "\n@@"); n != 0 {
		t.Errorf("got %d extra hunks, want one", n)
	}
}

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestWriteColor(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = noColor }()

	lines := Lines("a\n100%\n", "a\n100%%\n")
	plain := bytes.NewBuffer(nil)
	if err := Write(plain, lines, WriteNames("base.xml", "merged")); err != nil {
		t.Fatal(err)
	}
	colored := bytes.NewBuffer(nil)
	if err := Write(colored, lines, WriteNames("base.xml", "merged"), WriteColor(true)); err != nil {
		t.Fatal(err)
	}
	if colored.String() == plain.String() {
		t.Fatal("expected colour escapes")
	}
	if diff := cmp.Diff(plain.String(), ansi.ReplaceAllString(colored.String(), "")); diff != "" {
		t.Errorf("coloured output differs once escapes are removed (-plain +got):\n%s", diff)
	}
}

func TestWriteUnchanged(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Write(buf, Lines("a\n", "a\n"), WriteNames("x", "y")); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestValue(t *testing.T) {
	tests := []struct{ from, to, want string }{
		{"same", "same", "same"},
		{"true", "false", "true -> false"},
		{"@string/app_name", "@string/app_name_debug", "@string/app_name{+_debug+}"},
		{"1.0.0-rc1", "1.0.0", "1.0.0[--rc1-]"},
	}
	for _, tt := range tests {
		if got := Value(tt.from, tt.to); got != tt.want {
			t.Errorf("Value(%q, %q) = %q, want %q", tt.from, tt.to, got, tt.want)
		}
	}
}
