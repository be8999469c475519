package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Line is one line of a line diff, without its trailing newline.
type Line struct {
	Op   diffpatch.Operation
	Text string
	// 1-based line numbers in from and to; 0 where the line is absent.
	From, To int
}

// Lines diffs from and to line by line.
func Lines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var (
		res      []Line
		fromLine = 1
		toLine   = 1
	)
	for _, d := range diffs {
		for _, text := range splitLines(d.Text) {
			ln := Line{Op: d.Type, Text: text}
			switch d.Type {
			case diffpatch.DiffEqual:
				ln.From, ln.To = fromLine, toLine
				fromLine++
				toLine++
			case diffpatch.DiffDelete:
				ln.From = fromLine
				fromLine++
			case diffpatch.DiffInsert:
				ln.To = toLine
				toLine++
			}
			res = append(res, ln)
		}
	}
	return res
}

// Changed reports whether lines contain any insertion or deletion.
func Changed(lines []Line) bool {
	for i := range lines {
		if lines[i].Op != diffpatch.DiffEqual {
			return true
		}
	}
	return false
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.SplitAfter(s, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\n")
	}
	return parts
}
