package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Value marks up the character level change from one attribute value to
// another, deletions as [-x-] and insertions as {+x+}. When most of the
// value changed the result is the plain "from -> to".
func Value(from, to string) string {
	if from == to {
		return from
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(from, to, false))
	changed := 0
	for _, d := range diffs {
		if d.Type != diffpatch.DiffEqual {
			changed += len(d.Text)
		}
	}
	if changed > max(len(from), len(to)) {
		return from + " -> " + to
	}
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		case diffpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
