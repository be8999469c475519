package manifest

import (
	"fmt"
	"strings"

	"github.com/signadot/manifest-merge/xmlns"
)

// Action is what happened to one patch element.
type Action int

const (
	// Merged means the patch element's attributes were set on a matching
	// base element.
	Merged Action = iota
	// Appended means a copy of the patch element was added to the base root.
	Appended
	// Skipped means the base already held an equal element.
	Skipped
)

func (a Action) String() string {
	switch a {
	case Merged:
		return "merged"
	case Appended:
		return "appended"
	case Skipped:
		return "skipped"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// AttrChange records one attribute set by a merge.
type AttrChange struct {
	Key   xmlns.Key
	Old   string
	New   string
	Added bool
}

// Step records the handling of one top-level patch element.
type Step struct {
	Action Action
	// Tag is the qualified tag of the patch element.
	Tag xmlns.Key
	// Name is the key attribute value of the patch element, if any.
	Name string
	// Path is the slash separated tag path of the affected element in the
	// merged document. Empty for skipped elements.
	Path    string
	Changes []AttrChange
}

func (s *Step) String() string {
	buf := &strings.Builder{}
	fmt.Fprintf(buf, "%s <%s", s.Action, s.Tag.Local)
	if s.Name != "" {
		fmt.Fprintf(buf, " name=%q", s.Name)
	}
	buf.WriteString(">")
	for i := range s.Changes {
		c := &s.Changes[i]
		if c.Added {
			fmt.Fprintf(buf, " +%s=%q", c.Key.Local, c.New)
			continue
		}
		fmt.Fprintf(buf, " %s=%q->%q", c.Key.Local, c.Old, c.New)
	}
	return buf.String()
}

// Result is the report of a merge, one step per patch element in document
// order.
type Result struct {
	Steps []Step
}

// Count returns the number of steps with the given action.
func (r *Result) Count(a Action) int {
	n := 0
	for i := range r.Steps {
		if r.Steps[i].Action == a {
			n++
		}
	}
	return n
}

// Changed reports whether the merge modified the base document.
func (r *Result) Changed() bool {
	for i := range r.Steps {
		s := &r.Steps[i]
		if s.Action == Appended || len(s.Changes) != 0 {
			return true
		}
	}
	return false
}
