package manifest

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/signadot/manifest-merge/debug"
	"github.com/signadot/manifest-merge/parse"
	"github.com/signadot/manifest-merge/xmlns"
)

type MergeConfig struct {
	Key   xmlns.Key
	Trace func(Step)
}

type MergeOpt func(*MergeConfig)

// MergeKey sets the attribute used to tell same-tag elements apart. The
// default is android:name.
func MergeKey(k xmlns.Key) MergeOpt {
	return func(c *MergeConfig) { c.Key = k }
}

// MergeTrace calls f with each step as it is taken.
func MergeTrace(f func(Step)) MergeOpt {
	return func(c *MergeConfig) { c.Trace = f }
}

// Merge folds the top-level elements of patch into a copy of base and
// returns the copy together with a report of what was done. Neither input
// is modified.
func Merge(base, patch *etree.Document, opts ...MergeOpt) (*etree.Document, *Result, error) {
	cfg := &MergeConfig{Key: xmlns.AndroidName}
	for _, opt := range opts {
		opt(cfg)
	}
	if base.Root() == nil {
		return nil, nil, fmt.Errorf("base: %w", ErrNoRoot)
	}
	if patch.Root() == nil {
		return nil, nil, fmt.Errorf("patch: %w", ErrNoRoot)
	}
	out := parse.Clone(base)
	root := out.Root()
	res := &Result{}
	for _, p := range patch.Root().ChildElements() {
		step := mergeElement(root, p, cfg)
		if debug.Merge() {
			debug.Logf("%s\n", step.String())
		}
		if cfg.Trace != nil {
			cfg.Trace(step)
		}
		res.Steps = append(res.Steps, step)
	}
	return out, res, nil
}

func mergeElement(root, p *etree.Element, cfg *MergeConfig) Step {
	step := Step{Tag: xmlns.ElementKey(p)}
	step.Name, _ = xmlns.Value(p, cfg.Key)
	if target := FindTarget(root, p, cfg.Key); target != nil {
		step.Action = Merged
		step.Path = target.GetPath()
		step.Changes = MergeAttrs(target, p)
		return step
	}
	if findDuplicate(root, p) != nil {
		step.Action = Skipped
		return step
	}
	c := appendElement(root, p)
	step.Action = Appended
	step.Path = c.GetPath()
	return step
}

// MergeAttrs sets every attribute of p, namespace declarations aside, on
// target and returns the attributes that changed. Attributes of target that
// p lacks are kept. An attribute already on target keeps its prefix; a new
// one is given a prefix bound in target's document, preferring the one p
// uses.
func MergeAttrs(target, p *etree.Element) []AttrChange {
	var changes []AttrChange
	for i := range p.Attr {
		a := &p.Attr[i]
		if xmlns.IsDecl(a) {
			continue
		}
		key := xmlns.AttrKey(p, a)
		old, had := xmlns.Value(target, key)
		if had && old == a.Value {
			continue
		}
		if had || key.Space == "" {
			xmlns.Set(target, key, a.Value)
		} else {
			prefix := xmlns.Declare(target, key.Space, a.Space)
			target.CreateAttr(prefix+":"+key.Local, a.Value)
		}
		changes = append(changes, AttrChange{Key: key, Old: old, New: a.Value, Added: !had})
	}
	return changes
}

// appendElement adds a copy of p after the last child element of root,
// indented like that element. Prefixes in the copy are rebound to root's
// declarations.
func appendElement(root, p *etree.Element) *etree.Element {
	c := p.Copy()
	xmlns.Rebind(root, c, xmlns.Scope(p.Parent()))

	index := len(root.Child)
	indent := ""
	if kids := root.ChildElements(); len(kids) != 0 {
		last := kids[len(kids)-1]
		index = last.Index() + 1
		if i := last.Index(); i > 0 {
			if cd, ok := root.Child[i-1].(*etree.CharData); ok && cd.IsWhitespace() {
				indent = cd.Data
			}
		}
	}
	root.InsertChildAt(index, c)
	if indent != "" {
		ws := etree.NewText("")
		ws.SetData(indent)
		root.InsertChildAt(index, ws)
	}
	return c
}
