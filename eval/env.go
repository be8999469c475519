package eval

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// Env holds the values placeholders are evaluated against.
type Env map[string]any

var ErrBadAssignment = errors.New("bad assignment")

// Set parses a key=val assignment into env. val is decoded as YAML, so
// numbers and booleans keep their type. Dotted keys create nested maps.
func (env Env) Set(a string) error {
	key, val, ok := strings.Cut(a, "=")
	if !ok || key == "" {
		return fmt.Errorf("%w: %q, expected key=val", ErrBadAssignment, a)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrBadAssignment, a, err)
	}
	switch v.(type) {
	case nil:
		if val != "null" && val != "~" {
			v = val
		}
	case uint64, int64, float64:
		// 1.0 decodes as 1; keep the literal unless it reads back the same
		if s, _ := anyToString(v); s != val {
			v = val
		}
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := map[string]any(env)
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: cannot access %s, not a map", ErrBadAssignment, strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
