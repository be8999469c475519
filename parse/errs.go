package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse = errors.New("parse error")

	errNoRoot        = errors.New("no root element")
	errUnboundPrefix = errors.New("unbound prefix")
	errExtraRoot     = errors.New("more than one root element, found")
	errStrayText     = errors.New("text outside the root element:")
)

// ParseError reports malformed XML input. It unwraps to both ErrParse and
// the underlying cause.
type ParseError struct {
	Filename string
	Line     int
	Err      error
}

func (e *ParseError) Error() string {
	name := e.Filename
	if name == "" {
		name = "<input>"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s: %v", name, e.Line, ErrParse, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", name, ErrParse, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}
