package xmlns

import "errors"

var (
	ErrPrefixConflict = errors.New("namespace prefix conflict")
)
