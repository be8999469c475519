package manifest

import "errors"

var ErrNoRoot = errors.New("document has no root element")
