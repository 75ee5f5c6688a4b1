package libdiff

import (
	errors "gopkg.in/src-d/go-errors.v1"
)

// ErrInvalidKey is returned when records cannot be indexed on the requested
// columns.
var ErrInvalidKey = errors.NewKind("invalid key: %s")
