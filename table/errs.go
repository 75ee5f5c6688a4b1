package table

import (
	errors "gopkg.in/src-d/go-errors.v1"
)

// ErrBadRow is returned for rows which cannot be read as records.
var ErrBadRow = errors.NewKind("bad row at line %d: %s")

var ErrBadFilter = errors.NewKind("bad filter %q: %s")
