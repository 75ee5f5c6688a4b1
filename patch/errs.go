package patch

import (
	errors "gopkg.in/src-d/go-errors.v1"
)

// ErrInvalidPatch is returned when a patch document does not have the
// shape of a patch.
var ErrInvalidPatch = errors.NewKind("invalid patch: %s")
