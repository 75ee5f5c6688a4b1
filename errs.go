package csvdiff

import (
	"github.com/signadot/csvdiff/libdiff"
	"github.com/signadot/csvdiff/patch"

	errors "gopkg.in/src-d/go-errors.v1"
)

// ErrConfiguration is returned for contradictory options.
var ErrConfiguration = errors.NewKind("configuration error: %s")

var (
	ErrInvalidKey   = libdiff.ErrInvalidKey
	ErrInvalidPatch = patch.ErrInvalidPatch
)
