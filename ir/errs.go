package ir

import (
	"errors"
)

var (
	ErrNumber   = errors.New("invalid number")
	ErrNotValue = errors.New("not a scalar value")
)
