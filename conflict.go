package csvdiff

import (
	"errors"
	"fmt"

	"github.com/signadot/csvdiff/ir"
)

// Reason classifies a conflict between a patch and the records it is
// applied to.
type Reason int

const (
	// KeyExists: an added record's key is already present.
	KeyExists Reason = iota
	// KeyMissing: a removed record's key is absent.
	KeyMissing
	// RecordChanged: a removed record differs from the one present.
	RecordChanged
	// ChangeKeyMissing: a changed record's key is absent.
	ChangeKeyMissing
	// FieldChanged: a changed field does not hold its expected value.
	FieldChanged
)

func (r Reason) String() string {
	switch r {
	case KeyExists:
		return "key already exists"
	case KeyMissing:
		return "does not exist"
	case RecordChanged:
		return "has changed"
	case ChangeKeyMissing:
		return "missing record"
	case FieldChanged:
		return "field has changed"
	default:
		return fmt.Sprintf("Reason(%d)", int(r))
	}
}

// ConflictError is returned by a strict Patch when the records are not in
// the state the patch expects.
type ConflictError struct {
	Reason Reason
	Key    ir.Key

	// Column, Expected and Found are set for FieldChanged.
	Column   string
	Expected ir.Value
	Found    ir.Value
}

func (e *ConflictError) Error() string {
	switch e.Reason {
	case KeyExists:
		return fmt.Sprintf("conflict: tried to add record %s but key already exists", e.Key)
	case KeyMissing:
		return fmt.Sprintf("conflict: tried to remove record %s but it does not exist", e.Key)
	case RecordChanged:
		return fmt.Sprintf("conflict: tried to remove record %s but it has changed", e.Key)
	case ChangeKeyMissing:
		return fmt.Sprintf("conflict: tried to update record %s but missing record", e.Key)
	case FieldChanged:
		return fmt.Sprintf("conflict: field %q of record %s is %#v, expected %#v",
			e.Column, e.Key, e.Found, e.Expected)
	default:
		return fmt.Sprintf("conflict at %s: %s", e.Key, e.Reason)
	}
}

// IsConflict reports whether err is or wraps a *ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}

// AsConflict retrieves the *ConflictError in err's chain, if any.
func AsConflict(err error) (*ConflictError, bool) {
	var ce *ConflictError
	ok := errors.As(err, &ce)
	return ce, ok
}
