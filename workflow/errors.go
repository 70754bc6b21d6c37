package workflow

import (
	"errors"
	"fmt"
	"strings"
)

// ErrProfileIncomplete is returned when the vehicle profile does not carry
// enough information to resolve the document requirements (company status
// still unknown). Submission must be blocked, never defaulted.
var ErrProfileIncomplete = errors.New("cannot determine document requirements yet: company status is unknown")

// ErrNotEditable is returned when an upload or profile edit is attempted on
// a document that is frozen for the current application stage.
var ErrNotEditable = errors.New("document is locked for the current application stage")

// ErrStateChanged is returned when the atomic re-check before committing a
// status transition finds the record changed underneath the request.
var ErrStateChanged = errors.New("application state changed, please retry")

// ErrInvalidTransition is returned when an action is attempted from a status
// that does not allow it (e.g. submitting while under evaluation, or
// responding twice to the same job assignment).
var ErrInvalidTransition = errors.New("action is not allowed in the current status")

// ValidationError reports exactly which required document kinds block a
// submission, so the candidate knows what to fix.
type ValidationError struct {
	Missing  []DocKind
	Rejected []DocKind
}

func (e *ValidationError) Error() string {
	parts := []string{}
	if len(e.Missing) > 0 {
		parts = append(parts, "missing: "+joinKinds(e.Missing))
	}
	if len(e.Rejected) > 0 {
		parts = append(parts, "rejected: "+joinKinds(e.Rejected))
	}
	return "submission blocked (" + strings.Join(parts, "; ") + ")"
}

// InputError reports a malformed field on an otherwise well-formed request.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func joinKinds(kinds []DocKind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
