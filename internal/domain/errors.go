package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MsgRequired is the validation message for mandatory fields.
const MsgRequired = "is required"

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	// ErrConflict signals that a conditional write lost a race: the stored
	// state no longer matched the state the caller read.
	ErrConflict  = errors.New("conflict")
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthenticated is returned when a request carries no valid identity.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrNotAMember is returned when a user acts on a group they do not belong to.
	// It wraps ErrForbidden so generic authorization checks still match.
	ErrNotAMember = fmt.Errorf("not a member: %w", ErrForbidden)
	// ErrUnavailable signals the backing store could not be reached.
	ErrUnavailable    = errors.New("unavailable")
	ErrPartialFailure = errors.New("partial failure")
)

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// PartialFailureError reports a batch operation where some items failed while
// the rest were processed. Failed maps item IDs to their individual errors.
type PartialFailureError struct {
	Total  int
	Failed map[string]error
}

func (e *PartialFailureError) Error() string {
	ids := make([]string, 0, len(e.Failed))
	for id := range e.Failed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return fmt.Sprintf("%s: %d of %d failed [%s]",
		ErrPartialFailure.Error(), len(e.Failed), e.Total, strings.Join(ids, ", "))
}

func (e *PartialFailureError) Unwrap() error {
	return ErrPartialFailure
}
