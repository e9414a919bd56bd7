package input

import (
	"errors"
	"fmt"
	"strings"
)

// Failure conditions recovered inside the retry loop. None of them escape
// Resolve; the last one is kept in Result.Err.
var (
	ErrEmptyInput          = errors.New("input is required")
	ErrCoercion            = errors.New("invalid value")
	ErrConstraint          = errors.New("constraint not satisfied")
	ErrNoMatchingFiles     = errors.New("no matching files")
	ErrAmbiguousSelection  = errors.New("ambiguous selection")
	ErrSelectionOutOfRange = errors.New("selection out of range")
	ErrSelectionNotFound   = errors.New("selection not in list")
)

// CoercionReason names why raw text could not become a value.
type CoercionReason int

const (
	NotANumber CoercionReason = iota
	InvalidOption
	InvalidMultiSelectEntry
	PathNotFound
	CreationDeclined
	CreationFailed
)

func (r CoercionReason) String() string {
	switch r {
	case NotANumber:
		return "not a number"
	case InvalidOption:
		return "invalid option"
	case InvalidMultiSelectEntry:
		return "invalid selection"
	case PathNotFound:
		return "not found"
	case CreationDeclined:
		return "not created"
	case CreationFailed:
		return "creation failed"
	default:
		return "invalid value"
	}
}

// CoercionError reports raw text that could not be converted for a kind.
type CoercionError struct {
	Reason CoercionReason
	Input  string
	Err    error // Underlying cause (optional)
}

func (e *CoercionError) Error() string {
	msg := fmt.Sprintf("%q: %s", e.Input, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CoercionError) Unwrap() error { return e.Err }

func (e *CoercionError) Is(target error) bool { return target == ErrCoercion }

// ConstraintReason names the constraint a coerced value failed.
type ConstraintReason int

const (
	RegexMismatch ConstraintReason = iota
	ValidatorRejected
)

func (r ConstraintReason) String() string {
	if r == RegexMismatch {
		return "pattern does not match"
	}
	return "validator rejected value"
}

// ConstraintError reports a coerced value rejected by the pattern or the
// validator.
type ConstraintError struct {
	Reason ConstraintReason
	Value  string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%q: %s", e.Value, e.Reason)
}

func (e *ConstraintError) Is(target error) bool { return target == ErrConstraint }

// AmbiguousSelectionError lists the candidates a free-text selection matched.
type AmbiguousSelectionError struct {
	Input   string
	Matches []string
}

func (e *AmbiguousSelectionError) Error() string {
	return fmt.Sprintf("%q matches %d files: %s", e.Input, len(e.Matches), strings.Join(e.Matches, ", "))
}

func (e *AmbiguousSelectionError) Is(target error) bool { return target == ErrAmbiguousSelection }
