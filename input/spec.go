package input

import (
	"fmt"
	"regexp"
	"time"
)

// DefaultErrorMessage is shown when a Spec has no ErrorMessage.
const DefaultErrorMessage = "Invalid input!"

// Validator accepts or rejects a coerced value.
type Validator[T any] interface {
	Valid(v T) bool
}

// ValidatorFunc adapts a plain function to Validator.
type ValidatorFunc[T any] func(v T) bool

func (f ValidatorFunc[T]) Valid(v T) bool { return f(v) }

// Spec describes one prompt. It is passed by value and never modified while
// a Resolve call runs.
type Spec[T any] struct {
	Title             string
	Kind              Kind[T]
	Default           *T     // nil means no default
	ErrorMessage      string // Shown on every failed round
	UseDefaultOnError bool   // Return Default on the first failure instead of retrying
	AllowEmpty        bool   // Empty input yields the empty-marker when there is no Default
	Validator         Validator[T]
	Pattern           string        // Regular expression the text form must match in full
	MaxRetry          int           // 0 retries forever
	Timeout           time.Duration // 0 disables; checked at the start of each round
}

// Default returns a pointer to v for use as Spec.Default.
//
//	input.Spec[int]{Title: "Port", Kind: input.Integer(), Default: input.Default(8080)}
func Default[T any](v T) *T {
	return &v
}

// Check reports configuration mistakes that would make every round fail.
func (s Spec[T]) Check() error {
	if s.Kind == nil {
		return fmt.Errorf("prompt %q has no kind", s.Title)
	}
	if s.MaxRetry < 0 {
		return fmt.Errorf("prompt %q: max retry must not be negative, got %d", s.Title, s.MaxRetry)
	}
	if s.Timeout < 0 {
		return fmt.Errorf("prompt %q: timeout must not be negative, got %s", s.Title, s.Timeout)
	}
	if _, err := s.compilePattern(); err != nil {
		return fmt.Errorf("prompt %q: %w", s.Title, err)
	}
	if err := s.Kind.check(); err != nil {
		return fmt.Errorf("prompt %q: %w", s.Title, err)
	}
	return nil
}

func (s Spec[T]) compilePattern() (*regexp.Regexp, error) {
	if s.Pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(`^(?:` + s.Pattern + `)$`)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", s.Pattern, err)
	}
	return re, nil
}

func (s Spec[T]) errorMessage() string {
	if s.ErrorMessage == "" {
		return DefaultErrorMessage
	}
	return s.ErrorMessage
}

// Outcome tells how a Resolve call ended.
type Outcome int

const (
	Answered      Outcome = iota // The user's input passed validation
	Defaulted                    // Empty input or use-default-on-error returned the default
	Empty                        // Empty input was allowed and no default exists
	TimedOut                     // The timeout elapsed before a round started
	Exhausted                    // MaxRetry failed rounds
	Aborted                      // The line reader reported end of input
	Misconfigured                // Spec.Check failed before the first round
)

func (o Outcome) String() string {
	switch o {
	case Answered:
		return "answered"
	case Defaulted:
		return "defaulted"
	case Empty:
		return "empty"
	case TimedOut:
		return "timed out"
	case Exhausted:
		return "exhausted"
	case Aborted:
		return "aborted"
	case Misconfigured:
		return "misconfigured"
	default:
		return "unknown"
	}
}

// Result is the value produced by Resolve.
//
// Present is false for the empty-marker and whenever a fallback path had no
// default to return; Value is then the zero value of T.
type Result[T any] struct {
	Value    T
	Present  bool
	Outcome  Outcome
	Attempts int   // Failed rounds
	Err      error // Last failure, nil when none
}

// IsEmpty reports whether the result is the empty-marker.
func (r Result[T]) IsEmpty() bool {
	return r.Outcome == Empty
}
