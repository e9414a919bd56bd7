package input

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
)

// state is a node of the resolution state machine.
//
//	prompting -> validating -> succeeded
//	    |            |
//	    +--> retrying <--+--> exhausted
//	    |
//	    +--> timedOut | defaulted | empty | aborted
type state int

const (
	statePrompting state = iota
	stateValidating
	stateRetrying
	stateSucceeded
	stateDefaulted
	stateEmpty
	stateTimedOut
	stateExhausted
	stateAborted
)

func (s state) String() string {
	switch s {
	case statePrompting:
		return "prompting"
	case stateValidating:
		return "validating"
	case stateRetrying:
		return "retrying"
	case stateSucceeded:
		return "succeeded"
	case stateDefaulted:
		return "defaulted"
	case stateEmpty:
		return "empty"
	case stateTimedOut:
		return "timed out"
	case stateExhausted:
		return "exhausted"
	case stateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// resolution is the state of one Resolve call.
type resolution[T any] struct {
	spec     Spec[T]
	pattern  *regexp.Regexp
	round    round
	started  time.Time
	attempts int
	raw      string
	value    T
	err      error

	// renderFailed is set when the last round failed before reading a line.
	renderFailed bool
}

// Resolve prompts until spec is satisfied and returns the value, the
// default, or the empty-marker. It never fails: every problem is reported on
// the prompter's console and either retried or resolved to the default.
//
// The timeout is checked at the start of each round only; a read that is
// already waiting for the user is not interrupted.
func Resolve[T any](p *Prompter, spec Spec[T]) Result[T] {
	if err := spec.Check(); err != nil {
		p.console.Error(err.Error())
		res := &resolution[T]{spec: spec, err: err}
		return res.fallback(Misconfigured)
	}

	pattern, _ := spec.compilePattern()
	res := &resolution[T]{
		spec:    spec,
		pattern: pattern,
		round:   round{p: p, title: spec.Title},
		started: p.clock.Now(),
	}
	return res.run()
}

func (r *resolution[T]) run() Result[T] {
	s := statePrompting
	for {
		var next state
		switch s {
		case statePrompting:
			next = r.prompt()
		case stateValidating:
			next = r.validate()
		case stateRetrying:
			next = r.retry()
		case stateSucceeded:
			r.announce()
			return r.result(Answered, r.value, true)
		case stateDefaulted:
			return r.fallback(Defaulted)
		case stateEmpty:
			var zero T
			return r.result(Empty, zero, false)
		case stateTimedOut:
			return r.fallback(TimedOut)
		case stateExhausted:
			return r.fallback(Exhausted)
		case stateAborted:
			return r.fallback(Aborted)
		}
		r.round.p.console.Verbose(fmt.Sprintf("%s: %s -> %s (attempts: %d)", r.spec.Kind.Name(), s, next, r.attempts))
		s = next
	}
}

// prompt runs steps 1 to 4 of a round: timeout, render, read, empty policy.
func (r *resolution[T]) prompt() state {
	p := r.round.p

	if r.spec.Timeout > 0 && p.clock.Since(r.started) > r.spec.Timeout {
		p.console.Info(fmt.Sprintf("Timed out, using default: %s", r.describeDefault()))
		return stateTimedOut
	}

	text, err := r.spec.Kind.render(&r.round, r.spec.Default)
	if err != nil {
		r.renderFailed = true
		return r.fail(err)
	}

	var raw string
	if r.spec.Kind.masked() {
		raw, err = p.reader.ReadPassword(text)
	} else {
		raw, err = p.reader.ReadLine(text)
	}
	if err != nil {
		return r.abort(err)
	}

	r.raw = strings.TrimSpace(raw)
	if r.raw != "" {
		return stateValidating
	}

	switch {
	case r.spec.Default != nil:
		return stateDefaulted
	case r.spec.AllowEmpty:
		return stateEmpty
	default:
		return r.fail(ErrEmptyInput)
	}
}

// validate runs step 5: coercion followed by the pattern and the validator.
func (r *resolution[T]) validate() state {
	v, err := r.spec.Kind.coerce(&r.round, r.raw)
	if err != nil {
		return r.fail(err)
	}

	text := r.spec.Kind.format(v)
	if r.pattern != nil && !r.pattern.MatchString(text) {
		return r.fail(&ConstraintError{Reason: RegexMismatch, Value: text})
	}
	if r.spec.Validator != nil && !r.spec.Validator.Valid(v) {
		return r.fail(&ConstraintError{Reason: ValidatorRejected, Value: text})
	}

	r.value = v
	return stateSucceeded
}

// fail runs step 7 for any failure of the round.
func (r *resolution[T]) fail(err error) state {
	c := r.round.p.console
	r.err = err

	if r.spec.UseDefaultOnError && r.spec.Default != nil {
		c.Error(fmt.Sprintf("%s, using default: %s", r.spec.errorMessage(), r.describeDefault()))
		return stateDefaulted
	}

	if errors.Is(err, ErrEmptyInput) {
		c.Error(r.spec.errorMessage())
	} else {
		c.Error(fmt.Sprintf("%s (%v)", r.spec.errorMessage(), err))
	}

	var ambiguous *AmbiguousSelectionError
	if errors.As(err, &ambiguous) {
		c.Info("Several files match, choose one by number:")
		for i, m := range ambiguous.Matches {
			c.Step(fmt.Sprintf("%d. %s", i+1, m))
		}
	}

	r.attempts++
	return stateRetrying
}

// retry runs step 8, the exhaustion check, once per failed round.
func (r *resolution[T]) retry() state {
	p := r.round.p

	if r.spec.MaxRetry > 0 && r.attempts >= r.spec.MaxRetry {
		p.console.Error(fmt.Sprintf("Too many attempts, using default: %s", r.describeDefault()))
		return stateExhausted
	}

	// Nothing was read this round, so wait for the user before rendering again.
	if r.renderFailed {
		r.renderFailed = false
		if _, err := p.reader.ReadLine(p.console.PromptText("Press Enter to try again", "")); err != nil {
			return r.abort(err)
		}
	}

	return statePrompting
}

func (r *resolution[T]) abort(err error) state {
	if !errors.Is(err, io.EOF) {
		r.err = err
	}
	r.round.p.console.Print("")
	r.round.p.console.Info(fmt.Sprintf("No more input, using default: %s", r.describeDefault()))
	return stateAborted
}

func (r *resolution[T]) announce() {
	if a, ok := any(r.spec.Kind).(interface{ announce(*round, T) }); ok {
		a.announce(&r.round, r.value)
	}
}

// fallback returns the default, or a value-less result when there is none.
func (r *resolution[T]) fallback(o Outcome) Result[T] {
	if r.spec.Default != nil {
		return r.result(o, *r.spec.Default, true)
	}
	var zero T
	return r.result(o, zero, false)
}

func (r *resolution[T]) result(o Outcome, v T, present bool) Result[T] {
	return Result[T]{
		Value:    v,
		Present:  present,
		Outcome:  o,
		Attempts: r.attempts,
		Err:      r.err,
	}
}

func (r *resolution[T]) describeDefault() string {
	if r.spec.Default == nil {
		return "none"
	}
	if r.spec.Kind != nil && r.spec.Kind.masked() {
		return "****"
	}
	if r.spec.Kind == nil {
		return fmt.Sprint(*r.spec.Default)
	}
	return r.spec.Kind.format(*r.spec.Default)
}
