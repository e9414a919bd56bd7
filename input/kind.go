package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

// Kind converts a trimmed line into a value of type T and knows how to
// present its prompt. The set of kinds is closed: use the constructors in
// this package.
type Kind[T any] interface {
	// Name is the kind's name in form definitions (e.g., "int").
	Name() string

	check() error
	render(r *round, def *T) (string, error)
	coerce(r *round, raw string) (T, error)
	format(v T) string
	masked() bool
}

// round is the per-round scratch space shared by a resolution and its kind.
type round struct {
	p          *Prompter
	title      string
	candidates []Candidate
}

// inlinePrompt builds "Title (default: x): ".
func (r *round) inlinePrompt(def string, hasDefault bool) string {
	hint := ""
	if hasDefault {
		hint = fmt.Sprintf("(default: %s)", def)
	}
	return r.p.console.PromptText(trimTitle(r.title), hint)
}

func trimTitle(title string) string {
	return strings.TrimSuffix(strings.TrimSpace(title), ":")
}

type textKind struct {
	password bool
}

// Text accepts any line unchanged.
func Text() Kind[string] { return textKind{} }

// Password is Text read without echoing the typed characters.
func Password() Kind[string] { return textKind{password: true} }

func (k textKind) Name() string {
	if k.password {
		return "password"
	}
	return "str"
}

func (textKind) check() error { return nil }

func (k textKind) render(r *round, def *string) (string, error) {
	if def == nil {
		return r.inlinePrompt("", false), nil
	}
	if k.password {
		return r.inlinePrompt("****", true), nil
	}
	return r.inlinePrompt(*def, true), nil
}

func (textKind) coerce(r *round, raw string) (string, error) { return raw, nil }

func (textKind) format(v string) string { return v }

func (k textKind) masked() bool { return k.password }

type integerKind struct{}

// Integer parses a base-10 integer.
func Integer() Kind[int] { return integerKind{} }

func (integerKind) Name() string { return "int" }

func (integerKind) check() error { return nil }

func (k integerKind) render(r *round, def *int) (string, error) {
	if def == nil {
		return r.inlinePrompt("", false), nil
	}
	return r.inlinePrompt(k.format(*def), true), nil
}

func (integerKind) coerce(r *round, raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &CoercionError{Reason: NotANumber, Input: raw}
	}
	return v, nil
}

func (integerKind) format(v int) string { return strconv.Itoa(v) }

func (integerKind) masked() bool { return false }

type floatKind struct{}

// Float parses a decimal number.
func Float() Kind[float64] { return floatKind{} }

func (floatKind) Name() string { return "float" }

func (floatKind) check() error { return nil }

func (k floatKind) render(r *round, def *float64) (string, error) {
	if def == nil {
		return r.inlinePrompt("", false), nil
	}
	return r.inlinePrompt(k.format(*def), true), nil
}

func (floatKind) coerce(r *round, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &CoercionError{Reason: NotANumber, Input: raw}
	}
	return v, nil
}

func (floatKind) format(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func (floatKind) masked() bool { return false }

type optionKind struct {
	options []string
}

// Option selects one of options, either by its 1-based number or by its
// exact text.
func Option(options ...string) Kind[string] {
	return optionKind{options: append([]string(nil), options...)}
}

func (optionKind) Name() string { return "option" }

func (k optionKind) check() error {
	if len(k.options) == 0 {
		return errors.New("option prompt has no options")
	}
	return nil
}

func (k optionKind) render(r *round, def *string) (string, error) {
	renderMenu(r, k.options, func(opt string) bool { return def != nil && opt == *def })
	return r.p.console.PromptText(fmt.Sprintf("Choose (1-%d / text)", len(k.options)), ""), nil
}

func (k optionKind) coerce(r *round, raw string) (string, error) {
	if v, ok := selectOption(k.options, raw); ok {
		return v, nil
	}
	return "", &CoercionError{Reason: InvalidOption, Input: raw}
}

func (optionKind) format(v string) string { return v }

func (optionKind) masked() bool { return false }

type multiSelectKind struct {
	options []string
}

// MultiSelect selects several options from a comma-separated line. Each part
// is resolved like an Option answer and the order of the line is kept.
func MultiSelect(options ...string) Kind[[]string] {
	return multiSelectKind{options: append([]string(nil), options...)}
}

func (multiSelectKind) Name() string { return "multiselect" }

func (k multiSelectKind) check() error {
	if len(k.options) == 0 {
		return errors.New("multiselect prompt has no options")
	}
	return nil
}

func (k multiSelectKind) render(r *round, def *[]string) (string, error) {
	renderMenu(r, k.options, func(opt string) bool {
		if def == nil {
			return false
		}
		for _, d := range *def {
			if d == opt {
				return true
			}
		}
		return false
	})
	return r.p.console.PromptText(fmt.Sprintf("Choose (1-%d / text, comma separated)", len(k.options)), ""), nil
}

// coerce fails as a whole when any part fails; every bad part is reported.
func (k multiSelectKind) coerce(r *round, raw string) ([]string, error) {
	var (
		selected []string
		errs     error
	)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		v, ok := selectOption(k.options, part)
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("%q", part))
			continue
		}
		selected = append(selected, v)
	}
	if errs != nil {
		return nil, &CoercionError{Reason: InvalidMultiSelectEntry, Input: raw, Err: errs}
	}
	return selected, nil
}

func (multiSelectKind) format(v []string) string { return strings.Join(v, ", ") }

func (multiSelectKind) masked() bool { return false }

// renderMenu prints the title followed by a 1-based numbered list.
func renderMenu(r *round, options []string, isDefault func(string) bool) {
	c := r.p.console
	c.Print("")
	c.Title(r.title)
	for i, opt := range options {
		mark := ""
		if isDefault(opt) {
			mark = " (default)"
		}
		c.Step(fmt.Sprintf("%d. %s%s", i+1, opt, mark))
	}
}

// selectOption resolves raw as a 1-based index first, then as literal text.
func selectOption(options []string, raw string) (string, bool) {
	if isDigits(raw) {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= len(options) {
			return options[n-1], true
		}
	}
	for _, opt := range options {
		if opt == raw {
			return opt, true
		}
	}
	return "", false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
