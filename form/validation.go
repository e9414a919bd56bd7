package form

import (
	"bytes"
	"fmt"
)

// ValidationError represents a form validation error with context
type ValidationError struct {
	Field      string // Field path (e.g., "spec.questions.0.type")
	Message    string // Error message
	Suggestion string // Helpful suggestion (optional)
	Line       int    // Line number in YAML (if available)
}

// Error returns a formatted error message
func (e *ValidationError) Error() string {
	var msg string
	if e.Line > 0 {
		msg = fmt.Sprintf("validation error at %s (line %d): %s", e.Field, e.Line, e.Message)
	} else {
		msg = fmt.Sprintf("validation error at %s: %s", e.Field, e.Message)
	}
	if e.Suggestion != "" {
		msg += fmt.Sprintf(". Suggestion: %s", e.Suggestion)
	}
	return msg
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error returns all validation errors formatted with clear separation
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("found %d validation errors:\n", len(e)))
	for i, err := range e {
		buf.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return buf.String()
}

// Validate checks a definition built in code
func Validate(def *Definition) error {
	return validate(def, nil)
}

func validate(def *Definition, lineMap map[string]int) error {
	var errs ValidationErrors

	add := func(field, msg, suggestion string) {
		errs = append(errs, ValidationError{
			Field:      field,
			Message:    msg,
			Suggestion: suggestion,
			Line:       lineMap[field],
		})
	}

	switch def.APIVersion {
	case "":
		add("apiVersion", "apiVersion is required", "")
	case "v1":
	default:
		add("apiVersion", fmt.Sprintf("invalid apiVersion '%s'", def.APIVersion), "use 'v1'")
	}

	switch def.Kind {
	case "":
		add("kind", "kind is required", "")
	case "Form":
	default:
		add("kind", fmt.Sprintf("invalid kind '%s'", def.Kind), "use 'Form'")
	}

	if def.Name == "" {
		add("name", "name is required", "")
	}

	if len(def.Spec.Questions) == 0 {
		add("spec.questions", "at least one question is required", "")
	}

	seen := make(map[string]int)
	for i, q := range def.Spec.Questions {
		path := fmt.Sprintf("spec.questions.%d", i)

		if q.Name == "" {
			add(path+".name", "name is required", "")
		} else if prev, dup := seen[q.Name]; dup {
			add(path+".name", fmt.Sprintf("duplicate question name '%s'", q.Name),
				fmt.Sprintf("already used by spec.questions.%d", prev))
		} else {
			seen[q.Name] = i
		}

		if _, err := compile(q, Defaults{}); err != nil {
			field := path
			if qe, ok := err.(*questionError); ok {
				field = path + "." + qe.field
			}
			add(field, err.Error(), suggestionFor(err))
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func suggestionFor(err error) string {
	if qe, ok := err.(*questionError); ok {
		return qe.suggestion
	}
	return ""
}
