package form

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/simonhull/firebird-suite/perch/filesystem"
	"github.com/simonhull/firebird-suite/perch/input"
)

// Defaults fill in question fields left unset in a form.
type Defaults struct {
	ErrorMessage string
	Timeout      time.Duration
	MaxRetry     int
}

// questionError points at the field of a question that cannot be compiled.
type questionError struct {
	field      string
	message    string
	suggestion string
}

func (e *questionError) Error() string { return e.message }

func fieldErr(field, suggestion, format string, args ...any) error {
	return &questionError{field: field, message: fmt.Sprintf(format, args...), suggestion: suggestion}
}

// asker runs one compiled question.
type asker func(p *input.Prompter) Answer

// common holds the kind-independent settings of a question.
type common struct {
	name              string
	title             string
	errorMessage      string
	useDefaultOnError bool
	allowEmpty        bool
	pattern           string
	maxRetry          int
	timeout           time.Duration
}

func compileCommon(q Question, d Defaults) (common, error) {
	c := common{
		name:              q.Name,
		title:             q.Title,
		errorMessage:      q.ErrorMessage,
		useDefaultOnError: q.UseDefaultOnError,
		allowEmpty:        q.AllowEmpty,
		pattern:           q.Regex,
		maxRetry:          q.MaxRetry,
		timeout:           d.Timeout,
	}
	if c.title == "" {
		c.title = q.Name
	}
	if c.errorMessage == "" {
		c.errorMessage = d.ErrorMessage
	}

	if q.MaxRetry < 0 {
		return c, fieldErr("max_retry", "use 0 to retry forever", "max_retry must not be negative, got %d", q.MaxRetry)
	}
	if c.maxRetry == 0 {
		c.maxRetry = d.MaxRetry
	}

	if q.Timeout != "" {
		t, err := time.ParseDuration(q.Timeout)
		if err != nil {
			return c, fieldErr("timeout", "use a duration like '30s' or '2m'", "invalid timeout '%s'", q.Timeout)
		}
		if t < 0 {
			return c, fieldErr("timeout", "", "timeout must not be negative, got %s", q.Timeout)
		}
		c.timeout = t
	}

	if q.Regex != "" {
		if _, err := regexp.Compile(q.Regex); err != nil {
			return c, fieldErr("regex", "", "invalid regex '%s': %v", q.Regex, err)
		}
	}

	return c, nil
}

// compile turns a question into an asker bound to the Go type of its kind.
func compile(q Question, d Defaults) (asker, error) {
	c, err := compileCommon(q, d)
	if err != nil {
		return nil, err
	}

	typ := strings.ToLower(strings.TrimSpace(q.Type))
	if typ != "int" && typ != "float" && (q.Min != nil || q.Max != nil) {
		field := "min"
		if q.Min == nil {
			field = "max"
		}
		return nil, fieldErr(field, "remove it or change the type to int or float", "%s applies to numbers only", field)
	}
	if q.Min != nil && q.Max != nil && *q.Min > *q.Max {
		return nil, fieldErr("min", "", "min %v is greater than max %v", *q.Min, *q.Max)
	}

	switch typ {
	case "", "str", "string", "text":
		def, err := stringDefault(q.Default)
		if err != nil {
			return nil, err
		}
		return bind(c, input.Text(), def, nil), nil

	case "password":
		def, err := stringDefault(q.Default)
		if err != nil {
			return nil, err
		}
		return bind(c, input.Password(), def, nil), nil

	case "int":
		def, err := intDefault(q.Default)
		if err != nil {
			return nil, err
		}
		return bind(c, input.Integer(), def, numberRange[int](q.Min, q.Max)), nil

	case "float":
		def, err := floatDefault(q.Default)
		if err != nil {
			return nil, err
		}
		return bind(c, input.Float(), def, numberRange[float64](q.Min, q.Max)), nil

	case "option":
		if len(q.Options) == 0 {
			return nil, fieldErr("options", "", "option questions need at least one option")
		}
		def, err := stringDefault(q.Default)
		if err != nil {
			return nil, err
		}
		return bind(c, input.Option(q.Options...), def, nil), nil

	case "multiselect":
		if len(q.Options) == 0 {
			return nil, fieldErr("options", "", "multiselect questions need at least one option")
		}
		def, err := listDefault(q.Default)
		if err != nil {
			return nil, err
		}
		return bind(c, input.MultiSelect(q.Options...), def, nil), nil

	case "file", "folder":
		def, err := stringDefault(q.Default)
		if err != nil {
			return nil, err
		}
		create := input.NoCreate
		if q.AutoCreate {
			create = input.CreateWithConfirm
			if q.ConfirmCreate != nil && !*q.ConfirmCreate {
				create = input.CreateSilently
			}
		}
		kind := input.File(create)
		if typ == "folder" {
			kind = input.Folder(create)
		}
		return bind(c, kind, def, nil), nil

	case "fileselect":
		out, err := input.ParseOutputForm(q.Output)
		if err != nil {
			return nil, fieldErr("output", "use fullpath, relative or filename", "%v", err)
		}
		if err := filesystem.ValidateFilter(q.Filter); err != nil {
			return nil, fieldErr("filter", "use extensions like 'txt', '.csv' or '*.json'", "%v", err)
		}
		def, err := stringDefault(q.Default)
		if err != nil {
			return nil, err
		}
		picker := input.Picker{Dir: q.Directory, Filter: q.Filter, Output: out}
		return bind(c, input.FileSelect(picker), def, nil), nil

	default:
		return nil, fieldErr("type", "use str, int, float, option, multiselect, password, file, folder or fileselect",
			"unknown question type '%s'", q.Type)
	}
}

// bind builds the typed Spec once and returns a closure that resolves it.
func bind[T any](c common, kind input.Kind[T], def *T, v input.Validator[T]) asker {
	spec := input.Spec[T]{
		Title:             c.title,
		Kind:              kind,
		Default:           def,
		ErrorMessage:      c.errorMessage,
		UseDefaultOnError: c.useDefaultOnError,
		AllowEmpty:        c.allowEmpty,
		Validator:         v,
		Pattern:           c.pattern,
		MaxRetry:          c.maxRetry,
		Timeout:           c.timeout,
	}

	return func(p *input.Prompter) Answer {
		res := input.Resolve(p, spec)
		a := Answer{Name: c.name, Present: res.Present, Outcome: res.Outcome}
		if res.Present {
			a.Value = res.Value
		}
		return a
	}
}

// numberRange rejects values outside [lo, hi]; either bound may be nil.
func numberRange[T int | float64](lo, hi *float64) input.Validator[T] {
	if lo == nil && hi == nil {
		return nil
	}
	return input.ValidatorFunc[T](func(v T) bool {
		f := float64(v)
		if lo != nil && f < *lo {
			return false
		}
		if hi != nil && f > *hi {
			return false
		}
		return true
	})
}

func stringDefault(v any) (*string, error) {
	switch d := v.(type) {
	case nil:
		return nil, nil
	case string:
		return input.Default(d), nil
	case int, float64, bool:
		return input.Default(fmt.Sprint(d)), nil
	default:
		return nil, fieldErr("default", "", "default must be a single value, got %T", v)
	}
}

func intDefault(v any) (*int, error) {
	switch d := v.(type) {
	case nil:
		return nil, nil
	case int:
		return input.Default(d), nil
	case float64:
		if d == math.Trunc(d) {
			return input.Default(int(d)), nil
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(d)); err == nil {
			return input.Default(n), nil
		}
	}
	return nil, fieldErr("default", "", "default %v is not an integer", v)
}

func floatDefault(v any) (*float64, error) {
	switch d := v.(type) {
	case nil:
		return nil, nil
	case float64:
		return input.Default(d), nil
	case int:
		return input.Default(float64(d)), nil
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(d), 64); err == nil {
			return input.Default(f), nil
		}
	}
	return nil, fieldErr("default", "", "default %v is not a number", v)
}

// listDefault accepts a YAML list or a comma-separated string.
func listDefault(v any) (*[]string, error) {
	switch d := v.(type) {
	case nil:
		return nil, nil
	case string:
		parts := strings.Split(d, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return input.Default(parts), nil
	case []any:
		items := make([]string, 0, len(d))
		for _, item := range d {
			switch item.(type) {
			case string, int, float64, bool:
				items = append(items, fmt.Sprint(item))
			default:
				return nil, fieldErr("default", "", "default list items must be scalars, got %T", item)
			}
		}
		return input.Default(items), nil
	case []string:
		return input.Default(append([]string(nil), d...)), nil
	default:
		return nil, fieldErr("default", "use a list or a comma-separated string", "invalid multiselect default %v", v)
	}
}
