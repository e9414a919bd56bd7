// Package input turns lines typed at a terminal into typed, validated values.
//
// # Overview
//
// A prompt is described by a Spec: a title, a Kind (how the line becomes a
// value), an optional default and the retry policy. Resolve runs a small
// state machine until the value is valid, or falls back to the default:
//
//	prompting -> validating -> succeeded
//	    |            |
//	    +--> retrying <--+--> exhausted
//	    |
//	    +--> timed out | defaulted | empty | aborted
//
// # Usage
//
//	p := input.New(nil)
//
//	port := input.Resolve(p, input.Spec[int]{
//	    Title:     "Port",
//	    Kind:      input.Integer(),
//	    Default:   input.Default(8080),
//	    MaxRetry:  3,
//	    Validator: input.ValidatorFunc[int](func(v int) bool { return v > 0 && v < 65536 }),
//	})
//
//	db := input.Resolve(p, input.Spec[string]{
//	    Title: "Database",
//	    Kind:  input.Option("postgres", "mysql", "sqlite"),
//	})
//
//	schema := input.Resolve(p, input.Spec[string]{
//	    Title: "Schema file",
//	    Kind: input.FileSelect(input.Picker{
//	        Dir:    "./schemas",
//	        Filter: []string{"yml", ".yaml"},
//	        Output: input.Relative,
//	    }),
//	})
//
// # Kinds
//
//   - Text, Password: the line as typed (Password reads without echo)
//   - Integer, Float: base-10 numbers
//   - Option: one option, by 1-based number or exact text
//   - MultiSelect: comma-separated options, all or nothing
//   - File, Folder: existing paths, optionally created on demand
//   - FileSelect: a numbered menu of files matching a filter
//
// # Results
//
// Resolve never returns an error. Result.Outcome tells how the call ended
// and Result.Present whether Value holds anything. The empty-marker is a
// result with Outcome Empty, returned only when AllowEmpty is set and no
// default exists.
//
// # Non-Interactive Mode
//
// In CI/CD or automated environments, pass a LineReader over a prepared
// stream, or use flags in your CLI to bypass interactive prompts:
//
//	if moduleFlag != "" {
//	    modulePath = moduleFlag  // Use flag value
//	} else {
//	    modulePath = input.Prompt("Module path", "default")  // Prompt user
//	}
package input
