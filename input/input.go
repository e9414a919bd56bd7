package input

var std *Prompter

func defaultPrompter() *Prompter {
	if std == nil {
		std = New(nil)
	}
	return std
}

// Prompt asks the user for text input with an optional default value.
// If the user presses Enter without typing anything, the default is returned.
//
// Example:
//
//	name := input.Prompt("Project name", "demo")
//	// Displays: Project name (default: demo): _
func Prompt(message, defaultValue string) string {
	spec := Spec[string]{Title: message, Kind: Text(), AllowEmpty: true}
	if defaultValue != "" {
		spec.Default = Default(defaultValue)
	}
	return Resolve(defaultPrompter(), spec).Value
}

// Confirm asks the user a yes/no question on the terminal.
// Returns true only for an affirmative answer ("y", case-insensitive).
//
// Example:
//
//	if input.Confirm("Overwrite answers.yml?") {
//	    // User said yes
//	}
//	// Displays: Overwrite answers.yml? [y/n]: _
func Confirm(message string) bool {
	return defaultPrompter().Confirm(message)
}

// Ask resolves spec on the terminal. See Resolve.
func Ask[T any](spec Spec[T]) Result[T] {
	return Resolve(defaultPrompter(), spec)
}
