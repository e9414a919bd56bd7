package form

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Definition is a parsed .perch.yml form
type Definition struct {
	APIVersion string         `yaml:"apiVersion"`
	Kind       string         `yaml:"kind"`
	Name       string         `yaml:"name"`
	Metadata   map[string]any `yaml:"metadata,omitempty"`
	Spec       Spec           `yaml:"spec"`
}

// Spec contains the questions of a form, asked in order
type Spec struct {
	Questions []Question `yaml:"questions"`
}

// Question describes one prompt
type Question struct {
	Name              string     `yaml:"name"`
	Title             string     `yaml:"title,omitempty"`
	Type              string     `yaml:"type,omitempty"` // str, int, float, option, multiselect, password, file, folder, fileselect
	Options           []string   `yaml:"options,omitempty"`
	Default           any        `yaml:"default,omitempty"`
	ErrorMessage      string     `yaml:"error_message,omitempty"`
	UseDefaultOnError bool       `yaml:"use_default_on_error,omitempty"`
	AllowEmpty        bool       `yaml:"allow_empty,omitempty"`
	Regex             string     `yaml:"regex,omitempty"`
	MaxRetry          int        `yaml:"max_retry,omitempty"`
	Timeout           string     `yaml:"timeout,omitempty"` // Go duration, e.g. "30s"
	Min               *float64   `yaml:"min,omitempty"`     // Numbers only
	Max               *float64   `yaml:"max,omitempty"`     // Numbers only
	AutoCreate        bool       `yaml:"auto_create,omitempty"`
	ConfirmCreate     *bool      `yaml:"confirm_create,omitempty"` // Default: true
	Filter            StringList `yaml:"filter,omitempty"`         // fileselect: "txt" or [csv, .txt, "*.json"]
	Directory         string     `yaml:"directory,omitempty"`      // fileselect
	Output            string     `yaml:"output,omitempty"`         // fileselect: fullpath, relative, filename
}

// StringList accepts either a single string or a list of strings
type StringList []string

func (l *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*l = StringList{value.Value}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*l = items
		return nil
	default:
		return fmt.Errorf("line %d: expected a string or a list of strings", value.Line)
	}
}

// Parse reads and validates a form file
func Parse(path string) (*Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read form file: %w", err)
	}

	return ParseBytes(data)
}

// ParseBytes reads and validates a form from bytes
func ParseBytes(data []byte) (*Definition, error) {
	// First pass: parse with node API to get line numbers
	var rootNode yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&rootNode); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	lineMap := make(map[string]int)
	extractLineNumbers(&rootNode, "", lineMap)

	// Second pass: strict parsing to catch misspelled fields
	var def Definition
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&def); err != nil {
		return nil, fmt.Errorf("failed to parse form (check for unknown/misspelled fields): %w", err)
	}

	if err := validate(&def, lineMap); err != nil {
		return nil, err
	}

	return &def, nil
}

// extractLineNumbers records the line of every mapping value and sequence
// item under a dotted path (e.g., "spec.questions.0.type").
func extractLineNumbers(node *yaml.Node, path string, lineMap map[string]int) {
	if node == nil {
		return
	}

	if path != "" {
		lineMap[path] = node.Line
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) > 0 {
			extractLineNumbers(node.Content[0], path, lineMap)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			newPath := key
			if path != "" {
				newPath = path + "." + key
			}
			extractLineNumbers(node.Content[i+1], newPath, lineMap)
		}
	case yaml.SequenceNode:
		for i, child := range node.Content {
			extractLineNumbers(child, fmt.Sprintf("%s.%d", path, i), lineMap)
		}
	}
}
