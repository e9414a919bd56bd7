package form

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/simonhull/firebird-suite/perch/input"
)

// Answer is the result of one question.
type Answer struct {
	Name    string
	Value   any // string, int, float64 or []string; nil when not Present
	Present bool
	Outcome input.Outcome
}

// Answers keeps the order in which the questions were asked.
type Answers []Answer

// Get returns the answer named name.
func (a Answers) Get(name string) (Answer, bool) {
	for _, ans := range a {
		if ans.Name == name {
			return ans, true
		}
	}
	return Answer{}, false
}

// MarshalYAML encodes the answers as an ordered mapping of name to value.
// Answers without a value are written as null.
func (a Answers) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, ans := range a {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: ans.Name}
		val := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		if ans.Present {
			val = &yaml.Node{}
			if err := val.Encode(ans.Value); err != nil {
				return nil, fmt.Errorf("failed to encode answer %q: %w", ans.Name, err)
			}
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

// YAML renders the answers as a YAML document.
func (a Answers) YAML() ([]byte, error) {
	return yaml.Marshal(a)
}

// Ask resolves a single question with p.
func Ask(p *input.Prompter, q Question, d Defaults) (Answer, error) {
	ask, err := compile(q, d)
	if err != nil {
		if qe, ok := err.(*questionError); ok {
			return Answer{}, &ValidationError{Field: qe.field, Message: qe.message, Suggestion: qe.suggestion}
		}
		return Answer{}, err
	}
	return ask(p), nil
}

// Run asks every question of def in order. Nothing is asked when any
// question fails to compile.
func Run(p *input.Prompter, def *Definition, d Defaults) (Answers, error) {
	if err := Validate(def); err != nil {
		return nil, err
	}

	askers := make([]asker, len(def.Spec.Questions))
	for i, q := range def.Spec.Questions {
		ask, err := compile(q, d)
		if err != nil {
			return nil, fmt.Errorf("question %q: %w", q.Name, err)
		}
		askers[i] = ask
	}

	answers := make(Answers, 0, len(askers))
	for _, ask := range askers {
		answers = append(answers, ask(p))
	}
	return answers, nil
}
