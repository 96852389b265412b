package inflect

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/erraggy/wordcase/wcerrors"
	"go.yaml.in/yaml/v4"
)

// Rules holds extra inflection rules, usually loaded from a YAML file.
type Rules struct {
	// Irregulars maps singular nouns to their plural.
	Irregulars map[string]string `yaml:"irregulars,omitempty" json:"irregulars,omitempty"`
	// Acronyms maps uppercase acronyms to their plural spelling.
	Acronyms map[string]string `yaml:"acronyms,omitempty" json:"acronyms,omitempty"`
	// Uncountable lists words that have no distinct plural.
	Uncountable []string `yaml:"uncountable,omitempty" json:"uncountable,omitempty"`
}

// Validate checks that every entry is usable.
func (r *Rules) Validate() error {
	for singular, plural := range r.Irregulars {
		if err := validateIrregular(singular, plural); err != nil {
			return err
		}
	}
	if err := checkUniquePlurals(r.Irregulars); err != nil {
		return err
	}
	for acronym, plural := range r.Acronyms {
		if err := validateAcronym(acronym, plural); err != nil {
			return err
		}
	}
	for _, w := range r.Uncountable {
		if err := validateUncountable(w); err != nil {
			return err
		}
	}
	return nil
}

// LoadRules reads and parses a YAML rules file.
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("inflect: failed to read rules file: %w", err)
	}
	rules, err := ParseRules(data)
	if err != nil {
		var pe *wcerrors.ParseError
		if errors.As(err, &pe) && pe.Path == "" {
			pe.Path = path
		}
		return nil, err
	}
	return rules, nil
}

// ParseRules parses a YAML rules document. Unknown fields are rejected with
// their line and column. An empty document yields empty rules.
func ParseRules(data []byte) (*Rules, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &wcerrors.ParseError{Message: "invalid YAML", Cause: err}
	}

	rules := &Rules{}
	if len(root.Content) == 0 {
		return rules, nil
	}
	doc := root.Content[0]
	if isNull(doc) {
		return rules, nil
	}
	if doc.Kind != yaml.MappingNode {
		return nil, nodeError(doc, "rules document must be a mapping")
	}

	for i := 0; i+1 < len(doc.Content); i += 2 {
		key, val := doc.Content[i], doc.Content[i+1]
		var err error
		switch key.Value {
		case "irregulars":
			rules.Irregulars, err = decodeStringMap(key.Value, val)
		case "acronyms":
			rules.Acronyms, err = decodeStringMap(key.Value, val)
		case "uncountable":
			rules.Uncountable, err = decodeStringList(key.Value, val)
		default:
			err = nodeError(key, fmt.Sprintf("unknown field %q", key.Value))
		}
		if err != nil {
			return nil, err
		}
	}

	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return rules, nil
}

func decodeStringMap(field string, node *yaml.Node) (map[string]string, error) {
	if isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, nodeError(node, field+" must be a mapping of strings")
	}
	out := make(map[string]string, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return nil, nodeError(k, field+" entries must be strings")
		}
		if _, dup := out[k.Value]; dup {
			return nil, nodeError(k, fmt.Sprintf("duplicate %s entry %q", field, k.Value))
		}
		out[k.Value] = v.Value
	}
	return out, nil
}

func decodeStringList(field string, node *yaml.Node) ([]string, error) {
	if isNull(node) {
		return nil, nil
	}
	if node.Kind != yaml.SequenceNode {
		return nil, nodeError(node, field+" must be a list of strings")
	}
	out := make([]string, 0, len(node.Content))
	for _, item := range node.Content {
		if item.Kind != yaml.ScalarNode {
			return nil, nodeError(item, field+" entries must be strings")
		}
		out = append(out, item.Value)
	}
	return out, nil
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && (node.Tag == "!!null" || (node.Tag == "" && node.Value == ""))
}

func nodeError(node *yaml.Node, msg string) *wcerrors.ParseError {
	return &wcerrors.ParseError{Line: node.Line, Column: node.Column, Message: msg}
}

func validateIrregular(singular, plural string) error {
	if strings.TrimSpace(singular) == "" {
		return &wcerrors.ConfigError{Option: "irregulars", Value: singular, Message: "singular must not be empty"}
	}
	if strings.TrimSpace(plural) == "" {
		return &wcerrors.ConfigError{Option: "irregulars", Value: singular, Message: "plural must not be empty"}
	}
	return nil
}

func validateAcronym(acronym, plural string) error {
	if strings.TrimSpace(acronym) == "" {
		return &wcerrors.ConfigError{Option: "acronyms", Value: acronym, Message: "acronym must not be empty"}
	}
	if acronym != strings.ToUpper(acronym) {
		return &wcerrors.ConfigError{Option: "acronyms", Value: acronym, Message: "acronym must be uppercase"}
	}
	if strings.TrimSpace(plural) == "" {
		return &wcerrors.ConfigError{Option: "acronyms", Value: acronym, Message: "plural must not be empty"}
	}
	return nil
}

func validateUncountable(word string) error {
	if strings.TrimSpace(word) == "" {
		return &wcerrors.ConfigError{Option: "uncountable", Value: word, Message: "word must not be empty"}
	}
	return nil
}
