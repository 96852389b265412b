// Package commands provides CLI command handlers for wordcase.
package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/erraggy/wordcase/inflect"
	"go.yaml.in/yaml/v4"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinArg is the special argument used to indicate reading inputs from stdin.
const StdinArg = "-"

// Standard streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// OutputStructured outputs data in the specified format (json or yaml) to stdout.
// Returns an error if marshaling fails.
func OutputStructured(data any, format string) error {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	_, err = fmt.Fprintln(stdout, strings.TrimRight(string(bytes), "\n"))
	return err
}

// ReadInputs returns args, or the non-empty lines of stdin when args is
// exactly "-".
func ReadInputs(args []string) ([]string, error) {
	if len(args) != 1 || args[0] != StdinArg {
		return args, nil
	}

	var inputs []string
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return inputs, nil
}

// LoadInflector returns the default Inflector, or one extended with the
// rules in rulesPath when it is set.
func LoadInflector(rulesPath string) (*inflect.Inflector, error) {
	if rulesPath == "" {
		return inflect.Default(), nil
	}
	rules, err := inflect.LoadRules(rulesPath)
	if err != nil {
		return nil, err
	}
	in, err := inflect.New(inflect.WithRules(rules))
	if err != nil {
		return nil, fmt.Errorf("applying rules from %s: %w", rulesPath, err)
	}
	return in, nil
}
