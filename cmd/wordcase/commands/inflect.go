package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/wordcase/inflect"
	"github.com/erraggy/wordcase/internal/cliutil"
)

// InflectFlags contains flags for the plural and singular commands
type InflectFlags struct {
	Rules  string
	Format string
}

// inflectCommand describes one direction of inflection.
type inflectCommand struct {
	name    string
	summary string
	example string
	apply   func(*inflect.Inflector, string) string
}

var (
	pluralCommand = inflectCommand{
		name:    "plural",
		summary: "Print the plural form of each word, keeping its casing.",
		example: "child API Person box",
		apply:   (*inflect.Inflector).Pluralize,
	}
	singularCommand = inflectCommand{
		name:    "singular",
		summary: "Print the singular form of each word, keeping its casing.",
		example: "children APIs People boxes",
		apply:   (*inflect.Inflector).Singularize,
	}
)

func (c inflectCommand) setupFlags() (*flag.FlagSet, *InflectFlags) {
	fs := flag.NewFlagSet(c.name, flag.ContinueOnError)
	flags := &InflectFlags{}

	fs.StringVar(&flags.Rules, "rules", "", "YAML file with extra irregulars, acronyms and uncountable words")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: wordcase %s [flags] <word...|->\n\n", c.name)
		cliutil.Writef(fs.Output(), "%s\n\n", c.summary)
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  wordcase %s %s\n", c.name, c.example)
		cliutil.Writef(fs.Output(), "  wordcase %s -rules catalog.yaml SKU\n", c.name)
	}

	return fs, flags
}

// Inflection is the structured output of one inflected word.
type Inflection struct {
	Word   string `json:"word" yaml:"word"`
	Result string `json:"result" yaml:"result"`
}

func (c inflectCommand) handle(args []string) error {
	fs, flags := c.setupFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("%s command requires at least one word or '-' for stdin", c.name)
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	in, err := LoadInflector(flags.Rules)
	if err != nil {
		return err
	}
	words, err := ReadInputs(fs.Args())
	if err != nil {
		return err
	}

	results := make([]Inflection, 0, len(words))
	for _, w := range words {
		results = append(results, Inflection{Word: w, Result: c.apply(in, w)})
	}

	if flags.Format != FormatText {
		return OutputStructured(results, flags.Format)
	}
	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, r.Result)
	}
	cliutil.WriteLines(stdout, lines)
	return nil
}

// SetupPluralFlags creates and configures a FlagSet for the plural command.
func SetupPluralFlags() (*flag.FlagSet, *InflectFlags) {
	return pluralCommand.setupFlags()
}

// HandlePlural executes the plural command
func HandlePlural(args []string) error {
	return pluralCommand.handle(args)
}

// SetupSingularFlags creates and configures a FlagSet for the singular command.
func SetupSingularFlags() (*flag.FlagSet, *InflectFlags) {
	return singularCommand.setupFlags()
}

// HandleSingular executes the singular command
func HandleSingular(args []string) error {
	return singularCommand.handle(args)
}
