package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/wordcase/casing"
	"github.com/erraggy/wordcase/internal/cliutil"
	"golang.org/x/text/language"
)

// ConvertFlags contains flags for the convert command
type ConvertFlags struct {
	Style              string
	Format             string
	Language           string
	PreserveAcronyms   bool
	CollapseSeparators bool
}

// SetupConvertFlags creates and configures a FlagSet for the convert command.
// Returns the FlagSet and a ConvertFlags struct with bound flag variables.
func SetupConvertFlags() (*flag.FlagSet, *ConvertFlags) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	flags := &ConvertFlags{}

	fs.StringVar(&flags.Style, "s", "", "target style (default: every style)")
	fs.StringVar(&flags.Style, "style", "", "target style (default: every style)")
	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.Language, "lang", "", "BCP 47 language used for case mapping (e.g. \"tr\")")
	fs.BoolVar(&flags.PreserveAcronyms, "preserve-acronyms", false, "keep fully uppercase words in camel and pascal output")
	fs.BoolVar(&flags.CollapseSeparators, "collapse", false, "collapse repeated separators in kebab and snake output")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: wordcase convert [flags] <input...|->\n\n")
		cliutil.Writef(fs.Output(), "Convert identifiers and phrases between naming conventions.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nStyles:\n")
		for _, s := range casing.Styles() {
			cliutil.Writef(fs.Output(), "  %-8s %s\n", s, casing.Convert(s, "XMLHttpRequest v2"))
		}
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  wordcase convert -s kebab apiV2Response\n")
		cliutil.Writef(fs.Output(), "  wordcase convert -s snake_case HTMLParser fooBar\n")
		cliutil.Writef(fs.Output(), "  wordcase convert XMLHttpRequest\n")
		cliutil.Writef(fs.Output(), "  cut -f1 names.tsv | wordcase convert -s pascal -\n")
	}

	return fs, flags
}

// ConvertResult is the structured output of one converted input.
type ConvertResult struct {
	Input   string                  `json:"input" yaml:"input"`
	Result  string                  `json:"result,omitempty" yaml:"result,omitempty"`
	Results map[casing.Style]string `json:"results,omitempty" yaml:"results,omitempty"`
}

// HandleConvert executes the convert command
func HandleConvert(args []string) error {
	fs, flags := SetupConvertFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("convert command requires at least one input or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	var style casing.Style
	if flags.Style != "" {
		var err error
		if style, err = casing.ParseStyle(flags.Style); err != nil {
			return err
		}
	}

	opts := []casing.Option{
		casing.WithPreserveAcronyms(flags.PreserveAcronyms),
		casing.WithCollapseSeparators(flags.CollapseSeparators),
	}
	if flags.Language != "" {
		tag, err := language.Parse(flags.Language)
		if err != nil {
			return fmt.Errorf("invalid language '%s': %w", flags.Language, err)
		}
		opts = append(opts, casing.WithLanguage(tag))
	}
	c := casing.New(opts...)

	inputs, err := ReadInputs(fs.Args())
	if err != nil {
		return err
	}

	results := make([]ConvertResult, 0, len(inputs))
	for _, in := range inputs {
		if style != "" {
			results = append(results, ConvertResult{Input: in, Result: c.Convert(style, in)})
		} else {
			results = append(results, ConvertResult{Input: in, Results: c.ConvertAll(in)})
		}
	}

	if flags.Format != FormatText {
		return OutputStructured(results, flags.Format)
	}

	if style != "" {
		lines := make([]string, 0, len(results))
		for _, r := range results {
			lines = append(lines, r.Result)
		}
		cliutil.WriteLines(stdout, lines)
		return nil
	}
	for i, r := range results {
		if i > 0 {
			cliutil.Writef(stdout, "\n")
		}
		if len(results) > 1 {
			cliutil.Writef(stdout, "%s:\n", r.Input)
		}
		for _, s := range casing.Styles() {
			cliutil.Writef(stdout, "  %-8s %s\n", s, r.Results[s])
		}
	}
	return nil
}
