package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/wordcase/internal/cliutil"
	"github.com/erraggy/wordcase/tokenizer"
)

// TokenizeFlags contains flags for the tokenize command
type TokenizeFlags struct {
	Format string
}

// SetupTokenizeFlags creates and configures a FlagSet for the tokenize command.
func SetupTokenizeFlags() (*flag.FlagSet, *TokenizeFlags) {
	fs := flag.NewFlagSet("tokenize", flag.ContinueOnError)
	flags := &TokenizeFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: wordcase tokenize [flags] <input>\n\n")
		cliutil.Writef(fs.Output(), "Show the words every case style is built from.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nOutput columns (text format):\n")
		cliutil.Writef(fs.Output(), "  KIND  word, number, or version\n")
		cliutil.Writef(fs.Output(), "  SEP   separators before the token in kebab and snake output\n")
		cliutil.Writef(fs.Output(), "  TEXT  the token text\n")
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  wordcase tokenize apiV1.2Build42\n")
		cliutil.Writef(fs.Output(), "  wordcase tokenize -format json 'foo__bar'\n")
	}

	return fs, flags
}

// TokenOutput is the structured form of a token.
type TokenOutput struct {
	Text string `json:"text" yaml:"text"`
	Kind string `json:"kind" yaml:"kind"`
	Sep  int    `json:"sep" yaml:"sep"`
}

// HandleTokenize executes the tokenize command
func HandleTokenize(args []string) error {
	fs, flags := SetupTokenizeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("tokenize command requires exactly one input")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	tokens := tokenizer.Tokenize(fs.Arg(0))
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, TokenOutput{Text: tok.Text, Kind: tok.Kind.String(), Sep: tok.Sep})
	}

	if flags.Format != FormatText {
		return OutputStructured(out, flags.Format)
	}

	cliutil.Writef(stdout, "%-8s %3s  %s\n", "KIND", "SEP", "TEXT")
	for _, tok := range out {
		cliutil.Writef(stdout, "%-8s %3d  %s\n", tok.Kind, tok.Sep, tok.Text)
	}
	return nil
}
