package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/wordcase/internal/cliutil"
)

// QuantifyFlags contains flags for the quantify command
type QuantifyFlags struct {
	Plural string
	Rules  string
}

// SetupQuantifyFlags creates and configures a FlagSet for the quantify command.
func SetupQuantifyFlags() (*flag.FlagSet, *QuantifyFlags) {
	fs := flag.NewFlagSet("quantify", flag.ContinueOnError)
	flags := &QuantifyFlags{}

	fs.StringVar(&flags.Plural, "plural", "", "explicit plural form of the unit")
	fs.StringVar(&flags.Rules, "rules", "", "YAML file with extra irregulars, acronyms and uncountable words")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: wordcase quantify [flags] <count> <unit>\n\n")
		cliutil.Writef(fs.Output(), "Print a count followed by the unit, pluralized unless the count is exactly one.\n")
		cliutil.Writef(fs.Output(), "The count is printed as given.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  wordcase quantify 3 file          # 3 files\n")
		cliutil.Writef(fs.Output(), "  wordcase quantify 1 child         # 1 child\n")
		cliutil.Writef(fs.Output(), "  wordcase quantify -plural kine 2 cow\n")
	}

	return fs, flags
}

// HandleQuantify executes the quantify command
func HandleQuantify(args []string) error {
	fs, flags := SetupQuantifyFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 2 {
		fs.Usage()
		return fmt.Errorf("quantify command requires a count and a unit")
	}
	if fs.Arg(1) == "" {
		return fmt.Errorf("unit must not be empty")
	}

	in, err := LoadInflector(flags.Rules)
	if err != nil {
		return err
	}

	var plural []string
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "plural" {
			plural = append(plural, flags.Plural)
		}
	})
	cliutil.Writef(stdout, "%s\n", in.Quantify(fs.Arg(0), fs.Arg(1), plural...))
	return nil
}
