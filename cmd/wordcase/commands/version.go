package commands

import (
	"errors"
	"flag"

	"github.com/erraggy/wordcase"
	"github.com/erraggy/wordcase/internal/cliutil"
)

// HandleVersion executes the version command
func HandleVersion(args []string) error {
	fs := flag.NewFlagSet("version", flag.ContinueOnError)
	verbose := fs.Bool("verbose", false, "show commit, build time and Go version")
	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: wordcase version [-verbose]\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *verbose {
		cliutil.Writef(stdout, "%s\n", wordcase.BuildInfo())
		return nil
	}
	cliutil.Writef(stdout, "wordcase v%s\n", wordcase.Version())
	return nil
}
