package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/wordcase/internal/cliutil"
	"github.com/erraggy/wordcase/internal/mcpserver"
)

// SetupMCPFlags creates and configures a FlagSet for the mcp command.
func SetupMCPFlags() *flag.FlagSet {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: wordcase mcp\n\n")
		cliutil.Writef(fs.Output(), "Run a Model Context Protocol server over stdin/stdout.\n\n")
		cliutil.Writef(fs.Output(), "Environment:\n")
		cliutil.Writef(fs.Output(), "  WORDCASE_RULES_FILE          YAML rules file (default: built-in rules only)\n")
		cliutil.Writef(fs.Output(), "  WORDCASE_WATCH_RULES         reload the rules file on change (default: true)\n")
		cliutil.Writef(fs.Output(), "  WORDCASE_LANGUAGE            BCP 47 language for case mapping\n")
		cliutil.Writef(fs.Output(), "  WORDCASE_PRESERVE_ACRONYMS   keep uppercase words in camel/pascal output (default: false)\n")
		cliutil.Writef(fs.Output(), "  WORDCASE_MAX_INPUT_BYTES     maximum size of one input (default: 65536)\n")
		cliutil.Writef(fs.Output(), "  WORDCASE_MAX_BATCH           maximum words per pluralize/singularize call (default: 1000)\n")
	}

	return fs
}

// HandleMCP executes the mcp command. It returns when stdin closes or on
// SIGINT or SIGTERM.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
