// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes wordcase transforms as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/erraggy/wordcase"
	"github.com/erraggy/wordcase/casing"
	"github.com/erraggy/wordcase/internal/rulewatch"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `wordcase MCP server: converts identifiers between naming conventions and inflects English nouns.

Tools:
- convert_case: camel, pascal, kebab, snake, words or title (aliases such as snake_case or PascalCase are accepted); set all_styles to get every style at once
- tokenize: show the word boundaries used by every style, including version tokens like v2.0.1
- pluralize / singularize: batch inflection with irregular nouns and acronyms (API -> APIs)
- quantify: "3 children", "1 cat"
- list_styles: supported styles with an example

Configuration via WORDCASE_* environment variables in your MCP client config:
- WORDCASE_RULES_FILE: YAML file with extra irregulars, acronyms and uncountable words
- WORDCASE_WATCH_RULES (default: true): reload the rules file when it changes
- WORDCASE_LANGUAGE (default: und): BCP 47 tag for case mapping, e.g. tr
- WORDCASE_PRESERVE_ACRONYMS (default: false): keep XMLHttpRequest in Pascal case
- WORDCASE_MAX_INPUT_BYTES (default: 65536): size limit for every string argument
- WORDCASE_MAX_BATCH (default: 1000): word limit for pluralize and singularize`

// toolset holds the state shared by all tool handlers.
type toolset struct {
	rules *rulewatch.Holder
	caser *casing.Caser
	cfg   *serverConfig
}

func newToolset(c *serverConfig, rules *rulewatch.Holder) *toolset {
	return &toolset{
		rules: rules,
		caser: casing.New(
			casing.WithLanguage(c.Language),
			casing.WithPreserveAcronyms(c.PreserveAcronyms),
		),
		cfg: c,
	}
}

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	rules, err := loadRules(ctx, cfg)
	if err != nil {
		return err
	}
	defer rules.Stop()

	server := mcp.NewServer(
		&mcp.Implementation{Name: "wordcase", Version: wordcase.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server, newToolset(cfg, rules))
	return server.Run(ctx, &mcp.StdioTransport{})
}

func loadRules(ctx context.Context, c *serverConfig) (*rulewatch.Holder, error) {
	if c.RulesFile == "" {
		return rulewatch.NewStatic(nil), nil
	}
	logger := rulewatch.NewSlogAdapter(slog.Default()).With("component", "rules")
	holder, err := rulewatch.NewHolder(c.RulesFile, rulewatch.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("mcpserver: %w", err)
	}
	if c.WatchRules {
		if err := holder.Watch(ctx); err != nil {
			slog.Warn("rules file watch disabled", "error", err)
		}
	}
	return holder, nil
}

func registerAllTools(server *mcp.Server, ts *toolset) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "convert_case",
		Description: "Convert an identifier or phrase to a naming convention: camel (firstName), pascal (FirstName), kebab (first-name), snake (first_name), words (First name) or title (First Name). Style aliases such as snake_case, PascalCase or verbalize are accepted. Set all_styles=true to get every style in one call instead of a single style. Version tokens such as v2.0.1 are kept together.",
	}, ts.handleConvertCase)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "tokenize",
		Description: "Split an identifier into the words used by every case style. Returns each token with its kind (word, number or version) and the number of separators kebab and snake output put before it. Use this to explain why a conversion split words the way it did.",
	}, ts.handleTokenize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "pluralize",
		Description: "Pluralize one or more English nouns. Handles irregular nouns (child -> children), acronyms (API -> APIs), y -> ies and s/x/z/ch/sh -> es, and keeps the casing of the input (Person -> People). Extra rules can be configured with WORDCASE_RULES_FILE.",
	}, ts.handlePluralize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "singularize",
		Description: "Singularize one or more English nouns. Reverses irregular nouns (people -> person) and the plural suffix rules, keeping the casing of the input. Words that do not look plural are returned unchanged.",
	}, ts.handleSingularize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "quantify",
		Description: "Format a count with a unit, pluralizing the unit unless the count is exactly 1: \"1 cat\", \"3 cats\", \"0.5 cats\". The count is printed exactly as given. Provide plural to override the pluralized unit.",
	}, ts.handleQuantify)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_styles",
		Description: "List the supported case styles, their aliases and an example conversion for each.",
	}, ts.handleListStyles)
}

// checkInput rejects arguments larger than the configured limit.
func (ts *toolset) checkInput(field, value string) error {
	if len(value) > ts.cfg.MaxInputBytes {
		return fmt.Errorf("%s exceeds maximum size of %d bytes", field, ts.cfg.MaxInputBytes)
	}
	return nil
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
