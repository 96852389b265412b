package main

import (
	"fmt"
	"os"

	"github.com/erraggy/wordcase/cmd/wordcase/commands"
)

type command struct {
	name    string
	summary string
	run     func(args []string) error
}

var commandList = []command{
	{"convert", "Convert identifiers between naming conventions", commands.HandleConvert},
	{"tokenize", "Show the words an identifier is split into", commands.HandleTokenize},
	{"plural", "Pluralize English nouns", commands.HandlePlural},
	{"singular", "Singularize English nouns", commands.HandleSingular},
	{"quantify", "Format a count followed by a unit", commands.HandleQuantify},
	{"serve", "Serve the transforms as a JSON HTTP API", commands.HandleServe},
	{"mcp", "Run the MCP server over stdio", commands.HandleMCP},
	{"version", "Show version information", commands.HandleVersion},
	{"help", "Show this help message", nil},
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	name := os.Args[1]
	switch name {
	case "help", "-h", "--help":
		printUsage()
		return
	case "-v", "--version":
		name = "version"
	}

	for _, c := range commandList {
		if c.name != name || c.run == nil {
			continue
		}
		if err := c.run(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Fprintf(os.Stderr, "Unknown command: %s\n", name)
	if suggestion := suggestCommand(name); suggestion != "" {
		fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", suggestion)
	}
	fmt.Fprintln(os.Stderr)
	printUsage()
	os.Exit(1)
}

// suggestCommand returns the command closest to name, or "" when none is
// within an edit distance of 2.
func suggestCommand(name string) string {
	best, bestDist := "", 3
	for _, c := range commandList {
		if d := editDistance(name, c.name); d < bestDist {
			best, bestDist = c.name, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func printUsage() {
	fmt.Println(`wordcase - identifier case conversion and English inflection

Usage:
  wordcase <command> [options]

Commands:`)
	for _, c := range commandList {
		fmt.Printf("  %-10s  %s\n", c.name, c.summary)
	}
	fmt.Println(`
Examples:
  wordcase convert -s kebab apiV2Response
  wordcase convert XMLHttpRequest
  wordcase tokenize html5Parser
  wordcase plural child API Person
  wordcase quantify 2 child
  wordcase serve -addr :8080 -rules rules.yaml -watch

Run 'wordcase <command> --help' for more information on a command.`)
}
