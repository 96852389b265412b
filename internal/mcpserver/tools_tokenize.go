package mcpserver

import (
	"context"

	"github.com/erraggy/wordcase/tokenizer"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type tokenizeInput struct {
	Input string `json:"input" jsonschema:"The identifier or phrase to split into words"`
}

type tokenOutput struct {
	Text string `json:"text"`
	Kind string `json:"kind"`
	Sep  int    `json:"sep"`
}

type tokenizeOutput struct {
	Input  string        `json:"input"`
	Count  int           `json:"count"`
	Words  []string      `json:"words"`
	Tokens []tokenOutput `json:"tokens,omitempty"`
}

func (ts *toolset) handleTokenize(_ context.Context, _ *mcp.CallToolRequest, input tokenizeInput) (*mcp.CallToolResult, tokenizeOutput, error) {
	if err := ts.checkInput("input", input.Input); err != nil {
		return errResult(err), tokenizeOutput{}, nil
	}

	tokens := tokenizer.Tokenize(input.Input)
	output := tokenizeOutput{
		Input:  input.Input,
		Count:  len(tokens),
		Words:  make([]string, 0, len(tokens)),
		Tokens: makeSlice[tokenOutput](len(tokens)),
	}
	for _, tok := range tokens {
		output.Words = append(output.Words, tok.Text)
		output.Tokens = append(output.Tokens, tokenOutput{
			Text: tok.Text,
			Kind: tok.Kind.String(),
			Sep:  tok.Sep,
		})
	}
	return nil, output, nil
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}
