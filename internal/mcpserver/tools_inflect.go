package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type inflectInput struct {
	Words []string `json:"words" jsonschema:"The words to inflect"`
}

type inflection struct {
	Word   string `json:"word"`
	Result string `json:"result"`
}

type inflectOutput struct {
	Count   int          `json:"count"`
	Results []inflection `json:"results,omitempty"`
}

func (ts *toolset) handlePluralize(_ context.Context, _ *mcp.CallToolRequest, input inflectInput) (*mcp.CallToolResult, inflectOutput, error) {
	return ts.inflectAll(input, ts.rules.Inflector().Pluralize)
}

func (ts *toolset) handleSingularize(_ context.Context, _ *mcp.CallToolRequest, input inflectInput) (*mcp.CallToolResult, inflectOutput, error) {
	return ts.inflectAll(input, ts.rules.Inflector().Singularize)
}

func (ts *toolset) inflectAll(input inflectInput, fn func(string) string) (*mcp.CallToolResult, inflectOutput, error) {
	if len(input.Words) == 0 {
		return errResult(fmt.Errorf("at least one word is required")), inflectOutput{}, nil
	}
	if len(input.Words) > ts.cfg.MaxBatch {
		return errResult(fmt.Errorf("too many words: %d (maximum %d)", len(input.Words), ts.cfg.MaxBatch)), inflectOutput{}, nil
	}

	output := inflectOutput{
		Count:   len(input.Words),
		Results: make([]inflection, 0, len(input.Words)),
	}
	for i, w := range input.Words {
		if err := ts.checkInput(fmt.Sprintf("words[%d]", i), w); err != nil {
			return errResult(err), inflectOutput{}, nil
		}
		output.Results = append(output.Results, inflection{Word: w, Result: fn(w)})
	}
	return nil, output, nil
}

type quantifyInput struct {
	Count  string  `json:"count"            jsonschema:"The count\\, as written (e.g. 3\\, 0.5\\, 05.6). It is printed verbatim."`
	Unit   string  `json:"unit"             jsonschema:"The singular unit label"`
	Plural *string `json:"plural,omitempty" jsonschema:"Plural label to use instead of pluralizing unit. Used as given when present\\, even if empty."`
}

type quantifyOutput struct {
	Count  string `json:"count"`
	Unit   string `json:"unit"`
	Label  string `json:"label"`
	Result string `json:"result"`
}

func (ts *toolset) handleQuantify(_ context.Context, _ *mcp.CallToolRequest, input quantifyInput) (*mcp.CallToolResult, quantifyOutput, error) {
	if input.Unit == "" {
		return errResult(fmt.Errorf("unit is required")), quantifyOutput{}, nil
	}
	fields := map[string]string{"count": input.Count, "unit": input.Unit}
	var plural []string
	if input.Plural != nil {
		fields["plural"] = *input.Plural
		plural = append(plural, *input.Plural)
	}
	for field, value := range fields {
		if err := ts.checkInput(field, value); err != nil {
			return errResult(err), quantifyOutput{}, nil
		}
	}
	result := ts.rules.Inflector().Quantify(input.Count, input.Unit, plural...)

	return nil, quantifyOutput{
		Count:  input.Count,
		Unit:   input.Unit,
		Label:  result[len(input.Count)+1:],
		Result: result,
	}, nil
}
