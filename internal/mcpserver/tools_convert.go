package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/wordcase/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type convertCaseInput struct {
	Input     string `json:"input"                jsonschema:"The identifier or phrase to convert"`
	Style     string `json:"style,omitempty"      jsonschema:"Target style: camel\\, pascal\\, kebab\\, snake\\, words or title. Aliases such as snake_case are accepted. Required unless all_styles is set."`
	AllStyles bool   `json:"all_styles,omitempty" jsonschema:"Return the input converted to every style"`
}

type convertCaseOutput struct {
	Input   string            `json:"input"`
	Style   string            `json:"style,omitempty"`
	Result  string            `json:"result,omitempty"`
	Results map[string]string `json:"results,omitempty"`
}

func (ts *toolset) handleConvertCase(_ context.Context, _ *mcp.CallToolRequest, input convertCaseInput) (*mcp.CallToolResult, convertCaseOutput, error) {
	if err := ts.checkInput("input", input.Input); err != nil {
		return errResult(err), convertCaseOutput{}, nil
	}

	output := convertCaseOutput{Input: input.Input}
	if input.AllStyles {
		output.Results = make(map[string]string, len(casing.Styles()))
		for style, result := range ts.caser.ConvertAll(input.Input) {
			output.Results[style.String()] = result
		}
		return nil, output, nil
	}

	if input.Style == "" {
		return errResult(fmt.Errorf("style is required unless all_styles is set")), convertCaseOutput{}, nil
	}
	style, err := casing.ParseStyle(input.Style)
	if err != nil {
		return errResult(err), convertCaseOutput{}, nil
	}
	output.Style = style.String()
	output.Result = ts.caser.Convert(style, input.Input)
	return nil, output, nil
}
