package mcpserver

import (
	"context"

	"github.com/erraggy/wordcase/casing"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// styleSample is converted to every style in list_styles output.
const styleSample = "XMLHttpRequest v2"

type listStylesInput struct{}

type styleInfo struct {
	Name    string   `json:"name"`
	Aliases []string `json:"aliases,omitempty"`
	Example string   `json:"example"`
}

type listStylesOutput struct {
	Sample string      `json:"sample"`
	Styles []styleInfo `json:"styles"`
}

func (ts *toolset) handleListStyles(_ context.Context, _ *mcp.CallToolRequest, _ listStylesInput) (*mcp.CallToolResult, listStylesOutput, error) {
	styles := casing.Styles()
	output := listStylesOutput{
		Sample: styleSample,
		Styles: make([]styleInfo, 0, len(styles)),
	}
	for _, s := range styles {
		output.Styles = append(output.Styles, styleInfo{
			Name:    s.String(),
			Aliases: s.Aliases(),
			Example: ts.caser.Convert(s, styleSample),
		})
	}
	return nil, output, nil
}
