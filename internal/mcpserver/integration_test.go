package mcpserver

import (
	"context"
	"encoding/json"
	"slices"
	"testing"

	"github.com/erraggy/wordcase/internal/rulewatch"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startTestSession creates an in-process MCP server/client pair and returns
// the connected client session. The server is shut down when the test ends.
func startTestSession(t *testing.T) *mcp.ClientSession {
	t.Helper()

	server := mcp.NewServer(
		&mcp.Implementation{Name: "wordcase-test", Version: "test"},
		nil,
	)
	registerAllTools(server, newToolset(testConfig(), rulewatch.NewStatic(nil)))

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	// Start server in background; it blocks until the connection closes.
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(
		&mcp.Implementation{Name: "test-client", Version: "test"},
		nil,
	)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-done
	})

	return session
}

func TestIntegration_ListTools(t *testing.T) {
	session := startTestSession(t)

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Len(t, result.Tools, 6, "expected 6 registered tools")

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}
	for _, name := range []string{"convert_case", "tokenize", "pluralize", "singularize", "quantify", "list_styles"} {
		assert.True(t, slices.Contains(names, name), "missing tool: %s", name)
	}

	for _, tool := range result.Tools {
		assert.NotEmpty(t, tool.Description, "tool %q has empty description", tool.Name)
	}
}

func TestIntegration_CallTool_ConvertCase(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "convert_case",
		Arguments: map[string]any{
			"input": "apiV2.0.1Response",
			"style": "kebab-case",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError, "convert_case should succeed")

	structured := unmarshalStructured(t, result)
	assert.Equal(t, "api-v2-0-1-response", structured["result"])
	assert.Equal(t, "kebab", structured["style"])
}

func TestIntegration_CallTool_ConvertCase_UnknownStyle(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "convert_case",
		Arguments: map[string]any{
			"input": "foo",
			"style": "shouting",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestIntegration_CallTool_Pluralize(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "pluralize",
		Arguments: map[string]any{
			"words": []string{"person", "CITY"},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, float64(2), structured["count"])
	results, ok := structured["results"].([]any)
	require.True(t, ok, "results should be an array")
	require.Len(t, results, 2)

	first, ok := results[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "people", first["result"])
	second, ok := results[1].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "CITEIS", second["result"])
}

func TestIntegration_CallTool_Quantify(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "quantify",
		Arguments: map[string]any{
			"count": "432.00",
			"unit":  "cat",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, "432.00 cats", structured["result"])
	assert.Equal(t, "cats", structured["label"])
}

func TestIntegration_CallTool_ListStyles(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "list_styles",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	styles, ok := structured["styles"].([]any)
	require.True(t, ok, "styles should be an array")
	assert.Len(t, styles, 6)
}

// unmarshalStructured extracts the structured output from a tool result as a map.
func unmarshalStructured(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	// Prefer structured content if available.
	if result.StructuredContent != nil {
		data, err := json.Marshal(result.StructuredContent)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		return m
	}

	// Fall back to parsing text content.
	require.NotEmpty(t, result.Content, "expected at least one content item")
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &m), "failed to parse text content as JSON")
	return m
}
