package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleTokenize(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		out := captureOutput(t, "")
		require.NoError(t, HandleTokenize([]string{"foo__bar_v2"}))
		assert.Equal(t, "KIND     SEP  TEXT\nword       0  foo\nword       2  bar\nversion    1  v2\n", out.String())
	})

	t.Run("json", func(t *testing.T) {
		out := captureOutput(t, "")
		require.NoError(t, HandleTokenize([]string{"-format", "json", "html5Parser"}))

		var got []TokenOutput
		require.NoError(t, json.Unmarshal(out.Bytes(), &got))
		assert.Equal(t, []TokenOutput{
			{Text: "html", Kind: "word", Sep: 0},
			{Text: "5", Kind: "number", Sep: 1},
			{Text: "Parser", Kind: "word", Sep: 1},
		}, got)
	})

	t.Run("empty input", func(t *testing.T) {
		out := captureOutput(t, "")
		require.NoError(t, HandleTokenize([]string{"-format", "json", ""}))
		assert.Equal(t, "[]\n", out.String())
	})
}

func TestHandleTokenize_Errors(t *testing.T) {
	captureOutput(t, "")
	assert.Error(t, HandleTokenize(nil))
	assert.Error(t, HandleTokenize([]string{"a", "b"}))
	assert.Error(t, HandleTokenize([]string{"-format", "csv", "a"}))
	assert.NoError(t, HandleTokenize([]string{"-h"}))
}
