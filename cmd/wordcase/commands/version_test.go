package commands

import (
	"testing"

	"github.com/erraggy/wordcase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleVersion(t *testing.T) {
	t.Run("short", func(t *testing.T) {
		out := captureOutput(t, "")
		require.NoError(t, HandleVersion(nil))
		assert.Equal(t, "wordcase v"+wordcase.Version()+"\n", out.String())
	})

	t.Run("verbose", func(t *testing.T) {
		out := captureOutput(t, "")
		require.NoError(t, HandleVersion([]string{"-verbose"}))
		assert.Contains(t, out.String(), "Commit: ")
		assert.Contains(t, out.String(), "Go Version: ")
	})
}

func TestHandleMCP_Args(t *testing.T) {
	assert.Error(t, HandleMCP([]string{"extra"}))
	assert.NoError(t, HandleMCP([]string{"-h"}))
}
