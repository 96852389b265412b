package cliutil

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("simulated write error")
}

func TestWritef(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []any
		want   string
	}{
		{"no args", "plain", nil, "plain"},
		{"one arg", "Hello, %s!", []any{"World"}, "Hello, World!"},
		{"padding", "%-8s|%3d", []any{"word", 2}, "word    |  2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Writef(&buf, tt.format, tt.args...)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWritef_WriteError(t *testing.T) {
	var sink bytes.Buffer
	old := errOut
	errOut = &sink
	t.Cleanup(func() { errOut = old })

	Writef(failingWriter{}, "lost")
	assert.Equal(t, "write error: simulated write error\n", sink.String())
}

func TestWriteLines(t *testing.T) {
	var buf bytes.Buffer
	WriteLines(&buf, []string{"children", "APIs"})
	assert.Equal(t, "children\nAPIs\n", buf.String())

	buf.Reset()
	WriteLines(&buf, nil)
	assert.Empty(t, buf.String())
}
