// Package cliutil provides output helpers shared by the wordcase commands.
package cliutil

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// errOut receives write failures.
var errOut io.Writer = os.Stderr

// Writef writes formatted output to the writer.
// If the write fails, the failure is reported on stderr.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(errOut, "write error: %v\n", err)
	}
}

// WriteLines writes each line followed by a newline.
func WriteLines(w io.Writer, lines []string) {
	if len(lines) == 0 {
		return
	}
	Writef(w, "%s\n", strings.Join(lines, "\n"))
}
