package cli

import (
	"io"

	"github.com/fatih/color"
)

// Colors for CLI notices. fatih/color drops them when stdout is not a terminal.
var (
	colorWarning = color.New(color.FgYellow)
	colorSuccess = color.New(color.FgGreen)
)

// printWarning prints a warning line.
func printWarning(w io.Writer, msg string) {
	_, _ = colorWarning.Fprintf(w, "Warning: %s\n", msg)
}

// printSuccess prints a success line.
func printSuccess(w io.Writer, msg string) {
	_, _ = colorSuccess.Fprintln(w, msg)
}
