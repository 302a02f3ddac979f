package tui

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/quick"
	"github.com/alecthomas/chroma/v2/styles"
)

const highlightStyle = "shellbridge"

func init() {
	// Catppuccin Mocha subset covering the bash lexer's tokens
	styles.Register(chroma.MustNewStyle(highlightStyle, chroma.StyleEntries{
		chroma.Text:                "#cdd6f4",
		chroma.Error:               "#f38ba8",
		chroma.Comment:             "#6c7086 italic",
		chroma.Keyword:             "#cba6f7",
		chroma.Operator:            "#89dceb",
		chroma.Punctuation:         "#9399b2",
		chroma.Name:                "#cdd6f4",
		chroma.NameBuiltin:         "#89b4fa",
		chroma.NameVariable:        "#f5c2e7",
		chroma.Literal:             "#cdd6f4",
		chroma.LiteralNumber:       "#fab387",
		chroma.LiteralString:       "#a6e3a1",
		chroma.LiteralStringEscape: "#f5e0dc",
		chroma.Background:          "",
	}))
}

// highlightCommand colors a command line as shell source.
// The plain text is returned if highlighting fails.
func highlightCommand(command string) string {
	var buf bytes.Buffer
	if err := quick.Highlight(&buf, command, "bash", "terminal256", highlightStyle); err != nil {
		return command
	}
	return strings.TrimRight(buf.String(), "\n")
}
