package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wrap"
	"github.com/runoshun/shellbridge/internal/domain"
)

// View renders the model.
func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	return b.String()
}

func (m *Model) statusLine() string {
	var status string
	switch {
	case m.pending > 0:
		status = fmt.Sprintf("%s running %d command(s)", m.spinner.View(), m.pending)
	case m.status != "":
		status = m.status
	default:
		status = m.help.ShortHelpView(m.keys.ShortHelp())
	}
	if m.width > 0 {
		status = truncate.StringWithTail(status, uint(m.width), "…")
	}
	return m.styles.Status.Render(status)
}

// renderTranscript renders all transcript lines hard-wrapped to width.
// Command output keeps its own line breaks; a single trailing newline is
// dropped so each entry does not end in a blank row. Submitted command lines
// are syntax highlighted.
func (m *Model) renderTranscript(width int) string {
	rendered := make([]string, 0, len(m.lines))
	for _, line := range m.lines {
		text := strings.TrimSuffix(line.Text, "\n")
		if line.Kind == domain.LineInput {
			if cmd, ok := strings.CutPrefix(text, m.prompt); ok {
				text = m.styles.Prompt.Render(m.prompt) + highlightCommand(cmd)
			}
		}
		if width > 0 {
			text = wrap.String(text, width)
		}
		rendered = append(rendered, m.styles.LineStyle(line.Kind).Render(text))
	}
	return strings.Join(rendered, "\n")
}
