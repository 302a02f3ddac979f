package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/shellbridge/internal/domain"
)

// Colors defines the color palette for the terminal.
var Colors = struct {
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Output  lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#FF7675"), // Light red
	Output:  lipgloss.Color("#55EFC4"), // Green
}

// Styles contains all the lipgloss styles for the terminal.
type Styles struct {
	// Transcript
	Input  lipgloss.Style
	Output lipgloss.Style
	Error  lipgloss.Style

	// Input line
	Prompt lipgloss.Style

	// Status line
	Status  lipgloss.Style
	Spinner lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Input:   lipgloss.NewStyle().Foreground(Colors.Primary).Bold(true),
		Output:  lipgloss.NewStyle().Foreground(Colors.Output),
		Error:   lipgloss.NewStyle().Foreground(Colors.Error),
		Prompt:  lipgloss.NewStyle().Foreground(Colors.Primary),
		Status:  lipgloss.NewStyle().Foreground(Colors.Muted),
		Spinner: lipgloss.NewStyle().Foreground(Colors.Primary),
	}
}

// LineStyle returns the style for a transcript line kind.
func (s Styles) LineStyle(kind domain.LineKind) lipgloss.Style {
	switch kind {
	case domain.LineInput:
		return s.Input
	case domain.LineError:
		return s.Error
	default:
		return s.Output
	}
}
