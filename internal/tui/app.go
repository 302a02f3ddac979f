// Package tui implements the interactive terminal front-end.
package tui

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/runoshun/shellbridge/internal/app"
	"github.com/runoshun/shellbridge/internal/domain"
	"github.com/runoshun/shellbridge/internal/usecase"
)

// Initial viewport size used until the first WindowSizeMsg arrives.
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// clipboardWriteAll is a function variable for writing to the system clipboard, allowing it to be mocked in tests.
var clipboardWriteAll = clipboard.WriteAll

// Model is the main bubbletea model for the terminal.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	history   *domain.History

	// State (slices - contain pointers)
	lines []domain.TranscriptLine

	// Components (structs with pointers)
	keys     KeyMap
	styles   Styles
	help     help.Model
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model

	prompt string
	status string // One-shot notice shown in the status line

	// Numeric state (smaller types last)
	width   int
	height  int
	pending int

	saving     bool // A history save is in flight
	saveQueued bool // Entries changed while saving
}

// New creates a new terminal Model with the given container.
func New(c *app.Container) *Model {
	cfg := c.AppConfig
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	prompt := cfg.Terminal.Prompt
	if prompt == "" {
		prompt = domain.DefaultPrompt
	}

	styles := DefaultStyles()

	ti := textinput.New()
	ti.Prompt = prompt
	ti.PromptStyle = styles.Prompt
	ti.Placeholder = "Type your command here..."
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	m := &Model{
		container: c,
		history:   loadHistory(c, cfg.Terminal.HistoryLimit),
		keys:      DefaultKeyMap(),
		styles:    styles,
		help:      help.New(),
		input:     ti,
		spinner:   sp,
		prompt:    prompt,
		width:     defaultWidth,
		height:    defaultHeight,
	}
	m.viewport = viewport.New(defaultWidth, m.viewportHeight())
	return m
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Lines returns a copy of the transcript.
func (m *Model) Lines() []domain.TranscriptLine {
	out := make([]domain.TranscriptLine, len(m.lines))
	copy(out, m.lines)
	return out
}

// runCommand returns a command that executes the line through the use case.
// The result comes back as MsgCommandDone.
func (m *Model) runCommand(command string) tea.Cmd {
	uc := m.container.ExecuteCommandUseCase()
	return func() tea.Msg {
		out, err := uc.Execute(context.Background(), usecase.ExecuteCommandInput{Command: command})
		var output string
		if out != nil {
			output = out.Output
		}
		return MsgCommandDone{
			Command: command,
			Result:  domain.NewExecResult(output, err),
		}
	}
}

// loadHistory seeds the history from the container's store.
// A store that cannot be read starts an empty history.
func loadHistory(c *app.Container, limit int) *domain.History {
	if c.History == nil {
		return domain.NewHistory(limit)
	}
	entries, err := c.History.Load()
	if err != nil {
		if c.Logger != nil {
			c.Logger.Warn("tui", "load history: "+err.Error())
		}
		return domain.NewHistory(limit)
	}
	return domain.NewHistoryFrom(entries, limit)
}

// requestSave persists the history, keeping at most one save in flight.
// A request made while a save runs is replayed with the latest entries once
// MsgHistorySaved arrives, so an older snapshot never lands last.
func (m *Model) requestSave() tea.Cmd {
	if m.container.History == nil {
		return nil
	}
	if m.saving {
		m.saveQueued = true
		return nil
	}
	m.saving = true
	return m.saveHistory()
}

// saveHistory returns a command that writes a snapshot of the current
// entries. Failures are only logged.
func (m *Model) saveHistory() tea.Cmd {
	store := m.container.History
	if store == nil {
		return nil
	}
	entries := m.history.Entries()
	logger := m.container.Logger
	return func() tea.Msg {
		if err := store.Save(entries); err != nil && logger != nil {
			logger.Warn("tui", "save history: "+err.Error())
		}
		return MsgHistorySaved{}
	}
}

// lastOutput returns the text of the most recent output line.
func (m *Model) lastOutput() (string, bool) {
	for i := len(m.lines) - 1; i >= 0; i-- {
		if m.lines[i].Kind == domain.LineOutput {
			return m.lines[i].Text, true
		}
	}
	return "", false
}

func (m *Model) appendLine(line domain.TranscriptLine) {
	m.lines = append(m.lines, line)
	m.refreshViewport()
}

func (m *Model) clearTranscript() {
	m.lines = nil
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	m.viewport.SetContent(m.renderTranscript(m.viewport.Width))
	m.viewport.GotoBottom()
}

// viewportHeight leaves room for the status line and the input line.
func (m *Model) viewportHeight() int {
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) updateLayoutSizes() {
	m.viewport.Width = m.width
	m.viewport.Height = m.viewportHeight()
	if w := m.width - runewidth.StringWidth(m.prompt) - 1; w > 0 {
		m.input.Width = w
	}
	m.help.Width = m.width
	m.refreshViewport()
}
