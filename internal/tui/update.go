package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/shellbridge/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayoutSizes()
		return m, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case MsgCommandDone:
		if m.pending > 0 {
			m.pending--
		}
		m.appendLine(domain.ResultLine(msg.Result))
		return m, nil

	case MsgHistorySaved:
		m.saving = false
		if m.saveQueued {
			m.saveQueued = false
			return m, m.requestSave()
		}
		return m, nil

	case spinner.TickMsg:
		// Let the tick loop die once nothing is running
		if m.pending == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Enter):
		return m, m.submit()

	case key.Matches(msg, m.keys.Older):
		m.setInput(m.history.Older())
		return m, nil

	case key.Matches(msg, m.keys.Newer):
		m.setInput(m.history.Newer())
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searchHistory()
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		m.copyLastOutput()
		return m, nil

	case key.Matches(msg, m.keys.PageUp):
		m.viewport.PageUp()
		return m, nil

	case key.Matches(msg, m.keys.PageDown):
		m.viewport.PageDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit handles Enter on the input line.
// Blank input is ignored and "clear" empties the transcript without
// touching history. Anything else is recorded and run asynchronously.
func (m *Model) submit() tea.Cmd {
	line := m.input.Value()
	if domain.IsBlank(line) {
		return nil
	}
	m.input.Reset()

	if domain.IsClearCommand(line) {
		m.history.Reset()
		m.clearTranscript()
		return nil
	}

	m.history.Push(line)
	m.appendLine(domain.InputLine(m.prompt, line))

	m.pending++
	if m.pending == 1 {
		return tea.Batch(m.spinner.Tick, m.runCommand(line), m.requestSave())
	}
	return tea.Batch(m.runCommand(line), m.requestSave())
}

func (m *Model) setInput(value string) {
	m.input.SetValue(value)
	m.input.CursorEnd()
}

// searchHistory replaces the input with the best history match for it.
func (m *Model) searchHistory() {
	query := m.input.Value()
	if line, ok := m.history.Search(query); ok {
		m.setInput(line)
		return
	}
	m.status = "no match in history"
}

func (m *Model) copyLastOutput() {
	text, ok := m.lastOutput()
	if !ok {
		m.status = "nothing to copy"
		return
	}
	if err := clipboardWriteAll(text); err != nil {
		m.status = "copy failed: " + err.Error()
		return
	}
	m.status = "copied last output"
}
