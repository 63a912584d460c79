package tui

import (
	"fmt"

	"adcopy/form"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Editing {
			return m.handleEditKey(msg)
		}
		return m.handleKeyPress(msg)
	case OpDoneMsg:
		return m.refresh(), nil
	case ExportDoneMsg:
		return m.handleExportDone(msg)
	case TickMsg:
		return m.refresh(), tickCmd()
	}
	return m, nil
}

// refresh copies the session state into the model
func (m Model) refresh() Model {
	m.Snap = m.Session.Snapshot()
	return m
}

// handleKeyPress processes keyboard input while navigating the form
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	field := m.focusedField()

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		m.Focus = (m.Focus - 1 + len(form.Fields)) % len(form.Fields)
	case "down", "j", "tab":
		m.Focus = (m.Focus + 1) % len(form.Fields)
	case "enter", "e":
		if editable(m.Snap.Form, field) {
			m.Editing = true
			m.Buffer = fieldValue(m.Snap.Form, field)
		}
	case "left", "h", "right", "l":
		if !isChoice(field) {
			return m, nil
		}
		dir := 1
		if msg.String() == "left" || msg.String() == "h" {
			dir = -1
		}
		opt := cycleOption(m.Snap.Form, field, dir)
		if field == form.FieldModel {
			return m, updateField(m.Runner, field, opt)
		}
		_ = m.Runner.Select(field, opt)
		return m.refresh(), nil
	case "r":
		if !isChoice(field) || field == form.FieldModel {
			return m, nil
		}
		_ = m.Runner.Reset(field)
		return m.refresh(), nil
	case "g":
		if m.Snap.Loading {
			return m, nil
		}
		return m, submit(m.Runner)
	case "s":
		return m, scrape(m.Runner)
	case "x":
		return m, exportToFile(m.Runner, m.SessionID, m.ExportDir)
	case "c":
		m.Runner.DismissError()
		m.Notice = ""
		return m.refresh(), nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		i := int(msg.String()[0] - '1')
		return m, loadExample(m.Runner, i)
	}
	return m, nil
}

// handleEditKey processes keyboard input while editing a text field
func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.Editing = false
		m.Buffer = ""
	case tea.KeyEnter:
		m.Editing = false
		value := m.Buffer
		m.Buffer = ""
		return m, updateField(m.Runner, m.focusedField(), value)
	case tea.KeyBackspace:
		if r := []rune(m.Buffer); len(r) > 0 {
			m.Buffer = string(r[:len(r)-1])
		}
	case tea.KeyCtrlU:
		m.Buffer = ""
	case tea.KeySpace:
		m.Buffer += " "
	case tea.KeyRunes:
		m.Buffer += string(msg.Runes)
	}
	return m, nil
}

// handleExportDone reports where the export went
func (m Model) handleExportDone(msg ExportDoneMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.Notice = fmt.Sprintf("Export failed: %v", msg.Err)
	} else {
		m.Notice = "Exported to " + msg.Path
	}
	return m.refresh(), nil
}
