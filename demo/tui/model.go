package tui

import (
	"adcopy/form"
	"adcopy/state"
	"adcopy/types"
	"adcopy/workflow"

	tea "github.com/charmbracelet/bubbletea"
)

// Model is the terminal front end over one session
type Model struct {
	Session   *state.Manager
	Runner    *workflow.Runner
	SessionID string
	ExportDir string

	// Snapshot of the session, refreshed after every operation and tick
	Snap state.Snapshot

	// Form navigation
	Focus   int
	Editing bool
	Buffer  string

	// Last export outcome shown in the footer
	Notice string
}

// NewModel creates a new TUI model with a fresh session
func NewModel(deps workflow.Deps, exportDir string) Model {
	session := state.NewManager()
	return Model{
		Session:   session,
		Runner:    workflow.NewRunner(session, deps),
		SessionID: state.NewSessionID(),
		ExportDir: exportDir,
		Snap:      session.Snapshot(),
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		initSession(m.Runner),
		tickCmd(),
	)
}

// focusedField returns the name of the field under the cursor
func (m Model) focusedField() string {
	return form.Fields[m.Focus]
}

// isChoice reports whether field has presets to cycle through
func isChoice(field string) bool {
	_, ok := form.OptionsFor(field)
	return ok
}

// choiceOf returns the current choice of an enumerated field
func choiceOf(st types.FormState, field string) types.Choice {
	switch field {
	case form.FieldMarket:
		return st.Market
	case form.FieldObjective:
		return st.Objective
	case form.FieldMaxChars:
		return st.MaxChars
	case form.FieldModel:
		return types.Preset(string(st.Model))
	}
	return types.Choice{}
}

// editable reports whether field takes free text right now
func editable(st types.FormState, field string) bool {
	if !isChoice(field) {
		return true
	}
	return choiceOf(st, field).IsCustom()
}

// fieldValue returns the text shown for field
func fieldValue(st types.FormState, field string) string {
	switch field {
	case form.FieldURL:
		return st.URL
	case form.FieldProductName:
		return st.ProductName
	case form.FieldPrice:
		return st.Price
	case form.FieldFeatures:
		return st.Features
	case form.FieldDescription:
		return st.Description
	}
	return choiceOf(st, field).Value()
}

// cycleOption returns the option after (dir > 0) or before the current one.
// Fields that support custom text get the custom option at the end of the cycle.
func cycleOption(st types.FormState, field string, dir int) string {
	options, _ := form.OptionsFor(field)
	values := make([]string, 0, len(options)+1)
	for _, o := range options {
		values = append(values, o.Value)
	}
	if field != form.FieldModel {
		values = append(values, form.CustomOption)
	}

	c := choiceOf(st, field)
	current := len(values) - 1
	if !c.IsCustom() {
		for i, v := range values {
			if v == c.Value() {
				current = i
				break
			}
		}
	}
	next := (current + dir + len(values)) % len(values)
	return values[next]
}
