package tui

import (
	"fmt"
	"strings"

	"adcopy/form"
	"adcopy/preview"
)

// View implements tea.Model interface
func (m Model) View() string {
	var b strings.Builder

	// Title
	b.WriteString(TitleStyle.Render(TextTitle))
	b.WriteString("  ")
	b.WriteString(m.statusText())
	b.WriteString("\n\n")

	// Error banner
	if m.Snap.Error != "" {
		b.WriteString(ErrorStyle.Render("⚠️ " + m.Snap.Error + "  (c to dismiss)"))
		b.WriteString("\n\n")
	}

	b.WriteString(m.formView())
	b.WriteString("\n")
	b.WriteString(m.previewView())
	b.WriteString("\n")

	if m.Notice != "" {
		b.WriteString(InfoStyle.Render(m.Notice))
		b.WriteString("\n")
	}
	if m.Editing {
		b.WriteString(InfoStyle.Render(TextEditHint))
	} else {
		b.WriteString(InfoStyle.Render(TextFooterNavigate))
	}
	return b.String()
}

// statusText renders the API connection status
func (m Model) statusText() string {
	if !m.Snap.Status.Healthy {
		return ErrorStyle.Render(TextDisconnected)
	}
	text := TextConnected
	if !m.Snap.Status.ClaudeConfigured {
		text += TextNoClaude
	}
	return StatusStyle.Render(text)
}

// formView renders the input form with the focused field highlighted
func (m Model) formView() string {
	var b strings.Builder
	b.WriteString(HighlightStyle.Render(TextFormTitle))
	b.WriteString("\n")

	if len(m.Snap.Examples) > 0 {
		labels := make([]string, 0, len(m.Snap.Examples))
		for i, ex := range m.Snap.Examples {
			if i >= 9 {
				break
			}
			name := ex.Name
			if name == "" {
				name = ex.ProductName
			}
			labels = append(labels, fmt.Sprintf("[%d] %s", i+1, name))
		}
		b.WriteString(InfoStyle.Render("Examples: " + strings.Join(labels, "  ")))
		b.WriteString("\n")
	}

	st := m.Snap.Form
	for i, field := range form.Fields {
		cursor := "  "
		label := fmt.Sprintf("%-16s", fieldLabels[field])
		if i == m.Focus {
			cursor = "▸ "
			label = FocusStyle.Render(label)
		}

		value := fieldValue(st, field)
		switch {
		case i == m.Focus && m.Editing:
			value = m.Buffer + "█"
		case isChoice(field) && choiceOf(st, field).IsCustom():
			value += TextCustomSuffix
		case isChoice(field):
			value = optionLabel(field, value)
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, label, value)
	}

	switch {
	case m.Snap.Loading:
		b.WriteString(StatusStyle.Render(TextGenerating))
		b.WriteString("\n")
	case m.Snap.Scraping:
		b.WriteString(StatusStyle.Render(TextScraping))
		b.WriteString("\n")
	}
	return BoxStyle.Render(b.String())
}

// previewView renders the result cards or the empty state
func (m Model) previewView() string {
	cards := preview.Cards(m.Snap.Variants)
	if len(cards) == 0 {
		return BoxStyle.Render(preview.EmptyTitle + "\n" + InfoStyle.Render(preview.EmptyMessage))
	}

	var b strings.Builder
	b.WriteString(HighlightStyle.Render(TextPreviewTitle))
	b.WriteString("\n")
	for _, c := range cards {
		var card strings.Builder
		card.WriteString(c.Title + " " + BadgeStyle(c.Angle).Render(c.AngleLabel) + "\n")
		card.WriteString(InfoStyle.Render(preview.PageAvatar+" "+preview.PageName+" · "+preview.PostLabel) + "\n\n")
		card.WriteString(HookStyle.Render(c.Hook) + "\n")
		card.WriteString(c.Body + "\n")
		card.WriteString(FocusStyle.Render(c.CTA) + "\n\n")
		card.WriteString(InfoStyle.Render(fmt.Sprintf("Characters: %d", c.CharacterCount)))
		b.WriteString(BoxStyle.Render(card.String()))
		b.WriteString("\n")
	}
	return b.String()
}

// optionLabel returns the display label of a preset value
func optionLabel(field, value string) string {
	options, _ := form.OptionsFor(field)
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}
