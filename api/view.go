package api

import (
	"fmt"

	"adcopy/form"
	"adcopy/preview"
	"adcopy/state"
	"adcopy/types"
)

// OptionView is one <option> of a dropdown
type OptionView struct {
	Value    string
	Label    string
	Selected bool
}

// ChoiceField renders an enumerated field either as a dropdown or, in custom
// mode, as a text input with a reset button
type ChoiceField struct {
	Name        string
	Label       string
	Placeholder string
	Hint        string
	Custom      bool
	Value       string
	Options     []OptionView
}

// ExampleView is a button that loads an example
type ExampleView struct {
	Index int
	Label string
}

// PageData is everything the index page renders
type PageData struct {
	Status   types.APIStatus
	Error    string
	Loading  bool
	Scraping bool

	Form      types.FormState
	Market    ChoiceField
	Objective ChoiceField
	MaxChars  ChoiceField
	Models    []OptionView
	Examples  []ExampleView

	Cards        []preview.Card
	PageAvatar   string
	PageName     string
	PostLabel    string
	EmptyTitle   string
	EmptyMessage string
}

func buildPageData(snap state.Snapshot) PageData {
	models := make([]OptionView, 0, len(form.Models))
	for _, o := range form.Models {
		models = append(models, OptionView{Value: o.Value, Label: o.Label, Selected: o.Value == string(snap.Form.Model)})
	}

	examples := make([]ExampleView, 0, len(snap.Examples))
	for i, ex := range snap.Examples {
		label := ex.Name
		if label == "" {
			label = ex.ProductName
		}
		examples = append(examples, ExampleView{Index: i, Label: label})
	}

	return PageData{
		Status:   snap.Status,
		Error:    snap.Error,
		Loading:  snap.Loading,
		Scraping: snap.Scraping,

		Form: snap.Form,
		Market: choiceField(form.FieldMarket, "Target Market *", "Enter custom market", "",
			form.Markets, snap.Form.Market),
		Objective: choiceField(form.FieldObjective, "Ad Objective *", "Enter custom objective", "",
			form.Objectives, snap.Form.Objective),
		MaxChars: choiceField(form.FieldMaxChars, "Max Characters", "Enter custom limit",
			fmt.Sprintf("Shorter copy performs better on mobile (custom: %d-%d)", form.MinCustomMaxChars, form.MaxCustomMaxChars),
			form.MaxCharsOptions, snap.Form.MaxChars),
		Models:   models,
		Examples: examples,

		Cards:        preview.Cards(snap.Variants),
		PageAvatar:   preview.PageAvatar,
		PageName:     preview.PageName,
		PostLabel:    preview.PostLabel,
		EmptyTitle:   preview.EmptyTitle,
		EmptyMessage: preview.EmptyMessage,
	}
}

func choiceField(name, label, placeholder, hint string, options []form.Option, c types.Choice) ChoiceField {
	f := ChoiceField{
		Name:        name,
		Label:       label,
		Placeholder: placeholder,
		Hint:        hint,
		Custom:      c.IsCustom(),
		Value:       c.Value(),
	}
	for _, o := range options {
		f.Options = append(f.Options, OptionView{
			Value:    o.Value,
			Label:    o.Label,
			Selected: !c.IsCustom() && o.Value == c.Value(),
		})
	}
	f.Options = append(f.Options, OptionView{Value: form.CustomOption, Label: "✏️ Custom"})
	return f
}
