package form

import "adcopy/types"

// CustomOption is the dropdown value that switches a field to free text
const CustomOption = "custom"

// Option is one entry of an enumerated dropdown
type Option struct {
	Value string
	Label string
	Code  string
}

// Market presets; Code is the country code the shop uses
var Markets = []Option{
	{Value: "Slovenia", Label: "Slovenia (SI)", Code: "SI"},
	{Value: "Germany", Label: "Germany (DE)", Code: "DE"},
	{Value: "Italy", Label: "Italy (IT)", Code: "IT"},
	{Value: "Austria", Label: "Austria (AT)", Code: "AT"},
	{Value: "Croatia", Label: "Croatia (HR)", Code: "HR"},
	{Value: "Bosnia", Label: "Bosnia (BA)", Code: "BA"},
}

// Objectives are the ad campaign objectives
var Objectives = []Option{
	{Value: "Awareness", Label: "Awareness"},
	{Value: "Conversion", Label: "Conversion"},
	{Value: "Engagement", Label: "Engagement"},
}

// MaxCharsOptions are the copy length limits; shorter copy performs better on mobile
var MaxCharsOptions = []Option{
	{Value: "125", Label: "125 characters (Mobile)"},
	{Value: "150", Label: "150 characters (Recommended)"},
	{Value: "200", Label: "200 characters (Extended)"},
	{Value: "300", Label: "300 characters (Long form)"},
}

// Models are the generation tiers
var Models = []Option{
	{Value: string(types.ModelFast), Label: "⚡ Fast (Haiku)"},
	{Value: string(types.ModelSmart), Label: "🧠 Smart (Sonnet)"},
}

// Custom max chars bounds
const (
	MinCustomMaxChars = 50
	MaxCustomMaxChars = 650
)

// Defaults restored by Reset and used for a fresh form
const (
	DefaultMarket    = "Slovenia"
	DefaultObjective = "Conversion"
	DefaultMaxChars  = "150"
	DefaultModel     = types.ModelFast
)

// Field names as posted by the form
const (
	FieldURL         = "url"
	FieldProductName = "product_name"
	FieldPrice       = "price"
	FieldFeatures    = "features"
	FieldDescription = "description"
	FieldMarket      = "market"
	FieldObjective   = "objective"
	FieldMaxChars    = "max_chars"
	FieldModel       = "model"
)

// Fields lists every form field in display order
var Fields = []string{
	FieldURL, FieldProductName, FieldPrice, FieldFeatures,
	FieldMarket, FieldObjective, FieldModel, FieldMaxChars, FieldDescription,
}

// ChoiceFields are the fields that support preset/custom switching
var ChoiceFields = []string{FieldMarket, FieldObjective, FieldMaxChars}

// OptionsFor returns the preset options of an enumerated field
func OptionsFor(field string) ([]Option, bool) {
	switch field {
	case FieldMarket:
		return Markets, true
	case FieldObjective:
		return Objectives, true
	case FieldMaxChars:
		return MaxCharsOptions, true
	case FieldModel:
		return Models, true
	}
	return nil, false
}

func defaultPreset(field string) (string, bool) {
	switch field {
	case FieldMarket:
		return DefaultMarket, true
	case FieldObjective:
		return DefaultObjective, true
	case FieldMaxChars:
		return DefaultMaxChars, true
	}
	return "", false
}

func isPreset(options []Option, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}
