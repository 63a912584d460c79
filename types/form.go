package types

import "encoding/json"

// Choice is the value of an enumerated form field: either one of the field's
// preset options or free text typed by the user.
// The zero value is an empty preset.
type Choice struct {
	value  string
	custom bool
}

// Preset returns a Choice holding one of the field's enumerated options.
func Preset(value string) Choice {
	return Choice{value: value}
}

// Custom returns a Choice holding free text entered by the user.
func Custom(text string) Choice {
	return Choice{value: text, custom: true}
}

// Value returns the submitted value regardless of mode.
func (c Choice) Value() string { return c.value }

// IsCustom reports whether the field is in free-text mode.
func (c Choice) IsCustom() bool { return c.custom }

// WithText replaces the text of a custom choice. Presets are returned unchanged.
func (c Choice) WithText(text string) Choice {
	if !c.custom {
		return c
	}
	return Custom(text)
}

type choiceJSON struct {
	Value  string `json:"value"`
	Custom bool   `json:"custom"`
}

// MarshalJSON implements json.Marshaler
func (c Choice) MarshalJSON() ([]byte, error) {
	return json.Marshal(choiceJSON{Value: c.value, Custom: c.custom})
}

// UnmarshalJSON implements json.Unmarshaler
func (c *Choice) UnmarshalJSON(data []byte) error {
	var raw choiceJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	c.value, c.custom = raw.Value, raw.Custom
	return nil
}

// Model selects the remote generation model tier
type Model string

const (
	ModelFast  Model = "fast"
	ModelSmart Model = "smart"
)

// Valid reports whether m is a known model tier
func (m Model) Valid() bool {
	return m == ModelFast || m == ModelSmart
}

// FormState is the flat record edited by the input form.
// It only lives for the duration of a session.
type FormState struct {
	URL         string `json:"url"`
	ProductName string `json:"product_name"`
	Price       string `json:"price"`
	Features    string `json:"features"` // pipe-delimited
	Description string `json:"description"`
	Market      Choice `json:"market"`
	Objective   Choice `json:"objective"`
	MaxChars    Choice `json:"max_chars"`
	Model       Model  `json:"model"`
}
