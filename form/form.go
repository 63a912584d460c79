package form

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"adcopy/types"
)

var (
	// ErrUnknownField is returned for a field name the form does not have
	ErrUnknownField = errors.New("unknown form field")
	// ErrUnknownOption is returned when a dropdown value is not one of its presets
	ErrUnknownOption = errors.New("unknown option")
)

// ValidationError lists what blocks a submission
type ValidationError struct {
	Missing  []string
	Problems []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "Missing required fields: "+strings.Join(e.Missing, ", "))
	}
	parts = append(parts, e.Problems...)
	return strings.Join(parts, "; ")
}

// Form holds the input form state. It is not safe for concurrent use.
type Form struct {
	state types.FormState
}

// New returns a form at its default values
func New() *Form {
	return &Form{state: DefaultState()}
}

// DefaultState is the state of an untouched form
func DefaultState() types.FormState {
	return types.FormState{
		Market:    types.Preset(DefaultMarket),
		Objective: types.Preset(DefaultObjective),
		MaxChars:  types.Preset(DefaultMaxChars),
		Model:     DefaultModel,
	}
}

// State returns a copy of the current form state
func (f *Form) State() types.FormState { return f.state }

// Replace overwrites the whole form state
func (f *Form) Replace(state types.FormState) { f.state = state }

// Get returns the current value of a field
func (f *Form) Get(field string) (string, error) {
	switch field {
	case FieldURL:
		return f.state.URL, nil
	case FieldProductName:
		return f.state.ProductName, nil
	case FieldPrice:
		return f.state.Price, nil
	case FieldFeatures:
		return f.state.Features, nil
	case FieldDescription:
		return f.state.Description, nil
	case FieldModel:
		return string(f.state.Model), nil
	}
	if c := f.choice(field); c != nil {
		return c.Value(), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
}

// SetField updates one field. For an enumerated field in preset mode the value
// is treated as a dropdown selection; in custom mode it is the free text.
func (f *Form) SetField(field, value string) error {
	switch field {
	case FieldURL:
		f.state.URL = value
	case FieldProductName:
		f.state.ProductName = value
	case FieldPrice:
		f.state.Price = value
	case FieldFeatures:
		f.state.Features = value
	case FieldDescription:
		f.state.Description = value
	case FieldModel:
		m := types.Model(value)
		if !m.Valid() {
			return fmt.Errorf("%w: model %q", ErrUnknownOption, value)
		}
		f.state.Model = m
	default:
		c := f.choice(field)
		if c == nil {
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
		if c.IsCustom() {
			*c = c.WithText(value)
			return nil
		}
		return f.Select(field, value)
	}
	return nil
}

// Select applies a dropdown selection. Choosing CustomOption switches the
// field to free text and clears its value.
func (f *Form) Select(field, option string) error {
	c := f.choice(field)
	if c == nil {
		return fmt.Errorf("%w: %q has no presets", ErrUnknownField, field)
	}
	if option == CustomOption {
		*c = types.Custom("")
		return nil
	}
	options, _ := OptionsFor(field)
	if !isPreset(options, option) {
		return fmt.Errorf("%w: %s %q", ErrUnknownOption, field, option)
	}
	*c = types.Preset(option)
	return nil
}

// Reset returns an enumerated field to its default preset
func (f *Form) Reset(field string) error {
	c := f.choice(field)
	def, ok := defaultPreset(field)
	if c == nil || !ok {
		return fmt.Errorf("%w: %q has no presets", ErrUnknownField, field)
	}
	*c = types.Preset(def)
	return nil
}

// LoadExample replaces the whole form with an example's values.
// Values outside the preset lists are kept as custom text.
func (f *Form) LoadExample(ex types.Example) {
	f.state = types.FormState{
		URL:         ex.URL,
		ProductName: ex.ProductName,
		Price:       ex.Price,
		Features:    ex.Features,
		Market:      choiceFor(Markets, ex.Market),
		Objective:   choiceFor(Objectives, ex.Objective),
		MaxChars:    types.Preset(DefaultMaxChars),
		Model:       DefaultModel,
	}
}

// ApplyScrape merges scraped product fields. Empty scraped values keep what
// the form already has. Markup is stripped from the scraped text.
func (f *Form) ApplyScrape(p *types.ScrapedProduct) {
	if p == nil {
		return
	}
	merge := func(dst *string, scraped string) {
		if text := PlainText(scraped); text != "" {
			*dst = text
		}
	}
	merge(&f.state.ProductName, p.Name)
	merge(&f.state.Price, p.Price)
	merge(&f.state.Features, p.Features)
	merge(&f.state.Description, p.Description)
}

// Validate checks the fields the API requires before a submission
func (f *Form) Validate() error {
	verr := &ValidationError{}
	required := []struct {
		name  string
		value string
	}{
		{FieldProductName, f.state.ProductName},
		{FieldPrice, f.state.Price},
		{FieldFeatures, f.state.Features},
		{FieldMarket, f.state.Market.Value()},
		{FieldObjective, f.state.Objective.Value()},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			verr.Missing = append(verr.Missing, r.name)
		}
	}

	if f.state.MaxChars.IsCustom() {
		n, err := strconv.Atoi(strings.TrimSpace(f.state.MaxChars.Value()))
		if err != nil || n < MinCustomMaxChars || n > MaxCustomMaxChars {
			verr.Problems = append(verr.Problems,
				fmt.Sprintf("Max characters must be a number between %d and %d", MinCustomMaxChars, MaxCustomMaxChars))
		}
	}

	if len(verr.Missing) == 0 && len(verr.Problems) == 0 {
		return nil
	}
	return verr
}

// GenerateRequest builds the generate call from the current field values
func (f *Form) GenerateRequest() types.GenerateRequest {
	maxChars, _ := strconv.Atoi(strings.TrimSpace(f.state.MaxChars.Value()))
	return types.GenerateRequest{
		ProductName: f.state.ProductName,
		Price:       f.state.Price,
		Features:    f.state.Features,
		Market:      f.state.Market.Value(),
		Objective:   f.state.Objective.Value(),
		Description: f.state.Description,
		Model:       f.state.Model,
		MaxChars:    maxChars,
	}
}

// ShouldAutoScrape reports whether a URL edit should trigger a scrape: the URL
// must have changed and point at the scrape domain.
func ShouldAutoScrape(prevURL, newURL, domain string) bool {
	if domain == "" || newURL == "" || newURL == prevURL {
		return false
	}
	return strings.Contains(newURL, domain)
}

func (f *Form) choice(field string) *types.Choice {
	switch field {
	case FieldMarket:
		return &f.state.Market
	case FieldObjective:
		return &f.state.Objective
	case FieldMaxChars:
		return &f.state.MaxChars
	}
	return nil
}

func choiceFor(options []Option, value string) types.Choice {
	if isPreset(options, value) {
		return types.Preset(value)
	}
	return types.Custom(value)
}
