package preview

import (
	"strings"

	"adcopy/types"
)

// Identity of the simulated page the ad is posted from
const (
	PageAvatar = "HS"
	PageName   = "HS Plus"
	PostLabel  = "Sponsored"
)

// EmptyTitle is shown when there is no result set
const (
	EmptyTitle   = "No Ad Copy Generated Yet"
	EmptyMessage = `Fill out the form and click "Generate Ad Copy" to create your Facebook ad variants.`
)

// Badge colours per angle
const (
	ColorPainPoint   = "#dc2626"
	ColorBenefit     = "#059669"
	ColorSocialProof = "#2563eb"
	ColorOther       = "#6b7280"
)

// Card is one rendered variant in the preview panel
type Card struct {
	Key            string
	Title          string
	Angle          types.Angle
	AngleLabel     string
	Color          string
	Hook           string
	Body           string
	CTA            string
	CharacterCount int
}

// Cards maps a result set to preview cards, one per variant in key order
func Cards(variants types.Variants) []Card {
	if len(variants) == 0 {
		return nil
	}
	cards := make([]Card, 0, len(variants))
	for _, nv := range variants {
		v := nv.Variant
		cards = append(cards, Card{
			Key:            nv.Key,
			Title:          Title(nv.Key),
			Angle:          v.Angle,
			AngleLabel:     AngleLabel(v.Angle),
			Color:          AngleColor(v.Angle),
			Hook:           v.Hook,
			Body:           v.Body,
			CTA:            v.CTA,
			CharacterCount: v.CharacterCount,
		})
	}
	return cards
}

// Title turns a variant key into its card heading: variant_1 -> Variant 1
func Title(key string) string {
	return strings.Replace(key, "variant_", "Variant ", 1)
}

// AngleLabel is the badge text: the angle with its first underscore replaced
func AngleLabel(a types.Angle) string {
	return strings.Replace(string(a), "_", " ", 1)
}

// AngleColor returns the badge colour for an angle
func AngleColor(a types.Angle) string {
	switch a {
	case types.AnglePainPoint:
		return ColorPainPoint
	case types.AngleBenefit:
		return ColorBenefit
	case types.AngleSocialProof:
		return ColorSocialProof
	default:
		return ColorOther
	}
}

// FullCopy is the clipboard text for a card
func (c Card) FullCopy() string {
	return c.Hook + "\n\n" + c.Body + "\n\n" + c.CTA
}
