package preview

import (
	"fmt"
	"strings"

	"adcopy/types"
)

// ExportFilename is the name of the downloaded text export
const ExportFilename = "facebook-ad-copy.txt"

// ExportContentType is served with the text export
const ExportContentType = "text/plain; charset=utf-8"

var exportRule = strings.Repeat("=", 50)

// ExportText renders every variant as a plain-text section, in display order
func ExportText(variants types.Variants) string {
	sections := make([]string, 0, len(variants))
	for _, nv := range variants {
		v := nv.Variant
		sections = append(sections, fmt.Sprintf(
			"\n=== %s ===\nAngle: %s\nHook: %s\n\nBody:\n%s\n\nCTA: %s\n\nCharacter Count: %d\n%s\n",
			exportHeading(nv.Key), v.Angle, v.Hook, v.Body, v.CTA, v.CharacterCount, exportRule,
		))
	}
	return strings.Join(sections, "\n")
}

func exportHeading(key string) string {
	return strings.Replace(strings.ToUpper(key), "_", " ", 1)
}
