package tui

import "adcopy/form"

// UI Text Constants
const (
	TextTitle          = "⚡ Marketing Copy Generator"
	TextFormTitle      = "Facebook Ad Copy Generator"
	TextPreviewTitle   = "Generated Ad Copy"
	TextConnected      = "✅ API Connected"
	TextNoClaude       = " (Claude API not configured)"
	TextDisconnected   = "❌ API Disconnected"
	TextGenerating     = "Generating..."
	TextScraping       = "Scraping product details..."
	TextCustomSuffix   = " (custom)"
	TextCustomOption   = "✏️ Custom"
	TextEditHint       = "enter: save | esc: cancel"
	TextFooterNavigate = "↑/↓: field | enter: edit | ←/→: option | r: reset | g: generate | s: scrape | 1-9: example | x: export | c: clear error | q: quit"
)

// fieldLabels are shown next to each form field
var fieldLabels = map[string]string{
	form.FieldURL:         "Product URL",
	form.FieldProductName: "Product Name *",
	form.FieldPrice:       "Price *",
	form.FieldFeatures:    "Key Features *",
	form.FieldMarket:      "Target Market *",
	form.FieldObjective:   "Ad Objective *",
	form.FieldModel:       "AI Model",
	form.FieldMaxChars:    "Max Characters",
	form.FieldDescription: "Description",
}
