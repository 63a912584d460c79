package types

import "time"

// Example is a canned product used to pre-fill the form
type Example struct {
	Name        string `json:"name,omitempty"`
	URL         string `json:"url"`
	ProductName string `json:"product_name"`
	Price       string `json:"price"`
	Features    string `json:"features"`
	Market      string `json:"market"`
	Objective   string `json:"objective"`
	Category    string `json:"category,omitempty"`
}

// ScrapedProduct holds the product fields extracted from a product page
type ScrapedProduct struct {
	URL         string `json:"url,omitempty"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Features    string `json:"features"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
	Category    string `json:"category,omitempty"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status              string `json:"status"`
	ClaudeAPIConfigured bool   `json:"claude_api_configured"`
}

// ExamplesResponse is the body of GET /examples
type ExamplesResponse struct {
	Success  bool      `json:"success"`
	Examples []Example `json:"examples"`
}

// ScrapeRequest is the body of POST /scrape
type ScrapeRequest struct {
	URL string `json:"url"`
}

// ScrapeResponse is the body of POST /scrape
type ScrapeResponse struct {
	Success bool            `json:"success"`
	Data    *ScrapedProduct `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// GenerateRequest is the body of POST /generate
type GenerateRequest struct {
	ProductName string `json:"product_name"`
	Price       string `json:"price"`
	Features    string `json:"features"`
	Market      string `json:"market"`
	Objective   string `json:"objective"`
	Description string `json:"description"`
	Model       Model  `json:"model"`
	MaxChars    int    `json:"max_chars,omitempty"`
}

// GenerateResponse is the body of POST /generate
type GenerateResponse struct {
	Success bool     `json:"success"`
	Data    Variants `json:"data,omitempty"`
	Error   string   `json:"error,omitempty"`
}

// APIStatus is the connection state shown in the header
type APIStatus struct {
	Healthy          bool `json:"healthy"`
	ClaudeConfigured bool `json:"claude_configured"`
}

// StatusFromHealth derives the header status from a health response
func StatusFromHealth(h *HealthResponse) APIStatus {
	if h == nil {
		return APIStatus{}
	}
	return APIStatus{
		Healthy:          h.Status == "healthy",
		ClaudeConfigured: h.ClaudeAPIConfigured,
	}
}

// LogEntry represents a single activity line with timestamp
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}
