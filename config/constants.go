package config

import "time"

// Remote API Constants
const (
	// DefaultAPIBaseURL is used when API_BASE_URL is not set
	DefaultAPIBaseURL = "http://localhost:5001"

	// RequestTimeout bounds a single call to the remote API
	RequestTimeout = 60 * time.Second

	// DefaultScrapeDomain is the shop whose product URLs trigger auto-scrape
	DefaultScrapeDomain = "vigoshop.si"
)

// Web Server Constants
const (
	DefaultPort = "8080"

	// DefaultSessionTTL drops sessions idle for longer than this
	DefaultSessionTTL = 2 * time.Hour

	// SessionCookieName holds the browser's session id
	SessionCookieName = "adcopy_session"

	// MaxActivityLogs is the number of activity lines kept per session
	MaxActivityLogs = 50
)

// Scrape Cache Constants
const (
	DefaultScrapeCacheTTL = 6 * time.Hour
	ScrapeCacheKeyPrefix  = "adcopy:scrape:"
)

// Export Constants
const (
	// ExportPrefix is the key prefix for archived exports in S3
	ExportPrefix = "exports/"
)
