package client

import (
	"net/http"
	"strings"

	"adcopy/config"
)

// Client is a thin HTTP/JSON client for the copy generation API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option customises a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a new API client for the given base URL
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = config.DefaultAPIBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: config.RequestTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
