package client

import (
	"context"
	"net/http"

	"adcopy/types"
)

// HealthCheck reports whether the API is up and has a generation key configured
func (c *Client) HealthCheck(ctx context.Context) (*types.HealthResponse, error) {
	var result types.HealthResponse
	if err := c.doJSONRequest(ctx, http.MethodGet, "/health", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetExamples lists the canned example products
func (c *Client) GetExamples(ctx context.Context) (*types.ExamplesResponse, error) {
	var result types.ExamplesResponse
	if err := c.doJSONRequest(ctx, http.MethodGet, "/examples", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ScrapeProduct asks the API to extract product fields from a product page
func (c *Client) ScrapeProduct(ctx context.Context, url string) (*types.ScrapeResponse, error) {
	var result types.ScrapeResponse
	if err := c.doJSONRequest(ctx, http.MethodPost, "/scrape", types.ScrapeRequest{URL: url}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GenerateCopy requests ad-copy variants for the given product
func (c *Client) GenerateCopy(ctx context.Context, req types.GenerateRequest) (*types.GenerateResponse, error) {
	var result types.GenerateResponse
	if err := c.doJSONRequest(ctx, http.MethodPost, "/generate", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
