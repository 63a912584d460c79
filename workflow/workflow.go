package workflow

import (
	"context"
	"errors"
	"fmt"
	"log"

	"adcopy/client"
	"adcopy/form"
	"adcopy/preview"
	"adcopy/state"
	"adcopy/types"
)

// Banner messages used when the API gives no better one
const (
	MsgGenerateFailed    = "Failed to generate copy"
	MsgGenerateTransport = "Failed to generate copy. Please check your API configuration."
	MsgScrapeFailed      = "Failed to scrape product"
	MsgScrapeTransport   = "Failed to scrape product. Please fill in details manually."
)

var (
	// ErrBusy is returned when a generate request is already in flight
	ErrBusy = errors.New("a request is already in progress")
	// ErrRejected is returned when the API answered success:false
	ErrRejected = errors.New("request rejected by API")
	// ErrNothingToExport is returned by Export when there is no result set
	ErrNothingToExport = errors.New("no ad copy to export")
)

// CopyAPI is the remote service the workflow talks to. *client.Client implements it.
type CopyAPI interface {
	HealthCheck(ctx context.Context) (*types.HealthResponse, error)
	GetExamples(ctx context.Context) (*types.ExamplesResponse, error)
	ScrapeProduct(ctx context.Context, url string) (*types.ScrapeResponse, error)
	GenerateCopy(ctx context.Context, req types.GenerateRequest) (*types.GenerateResponse, error)
}

// ScrapeCache remembers successful scrapes by URL
type ScrapeCache interface {
	Get(ctx context.Context, url string) (*types.ScrapedProduct, bool, error)
	Put(ctx context.Context, url string, product *types.ScrapedProduct) error
}

// Archiver keeps a copy of text exports
type Archiver interface {
	Save(ctx context.Context, sessionID, filename, text string) (string, error)
}

// Deps are the collaborators shared by every session. Cache and Archive are optional.
type Deps struct {
	API          CopyAPI
	Cache        ScrapeCache
	Archive      Archiver
	ScrapeDomain string
}

// Runner wires form events to the API and API results to the preview for one session
type Runner struct {
	stateManager *state.Manager
	deps         Deps
}

// NewRunner creates a new workflow runner
func NewRunner(stateManager *state.Manager, deps Deps) *Runner {
	return &Runner{
		stateManager: stateManager,
		deps:         deps,
	}
}

// Init loads the API status and the example list. Failures are logged and
// leave the status disconnected or the list empty.
func (r *Runner) Init(ctx context.Context) {
	health, err := r.deps.API.HealthCheck(ctx)
	if err != nil {
		log.Printf("⚠️ API health check failed: %v", err)
		r.stateManager.AddLog("API health check failed")
	} else {
		r.stateManager.SetStatus(types.StatusFromHealth(health))
	}

	examples, err := r.deps.API.GetExamples(ctx)
	switch {
	case err != nil:
		log.Printf("⚠️ Failed to load examples: %v", err)
		r.stateManager.AddLog("Failed to load examples")
	case examples.Success:
		r.stateManager.SetExamples(examples.Examples)
		r.stateManager.AddLog(fmt.Sprintf("Loaded %d examples", len(examples.Examples)))
	}
}

// Submit sends the form to the generate endpoint. Prior results are cleared
// before the call; exactly one request is issued.
func (r *Runner) Submit(ctx context.Context) error {
	if !r.stateManager.BeginLoading() {
		return ErrBusy
	}
	defer r.stateManager.EndLoading()

	var req types.GenerateRequest
	err := r.stateManager.UpdateForm(func(f *form.Form) error {
		if err := f.Validate(); err != nil {
			return err
		}
		req = f.GenerateRequest()
		return nil
	})
	if err != nil {
		r.stateManager.SetError(err.Error())
		return err
	}

	r.stateManager.ClearError()
	r.stateManager.ClearVariants()
	r.stateManager.AddLog(fmt.Sprintf("Generating copy for %q (%s)", req.ProductName, req.Model))

	resp, err := r.deps.API.GenerateCopy(ctx, req)
	if err != nil {
		log.Printf("❌ Generation error: %v", err)
		r.stateManager.SetError(apiMessage(err, MsgGenerateTransport))
		return fmt.Errorf("generate copy: %w", err)
	}
	if !resp.Success {
		r.stateManager.SetError(orDefault(resp.Error, MsgGenerateFailed))
		return fmt.Errorf("generate copy: %w", ErrRejected)
	}

	r.stateManager.SetVariants(resp.Data)
	return nil
}

// UpdateField edits one field and scrapes when the URL changed to a shop page
func (r *Runner) UpdateField(ctx context.Context, name, value string) error {
	return r.ApplyForm(ctx, map[string]string{name: value})
}

// ApplyForm edits every posted field in display order. The first invalid
// field is reported in the banner; the rest are still applied.
func (r *Runner) ApplyForm(ctx context.Context, values map[string]string) error {
	var prevURL, newURL string
	var firstErr error
	_ = r.stateManager.UpdateForm(func(f *form.Form) error {
		prevURL = f.State().URL
		for _, field := range form.Fields {
			v, ok := values[field]
			if !ok {
				continue
			}
			if err := f.SetField(field, v); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		newURL = f.State().URL
		return nil
	})
	if firstErr != nil {
		r.stateManager.SetError(firstErr.Error())
		return firstErr
	}

	if form.ShouldAutoScrape(prevURL, newURL, r.deps.ScrapeDomain) {
		return r.Scrape(ctx)
	}
	return nil
}

// Select applies a dropdown choice, including the custom option
func (r *Runner) Select(field, option string) error {
	err := r.stateManager.UpdateForm(func(f *form.Form) error {
		return f.Select(field, option)
	})
	if err != nil {
		r.stateManager.SetError(err.Error())
	}
	return err
}

// Reset returns a dropdown to its default preset
func (r *Runner) Reset(field string) error {
	err := r.stateManager.UpdateForm(func(f *form.Form) error {
		return f.Reset(field)
	})
	if err != nil {
		r.stateManager.SetError(err.Error())
	}
	return err
}

// Scrape fills the product fields from the URL. Without a URL it does nothing.
func (r *Runner) Scrape(ctx context.Context) error {
	url := r.stateManager.FormState().URL
	if url == "" {
		return nil
	}

	r.stateManager.ClearError()
	r.stateManager.SetScraping(true)
	defer r.stateManager.SetScraping(false)

	if r.deps.Cache != nil {
		product, ok, err := r.deps.Cache.Get(ctx, url)
		if err != nil {
			log.Printf("⚠️ Scrape cache lookup failed: %v", err)
		}
		if ok {
			r.applyScrape(product)
			r.stateManager.AddLog("Loaded product from cache")
			return nil
		}
	}

	r.stateManager.AddLog("Scraping " + url)
	resp, err := r.deps.API.ScrapeProduct(ctx, url)
	if err != nil {
		log.Printf("❌ Scraping error: %v", err)
		r.stateManager.SetError(MsgScrapeTransport)
		return fmt.Errorf("scrape product: %w", err)
	}
	if !resp.Success || resp.Data == nil {
		r.stateManager.SetError(orDefault(resp.Error, MsgScrapeFailed))
		return fmt.Errorf("scrape product: %w", ErrRejected)
	}

	r.applyScrape(resp.Data)
	r.stateManager.AddLog("Product details scraped")

	if r.deps.Cache != nil {
		if err := r.deps.Cache.Put(ctx, url, resp.Data); err != nil {
			log.Printf("⚠️ Failed to cache scrape result: %v", err)
		}
	}
	return nil
}

// LoadExample replaces the form with example i and clears the preview.
// An index outside the list is ignored.
func (r *Runner) LoadExample(ctx context.Context, i int) error {
	ex, ok := r.stateManager.Example(i)
	if !ok {
		return nil
	}

	var prevURL string
	_ = r.stateManager.UpdateForm(func(f *form.Form) error {
		prevURL = f.State().URL
		f.LoadExample(ex)
		return nil
	})
	r.stateManager.ClearVariants()
	r.stateManager.AddLog(fmt.Sprintf("Loaded example %q", ex.ProductName))

	if form.ShouldAutoScrape(prevURL, ex.URL, r.deps.ScrapeDomain) {
		return r.Scrape(ctx)
	}
	return nil
}

// Export renders the current result set as text and archives it when an
// archive is configured. Archive failures do not fail the export.
func (r *Runner) Export(ctx context.Context, sessionID string) (string, error) {
	variants := r.stateManager.Variants()
	if len(variants) == 0 {
		return "", ErrNothingToExport
	}
	text := preview.ExportText(variants)

	if r.deps.Archive != nil {
		key, err := r.deps.Archive.Save(ctx, sessionID, preview.ExportFilename, text)
		if err != nil {
			log.Printf("⚠️ %v", err)
		} else {
			r.stateManager.AddLog("Export archived as " + key)
		}
	}
	return text, nil
}

// DismissError hides the banner
func (r *Runner) DismissError() {
	r.stateManager.ClearError()
}

func (r *Runner) applyScrape(p *types.ScrapedProduct) {
	_ = r.stateManager.UpdateForm(func(f *form.Form) error {
		f.ApplyScrape(p)
		return nil
	})
}

// apiMessage prefers the message the server put in an error body
func apiMessage(err error, fallback string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
