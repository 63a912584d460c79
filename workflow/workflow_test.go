package workflow

import (
	"context"
	"errors"
	"net/http"
	"runtime"
	"strings"
	"sync"
	"testing"

	"adcopy/client"
	"adcopy/form"
	"adcopy/state"
	"adcopy/types"

	"github.com/google/go-cmp/cmp"
)

type fakeAPI struct {
	mu sync.Mutex

	health    *types.HealthResponse
	healthErr error
	examples  *types.ExamplesResponse
	exErr     error

	scrape     *types.ScrapeResponse
	scrapeErr  error
	scrapeURLs []string

	generate     *types.GenerateResponse
	generateErr  error
	generateReqs []types.GenerateRequest
	// block, when set, holds GenerateCopy until closed
	block chan struct{}
}

func (f *fakeAPI) HealthCheck(ctx context.Context) (*types.HealthResponse, error) {
	return f.health, f.healthErr
}

func (f *fakeAPI) GetExamples(ctx context.Context) (*types.ExamplesResponse, error) {
	return f.examples, f.exErr
}

func (f *fakeAPI) ScrapeProduct(ctx context.Context, url string) (*types.ScrapeResponse, error) {
	f.mu.Lock()
	f.scrapeURLs = append(f.scrapeURLs, url)
	f.mu.Unlock()
	return f.scrape, f.scrapeErr
}

func (f *fakeAPI) GenerateCopy(ctx context.Context, req types.GenerateRequest) (*types.GenerateResponse, error) {
	f.mu.Lock()
	f.generateReqs = append(f.generateReqs, req)
	f.mu.Unlock()
	if f.block != nil {
		<-f.block
	}
	return f.generate, f.generateErr
}

type memCache struct {
	items map[string]*types.ScrapedProduct
	puts  int
}

func (c *memCache) Get(ctx context.Context, url string) (*types.ScrapedProduct, bool, error) {
	p, ok := c.items[url]
	return p, ok, nil
}

func (c *memCache) Put(ctx context.Context, url string, p *types.ScrapedProduct) error {
	if c.items == nil {
		c.items = make(map[string]*types.ScrapedProduct)
	}
	c.items[url] = p
	c.puts++
	return nil
}

type fakeArchive struct {
	saved []string
	err   error
}

func (a *fakeArchive) Save(ctx context.Context, sessionID, filename, text string) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	a.saved = append(a.saved, sessionID+"/"+filename)
	return "exports/" + filename, nil
}

func fillRequired(t *testing.T, m *state.Manager) {
	t.Helper()
	err := m.UpdateForm(func(f *form.Form) error {
		for k, v := range map[string]string{
			form.FieldProductName: "Električni čistilec zob SMILY",
			form.FieldPrice:       "19,99€",
			form.FieldFeatures:    "Removes plaque | USB rechargeable",
		} {
			if err := f.SetField(k, v); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("fill form: %v", err)
	}
}

func twoVariants() types.Variants {
	return types.Variants{
		{Key: "variant_1", Variant: types.Variant{Angle: types.AnglePainPoint, Hook: "h1", Body: "b1", CTA: "c1", CharacterCount: 120}},
		{Key: "variant_2", Variant: types.Variant{Angle: types.AngleBenefit, Hook: "h2", Body: "b2", CTA: "c2", CharacterCount: 99}},
	}
}

func TestInit(t *testing.T) {
	api := &fakeAPI{
		health:   &types.HealthResponse{Status: "healthy", ClaudeAPIConfigured: true},
		examples: &types.ExamplesResponse{Success: true, Examples: []types.Example{{ProductName: "p"}}},
	}
	m := state.NewManager()
	NewRunner(m, Deps{API: api}).Init(context.Background())

	snap := m.Snapshot()
	if !snap.Status.Healthy || !snap.Status.ClaudeConfigured {
		t.Fatalf("unexpected status %+v", snap.Status)
	}
	if len(snap.Examples) != 1 {
		t.Fatalf("expected 1 example, got %d", len(snap.Examples))
	}
}

func TestInitFailuresAreSilent(t *testing.T) {
	api := &fakeAPI{healthErr: errors.New("refused"), exErr: errors.New("refused")}
	m := state.NewManager()
	NewRunner(m, Deps{API: api}).Init(context.Background())

	snap := m.Snapshot()
	if snap.Status.Healthy || len(snap.Examples) != 0 || snap.Error != "" {
		t.Fatalf("failures should leave a disconnected, empty, bannerless state: %+v", snap)
	}
}

func TestSubmitSuccess(t *testing.T) {
	api := &fakeAPI{generate: &types.GenerateResponse{Success: true, Data: twoVariants()}}
	m := state.NewManager()
	fillRequired(t, m)
	m.SetError("stale")

	if err := NewRunner(m, Deps{API: api}).Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if len(api.generateReqs) != 1 {
		t.Fatalf("expected one generate call, got %d", len(api.generateReqs))
	}
	want := types.GenerateRequest{
		ProductName: "Električni čistilec zob SMILY",
		Price:       "19,99€",
		Features:    "Removes plaque | USB rechargeable",
		Market:      "Slovenia",
		Objective:   "Conversion",
		Model:       types.ModelFast,
		MaxChars:    150,
	}
	if diff := cmp.Diff(want, api.generateReqs[0]); diff != "" {
		t.Fatalf("request mismatch (-want +got):\n%s", diff)
	}

	snap := m.Snapshot()
	if snap.Error != "" || snap.Loading {
		t.Fatalf("unexpected state after success: %+v", snap)
	}
	if diff := cmp.Diff([]string{"variant_1", "variant_2"}, snap.Variants.Keys()); diff != "" {
		t.Fatalf("variant order mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmitFailures(t *testing.T) {
	cases := []struct {
		name    string
		api     *fakeAPI
		wantMsg string
	}{
		{
			name:    "rejected with message",
			api:     &fakeAPI{generate: &types.GenerateResponse{Success: false, Error: "Quota exceeded"}},
			wantMsg: "Quota exceeded",
		},
		{
			name:    "rejected without message",
			api:     &fakeAPI{generate: &types.GenerateResponse{Success: false}},
			wantMsg: MsgGenerateFailed,
		},
		{
			name:    "transport error",
			api:     &fakeAPI{generateErr: errors.New("connection refused")},
			wantMsg: MsgGenerateTransport,
		},
		{
			name: "server error body",
			api: &fakeAPI{generateErr: &client.APIError{
				StatusCode: http.StatusInternalServerError, Message: "Claude API key not configured",
			}},
			wantMsg: "Claude API key not configured",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m := state.NewManager()
			fillRequired(t, m)
			m.SetVariants(twoVariants())

			if err := NewRunner(m, Deps{API: c.api}).Submit(context.Background()); err == nil {
				t.Fatalf("expected error")
			}
			snap := m.Snapshot()
			if snap.Error != c.wantMsg {
				t.Fatalf("banner = %q; want %q", snap.Error, c.wantMsg)
			}
			if len(snap.Variants) != 0 {
				t.Fatalf("prior results should be cleared on submit")
			}
			if snap.Loading {
				t.Fatalf("loading flag should be cleared")
			}
		})
	}
}

func TestSubmitValidation(t *testing.T) {
	api := &fakeAPI{}
	m := state.NewManager()
	err := NewRunner(m, Deps{API: api}).Submit(context.Background())

	var verr *form.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(api.generateReqs) != 0 {
		t.Fatalf("invalid form should not call the API")
	}
	if !strings.HasPrefix(m.Snapshot().Error, "Missing required fields") {
		t.Fatalf("banner = %q", m.Snapshot().Error)
	}
}

func TestSubmitWhileLoadingIsRefused(t *testing.T) {
	api := &fakeAPI{
		generate: &types.GenerateResponse{Success: true, Data: twoVariants()},
		block:    make(chan struct{}),
	}
	m := state.NewManager()
	fillRequired(t, m)
	r := NewRunner(m, Deps{API: api})

	done := make(chan error, 1)
	go func() { done <- r.Submit(context.Background()) }()

	// Wait until the first request is in flight.
	for {
		api.mu.Lock()
		n := len(api.generateReqs)
		api.mu.Unlock()
		if n == 1 {
			break
		}
		runtime.Gosched()
	}

	if err := r.Submit(context.Background()); !errors.Is(err, ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}
	close(api.block)
	if err := <-done; err != nil {
		t.Fatalf("first Submit: %v", err)
	}
	if len(api.generateReqs) != 1 {
		t.Fatalf("expected exactly one generate call, got %d", len(api.generateReqs))
	}
}

func TestScrape(t *testing.T) {
	const url = "https://vigoshop.si/izdelek/zunanja-brezzicna-kamera-digicam/"

	t.Run("success fills and caches", func(t *testing.T) {
		api := &fakeAPI{scrape: &types.ScrapeResponse{Success: true, Data: &types.ScrapedProduct{
			Name: "Zunanja kamera", Price: "49,99€", Features: "a | b", Description: "",
		}}}
		cache := &memCache{}
		m := state.NewManager()
		_ = m.UpdateForm(func(f *form.Form) error {
			_ = f.SetField(form.FieldDescription, "keep me")
			return f.SetField(form.FieldURL, url)
		})

		r := NewRunner(m, Deps{API: api, Cache: cache})
		if err := r.Scrape(context.Background()); err != nil {
			t.Fatalf("Scrape: %v", err)
		}
		st := m.FormState()
		if st.ProductName != "Zunanja kamera" || st.Price != "49,99€" || st.Description != "keep me" {
			t.Fatalf("unexpected form after scrape: %+v", st)
		}
		if cache.puts != 1 {
			t.Fatalf("expected result to be cached")
		}

		// Second scrape is served from the cache.
		if err := r.Scrape(context.Background()); err != nil {
			t.Fatalf("Scrape: %v", err)
		}
		if len(api.scrapeURLs) != 1 {
			t.Fatalf("expected one API scrape, got %d", len(api.scrapeURLs))
		}
	})

	t.Run("rejected leaves fields unchanged", func(t *testing.T) {
		api := &fakeAPI{scrape: &types.ScrapeResponse{Success: false, Error: "Product not found"}}
		m := state.NewManager()
		fillRequired(t, m)
		_ = m.UpdateForm(func(f *form.Form) error { return f.SetField(form.FieldURL, url) })
		before := m.FormState()

		err := NewRunner(m, Deps{API: api}).Scrape(context.Background())
		if !errors.Is(err, ErrRejected) {
			t.Fatalf("expected ErrRejected, got %v", err)
		}
		if m.FormState() != before {
			t.Fatalf("form changed after rejected scrape")
		}
		if m.Snapshot().Error != "Product not found" {
			t.Fatalf("banner = %q", m.Snapshot().Error)
		}
	})

	t.Run("transport error", func(t *testing.T) {
		api := &fakeAPI{scrapeErr: errors.New("timeout")}
		m := state.NewManager()
		_ = m.UpdateForm(func(f *form.Form) error { return f.SetField(form.FieldURL, url) })

		_ = NewRunner(m, Deps{API: api}).Scrape(context.Background())
		if m.Snapshot().Error != MsgScrapeTransport {
			t.Fatalf("banner = %q", m.Snapshot().Error)
		}
	})

	t.Run("no url is a no-op", func(t *testing.T) {
		api := &fakeAPI{}
		if err := NewRunner(state.NewManager(), Deps{API: api}).Scrape(context.Background()); err != nil {
			t.Fatalf("Scrape: %v", err)
		}
		if len(api.scrapeURLs) != 0 {
			t.Fatalf("no request expected without a URL")
		}
	})
}

func TestUpdateFieldAutoScrape(t *testing.T) {
	api := &fakeAPI{scrape: &types.ScrapeResponse{Success: true, Data: &types.ScrapedProduct{Name: "n"}}}
	m := state.NewManager()
	r := NewRunner(m, Deps{API: api, ScrapeDomain: "vigoshop.si"})
	ctx := context.Background()

	_ = r.UpdateField(ctx, form.FieldURL, "https://example.com/x")
	_ = r.UpdateField(ctx, form.FieldURL, "https://vigoshop.si/izdelek/x/")
	_ = r.UpdateField(ctx, form.FieldURL, "https://vigoshop.si/izdelek/x/")
	_ = r.UpdateField(ctx, form.FieldPrice, "5€")

	if diff := cmp.Diff([]string{"https://vigoshop.si/izdelek/x/"}, api.scrapeURLs); diff != "" {
		t.Fatalf("scrape calls mismatch (-want +got):\n%s", diff)
	}
	if m.FormState().ProductName != "n" {
		t.Fatalf("scraped name not applied")
	}
}

func TestApplyFormReportsFirstError(t *testing.T) {
	m := state.NewManager()
	r := NewRunner(m, Deps{API: &fakeAPI{}})

	err := r.ApplyForm(context.Background(), map[string]string{
		form.FieldPrice:  "9€",
		form.FieldMarket: "Atlantis",
	})
	if !errors.Is(err, form.ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
	if m.FormState().Price != "9€" {
		t.Fatalf("valid fields should still be applied")
	}
	if m.Snapshot().Error == "" {
		t.Fatalf("expected a banner")
	}
}

func TestLoadExample(t *testing.T) {
	api := &fakeAPI{scrape: &types.ScrapeResponse{Success: false}}
	m := state.NewManager()
	m.SetExamples([]types.Example{
		{URL: "https://example.com/a", ProductName: "A", Price: "1", Features: "f", Market: "Germany", Objective: "Awareness"},
		{URL: "https://example.com/b", ProductName: "B", Price: "2", Features: "g", Market: "SI", Objective: "Engagement"},
	})
	m.SetVariants(twoVariants())
	r := NewRunner(m, Deps{API: api, ScrapeDomain: "vigoshop.si"})

	if err := r.LoadExample(context.Background(), 1); err != nil {
		t.Fatalf("LoadExample: %v", err)
	}
	snap := m.Snapshot()
	if snap.Form.ProductName != "B" || snap.Form.Market != types.Custom("SI") {
		t.Fatalf("unexpected form %+v", snap.Form)
	}
	if len(snap.Variants) != 0 {
		t.Fatalf("loading an example should clear results")
	}

	if err := r.LoadExample(context.Background(), 5); err != nil {
		t.Fatalf("out-of-range index should be ignored, got %v", err)
	}
	if m.FormState().ProductName != "B" {
		t.Fatalf("out-of-range index changed the form")
	}
	if len(api.scrapeURLs) != 0 {
		t.Fatalf("non-shop example URLs should not scrape")
	}
}

func TestExport(t *testing.T) {
	m := state.NewManager()
	archive := &fakeArchive{}
	r := NewRunner(m, Deps{API: &fakeAPI{}, Archive: archive})

	if _, err := r.Export(context.Background(), "s1"); !errors.Is(err, ErrNothingToExport) {
		t.Fatalf("expected ErrNothingToExport, got %v", err)
	}

	m.SetVariants(twoVariants())
	text, err := r.Export(context.Background(), "s1")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !strings.Contains(text, "=== VARIANT 1 ===") || !strings.Contains(text, "=== VARIANT 2 ===") {
		t.Fatalf("unexpected export %q", text)
	}
	if diff := cmp.Diff([]string{"s1/facebook-ad-copy.txt"}, archive.saved); diff != "" {
		t.Fatalf("archive mismatch (-want +got):\n%s", diff)
	}

	archive.err = errors.New("denied")
	if _, err := r.Export(context.Background(), "s1"); err != nil {
		t.Fatalf("archive failure should not fail the export: %v", err)
	}
}

func TestDismissError(t *testing.T) {
	m := state.NewManager()
	m.SetError("boom")
	NewRunner(m, Deps{API: &fakeAPI{}}).DismissError()
	if m.Snapshot().Error != "" {
		t.Fatalf("banner should be dismissed")
	}
}
