package state

import (
	"fmt"
	"testing"
	"time"

	"adcopy/config"
	"adcopy/form"
	"adcopy/types"
)

func TestBeginLoadingRefusesSecondRequest(t *testing.T) {
	m := NewManager()
	if !m.BeginLoading() {
		t.Fatalf("first BeginLoading should succeed")
	}
	if m.BeginLoading() {
		t.Fatalf("second BeginLoading should be refused while loading")
	}
	if !m.Snapshot().Loading {
		t.Fatalf("snapshot should report loading")
	}
	m.EndLoading()
	if m.IsLoading() {
		t.Fatalf("EndLoading should clear the loading flag")
	}
	if !m.BeginLoading() {
		t.Fatalf("BeginLoading should succeed after EndLoading")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	m := NewManager()
	m.SetVariants(types.Variants{{Key: "variant_1", Variant: types.Variant{Hook: "h"}}})
	m.SetExamples([]types.Example{{ProductName: "p"}})
	m.SetError("boom")

	snap := m.Snapshot()
	snap.Variants[0].Variant.Hook = "changed"
	snap.Examples[0].ProductName = "changed"

	again := m.Snapshot()
	if again.Variants[0].Variant.Hook != "h" || again.Examples[0].ProductName != "p" {
		t.Fatalf("snapshot mutation leaked into manager: %+v", again)
	}
	if again.Error != "boom" {
		t.Fatalf("Error = %q", again.Error)
	}
	m.ClearError()
	if m.Snapshot().Error != "" {
		t.Fatalf("error should be cleared")
	}
}

func TestUpdateForm(t *testing.T) {
	m := NewManager()
	err := m.UpdateForm(func(f *form.Form) error {
		return f.SetField(form.FieldPrice, "19,99€")
	})
	if err != nil {
		t.Fatalf("UpdateForm: %v", err)
	}
	if got := m.FormState().Price; got != "19,99€" {
		t.Fatalf("Price = %q", got)
	}
	if got := m.FormState().Market.Value(); got != form.DefaultMarket {
		t.Fatalf("new session market = %q", got)
	}
}

func TestLogRingIsBounded(t *testing.T) {
	m := NewManager()
	for i := 0; i < config.MaxActivityLogs+10; i++ {
		m.AddLog(fmt.Sprintf("entry %d", i))
	}
	logs := m.Snapshot().Logs
	if len(logs) != config.MaxActivityLogs {
		t.Fatalf("expected %d logs, got %d", config.MaxActivityLogs, len(logs))
	}
	if logs[0].Message != "entry 10" {
		t.Fatalf("oldest entry = %q", logs[0].Message)
	}
}

func TestExampleIndex(t *testing.T) {
	m := NewManager()
	m.SetExamples([]types.Example{{ProductName: "a"}, {ProductName: "b"}})
	if ex, ok := m.Example(1); !ok || ex.ProductName != "b" {
		t.Fatalf("Example(1) = %+v, %v", ex, ok)
	}
	for _, i := range []int{-1, 2} {
		if _, ok := m.Example(i); ok {
			t.Fatalf("Example(%d) should be out of range", i)
		}
	}
}

func TestStoreExpiresIdleSessions(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := NewStore(time.Hour)
	s.now = func() time.Time { return now }

	a, created := s.Get("a")
	if !created {
		t.Fatalf("first Get should create the session")
	}
	a.SetError("kept")

	now = now.Add(30 * time.Minute)
	again, created := s.Get("a")
	if created || again != a {
		t.Fatalf("session should be reused within ttl")
	}

	now = now.Add(2 * time.Hour)
	_, _ = s.Get("b")
	if s.Len() != 1 {
		t.Fatalf("expired session should be swept, have %d", s.Len())
	}
	fresh, created := s.Get("a")
	if !created || fresh.Snapshot().Error != "" {
		t.Fatalf("expired session should be recreated empty")
	}
}

func TestNewSessionIDIsUnique(t *testing.T) {
	if NewSessionID() == NewSessionID() {
		t.Fatalf("session ids should differ")
	}
}

func TestValidSessionID(t *testing.T) {
	cases := []struct {
		id   string
		want bool
	}{
		{NewSessionID(), true},
		{"", false},
		{"test-session", false},
		{"../../exports/other", false},
	}
	for _, c := range cases {
		if got := ValidSessionID(c.id); got != c.want {
			t.Fatalf("ValidSessionID(%q) = %v; want %v", c.id, got, c.want)
		}
	}
}
