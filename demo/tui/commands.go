package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"adcopy/config"
	"adcopy/preview"
	"adcopy/workflow"

	tea "github.com/charmbracelet/bubbletea"
)

func runOp(op string, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), config.RequestTimeout+5*time.Second)
		defer cancel()
		return OpDoneMsg{Op: op, Err: fn(ctx)}
	}
}

// initSession loads the API status and examples
func initSession(r *workflow.Runner) tea.Cmd {
	return runOp("init", func(ctx context.Context) error {
		r.Init(ctx)
		return nil
	})
}

// submit issues the generate request
func submit(r *workflow.Runner) tea.Cmd {
	return runOp("generate", r.Submit)
}

// scrape fills the product fields from the URL
func scrape(r *workflow.Runner) tea.Cmd {
	return runOp("scrape", r.Scrape)
}

// updateField commits an edit; a changed shop URL scrapes
func updateField(r *workflow.Runner, field, value string) tea.Cmd {
	return runOp("edit", func(ctx context.Context) error {
		return r.UpdateField(ctx, field, value)
	})
}

// loadExample replaces the form with example i
func loadExample(r *workflow.Runner, i int) tea.Cmd {
	return runOp("example", func(ctx context.Context) error {
		return r.LoadExample(ctx, i)
	})
}

// exportToFile writes the text export into dir
func exportToFile(r *workflow.Runner, sessionID, dir string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		text, err := r.Export(ctx, sessionID)
		if err != nil {
			return ExportDoneMsg{Err: err}
		}
		path := filepath.Join(dir, preview.ExportFilename)
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			return ExportDoneMsg{Err: fmt.Errorf("failed to write export: %w", err)}
		}
		return ExportDoneMsg{Path: path}
	}
}

// tickCmd creates a command that ticks every 500ms to refresh the view
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg{Time: t}
	})
}
