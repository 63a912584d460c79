package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"adcopy/common"
	"adcopy/config"
	"adcopy/demo/tui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Config error: %v\n", err)
		os.Exit(1)
	}

	// Parse command-line flags
	apiURL := flag.String("api", cfg.APIBaseURL, "Copy generation API base URL")
	scrapeDomain := flag.String("scrape-domain", cfg.ScrapeDomain, "URLs containing this domain are scraped automatically")
	exportDir := flag.String("out", config.GetEnvOrDefault("ADCOPY_EXPORT_DIR", "."), "Directory the text export is written to")
	logFile := flag.String("log", config.GetEnvOrDefault("ADCOPY_TUI_LOG", "adcopy-tui.log"), "File for diagnostic logs (the terminal is taken by the UI)")
	flag.Parse()

	cfg.APIBaseURL = *apiURL
	cfg.ScrapeDomain = *scrapeDomain

	f, err := tea.LogToFile(*logFile, "adcopy")
	if err != nil {
		fmt.Printf("Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	log.Printf("Starting TUI against %s", cfg.APIBaseURL)

	deps, cleanup := common.NewDeps(context.Background(), cfg)
	defer cleanup()

	// Create TUI model
	m := tui.NewModel(deps, *exportDir)

	// Create the tea program
	program := tea.NewProgram(m)

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		program.Quit()
	}()

	// Run the program
	if _, err := program.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
