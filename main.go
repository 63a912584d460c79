package main

import (
	"context"
	"log"
	"net/http"

	"adcopy/api"
	"adcopy/common"
	"adcopy/config"
	"adcopy/state"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	deps, cleanup := common.NewDeps(context.Background(), cfg)
	defer cleanup()

	store := state.NewStore(cfg.SessionTTL)
	r := api.NewRouter(api.NewServer(store, deps), cfg.CORSOrigins)

	addr := ":" + cfg.Port
	log.Printf("Starting ad copy server on %s (API %s)", addr, cfg.APIBaseURL)
	log.Println("Endpoints available:")
	log.Println("  GET  /")
	log.Println("  POST /form, /form/select/:field, /form/reset/:field")
	log.Println("  POST /generate")
	log.Println("  POST /scrape")
	log.Println("  POST /examples/:index")
	log.Println("  POST /error/dismiss")
	log.Println("  GET  /export")
	log.Println("  GET  /api/state")
	log.Println("  GET  /healthz")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
