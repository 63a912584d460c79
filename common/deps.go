package common

import (
	"context"
	"log"

	"adcopy/cache"
	"adcopy/client"
	"adcopy/config"
	"adcopy/workflow"
)

// NewDeps builds the workflow collaborators from the configuration.
// The scrape cache and export archive are optional; a failure to reach either
// is logged and the feature is disabled. The returned func releases resources.
func NewDeps(ctx context.Context, cfg config.Config) (workflow.Deps, func()) {
	deps := workflow.Deps{
		API:          client.NewClient(cfg.APIBaseURL),
		ScrapeDomain: cfg.ScrapeDomain,
	}
	closers := []func(){}

	if cfg.Redis.Addr != "" {
		sc, err := cache.NewScrapeCache(cfg.Redis)
		if err != nil {
			log.Printf("⚠️ Scrape cache disabled: %v", err)
		} else {
			deps.Cache = sc
			closers = append(closers, func() { _ = sc.Close() })
			log.Printf("✅ Scrape cache connected at %s (ttl %s)", cfg.Redis.Addr, cfg.Redis.TTL)
		}
	} else {
		log.Printf("Redis not configured; scrape cache disabled")
	}

	if cfg.S3.Bucket != "" {
		s3c, err := NewS3(ctx, cfg.S3)
		if err != nil {
			log.Printf("⚠️ Failed to init S3 client: %v (export archive disabled)", err)
		} else {
			deps.Archive = NewExportArchive(s3c, cfg.S3.Bucket, cfg.S3.Prefix)
			log.Printf("✅ Exports archived to s3://%s/%s", cfg.S3.Bucket, cfg.S3.Prefix)
		}
	} else {
		log.Printf("S3 not configured; export archive disabled")
	}

	return deps, func() {
		for _, c := range closers {
			c()
		}
	}
}
