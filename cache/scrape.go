package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"adcopy/config"
	"adcopy/types"

	"github.com/redis/go-redis/v9"
)

// ScrapeCache stores scrape results in Redis keyed by the normalized product URL
type ScrapeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewScrapeCache connects to Redis and verifies connectivity
func NewScrapeCache(cfg config.RedisConfig) (*ScrapeCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Ping to verify
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = config.DefaultScrapeCacheTTL
	}
	return &ScrapeCache{client: client, ttl: ttl}, nil
}

// Close closes the underlying Redis client
func (c *ScrapeCache) Close() error {
	return c.client.Close()
}

// Get returns the cached product for url. A miss is (nil, false, nil).
func (c *ScrapeCache) Get(ctx context.Context, rawURL string) (*types.ScrapedProduct, bool, error) {
	data, err := c.client.Get(ctx, Key(rawURL)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var product types.ScrapedProduct
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached product: %w", err)
	}
	return &product, true, nil
}

// Put stores a successful scrape result until the TTL elapses
func (c *ScrapeCache) Put(ctx context.Context, rawURL string, product *types.ScrapedProduct) error {
	if product == nil {
		return nil
	}
	data, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to encode product: %w", err)
	}
	return c.client.Set(ctx, Key(rawURL), data, c.ttl).Err()
}

// Key returns the Redis key for a product URL.
// The URL is normalized so tracking parameters and fragments share one entry.
func Key(rawURL string) string {
	h := sha256.Sum256([]byte(normalizeURL(rawURL)))
	return config.ScrapeCacheKeyPrefix + hex.EncodeToString(h[:])
}

func normalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		// fallback: lowercase and trim
		return strings.ToLower(raw)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""

	// Remove tracking query parameters
	q := u.Query()
	for k := range q {
		lk := strings.ToLower(k)
		if strings.HasPrefix(lk, "utm_") || lk == "fbclid" || lk == "gclid" {
			q.Del(k)
		}
	}
	u.RawQuery = q.Encode()

	return strings.TrimRight(u.String(), "/")
}
