package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the resolved application configuration.
// Values come from an optional YAML file, then environment variables.
type Config struct {
	APIBaseURL   string        `yaml:"api_base_url"`
	Port         string        `yaml:"port"`
	ScrapeDomain string        `yaml:"scrape_domain"`
	CORSOrigins  []string      `yaml:"cors_origins"`
	SessionTTL   time.Duration `yaml:"session_ttl"`

	Redis RedisConfig `yaml:"redis"`
	S3    S3Config    `yaml:"s3"`
}

// RedisConfig configures the optional scrape cache. Empty Addr disables it.
type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

// S3Config configures the optional export archive. Empty Bucket disables it.
type S3Config struct {
	Bucket       string `yaml:"bucket"`
	Region       string `yaml:"region"`
	Profile      string `yaml:"profile"`
	Prefix       string `yaml:"prefix"`
	UsePathStyle bool   `yaml:"use_path_style"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		APIBaseURL:   DefaultAPIBaseURL,
		Port:         DefaultPort,
		ScrapeDomain: DefaultScrapeDomain,
		SessionTTL:   DefaultSessionTTL,
		Redis:        RedisConfig{TTL: DefaultScrapeCacheTTL},
	}
}

// Load resolves the configuration: .env (if present), then the YAML file named
// by ADCOPY_CONFIG (if set), then individual environment variables.
func Load() (Config, error) {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg := Default()
	if path := strings.TrimSpace(os.Getenv("ADCOPY_CONFIG")); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return Config{}, err
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to unmarshal yaml: %w", err)
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	str := func(key string, dst *string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}

	str("API_BASE_URL", &c.APIBaseURL)
	str("PORT", &c.Port)
	str("SCRAPE_DOMAIN", &c.ScrapeDomain)
	str("REDIS_ADDR", &c.Redis.Addr)
	str("REDIS_PASS", &c.Redis.Password)
	str("S3_BUCKET", &c.S3.Bucket)
	str("S3_REGION", &c.S3.Region)
	str("S3_PROFILE", &c.S3.Profile)
	str("S3_PREFIX", &c.S3.Prefix)

	if v := strings.TrimSpace(getenv("CORS_ORIGINS")); v != "" {
		c.CORSOrigins = splitList(v)
	}
	if v := strings.TrimSpace(getenv("S3_USE_PATH_STYLE")); v != "" {
		c.S3.UsePathStyle = strings.EqualFold(v, "true")
	}
	if v := strings.TrimSpace(getenv("REDIS_DB")); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid REDIS_DB %q: %w", v, err)
		}
		c.Redis.DB = db
	}
	if v := strings.TrimSpace(getenv("SCRAPE_CACHE_TTL_SECONDS")); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return fmt.Errorf("invalid SCRAPE_CACHE_TTL_SECONDS %q", v)
		}
		c.Redis.TTL = time.Duration(secs) * time.Second
	}
	if v := strings.TrimSpace(getenv("SESSION_TTL_MINUTES")); v != "" {
		mins, err := strconv.Atoi(v)
		if err != nil || mins <= 0 {
			return fmt.Errorf("invalid SESSION_TTL_MINUTES %q", v)
		}
		c.SessionTTL = time.Duration(mins) * time.Minute
	}
	return nil
}

func (c *Config) normalize() {
	c.APIBaseURL = strings.TrimRight(c.APIBaseURL, "/")
	if c.S3.Prefix != "" {
		c.S3.Prefix = strings.Trim(c.S3.Prefix, "/") + "/"
	}
	if c.Redis.TTL <= 0 {
		c.Redis.TTL = DefaultScrapeCacheTTL
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = DefaultSessionTTL
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GetEnvOrDefault returns the value of an environment variable or a default value
func GetEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
