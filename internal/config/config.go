// Package config resolves runtime configuration for readmefeed.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultFeedURL    = "https://blog.shrivarshapoojary.in/index.xml"
	defaultMaxPosts   = 5
	defaultReadmePath = "README.md"
	defaultTimeout    = 10 * time.Second
)

// Config holds the settings for one run.
type Config struct {
	FeedURL    string
	MaxPosts   int
	ReadmePath string
	Timeout    time.Duration
}

// Load resolves configuration from a .env file (when present) and
// READMEFEED_* environment variables, falling back to built-in defaults.
func Load() (Config, error) {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	cfg := Config{
		FeedURL:    defaultFeedURL,
		MaxPosts:   defaultMaxPosts,
		ReadmePath: defaultReadmePath,
		Timeout:    defaultTimeout,
	}

	if v := os.Getenv("READMEFEED_FEED_URL"); v != "" {
		cfg.FeedURL = v
	}
	if v := os.Getenv("READMEFEED_README_PATH"); v != "" {
		cfg.ReadmePath = v
	}
	if v := os.Getenv("READMEFEED_MAX_POSTS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid READMEFEED_MAX_POSTS %q: must be a positive integer", v)
		}
		cfg.MaxPosts = n
	}
	if v := os.Getenv("READMEFEED_TIMEOUT_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid READMEFEED_TIMEOUT_SECONDS %q: must be a positive integer", v)
		}
		cfg.Timeout = time.Duration(n) * time.Second
	}

	return cfg, nil
}
