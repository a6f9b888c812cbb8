package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all backend and local-state configuration.
type Config struct {
	// BaseURL is the quiz backend root, without a trailing slash.
	BaseURL string

	// Token is the bearer token attached to every request. Empty sends
	// no Authorization header (public endpoints only).
	Token string

	// TokenFile reads the token from a file instead, trimming trailing
	// whitespace. Token wins when both are set.
	TokenFile string

	// Role scopes daily-plan lookups. Default: "STUDENT".
	Role string

	// Timeout is the per-request HTTP timeout. Default: 15s.
	Timeout time.Duration

	// CacheTTL is how long fetched payloads stay fresh in the request
	// cache. Default: 5m.
	CacheTTL time.Duration

	// DBPath overrides the local SQLite database location.
	DBPath string

	// RetryWrongPolls and RetryWrongWait bound how long a retry-wrong
	// request waits for the server to observe submission.
	RetryWrongPolls int
	RetryWrongWait  time.Duration

	Retry RetryConfig
}

// RetryConfig configures retry behavior for transient request failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Role:            "STUDENT",
		Timeout:         15 * time.Second,
		CacheTTL:        5 * time.Minute,
		RetryWrongPolls: 3,
		RetryWrongWait:  400 * time.Millisecond,
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 500 * time.Millisecond,
			MaxWait:     8 * time.Second,
			Multiplier:  2.0,
		},
	}
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for unset values. A .env file in the working directory is
// loaded first when present; real environment variables win over it.
func FromEnv() Config {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if u := os.Getenv("QUIZCORE_BASE_URL"); u != "" {
		cfg.BaseURL = u
	}
	if t := os.Getenv("QUIZCORE_TOKEN"); t != "" {
		cfg.Token = t
	}
	if f := os.Getenv("QUIZCORE_TOKEN_FILE"); f != "" {
		cfg.TokenFile = f
	}
	if r := os.Getenv("QUIZCORE_ROLE"); r != "" {
		cfg.Role = r
	}
	if d := os.Getenv("QUIZCORE_TIMEOUT"); d != "" {
		if v, err := time.ParseDuration(d); err == nil {
			cfg.Timeout = v
		}
	}
	if d := os.Getenv("QUIZCORE_CACHE_TTL"); d != "" {
		if v, err := time.ParseDuration(d); err == nil {
			cfg.CacheTTL = v
		}
	}
	if p := os.Getenv("QUIZCORE_DB"); p != "" {
		cfg.DBPath = p
	}
	if n := os.Getenv("QUIZCORE_RETRY_ATTEMPTS"); n != "" {
		if v, err := strconv.Atoi(n); err == nil && v > 0 {
			cfg.Retry.MaxAttempts = v
		}
	}
	if n := os.Getenv("QUIZCORE_RETRY_WRONG_POLLS"); n != "" {
		if v, err := strconv.Atoi(n); err == nil && v > 0 {
			cfg.RetryWrongPolls = v
		}
	}
	if d := os.Getenv("QUIZCORE_RETRY_WRONG_WAIT"); d != "" {
		if v, err := time.ParseDuration(d); err == nil {
			cfg.RetryWrongWait = v
		}
	}
	return cfg
}

// ResolveToken returns the effective bearer token: Token when set,
// otherwise the trimmed contents of TokenFile.
func (c Config) ResolveToken() (string, error) {
	if c.Token != "" || c.TokenFile == "" {
		return c.Token, nil
	}
	b, err := os.ReadFile(c.TokenFile)
	if err != nil {
		return "", fmt.Errorf("config: read token file: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

// Validate checks that the Config is usable.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("config: base URL is required (set QUIZCORE_BASE_URL)")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("config: timeout must be positive, got %s", c.Timeout)
	}
	if c.CacheTTL <= 0 {
		return fmt.Errorf("config: cache TTL must be positive, got %s", c.CacheTTL)
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("config: retry attempts must be at least 1, got %d", c.Retry.MaxAttempts)
	}
	return nil
}
