package config

import (
	"os"
	"testing"
	"time"
)

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("QUIZCORE_BASE_URL", "https://quiz.example.com/api")
	t.Setenv("QUIZCORE_ROLE", "TEACHER")
	t.Setenv("QUIZCORE_TIMEOUT", "3s")
	t.Setenv("QUIZCORE_RETRY_ATTEMPTS", "5")

	cfg := FromEnv()
	if cfg.BaseURL != "https://quiz.example.com/api" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Role != "TEACHER" {
		t.Errorf("Role = %q, want TEACHER", cfg.Role)
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("Timeout = %s, want 3s", cfg.Timeout)
	}
	if cfg.Retry.MaxAttempts != 5 {
		t.Errorf("Retry.MaxAttempts = %d, want 5", cfg.Retry.MaxAttempts)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("QUIZCORE_BASE_URL", "https://quiz.example.com")
	t.Setenv("QUIZCORE_TIMEOUT", "not-a-duration")

	cfg := FromEnv()
	if cfg.Timeout != 15*time.Second {
		t.Errorf("unparsable timeout should keep default, got %s", cfg.Timeout)
	}
	if cfg.Role != "STUDENT" {
		t.Errorf("Role = %q, want STUDENT", cfg.Role)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("CacheTTL = %s, want 5m", cfg.CacheTTL)
	}
}

func TestResolveToken(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/token"
	if err := os.WriteFile(path, []byte("  secret-token\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := DefaultConfig()
	cfg.TokenFile = path
	tok, err := cfg.ResolveToken()
	if err != nil {
		t.Fatal(err)
	}
	if tok != "secret-token" {
		t.Errorf("token = %q, want trimmed file contents", tok)
	}

	// An explicit token wins over the file.
	cfg.Token = "inline"
	if tok, _ := cfg.ResolveToken(); tok != "inline" {
		t.Errorf("token = %q, want inline", tok)
	}

	cfg.Token = ""
	cfg.TokenFile = dir + "/missing"
	if _, err := cfg.ResolveToken(); err == nil {
		t.Error("expected error for missing token file")
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("expected missing base URL to fail validation")
	}

	cfg.BaseURL = "https://quiz.example.com"
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	cfg.Retry.MaxAttempts = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected zero retry attempts to fail validation")
	}
}
