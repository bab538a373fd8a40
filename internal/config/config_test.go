package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("API_BASE_URL", "")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "")
	t.Setenv("STATE_DIR", "")

	cfg := FromEnv()

	if cfg.APIBaseURL != "http://localhost:5005" {
		t.Fatalf("unexpected base URL: %s", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 15*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.HTTPTimeout)
	}
	if cfg.StateDir == "" {
		t.Fatalf("expected a default state dir")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://api.example.com")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "3")
	t.Setenv("STATE_DIR", "/tmp/state")

	cfg := FromEnv()

	if cfg.APIBaseURL != "https://api.example.com" {
		t.Fatalf("unexpected base URL: %s", cfg.APIBaseURL)
	}
	if cfg.HTTPTimeout != 3*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.HTTPTimeout)
	}
	if cfg.StateDir != "/tmp/state" {
		t.Fatalf("unexpected state dir: %s", cfg.StateDir)
	}
}

func TestEnvDurationIgnoresGarbage(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT_SECONDS", "soon")

	cfg := FromEnv()
	if cfg.HTTPTimeout != 15*time.Second {
		t.Fatalf("expected default on parse failure, got %s", cfg.HTTPTimeout)
	}
}
