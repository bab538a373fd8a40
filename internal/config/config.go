package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration parsed from environment variables.
type Config struct {
	APIBaseURL      string
	HTTPTimeout     time.Duration
	StateDir        string
	StubAddr        string
	ShutdownTimeout time.Duration
}

// FromEnv builds Config with defaults, overridden by environment variables.
// A .env file in the working directory is loaded first when present.
func FromEnv() Config {
	_ = godotenv.Load()

	return Config{
		APIBaseURL:      envOrDefault("API_BASE_URL", "http://localhost:5005"),
		HTTPTimeout:     envDuration("HTTP_TIMEOUT_SECONDS", 15*time.Second),
		StateDir:        envOrDefault("STATE_DIR", defaultStateDir()),
		StubAddr:        envOrDefault("STUB_ADDR", ":5005"),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT_SECONDS", 10*time.Second),
	}
}

func defaultStateDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".thriftshop"
	}
	return dir + string(os.PathSeparator) + "thriftshop"
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return def
}
