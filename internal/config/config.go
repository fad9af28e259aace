package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration sourced from an optional .env file and
// environment variables.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// TokenFile is where the session token is persisted between launches.
	TokenFile string
	// DeleteClientePath is the DELETE endpoint template. The deployed backend
	// exposes the delete route under /clientes/test/{id}; kept configurable
	// in case that changes server-side.
	DeleteClientePath string
}

const defaultBaseURL = "https://challange-react-backend.onrender.com"

// Load reads configuration from the environment, applying defaults for every
// missing value. A .env file in the working directory is honored when
// present.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		BaseURL:           fallback(os.Getenv("APP_BASE_URL"), defaultBaseURL),
		Timeout:           10 * time.Second,
		TokenFile:         fallback(os.Getenv("APP_TOKEN_FILE"), defaultTokenFile()),
		DeleteClientePath: fallback(os.Getenv("APP_DELETE_CLIENTE_PATH"), "/clientes/test/%d"),
	}

	if secs, err := strconv.Atoi(os.Getenv("APP_TIMEOUT_SECONDS")); err == nil && secs > 0 {
		cfg.Timeout = time.Duration(secs) * time.Second
	}

	return cfg
}

func defaultTokenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "cli_clientes", "authToken")
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}
