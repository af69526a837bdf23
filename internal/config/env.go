package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override file settings.
const (
	EnvDBPath         = "VEDA_DB_PATH"
	EnvListenAddr     = "VEDA_LISTEN_ADDR"
	EnvLogLevel       = "VEDA_LOG_LEVEL"
	EnvAllowedOrigins = "VEDA_ALLOWED_ORIGINS"
)

// LoadDotEnv loads variables from the given .env files (default ".env")
// without replacing variables already set. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides cfg from VEDA_* environment variables and revalidates
// the affected sections.
func ApplyEnv(cfg *Config) error {
	if v, ok := os.LookupEnv(EnvDBPath); ok && v != "" {
		cfg.Database.Path = v
	}

	if v, ok := os.LookupEnv(EnvListenAddr); ok && v != "" {
		cfg.Server.ListenAddr = v
	}

	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.Logging.Level = LogLevel(strings.ToLower(v))
	}

	if v, ok := os.LookupEnv(EnvAllowedOrigins); ok {
		cfg.Server.AllowedOrigins = splitList(v)
	}

	return errors.Join(
		cfg.Database.Validate(),
		cfg.Server.Validate(),
		cfg.Logging.Validate(),
	)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
