package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultConfigFileName is the configuration file name inside the XDG directory.
	DefaultConfigFileName = "config.toml"

	// LocalConfigFileName is the configuration file name looked up in the working directory.
	LocalConfigFileName = "veda.toml"

	// XDGConfigSubdir is the subdirectory under XDG_CONFIG_HOME and XDG_DATA_HOME.
	XDGConfigSubdir = "veda"
)

// ErrNoConfig is returned by Load when no file exists and none may be created.
var ErrNoConfig = errors.New("no configuration file found")

// LoadError represents an error that occurred while loading configuration.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading config from %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads the first configuration found, in order:
//  1. explicitPath, if set (no fallback)
//  2. $XDG_CONFIG_HOME/veda/config.toml or ~/.config/veda/config.toml
//  3. ./veda.toml
//
// When nothing is found and createDefault is set, the defaults are written to
// the XDG location (or ./veda.toml) and returned. Environment overrides are
// applied on top of whatever was loaded. The returned path is empty when the
// configuration exists only in memory.
func Load(explicitPath string, createDefault bool) (*Config, string, error) {
	cfg, path, err := locate(explicitPath, createDefault)
	if err != nil {
		return nil, "", err
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, "", &LoadError{Path: "environment", Err: err}
	}

	return cfg, path, nil
}

func locate(explicitPath string, createDefault bool) (*Config, string, error) {
	if explicitPath != "" {
		cfg, err := loadFromFile(explicitPath)
		if err != nil {
			return nil, "", &LoadError{Path: explicitPath, Err: err}
		}
		return cfg, explicitPath, nil
	}

	candidates := searchPaths()
	for _, path := range candidates {
		if !fileExists(path) {
			continue
		}
		cfg, err := loadFromFile(path)
		if err != nil {
			return nil, "", &LoadError{Path: path, Err: err}
		}
		return cfg, path, nil
	}

	if !createDefault {
		return nil, "", fmt.Errorf("%w; searched: %s", ErrNoConfig, strings.Join(candidates, ", "))
	}

	cfg := Default()
	target := candidates[len(candidates)-1]
	if len(candidates) > 1 {
		if err := os.MkdirAll(filepath.Dir(candidates[0]), 0750); err == nil {
			target = candidates[0]
		}
	}

	if err := Save(cfg, target); err != nil {
		// Keep going with the in-memory defaults.
		return cfg, "", nil
	}

	return cfg, target, nil
}

// searchPaths lists config locations in precedence order. The working
// directory file is always last.
func searchPaths() []string {
	var paths []string
	if dir := xdgDir("XDG_CONFIG_HOME", ".config"); dir != "" {
		paths = append(paths, filepath.Join(dir, DefaultConfigFileName))
	}
	return append(paths, filepath.Join(".", LocalConfigFileName))
}

// loadFromFile decodes path over the defaults and validates the result.
func loadFromFile(path string) (*Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing TOML: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

const fileHeader = `# VEDA configuration
#
# Generated with default values. Environment variables VEDA_DB_PATH,
# VEDA_LISTEN_ADDR, VEDA_LOG_LEVEL and VEDA_ALLOWED_ORIGINS override
# the matching settings.

`

// Save writes a configuration to a TOML file.
func Save(cfg *Config, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0640)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(fileHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}

	return nil
}

// xdgDir returns $env/veda, falling back to ~/<fallback>/veda.
// It returns "" when neither can be determined.
func xdgDir(env, fallback string) string {
	if base := os.Getenv(env); base != "" {
		return filepath.Join(base, XDGConfigSubdir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, fallback, XDGConfigSubdir)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ConfigPath returns the configuration file path that would be used.
func ConfigPath(explicitPath string) string {
	if explicitPath != "" {
		return explicitPath
	}
	candidates := searchPaths()
	for _, path := range candidates {
		if fileExists(path) {
			return path
		}
	}
	return candidates[0]
}

// resolveDataPath places a relative name under the XDG data directory,
// creating directories as needed. Absolute names are kept as they are.
func resolveDataPath(name string) (string, error) {
	if filepath.IsAbs(name) {
		if err := os.MkdirAll(filepath.Dir(name), 0750); err != nil {
			return "", fmt.Errorf("creating directory: %w", err)
		}
		return name, nil
	}

	dir := xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
	if dir == "" {
		return name, nil
	}

	full := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(full), 0750); err != nil {
		// Fall back to the working directory.
		return name, nil
	}
	return full, nil
}

// EnsureDataDir returns the database file path, creating its directory.
// The in-memory path ":memory:" is returned unchanged.
func EnsureDataDir(cfg *Config) (string, error) {
	if cfg.Database.Path == ":memory:" {
		return cfg.Database.Path, nil
	}
	path, err := resolveDataPath(cfg.Database.Path)
	if err != nil {
		return "", fmt.Errorf("database: %w", err)
	}
	return path, nil
}

// EnsureLogDir returns the log file path, creating its directory.
// An empty path disables file logging and returns "".
func EnsureLogDir(cfg *Config) (string, error) {
	if cfg.Logging.File == "" {
		return "", nil
	}
	path, err := resolveDataPath(cfg.Logging.File)
	if err != nil {
		return "", fmt.Errorf("log: %w", err)
	}
	return path, nil
}

// BackupDir returns the directory for database backups, next to the database.
func BackupDir(cfg *Config) (string, error) {
	dbPath, err := EnsureDataDir(cfg)
	if err != nil {
		return "", err
	}

	dir := filepath.Join(filepath.Dir(dbPath), "backups")
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("creating backup directory: %w", err)
	}
	return dir, nil
}
