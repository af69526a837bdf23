package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/vedaai/veda/internal/models"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"Bad gender", func(c *Config) { c.Profile.Gender = "other" }, "profile: invalid gender"},
		{"Bad activity", func(c *Config) { c.Profile.ActivityLevel = "extreme" }, "invalid activity_level"},
		{"Bad goal", func(c *Config) { c.Profile.Goal = "bulk" }, "invalid goal"},
		{"Bad zone", func(c *Config) { c.Insurance.DefaultZone = "Zone9" }, "invalid default_zone"},
		{"Bad coverage", func(c *Config) { c.Insurance.DefaultCoverage = 400000 }, "unsupported default_coverage"},
		{"Negative goal", func(c *Config) { c.Calories.DailyGoal = -1 }, "daily_goal"},
		{"Bad color scheme", func(c *Config) { c.Display.ColorScheme = "neon" }, "invalid color_scheme"},
		{"Bad log level", func(c *Config) { c.Logging.Level = "trace" }, "invalid log level"},
		{"Missing db path", func(c *Config) { c.Database.Path = "" }, "path is required"},
		{"Bad listen addr", func(c *Config) { c.Server.ListenAddr = "8080" }, "invalid listen_addr"},
		{"Negative timeout", func(c *Config) { c.Server.ReadTimeoutSeconds = -2 }, "read_timeout_seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected %q in %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestConfig_Validate_EmptyEnumsAllowed(t *testing.T) {
	cfg := Default()
	cfg.Profile = ProfileConfig{}
	cfg.Insurance = InsuranceConfig{}
	cfg.Display.ColorScheme = ""
	cfg.Logging.Level = ""

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected empty values to fall back to defaults, got %v", err)
	}
}

func TestLoad_ExplicitPath(t *testing.T) {
	isolateEnv(t)
	path := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, path, `
[profile]
gender = "female"
goal = "lose"

[calories]
daily_goal = 1800

[insurance]
default_zone = "Zone2"
default_coverage = 1000000
`)

	cfg, loaded, err := Load(path, false)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded != path {
		t.Errorf("expected %s, got %s", path, loaded)
	}
	if cfg.Profile.Gender != models.GenderFemale || cfg.Profile.Goal != models.GoalLose {
		t.Errorf("unexpected profile %+v", cfg.Profile)
	}
	if cfg.Profile.ActivityLevel != models.ActivityModerate {
		t.Errorf("expected unset activity to keep default, got %s", cfg.Profile.ActivityLevel)
	}
	if cfg.Calories.DailyGoal != 1800 {
		t.Errorf("expected 1800, got %d", cfg.Calories.DailyGoal)
	}
	if cfg.Insurance.DefaultCoverage != models.Coverage10Lakh {
		t.Errorf("expected 10 lakh, got %d", cfg.Insurance.DefaultCoverage)
	}
}

func TestLoad_Errors(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"Syntax", "[profile\ngender = 1", "parsing TOML"},
		{"Unknown key", "[profile]\nheight = 170\n", "unknown keys: profile.height"},
		{"Invalid value", "[logging]\nlevel = \"loud\"\n", "validating config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "_")+".toml")
			writeFile(t, path, tt.content)

			_, _, err := Load(path, false)
			if err == nil {
				t.Fatal("expected error")
			}

			var loadErr *LoadError
			if !errors.As(err, &loadErr) || loadErr.Path != path {
				t.Errorf("expected LoadError for %s, got %v", path, err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected %q in %q", tt.wantErr, err.Error())
			}
		})
	}
}

func TestLoad_CreatesDefault(t *testing.T) {
	isolateEnv(t)
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Chdir(t.TempDir())

	_, _, err := Load("", false)
	if !errors.Is(err, ErrNoConfig) {
		t.Fatalf("expected ErrNoConfig, got %v", err)
	}

	cfg, path, err := Load("", true)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := filepath.Join(xdg, XDGConfigSubdir, DefaultConfigFileName)
	if path != want {
		t.Errorf("expected default written to %s, got %s", want, path)
	}
	if cfg.Calories.DailyGoal != 2000 {
		t.Errorf("expected default goal, got %d", cfg.Calories.DailyGoal)
	}

	reloaded, again, err := Load("", false)
	if err != nil {
		t.Fatalf("reloading saved default: %v", err)
	}
	if again != want || reloaded.Server.ListenAddr != cfg.Server.ListenAddr {
		t.Errorf("saved default did not round-trip: %s %+v", again, reloaded.Server)
	}
	if ConfigPath("") != want {
		t.Errorf("ConfigPath() = %s, want %s", ConfigPath(""), want)
	}
}

func TestLoad_WorkingDirectoryFallback(t *testing.T) {
	isolateEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	wd := t.TempDir()
	t.Chdir(wd)
	writeFile(t, filepath.Join(wd, LocalConfigFileName), "[app]\nuser_name = \"Asha\"\n")

	cfg, path, err := Load("", false)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if path != filepath.Join(".", LocalConfigFileName) {
		t.Errorf("unexpected path %s", path)
	}
	if cfg.App.UserName != "Asha" {
		t.Errorf("expected user name from file, got %q", cfg.App.UserName)
	}
}

func TestApplyEnv(t *testing.T) {
	isolateEnv(t)
	t.Setenv(EnvDBPath, "/tmp/veda-test.db")
	t.Setenv(EnvListenAddr, ":9090")
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvAllowedOrigins, "http://a.test, ,http://b.test")

	cfg := Default()
	if err := ApplyEnv(cfg); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}

	if cfg.Database.Path != "/tmp/veda-test.db" {
		t.Errorf("unexpected db path %s", cfg.Database.Path)
	}
	if cfg.Server.ListenAddr != ":9090" {
		t.Errorf("unexpected listen addr %s", cfg.Server.ListenAddr)
	}
	if cfg.Logging.Level != LogLevelDebug {
		t.Errorf("unexpected level %s", cfg.Logging.Level)
	}
	if !slices.Equal(cfg.Server.AllowedOrigins, []string{"http://a.test", "http://b.test"}) {
		t.Errorf("unexpected origins %v", cfg.Server.AllowedOrigins)
	}
}

func TestApplyEnv_Invalid(t *testing.T) {
	isolateEnv(t)
	t.Setenv(EnvListenAddr, "nonsense")

	if err := ApplyEnv(Default()); err == nil {
		t.Error("expected error for invalid listen address")
	}
}

func TestLoadDotEnv(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	writeFile(t, path, "VEDA_LISTEN_ADDR=127.0.0.1:7000\nVEDA_LOG_LEVEL=warn\n")
	t.Setenv(EnvLogLevel, "error")

	if err := LoadDotEnv(path, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("LoadDotEnv() error = %v", err)
	}

	if got := os.Getenv(EnvListenAddr); got != "127.0.0.1:7000" {
		t.Errorf("expected listen addr from file, got %q", got)
	}
	if got := os.Getenv(EnvLogLevel); got != "error" {
		t.Errorf("expected existing variable to win, got %q", got)
	}
}

func TestEnsureDataDir(t *testing.T) {
	data := t.TempDir()
	t.Setenv("XDG_DATA_HOME", data)

	cfg := Default()
	path, err := EnsureDataDir(cfg)
	if err != nil {
		t.Fatalf("EnsureDataDir() error = %v", err)
	}
	if path != filepath.Join(data, XDGConfigSubdir, "veda.db") {
		t.Errorf("unexpected path %s", path)
	}

	backups, err := BackupDir(cfg)
	if err != nil {
		t.Fatalf("BackupDir() error = %v", err)
	}
	if info, err := os.Stat(backups); err != nil || !info.IsDir() {
		t.Errorf("expected backup directory at %s", backups)
	}

	cfg.Database.Path = ":memory:"
	if path, _ := EnsureDataDir(cfg); path != ":memory:" {
		t.Errorf("expected in-memory path unchanged, got %s", path)
	}

	cfg.Logging.File = ""
	if path, _ := EnsureLogDir(cfg); path != "" {
		t.Errorf("expected file logging disabled, got %s", path)
	}
}

// isolateEnv clears VEDA_* variables for the duration of the test.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvDBPath, EnvListenAddr, EnvLogLevel, EnvAllowedOrigins} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}
