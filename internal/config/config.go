// Package config provides configuration management for VEDA.
// Configurations are loaded from TOML files with XDG-compliant paths and
// may be overridden from the environment.
package config

import (
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/vedaai/veda/internal/models"
)

// Config holds the complete application configuration.
type Config struct {
	App       AppConfig       `toml:"app"`
	Profile   ProfileConfig   `toml:"profile"`
	Insurance InsuranceConfig `toml:"insurance"`
	Calories  CaloriesConfig  `toml:"calories"`
	Display   DisplayConfig   `toml:"display"`
	Logging   LoggingConfig   `toml:"logging"`
	Database  DatabaseConfig  `toml:"database"`
	Server    ServerConfig    `toml:"server"`
}

// AppConfig identifies the installation.
type AppConfig struct {
	Name     string `toml:"name"`
	UserName string `toml:"user_name"`
}

// ProfileConfig holds the values the health form is pre-filled with.
type ProfileConfig struct {
	Gender        models.Gender        `toml:"gender"`
	ActivityLevel models.ActivityLevel `toml:"activity_level"`
	Goal          models.Goal          `toml:"goal"`
}

// InsuranceConfig holds the values the premium form is pre-filled with.
type InsuranceConfig struct {
	DefaultZone     models.Zone           `toml:"default_zone"`
	DefaultCoverage models.CoverageAmount `toml:"default_coverage"`
}

// CaloriesConfig controls the calorie counter.
type CaloriesConfig struct {
	DailyGoal int `toml:"daily_goal"`
}

// DisplayConfig controls TUI appearance.
type DisplayConfig struct {
	ColorScheme ColorScheme `toml:"color_scheme"`
	DateFormat  string      `toml:"date_format"`
	TimeFormat  string      `toml:"time_format"`
}

// ColorScheme defines the terminal color palette.
type ColorScheme string

const (
	ColorSchemeSaffron ColorScheme = "saffron"
	ColorSchemeOcean   ColorScheme = "ocean"
	ColorSchemeMono    ColorScheme = "mono"
)

// LoggingConfig controls application logging.
type LoggingConfig struct {
	Level LogLevel `toml:"level"`
	File  string   `toml:"file"`
}

// LogLevel defines logging verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// DatabaseConfig controls SQLite database settings.
type DatabaseConfig struct {
	Path                string `toml:"path"`
	BackupIntervalHours int    `toml:"backup_interval_hours"`
	BackupRetentionDays int    `toml:"backup_retention_days"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	ListenAddr          string   `toml:"listen_addr"`
	AllowedOrigins      []string `toml:"allowed_origins"`
	ReadTimeoutSeconds  int      `toml:"read_timeout_seconds"`
	WriteTimeoutSeconds int      `toml:"write_timeout_seconds"`
}

// ReadTimeout returns the read timeout as a duration.
func (s *ServerConfig) ReadTimeout() time.Duration {
	return time.Duration(s.ReadTimeoutSeconds) * time.Second
}

// WriteTimeout returns the write timeout as a duration.
func (s *ServerConfig) WriteTimeout() time.Duration {
	return time.Duration(s.WriteTimeoutSeconds) * time.Second
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if err := c.Profile.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("profile: %w", err))
	}

	if err := c.Insurance.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("insurance: %w", err))
	}

	if err := c.Calories.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("calories: %w", err))
	}

	if err := c.Display.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("display: %w", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	if err := c.Database.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("database: %w", err))
	}

	if err := c.Server.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("server: %w", err))
	}

	return errors.Join(errs...)
}

// Validate checks that the profile defaults are known values.
func (p *ProfileConfig) Validate() error {
	var errs []error

	if p.Gender != "" && !p.Gender.Valid() {
		errs = append(errs, fmt.Errorf("invalid gender: %s", p.Gender))
	}

	if p.ActivityLevel != "" && !p.ActivityLevel.Valid() {
		errs = append(errs, fmt.Errorf("invalid activity_level: %s", p.ActivityLevel))
	}

	if p.Goal != "" && !p.Goal.Valid() {
		errs = append(errs, fmt.Errorf("invalid goal: %s", p.Goal))
	}

	return errors.Join(errs...)
}

// Validate checks that the insurance defaults are known values.
func (i *InsuranceConfig) Validate() error {
	var errs []error

	if i.DefaultZone != "" && !i.DefaultZone.Valid() {
		errs = append(errs, fmt.Errorf("invalid default_zone: %s", i.DefaultZone))
	}

	if i.DefaultCoverage != 0 && !i.DefaultCoverage.Valid() {
		errs = append(errs, fmt.Errorf("unsupported default_coverage: %d", int(i.DefaultCoverage)))
	}

	return errors.Join(errs...)
}

// Validate checks that the calorie goal is plausible.
func (c *CaloriesConfig) Validate() error {
	if c.DailyGoal < 0 || c.DailyGoal > 10000 {
		return errors.New("daily_goal must be between 0 and 10000")
	}
	return nil
}

// Validate checks that the display configuration is valid.
func (d *DisplayConfig) Validate() error {
	switch d.ColorScheme {
	case "", ColorSchemeSaffron, ColorSchemeOcean, ColorSchemeMono:
		return nil
	}
	return fmt.Errorf("invalid color_scheme: %s", d.ColorScheme)
}

// Validate checks that the logging configuration is valid.
func (l *LoggingConfig) Validate() error {
	switch l.Level {
	case "", LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return nil
	}
	return fmt.Errorf("invalid log level: %s", l.Level)
}

// Validate checks that the database configuration is valid.
func (d *DatabaseConfig) Validate() error {
	var errs []error

	if d.Path == "" {
		errs = append(errs, errors.New("path is required"))
	}

	if d.BackupIntervalHours < 0 {
		errs = append(errs, errors.New("backup_interval_hours must be non-negative"))
	}

	if d.BackupRetentionDays < 0 {
		errs = append(errs, errors.New("backup_retention_days must be non-negative"))
	}

	return errors.Join(errs...)
}

// Validate checks that the server configuration is valid.
func (s *ServerConfig) Validate() error {
	var errs []error

	if _, _, err := net.SplitHostPort(s.ListenAddr); err != nil {
		errs = append(errs, fmt.Errorf("invalid listen_addr %q: %w", s.ListenAddr, err))
	}

	if s.ReadTimeoutSeconds < 0 {
		errs = append(errs, errors.New("read_timeout_seconds must be non-negative"))
	}

	if s.WriteTimeoutSeconds < 0 {
		errs = append(errs, errors.New("write_timeout_seconds must be non-negative"))
	}

	return errors.Join(errs...)
}

// Default returns a configuration with sensible default values.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name: "VEDA",
		},
		Profile: ProfileConfig{
			Gender:        models.GenderMale,
			ActivityLevel: models.ActivityModerate,
			Goal:          models.GoalMaintain,
		},
		Insurance: InsuranceConfig{
			DefaultZone:     models.DefaultZone,
			DefaultCoverage: models.Coverage5Lakh,
		},
		Calories: CaloriesConfig{
			DailyGoal: 2000,
		},
		Display: DisplayConfig{
			ColorScheme: ColorSchemeSaffron,
			DateFormat:  "02 Jan 2006",
			TimeFormat:  "15:04",
		},
		Logging: LoggingConfig{
			Level: LogLevelInfo,
			File:  "veda.log",
		},
		Database: DatabaseConfig{
			Path:                "veda.db",
			BackupIntervalHours: 24,
			BackupRetentionDays: 30,
		},
		Server: ServerConfig{
			ListenAddr:          "127.0.0.1:8080",
			AllowedOrigins:      []string{"http://localhost:3000"},
			ReadTimeoutSeconds:  10,
			WriteTimeoutSeconds: 10,
		},
	}
}
