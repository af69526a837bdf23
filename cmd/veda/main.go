// VEDA: personal health metrics, health insurance estimates and an Indian
// food calorie tracker, as a terminal UI or a JSON API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vedaai/veda/internal/api"
	"github.com/vedaai/veda/internal/config"
	"github.com/vedaai/veda/internal/database"
	"github.com/vedaai/veda/internal/database/seed"
	"github.com/vedaai/veda/internal/services/calories"
	"github.com/vedaai/veda/internal/services/metrics"
	"github.com/vedaai/veda/internal/services/premium"
	"github.com/vedaai/veda/internal/tui"
	"github.com/vedaai/veda/internal/util"
)

// Build information (set via ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
)

const shutdownTimeout = 10 * time.Second

type options struct {
	configPath  string
	serve       bool
	addr        string
	migrateOnly bool
	seedData    bool
	debugMode   bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flag.BoolVar(&opts.serve, "serve", false, "Run the HTTP API instead of the terminal UI")
	flag.StringVar(&opts.addr, "addr", "", "Listen address for -serve (overrides config)")
	flag.BoolVar(&opts.migrateOnly, "migrate-only", false, "Run migrations and exit")
	flag.BoolVar(&opts.seedData, "seed", false, "Generate demo data")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.BoolVar(&opts.debugMode, "debug", false, "Enable debug logging")
	flag.Parse()

	if *showVersion {
		fmt.Printf("VEDA version %s (built %s)\n", Version, BuildTime)
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	cfg, cfgPath, err := config.Load(opts.configPath, true)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	closeLog, err := setupLogging(cfg, opts)
	if err != nil {
		return err
	}
	defer closeLog()

	slog.Info("VEDA starting",
		"version", Version,
		"build_time", BuildTime,
		"config_path", cfgPath,
	)

	dbPath, err := config.EnsureDataDir(cfg)
	if err != nil {
		return fmt.Errorf("ensuring data directory: %w", err)
	}

	backupDir := ""
	if dbPath != ":memory:" {
		if backupDir, err = config.BackupDir(cfg); err != nil {
			slog.Warn("failed to create backup directory", "error", err)
			backupDir = ""
		}
	}

	if _, err := os.Stat(dbPath); err == nil {
		report, err := database.AttemptRecovery(ctx, dbPath, backupDir)
		if err != nil {
			slog.Error("database recovery failed",
				"path", dbPath,
				"steps", len(report.Steps),
			)
			return fmt.Errorf("database recovery failed: %w", err)
		}

		switch report.Result {
		case database.RecoveryFromBackup:
			slog.Warn("database restored from backup", "backup", report.BackupUsed)
		case database.RecoveryHealthy:
			slog.Debug("database integrity verified")
		}
	}

	db, err := database.Open(dbPath, cfg.Database, backupDir)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		slog.Info("closing database")
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	result, err := database.Migrate(ctx, db)
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	if len(result.Applied) > 0 {
		slog.Info("applied migrations",
			"count", len(result.Applied),
			"to_version", result.ToVersion,
		)
	}

	if opts.migrateOnly {
		slog.Info("migrations complete, exiting")
		return nil
	}

	clock := util.SystemClock{}

	if opts.seedData {
		return seedDemo(ctx, db, clock.Now())
	}

	if opts.serve {
		return serve(ctx, db, cfg, clock, opts.addr)
	}

	tui.Version = Version
	tui.BuildTime = BuildTime

	slog.Info("starting TUI", "user", cfg.App.UserName)
	if err := tui.Run(ctx, db, cfg, clock); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	slog.Info("VEDA shutdown complete")
	return nil
}

// setupLogging installs the default slog logger. The TUI owns the terminal,
// so it logs JSON to the configured file (or nowhere); the API server logs
// text to stderr.
func setupLogging(cfg *config.Config, opts options) (func(), error) {
	level := slog.LevelInfo
	if opts.debugMode {
		level = slog.LevelDebug
	} else {
		switch cfg.Logging.Level {
		case config.LogLevelDebug:
			level = slog.LevelDebug
		case config.LogLevelWarn:
			level = slog.LevelWarn
		case config.LogLevelError:
			level = slog.LevelError
		}
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	if opts.serve {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, handlerOpts)))
		return func() {}, nil
	}

	logPath, err := config.EnsureLogDir(cfg)
	if err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	if logPath == "" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(io.Discard, handlerOpts)))
		return func() {}, nil
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0640)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(logFile, handlerOpts)))
	return func() { logFile.Close() }, nil
}

func seedDemo(ctx context.Context, db *database.DB, now time.Time) error {
	var count int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM food_log_entries").Scan(&count); err == nil && count > 0 {
		slog.Warn("database already contains food log entries, skipping seed generation", "count", count)
		return nil
	}

	counts, err := seed.NewGenerator(db.DB, seed.DefaultConfig(now)).Generate(ctx)
	if err != nil {
		return fmt.Errorf("generating seed data: %w", err)
	}

	slog.Info("seed data generation complete",
		"assessments", counts.Assessments,
		"quotes", counts.Quotes,
		"food_entries", counts.FoodEntries,
	)
	return nil
}

func serve(ctx context.Context, db *database.DB, cfg *config.Config, clock util.Clock, addr string) error {
	server := api.New(api.Deps{
		Metrics:  metrics.NewService(db.DB, clock),
		Premium:  premium.NewService(db.DB, clock),
		Calories: calories.NewService(db.DB, clock, cfg.Calories.DailyGoal),
		Health:   db,
		Profile:  cfg.Profile,
		Version:  Version,
	})
	srv := server.NewHTTPServer(cfg.Server, addr)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("API listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("API server: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down API server: %w", err)
	}
	return nil
}
