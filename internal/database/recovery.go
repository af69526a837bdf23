package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// RecoveryResult indicates the outcome of a recovery attempt.
type RecoveryResult int

const (
	// RecoveryHealthy means the database was fine or was repaired in place.
	RecoveryHealthy RecoveryResult = iota
	// RecoveryFromBackup means the database was replaced by a backup.
	RecoveryFromBackup
	// RecoveryFailed means nothing worked.
	RecoveryFailed
)

func (r RecoveryResult) String() string {
	switch r {
	case RecoveryHealthy:
		return "healthy"
	case RecoveryFromBackup:
		return "restored_from_backup"
	case RecoveryFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrRecoveryFailed is returned when no recovery step produced a usable database.
var ErrRecoveryFailed = errors.New("database recovery failed")

// RecoveryStep records one attempted step.
type RecoveryStep struct {
	Name      string
	Succeeded bool
	Message   string
	Duration  time.Duration
}

// RecoveryReport describes a recovery attempt.
type RecoveryReport struct {
	Result       RecoveryResult
	DatabasePath string
	BackupUsed   string
	Steps        []RecoveryStep
}

func (r *RecoveryReport) run(name string, fn func() (string, error)) bool {
	start := time.Now()
	msg, err := fn()
	step := RecoveryStep{Name: name, Succeeded: err == nil, Message: msg, Duration: time.Since(start)}
	if err != nil {
		step.Message = err.Error()
	}
	r.Steps = append(r.Steps, step)
	return step.Succeeded
}

// AttemptRecovery checks the database file before it is opened. A missing
// file is healthy. A damaged file is first repaired by replaying its WAL,
// then replaced by the newest backup that passes an integrity check. The
// damaged file is kept beside the original with a .corrupted suffix.
func AttemptRecovery(ctx context.Context, dbPath, backupDir string) (*RecoveryReport, error) {
	report := &RecoveryReport{DatabasePath: dbPath}

	if _, err := os.Stat(dbPath); errors.Is(err, os.ErrNotExist) {
		report.Result = RecoveryHealthy
		report.Steps = append(report.Steps, RecoveryStep{Name: "check_exists", Succeeded: true, Message: "first run"})
		return report, nil
	}

	if report.run("integrity_check", func() (string, error) { return "ok", checkFile(ctx, dbPath) }) {
		report.Result = RecoveryHealthy
		return report, nil
	}
	slog.Warn("database failed integrity check", "path", dbPath)

	if _, err := os.Stat(dbPath + "-wal"); err == nil {
		replayed := report.run("wal_replay", func() (string, error) { return "checkpointed", replayWAL(ctx, dbPath) })
		if replayed && report.run("post_wal_integrity", func() (string, error) { return "ok", checkFile(ctx, dbPath) }) {
			report.Result = RecoveryHealthy
			slog.Info("database repaired by WAL replay", "path", dbPath)
			return report, nil
		}
	}

	if backupDir != "" {
		var used string
		restored := report.run("restore_backup", func() (string, error) {
			var err error
			used, err = restoreNewestBackup(ctx, dbPath, backupDir)
			return used, err
		})
		if restored {
			report.Result = RecoveryFromBackup
			report.BackupUsed = used
			slog.Info("database restored from backup", "path", dbPath, "backup", used)
			return report, nil
		}
	}

	report.Result = RecoveryFailed
	slog.Error("database recovery failed", "path", dbPath, "steps", len(report.Steps))
	return report, ErrRecoveryFailed
}

// checkFile opens path read-only and runs an integrity check.
func checkFile(ctx context.Context, path string) error {
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	return integrityCheck(ctx, db)
}

func replayWAL(ctx context.Context, path string) error {
	db, err := sql.Open("sqlite", fmt.Sprintf("file:%s?_txlock=immediate", path))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	if _, err := db.ExecContext(ctx, "PRAGMA wal_checkpoint(RESTART)"); err != nil {
		return fmt.Errorf("WAL checkpoint: %w", err)
	}
	return nil
}

func restoreNewestBackup(ctx context.Context, dbPath, backupDir string) (string, error) {
	backups, err := listBackups(backupDir)
	if err != nil {
		return "", err
	}
	if len(backups) == 0 {
		return "", errors.New("no backups found")
	}

	for _, b := range backups {
		if err := checkFile(ctx, b.path); err != nil {
			slog.Debug("skipping damaged backup", "path", b.path, "error", err)
			continue
		}

		aside := dbPath + ".corrupted." + time.Now().Format(backupTimeLayout)
		if err := os.Rename(dbPath, aside); err != nil {
			slog.Warn("could not keep damaged database", "path", dbPath, "error", err)
		}
		os.Remove(dbPath + "-wal")
		os.Remove(dbPath + "-shm")

		if err := copyFile(b.path, dbPath); err != nil {
			return "", fmt.Errorf("copying backup: %w", err)
		}
		return b.path, nil
	}

	return "", errors.New("no valid backup found")
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0640)
	if err != nil {
		return fmt.Errorf("creating destination: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying data: %w", err)
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return fmt.Errorf("syncing destination: %w", err)
	}
	return out.Close()
}
