package database

import (
	"database/sql"
	"fmt"

	"github.com/vedaai/veda/internal/config"

	_ "modernc.org/sqlite"
)

// NewInMemory opens a private in-memory database without WAL or backups.
// The API and TUI tests use it together with Migrate.
func NewInMemory() (*DB, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}

	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	return &DB{
		DB:     sqlDB,
		path:   ":memory:",
		config: config.DatabaseConfig{},
	}, nil
}
