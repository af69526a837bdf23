package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vedaai/veda/internal/models"
)

// FoodLogRepository handles calorie counter entries.
type FoodLogRepository struct {
	db *sql.DB
}

// NewFoodLogRepository creates a new food log repository.
func NewFoodLogRepository(db *sql.DB) *FoodLogRepository {
	return &FoodLogRepository{db: db}
}

const foodLogColumns = `id, food_id, food_name, serving, quantity, meal,
	calories, protein, carbs, fat, log_date, created_at`

// Create inserts a new log entry. CreatedAt is set if zero.
func (r *FoodLogRepository) Create(ctx context.Context, tx *sql.Tx, e *models.FoodLogEntry) error {
	if err := e.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO food_log_entries (` + foodLogColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := getExecer(r.db, tx).ExecContext(ctx, query,
		e.ID,
		e.FoodID,
		e.FoodName,
		e.Serving,
		e.Quantity,
		string(e.Meal),
		e.Calories,
		e.Protein,
		e.Carbs,
		e.Fat,
		e.LogDate,
		e.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting food log entry: %w", err)
	}

	return nil
}

// GetByID retrieves a log entry by ID.
func (r *FoodLogRepository) GetByID(ctx context.Context, id string) (*models.FoodLogEntry, error) {
	query := `SELECT ` + foodLogColumns + ` FROM food_log_entries WHERE id = ?`

	e, err := scanFoodLogEntry(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("food log entry %s: %w", id, ErrNotFound)
	}
	return e, err
}

// ListByDate returns the entries logged on date (YYYY-MM-DD), newest first.
func (r *FoodLogRepository) ListByDate(ctx context.Context, date string) ([]*models.FoodLogEntry, error) {
	query := `
		SELECT ` + foodLogColumns + `
		FROM food_log_entries
		WHERE log_date = ?
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("querying food log: %w", err)
	}
	defer rows.Close()

	var entries []*models.FoodLogEntry
	for rows.Next() {
		e, err := scanFoodLogEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating food log: %w", err)
	}

	return entries, nil
}

// Delete removes a log entry.
func (r *FoodLogRepository) Delete(ctx context.Context, tx *sql.Tx, id string) error {
	return deleteByID(ctx, getExecer(r.db, tx), "food_log_entries", "food log entry", id)
}

// DeleteByDate removes every entry for a date and returns the number removed.
func (r *FoodLogRepository) DeleteByDate(ctx context.Context, tx *sql.Tx, date string) (int64, error) {
	result, err := getExecer(r.db, tx).ExecContext(ctx, "DELETE FROM food_log_entries WHERE log_date = ?", date)
	if err != nil {
		return 0, fmt.Errorf("clearing food log: %w", err)
	}
	return result.RowsAffected()
}

// DailyCalories returns total calories per date for the inclusive range,
// keyed by YYYY-MM-DD. Dates without entries are absent.
func (r *FoodLogRepository) DailyCalories(ctx context.Context, from, to string) (map[string]float64, error) {
	query := `
		SELECT log_date, SUM(calories)
		FROM food_log_entries
		WHERE log_date >= ? AND log_date <= ?
		GROUP BY log_date`

	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("summing daily calories: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]float64)
	for rows.Next() {
		var date string
		var total float64
		if err := rows.Scan(&date, &total); err != nil {
			return nil, fmt.Errorf("scanning daily total: %w", err)
		}
		totals[date] = total
	}

	return totals, rows.Err()
}

func scanFoodLogEntry(row rowScanner) (*models.FoodLogEntry, error) {
	var e models.FoodLogEntry
	var meal, createdStr string

	err := row.Scan(
		&e.ID,
		&e.FoodID,
		&e.FoodName,
		&e.Serving,
		&e.Quantity,
		&meal,
		&e.Calories,
		&e.Protein,
		&e.Carbs,
		&e.Fat,
		&e.LogDate,
		&createdStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning food log entry: %w", err)
	}

	e.Meal = models.MealType(meal)
	e.CreatedAt = parseTimestamp(createdStr)

	return &e, nil
}
