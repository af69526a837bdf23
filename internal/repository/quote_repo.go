package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vedaai/veda/internal/models"
)

// QuoteRepository handles saved insurance premium quotes.
type QuoteRepository struct {
	db *sql.DB
}

// NewQuoteRepository creates a new quote repository.
func NewQuoteRepository(db *sql.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

const quoteColumns = `id, age_years, coverage, members, has_pre_existing, zone,
	tier_name, annual_premium, monthly_premium, savings, created_at`

// Create inserts a new quote. CreatedAt is set if zero.
func (r *QuoteRepository) Create(ctx context.Context, tx *sql.Tx, q *models.Quote) error {
	if err := q.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO quotes (` + quoteColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now().UTC()
	}

	_, err := getExecer(r.db, tx).ExecContext(ctx, query,
		q.ID,
		q.AgeYears,
		int(q.Coverage),
		q.Members,
		boolToInt(q.HasPreExisting),
		string(q.Zone),
		q.TierName,
		q.AnnualPremium,
		q.MonthlyPremium,
		q.Savings,
		q.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting quote: %w", err)
	}

	return nil
}

// GetByID retrieves a quote by ID.
func (r *QuoteRepository) GetByID(ctx context.Context, id string) (*models.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE id = ?`

	q, err := scanQuote(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("quote %s: %w", id, ErrNotFound)
	}
	return q, err
}

// Latest returns the most recent quote, or nil if there are none.
func (r *QuoteRepository) Latest(ctx context.Context) (*models.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes ORDER BY created_at DESC, id DESC LIMIT 1`

	q, err := scanQuote(r.db.QueryRowContext(ctx, query))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return q, err
}

// List retrieves quotes newest first with pagination.
func (r *QuoteRepository) List(ctx context.Context, page models.Pagination) (*models.QuoteList, error) {
	page = page.Normalize()

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM quotes").Scan(&total); err != nil {
		return nil, fmt.Errorf("counting quotes: %w", err)
	}

	query := `
		SELECT ` + quoteColumns + `
		FROM quotes
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("querying quotes: %w", err)
	}
	defer rows.Close()

	var quotes []*models.Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quotes: %w", err)
	}

	return &models.QuoteList{
		Quotes:     quotes,
		Total:      total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages(total),
	}, nil
}

// Delete removes a quote.
func (r *QuoteRepository) Delete(ctx context.Context, tx *sql.Tx, id string) error {
	return deleteByID(ctx, getExecer(r.db, tx), "quotes", "quote", id)
}

// DeleteAll removes every quote and returns the number removed.
func (r *QuoteRepository) DeleteAll(ctx context.Context, tx *sql.Tx) (int64, error) {
	result, err := getExecer(r.db, tx).ExecContext(ctx, "DELETE FROM quotes")
	if err != nil {
		return 0, fmt.Errorf("clearing quotes: %w", err)
	}
	return result.RowsAffected()
}

func scanQuote(row rowScanner) (*models.Quote, error) {
	var q models.Quote
	var coverage, preExisting int
	var zone, createdStr string

	err := row.Scan(
		&q.ID,
		&q.AgeYears,
		&coverage,
		&q.Members,
		&preExisting,
		&zone,
		&q.TierName,
		&q.AnnualPremium,
		&q.MonthlyPremium,
		&q.Savings,
		&createdStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning quote: %w", err)
	}

	q.Coverage = models.CoverageAmount(coverage)
	q.HasPreExisting = preExisting == 1
	q.Zone = models.Zone(zone)
	q.CreatedAt = parseTimestamp(createdStr)

	return &q, nil
}
