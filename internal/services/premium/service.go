package premium

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vedaai/veda/internal/models"
	"github.com/vedaai/veda/internal/repository"
	"github.com/vedaai/veda/internal/util"
)

// Service prices quotes and keeps their history.
type Service struct {
	db          *sql.DB
	quotes      *repository.QuoteRepository
	idGenerator *util.IDGenerator
	clock       util.Clock
}

// NewService creates a new premium service. A nil clock uses the system clock.
func NewService(db *sql.DB, clock util.Clock) *Service {
	if clock == nil {
		clock = util.SystemClock{}
	}
	return &Service{
		db:          db,
		quotes:      repository.NewQuoteRepository(db),
		idGenerator: util.NewIDGenerator(),
		clock:       clock,
	}
}

// ValidateInput checks a user-entered profile before it is quoted.
// The estimator itself accepts any input.
func ValidateInput(in PremiumInput) error {
	var errs []error

	if in.Age < 1 || in.Age > 120 {
		errs = append(errs, errors.New("age must be between 1 and 120"))
	}
	if !in.Coverage.Valid() {
		errs = append(errs, fmt.Errorf("unsupported coverage amount: %d", int(in.Coverage)))
	}
	if in.Members < 1 || in.Members > 20 {
		errs = append(errs, errors.New("members must be between 1 and 20"))
	}
	if in.Zone != "" && !in.Zone.Valid() {
		errs = append(errs, fmt.Errorf("invalid zone: %q", in.Zone))
	}

	return errors.Join(errs...)
}

// QuoteReport is a priced quote with its saved record and advice.
type QuoteReport struct {
	Quote  *models.Quote
	Result PremiumResult
	Tips   []string
}

// Quote validates the profile, prices it and saves the quote to history.
func (s *Service) Quote(ctx context.Context, in PremiumInput) (*QuoteReport, error) {
	if err := ValidateInput(in); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrInvalidInput, err)
	}

	in.Zone = in.Zone.OrDefault()
	result := Estimate(in)

	q := NewRecord(s.idGenerator.NewID(), in, result, s.clock.Now())

	if err := s.quotes.Create(ctx, nil, q); err != nil {
		return nil, fmt.Errorf("saving quote: %w", err)
	}

	slog.Debug("quote saved",
		"id", q.ID,
		"annual", q.AnnualPremium,
		"tier", q.TierName,
	)

	return &QuoteReport{
		Quote:  q,
		Result: result,
		Tips:   GetInsuranceTips(in.Age, in.HasPreExisting, in.Members),
	}, nil
}

// NewRecord builds the history row for a priced quote.
func NewRecord(id string, in PremiumInput, result PremiumResult, at time.Time) *models.Quote {
	return &models.Quote{
		ID:             id,
		AgeYears:       in.Age,
		Coverage:       in.Coverage,
		Members:        in.Members,
		HasPreExisting: in.HasPreExisting,
		Zone:           in.Zone.OrDefault(),
		TierName:       result.Tier.Name,
		AnnualPremium:  result.Annual,
		MonthlyPremium: result.Monthly,
		Savings:        result.Savings,
		CreatedAt:      at.UTC(),
	}
}

// GetQuote returns a saved quote.
func (s *Service) GetQuote(ctx context.Context, id string) (*models.Quote, error) {
	return s.quotes.GetByID(ctx, id)
}

// LatestQuote returns the most recent quote, or nil.
func (s *Service) LatestQuote(ctx context.Context) (*models.Quote, error) {
	return s.quotes.Latest(ctx)
}

// ListQuotes returns saved quotes newest first.
func (s *Service) ListQuotes(ctx context.Context, page models.Pagination) (*models.QuoteList, error) {
	return s.quotes.List(ctx, page)
}

// DeleteQuote removes a saved quote.
func (s *Service) DeleteQuote(ctx context.Context, id string) error {
	return s.quotes.Delete(ctx, nil, id)
}

// ClearQuotes removes all saved quotes.
func (s *Service) ClearQuotes(ctx context.Context) (int64, error) {
	n, err := s.quotes.DeleteAll(ctx, nil)
	if err != nil {
		return 0, err
	}
	slog.Info("quote history cleared", "count", n)
	return n, nil
}
