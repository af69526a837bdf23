package metrics

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

// Service computes assessments and keeps their history.
type Service struct {
	db          *sql.DB
	assessments *repository.AssessmentRepository
	idGenerator *util.IDGenerator
	clock       util.Clock
}

// NewService creates a new metrics service. A nil clock uses the system clock.
func NewService(db *sql.DB, clock util.Clock) *Service {
	if clock == nil {
		clock = util.SystemClock{}
	}
	return &Service{
		db:          db,
		assessments: repository.NewAssessmentRepository(db),
		idGenerator: util.NewIDGenerator(),
		clock:       clock,
	}
}

// AssessInput contains user-entered biometrics.
type AssessInput struct {
	WeightKg      float64
	HeightCm      float64
	AgeYears      int
	Gender        models.Gender
	ActivityLevel models.ActivityLevel
	Goal          models.Goal
}

// Validate checks that the input can produce a meaningful report.
func (in AssessInput) Validate() error {
	var errs []error

	if in.WeightKg <= 0 || in.WeightKg > 500 {
		errs = append(errs, errors.New("weight must be between 0 and 500 kg"))
	}
	if in.HeightCm <= 0 || in.HeightCm > 300 {
		errs = append(errs, errors.New("height must be between 0 and 300 cm"))
	}
	if in.AgeYears <= 0 || in.AgeYears > 120 {
		errs = append(errs, errors.New("age must be between 1 and 120"))
	}
	if !in.Gender.Valid() {
		errs = append(errs, fmt.Errorf("invalid gender: %q", in.Gender))
	}
	if !in.ActivityLevel.Valid() {
		errs = append(errs, fmt.Errorf("invalid activity level: %q", in.ActivityLevel))
	}
	if !in.Goal.Valid() {
		errs = append(errs, fmt.Errorf("invalid goal: %q", in.Goal))
	}

	return errors.Join(errs...)
}

// Biometrics converts the input to calculator input.
func (in AssessInput) Biometrics() BiometricInput {
	return BiometricInput{
		WeightKg:      in.WeightKg,
		HeightCm:      in.HeightCm,
		AgeYears:      in.AgeYears,
		Gender:        in.Gender,
		ActivityLevel: in.ActivityLevel,
		GoalDelta:     in.Goal.Delta(),
	}
}

// Report is a computed assessment with its saved record.
type Report struct {
	Assessment *models.Assessment
	Result     HealthMetricsResult
	Tips       []string
}

// Assess validates the input, computes the report and saves it to history.
func (s *Service) Assess(ctx context.Context, in AssessInput) (*Report, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrInvalidInput, err)
	}

	result := Calculate(in.Biometrics())
	a := NewRecord(s.idGenerator.NewID(), in, result, s.clock.Now())

	if err := s.assessments.Create(ctx, nil, a); err != nil {
		return nil, fmt.Errorf("saving assessment: %w", err)
	}

	slog.Debug("assessment saved",
		"id", a.ID,
		"bmi", a.BMI,
		"category", a.Category,
	)

	return &Report{
		Assessment: a,
		Result:     result,
		Tips:       PersonalizedTips(result),
	}, nil
}

// NewRecord builds the history row for a computed assessment.
func NewRecord(id string, in AssessInput, result HealthMetricsResult, at time.Time) *models.Assessment {
	return &models.Assessment{
		ID:             id,
		WeightKg:       in.WeightKg,
		HeightCm:       in.HeightCm,
		AgeYears:       in.AgeYears,
		Gender:         in.Gender,
		ActivityLevel:  in.ActivityLevel,
		Goal:           in.Goal,
		BMI:            result.BMI,
		Category:       result.Category.Name,
		BMR:            result.BMR,
		TDEE:           result.TDEE,
		TargetCalories: result.TargetCalories,
		WaterLiters:    result.WaterLiters,
		CreatedAt:      at.UTC(),
	}
}

// Replay recomputes the full report for a saved assessment.
func Replay(a *models.Assessment) HealthMetricsResult {
	return Calculate(BiometricInput{
		WeightKg:      a.WeightKg,
		HeightCm:      a.HeightCm,
		AgeYears:      a.AgeYears,
		Gender:        a.Gender,
		ActivityLevel: a.ActivityLevel,
		GoalDelta:     a.Goal.Delta(),
	})
}

// GetAssessment returns a saved assessment.
func (s *Service) GetAssessment(ctx context.Context, id string) (*models.Assessment, error) {
	return s.assessments.GetByID(ctx, id)
}

// LatestAssessment returns the most recent assessment, or nil.
func (s *Service) LatestAssessment(ctx context.Context) (*models.Assessment, error) {
	return s.assessments.Latest(ctx)
}

// ListAssessments returns saved assessments newest first.
func (s *Service) ListAssessments(ctx context.Context, page models.Pagination) (*models.AssessmentList, error) {
	return s.assessments.List(ctx, page)
}

// DeleteAssessment removes a saved assessment.
func (s *Service) DeleteAssessment(ctx context.Context, id string) error {
	return s.assessments.Delete(ctx, nil, id)
}

// ClearAssessments removes all saved assessments.
func (s *Service) ClearAssessments(ctx context.Context) (int64, error) {
	n, err := s.assessments.DeleteAll(ctx, nil)
	if err != nil {
		return 0, err
	}
	slog.Info("assessment history cleared", "count", n)
	return n, nil
}
