package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vedaai/veda/internal/models"
)

// AssessmentRepository handles saved health assessments.
type AssessmentRepository struct {
	db *sql.DB
}

// NewAssessmentRepository creates a new assessment repository.
func NewAssessmentRepository(db *sql.DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

const assessmentColumns = `id, weight_kg, height_cm, age_years, gender, activity_level, goal,
	bmi, category, bmr, tdee, target_calories, water_liters, created_at`

// Create inserts a new assessment. CreatedAt is set if zero.
func (r *AssessmentRepository) Create(ctx context.Context, tx *sql.Tx, a *models.Assessment) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO assessments (` + assessmentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}

	_, err := getExecer(r.db, tx).ExecContext(ctx, query,
		a.ID,
		a.WeightKg,
		a.HeightCm,
		a.AgeYears,
		string(a.Gender),
		string(a.ActivityLevel),
		string(a.Goal),
		a.BMI,
		string(a.Category),
		a.BMR,
		a.TDEE,
		a.TargetCalories,
		a.WaterLiters,
		a.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting assessment: %w", err)
	}

	return nil
}

// GetByID retrieves an assessment by ID.
func (r *AssessmentRepository) GetByID(ctx context.Context, id string) (*models.Assessment, error) {
	query := `SELECT ` + assessmentColumns + ` FROM assessments WHERE id = ?`

	a, err := scanAssessment(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("assessment %s: %w", id, ErrNotFound)
	}
	return a, err
}

// Latest returns the most recent assessment, or nil if there are none.
func (r *AssessmentRepository) Latest(ctx context.Context) (*models.Assessment, error) {
	query := `SELECT ` + assessmentColumns + ` FROM assessments ORDER BY created_at DESC, id DESC LIMIT 1`

	a, err := scanAssessment(r.db.QueryRowContext(ctx, query))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return a, err
}

// List retrieves assessments newest first with pagination.
func (r *AssessmentRepository) List(ctx context.Context, page models.Pagination) (*models.AssessmentList, error) {
	page = page.Normalize()

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM assessments").Scan(&total); err != nil {
		return nil, fmt.Errorf("counting assessments: %w", err)
	}

	query := `
		SELECT ` + assessmentColumns + `
		FROM assessments
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, page.Limit(), page.Offset())
	if err != nil {
		return nil, fmt.Errorf("querying assessments: %w", err)
	}
	defer rows.Close()

	var assessments []*models.Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assessments: %w", err)
	}

	return &models.AssessmentList{
		Assessments: assessments,
		Total:       total,
		Page:        page.Page,
		PageSize:    page.PageSize,
		TotalPages:  page.TotalPages(total),
	}, nil
}

// Delete removes an assessment.
func (r *AssessmentRepository) Delete(ctx context.Context, tx *sql.Tx, id string) error {
	return deleteByID(ctx, getExecer(r.db, tx), "assessments", "assessment", id)
}

// DeleteAll removes every assessment and returns the number removed.
func (r *AssessmentRepository) DeleteAll(ctx context.Context, tx *sql.Tx) (int64, error) {
	result, err := getExecer(r.db, tx).ExecContext(ctx, "DELETE FROM assessments")
	if err != nil {
		return 0, fmt.Errorf("clearing assessments: %w", err)
	}
	return result.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAssessment(row rowScanner) (*models.Assessment, error) {
	var a models.Assessment
	var gender, activity, goal, category, createdStr string

	err := row.Scan(
		&a.ID,
		&a.WeightKg,
		&a.HeightCm,
		&a.AgeYears,
		&gender,
		&activity,
		&goal,
		&a.BMI,
		&category,
		&a.BMR,
		&a.TDEE,
		&a.TargetCalories,
		&a.WaterLiters,
		&createdStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning assessment: %w", err)
	}

	a.Gender = models.Gender(gender)
	a.ActivityLevel = models.ActivityLevel(activity)
	a.Goal = models.Goal(goal)
	a.Category = models.BMICategoryName(category)
	a.CreatedAt = parseTimestamp(createdStr)

	return &a, nil
}
