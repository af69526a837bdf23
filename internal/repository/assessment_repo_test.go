package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/vedaai/veda/internal/models"
	"github.com/vedaai/veda/internal/testutil"
)

func setupTestDB(t *testing.T) *testutil.TestDB {
	t.Helper()

	db := testutil.NewTestDB(t)
	db.RunMigrations(t, filepath.Join("..", "database", "migrations"))

	return db
}

func TestAssessmentRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close(t)

	repo := NewAssessmentRepository(db.DB)
	ctx := context.Background()

	t.Run("Create valid assessment", func(t *testing.T) {
		a := testutil.FixtureAssessment()

		if err := repo.Create(ctx, nil, a); err != nil {
			t.Fatalf("failed to create assessment: %v", err)
		}

		found, err := repo.GetByID(ctx, a.ID)
		if err != nil {
			t.Fatalf("failed to get assessment: %v", err)
		}

		if found.BMR != a.BMR {
			t.Errorf("expected BMR %d, got %d", a.BMR, found.BMR)
		}
		if found.Gender != a.Gender {
			t.Errorf("expected gender %s, got %s", a.Gender, found.Gender)
		}
		if found.Category != models.BMINormal {
			t.Errorf("expected category Normal, got %s", found.Category)
		}
		if found.WaterLiters != a.WaterLiters {
			t.Errorf("expected water %v, got %v", a.WaterLiters, found.WaterLiters)
		}
	})

	t.Run("Rolled back transaction leaves nothing", func(t *testing.T) {
		a := testutil.FixtureAssessment()

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			t.Fatalf("failed to begin transaction: %v", err)
		}
		if err := repo.Create(ctx, tx, a); err != nil {
			tx.Rollback()
			t.Fatalf("failed to create in transaction: %v", err)
		}
		if err := tx.Rollback(); err != nil {
			t.Fatalf("failed to roll back: %v", err)
		}

		if _, err := repo.GetByID(ctx, a.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound after rollback, got %v", err)
		}
	})

	t.Run("Reject invalid assessment", func(t *testing.T) {
		a := testutil.FixtureAssessment(func(a *models.Assessment) {
			a.WeightKg = 0
		})

		if err := repo.Create(ctx, nil, a); err == nil {
			t.Error("expected validation error")
		}
	})
}

func TestAssessmentRepository_List(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close(t)

	repo := NewAssessmentRepository(db.DB)
	ctx := context.Background()
	base := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		a := testutil.FixtureAssessment(func(a *models.Assessment) {
			a.CreatedAt = base.Add(time.Duration(i) * time.Hour)
			a.AgeYears = 20 + i
		})
		if err := repo.Create(ctx, nil, a); err != nil {
			t.Fatalf("failed to create assessment: %v", err)
		}
	}

	t.Run("Newest first", func(t *testing.T) {
		list, err := repo.List(ctx, models.Pagination{Page: 1, PageSize: 5})
		if err != nil {
			t.Fatalf("failed to list: %v", err)
		}

		if list.Total != 7 {
			t.Errorf("expected total 7, got %d", list.Total)
		}
		if list.TotalPages != 2 {
			t.Errorf("expected 2 pages, got %d", list.TotalPages)
		}
		if len(list.Assessments) != 5 {
			t.Fatalf("expected 5 assessments, got %d", len(list.Assessments))
		}
		if list.Assessments[0].AgeYears != 26 {
			t.Errorf("expected newest assessment first, got age %d", list.Assessments[0].AgeYears)
		}
	})

	t.Run("Second page", func(t *testing.T) {
		list, err := repo.List(ctx, models.Pagination{Page: 2, PageSize: 5})
		if err != nil {
			t.Fatalf("failed to list: %v", err)
		}
		if len(list.Assessments) != 2 {
			t.Errorf("expected 2 assessments, got %d", len(list.Assessments))
		}
	})

	t.Run("Latest", func(t *testing.T) {
		latest, err := repo.Latest(ctx)
		if err != nil {
			t.Fatalf("failed to get latest: %v", err)
		}
		if latest == nil || latest.AgeYears != 26 {
			t.Errorf("expected latest assessment with age 26, got %+v", latest)
		}
	})
}

func TestAssessmentRepository_ListOversizedPages(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close(t)

	repo := NewAssessmentRepository(db.DB)
	ctx := context.Background()
	base := time.Date(2026, 10, 1, 8, 0, 0, 0, time.UTC)

	const total = 250
	for i := 0; i < total; i++ {
		a := testutil.FixtureAssessment(func(a *models.Assessment) {
			a.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		})
		if err := repo.Create(ctx, nil, a); err != nil {
			t.Fatalf("failed to create assessment: %v", err)
		}
	}

	first, err := repo.List(ctx, models.Pagination{Page: 1, PageSize: 150})
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if first.PageSize != 100 {
		t.Errorf("expected page size clamped to 100, got %d", first.PageSize)
	}
	if first.TotalPages != 3 {
		t.Fatalf("expected 3 pages, got %d", first.TotalPages)
	}

	seen := make(map[string]bool)
	for page := 1; page <= first.TotalPages; page++ {
		list, err := repo.List(ctx, models.Pagination{Page: page, PageSize: 150})
		if err != nil {
			t.Fatalf("failed to list page %d: %v", page, err)
		}
		for _, a := range list.Assessments {
			if seen[a.ID] {
				t.Errorf("assessment %s returned twice", a.ID)
			}
			seen[a.ID] = true
		}
	}

	if len(seen) != total {
		t.Errorf("expected all %d assessments reachable, got %d", total, len(seen))
	}
}

func TestAssessmentRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close(t)

	repo := NewAssessmentRepository(db.DB)
	ctx := context.Background()

	a := testutil.FixtureAssessment()
	if err := repo.Create(ctx, nil, a); err != nil {
		t.Fatalf("failed to create assessment: %v", err)
	}

	t.Run("Delete existing", func(t *testing.T) {
		if err := repo.Delete(ctx, nil, a.ID); err != nil {
			t.Fatalf("failed to delete: %v", err)
		}
		db.AssertRowCount(t, "assessments", 0)
	})

	t.Run("Delete missing", func(t *testing.T) {
		err := repo.Delete(ctx, nil, "missing")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("Latest on empty table", func(t *testing.T) {
		latest, err := repo.Latest(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if latest != nil {
			t.Errorf("expected nil, got %+v", latest)
		}
	})

	t.Run("Delete all", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			if err := repo.Create(ctx, nil, testutil.FixtureAssessment()); err != nil {
				t.Fatalf("failed to create assessment: %v", err)
			}
		}
		n, err := repo.DeleteAll(ctx, nil)
		if err != nil {
			t.Fatalf("failed to clear: %v", err)
		}
		if n != 3 {
			t.Errorf("expected 3 removed, got %d", n)
		}
	})
}
