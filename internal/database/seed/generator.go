// Package seed fills an empty database with plausible demo history: a few
// weeks of food logging plus a handful of saved assessments and quotes.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/vedaai/veda/internal/models"
	"github.com/vedaai/veda/internal/repository"
	"github.com/vedaai/veda/internal/services/calories"
	"github.com/vedaai/veda/internal/services/metrics"
	"github.com/vedaai/veda/internal/services/premium"
	"github.com/vedaai/veda/internal/util"
)

// Config configures the seed data generator.
type Config struct {
	// Now anchors generated timestamps; the food log ends on Now's date.
	Now         time.Time
	Days        int
	Assessments int
	Quotes      int
	RandomSeed  int64
}

// DefaultConfig returns a two-week demo anchored at now.
func DefaultConfig(now time.Time) Config {
	return Config{
		Now:         now,
		Days:        14,
		Assessments: 6,
		Quotes:      5,
		RandomSeed:  2024,
	}
}

// Counts reports how many rows a run inserted.
type Counts struct {
	Assessments int
	Quotes      int
	FoodEntries int
}

// Generator generates demo data.
type Generator struct {
	db    *sql.DB
	cfg   Config
	rng   *rand.Rand
	idGen *util.IDGenerator

	assessments *repository.AssessmentRepository
	quotes      *repository.QuoteRepository
	foodLog     *repository.FoodLogRepository

	counts Counts
}

// NewGenerator creates a new seed data generator.
func NewGenerator(db *sql.DB, cfg Config) *Generator {
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}
	return &Generator{
		db:          db,
		cfg:         cfg,
		rng:         rand.New(rand.NewSource(cfg.RandomSeed)),
		idGen:       util.NewIDGenerator(),
		assessments: repository.NewAssessmentRepository(db),
		quotes:      repository.NewQuoteRepository(db),
		foodLog:     repository.NewFoodLogRepository(db),
	}
}

// Generate inserts all demo data in one transaction.
func (g *Generator) Generate(ctx context.Context) (Counts, error) {
	slog.Info("starting seed data generation",
		"days", g.cfg.Days,
		"assessments", g.cfg.Assessments,
		"quotes", g.cfg.Quotes,
	)

	tx, err := g.db.BeginTx(ctx, nil)
	if err != nil {
		return Counts{}, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if err := g.generateFoodLog(ctx, tx); err != nil {
		return Counts{}, fmt.Errorf("generating food log: %w", err)
	}

	if err := g.generateAssessments(ctx, tx); err != nil {
		return Counts{}, fmt.Errorf("generating assessments: %w", err)
	}

	if err := g.generateQuotes(ctx, tx); err != nil {
		return Counts{}, fmt.Errorf("generating quotes: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Counts{}, fmt.Errorf("committing transaction: %w", err)
	}

	slog.Info("seed data generation complete",
		"assessments", g.counts.Assessments,
		"quotes", g.counts.Quotes,
		"food_entries", g.counts.FoodEntries,
	)

	return g.counts, nil
}

// mealPlan lists the catalog foods a demo day draws from, per meal.
var mealPlan = map[models.MealType][]int{
	models.MealBreakfast: {9, 11, 12, 13, 14},
	models.MealLunch:     {1, 2, 3, 4, 6},
	models.MealDinner:    {1, 3, 4, 5, 7, 8},
	models.MealSnacks:    {9, 10, 15},
}

// mealHours is the hour each meal is logged at.
var mealHours = map[models.MealType]int{
	models.MealBreakfast: 8,
	models.MealLunch:     13,
	models.MealSnacks:    17,
	models.MealDinner:    20,
}

func (g *Generator) generateFoodLog(ctx context.Context, tx *sql.Tx) error {
	today := util.StartOfDay(g.cfg.Now.UTC())

	for d := g.cfg.Days - 1; d >= 0; d-- {
		day := today.AddDate(0, 0, -d)
		date := util.FormatDate(day)

		for _, meal := range models.MealTypes {
			// Snacks are skipped on roughly half the days.
			if meal == models.MealSnacks && g.rng.Intn(2) == 0 {
				continue
			}

			options := mealPlan[meal]
			items := 1 + g.rng.Intn(2)
			for i := 0; i < items; i++ {
				food, ok := calories.FindFood(options[g.rng.Intn(len(options))])
				if !ok {
					return fmt.Errorf("meal plan references unknown food")
				}

				quantity := []float64{1, 1, 1, 1.5, 2}[g.rng.Intn(5)]
				at := day.Add(time.Duration(mealHours[meal])*time.Hour + time.Duration(g.rng.Intn(50))*time.Minute)

				entry := calories.NewEntry(g.idGen.NewID(), food, quantity, meal, date, at)
				if err := g.foodLog.Create(ctx, tx, entry); err != nil {
					return err
				}
				g.counts.FoodEntries++
			}
		}
	}

	return nil
}

func (g *Generator) generateAssessments(ctx context.Context, tx *sql.Tx) error {
	// One person tracking weight over time.
	base := metrics.AssessInput{
		WeightKg:      78 + float64(g.rng.Intn(10)),
		HeightCm:      165 + float64(g.rng.Intn(15)),
		AgeYears:      28 + g.rng.Intn(15),
		Gender:        []models.Gender{models.GenderMale, models.GenderFemale}[g.rng.Intn(2)],
		ActivityLevel: models.ActivityLevels[g.rng.Intn(len(models.ActivityLevels))],
		Goal:          models.GoalLose,
	}

	for i := 0; i < g.cfg.Assessments; i++ {
		in := base
		in.WeightKg = math.Round((base.WeightKg-float64(i)*0.6+g.rng.Float64()*0.4)*10) / 10
		if i == g.cfg.Assessments-1 {
			in.Goal = models.GoalMaintain
		}

		at := g.cfg.Now.AddDate(0, 0, -7*(g.cfg.Assessments-1-i))
		a := metrics.NewRecord(g.idGen.NewID(), in, metrics.Calculate(in.Biometrics()), at)
		if err := g.assessments.Create(ctx, tx, a); err != nil {
			return err
		}
		g.counts.Assessments++
	}

	return nil
}

func (g *Generator) generateQuotes(ctx context.Context, tx *sql.Tx) error {
	zones := []models.Zone{models.Zone1, models.Zone2}

	for i := 0; i < g.cfg.Quotes; i++ {
		in := premium.PremiumInput{
			Age:            22 + g.rng.Intn(45),
			Coverage:       models.CoverageAmounts[g.rng.Intn(len(models.CoverageAmounts))],
			Members:        1 + g.rng.Intn(5),
			HasPreExisting: g.rng.Intn(4) == 0,
			Zone:           zones[g.rng.Intn(len(zones))],
		}

		at := g.cfg.Now.Add(-time.Duration(g.cfg.Quotes-i) * 26 * time.Hour)
		q := premium.NewRecord(g.idGen.NewID(), in, premium.Estimate(in), at)
		if err := g.quotes.Create(ctx, tx, q); err != nil {
			return err
		}
		g.counts.Quotes++
	}

	return nil
}
