package calories

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/vedaai/veda/internal/models"
	"github.com/vedaai/veda/internal/repository"
	"github.com/vedaai/veda/internal/util"
)

// DefaultDailyGoal is the calorie goal used when none is configured.
const DefaultDailyGoal = 2000

// ErrUnknownFood is returned when a food ID is not in the catalog.
var ErrUnknownFood = fmt.Errorf("%w: unknown food", models.ErrInvalidInput)

// Service manages the food log.
type Service struct {
	db          *sql.DB
	entries     *repository.FoodLogRepository
	idGenerator *util.IDGenerator
	clock       util.Clock
	dailyGoal   int
}

// NewService creates a calorie service. A non-positive goal uses
// DefaultDailyGoal and a nil clock uses the system clock.
func NewService(db *sql.DB, clock util.Clock, dailyGoal int) *Service {
	if clock == nil {
		clock = util.SystemClock{}
	}
	if dailyGoal <= 0 {
		dailyGoal = DefaultDailyGoal
	}
	return &Service{
		db:          db,
		entries:     repository.NewFoodLogRepository(db),
		idGenerator: util.NewIDGenerator(),
		clock:       clock,
		dailyGoal:   dailyGoal,
	}
}

// DailyGoal returns the configured calorie goal.
func (s *Service) DailyGoal() int {
	return s.dailyGoal
}

// Today returns the current log date.
func (s *Service) Today() string {
	return util.Today(s.clock)
}

// AddEntryInput describes a food eaten.
type AddEntryInput struct {
	FoodID   int
	Quantity float64 // servings; zero means one
	Meal     models.MealType
	Date     string // YYYY-MM-DD; empty means today
}

// AddEntry logs a catalog food, scaling its nutrition by quantity.
func (s *Service) AddEntry(ctx context.Context, in AddEntryInput) (*models.FoodLogEntry, error) {
	food, ok := FindFood(in.FoodID)
	if !ok {
		return nil, fmt.Errorf("food %d: %w", in.FoodID, ErrUnknownFood)
	}

	quantity := in.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 || quantity > 50 {
		return nil, fmt.Errorf("%w: quantity must be between 0 and 50, got %v", models.ErrInvalidInput, quantity)
	}
	if !in.Meal.Valid() {
		return nil, fmt.Errorf("%w: meal %q", models.ErrInvalidInput, in.Meal)
	}

	date := in.Date
	if date == "" {
		date = s.Today()
	} else if !util.IsValidDate(date) {
		return nil, fmt.Errorf("%w: date %q", models.ErrInvalidInput, date)
	}

	entry := NewEntry(s.idGenerator.NewID(), food, quantity, in.Meal, date, s.clock.Now())

	if err := s.entries.Create(ctx, nil, entry); err != nil {
		return nil, fmt.Errorf("logging food: %w", err)
	}

	slog.Debug("food logged",
		"food", entry.FoodName,
		"quantity", entry.Quantity,
		"meal", entry.Meal,
		"date", entry.LogDate,
	)

	return entry, nil
}

// NewEntry snapshots food into a log entry scaled by quantity servings.
func NewEntry(id string, food models.FoodItem, quantity float64, meal models.MealType, date string, at time.Time) *models.FoodLogEntry {
	return &models.FoodLogEntry{
		ID:        id,
		FoodID:    food.ID,
		FoodName:  food.Name,
		Serving:   food.Serving,
		Quantity:  quantity,
		Meal:      meal,
		Calories:  food.Calories * quantity,
		Protein:   food.Protein * quantity,
		Carbs:     food.Carbs * quantity,
		Fat:       food.Fat * quantity,
		LogDate:   date,
		CreatedAt: at.UTC(),
	}
}

// RemoveEntry deletes a log entry.
func (s *Service) RemoveEntry(ctx context.Context, id string) error {
	if err := s.entries.Delete(ctx, nil, id); err != nil {
		return fmt.Errorf("removing entry: %w", err)
	}
	return nil
}

// ClearDay deletes every entry for a date.
func (s *Service) ClearDay(ctx context.Context, date string) (int64, error) {
	if !util.IsValidDate(date) {
		return 0, fmt.Errorf("%w: date %q", models.ErrInvalidInput, date)
	}
	return s.entries.DeleteByDate(ctx, nil, date)
}

// EntriesForDate returns a day's entries, newest first.
func (s *Service) EntriesForDate(ctx context.Context, date string) ([]*models.FoodLogEntry, error) {
	if !util.IsValidDate(date) {
		return nil, fmt.Errorf("%w: date %q", models.ErrInvalidInput, date)
	}
	return s.entries.ListByDate(ctx, date)
}

// Summary totals one day of the food log.
type Summary struct {
	Date         string
	Entries      []*models.FoodLogEntry
	Calories     float64
	Protein      float64
	Carbs        float64
	Fat          float64
	MealCalories map[models.MealType]float64
	Goal         int
	Remaining    float64 // may be negative when over goal
	Progress     float64 // percent of goal, capped at 100
}

// Summarize totals the given entries against goal.
func Summarize(date string, entries []*models.FoodLogEntry, goal int) Summary {
	sum := Summary{
		Date:         date,
		Entries:      entries,
		MealCalories: make(map[models.MealType]float64, len(models.MealTypes)),
		Goal:         goal,
	}

	for _, m := range models.MealTypes {
		sum.MealCalories[m] = 0
	}

	for _, e := range entries {
		sum.Calories += e.Calories
		sum.Protein += e.Protein
		sum.Carbs += e.Carbs
		sum.Fat += e.Fat
		sum.MealCalories[e.Meal] += e.Calories
	}

	sum.Remaining = float64(goal) - sum.Calories
	if goal > 0 {
		sum.Progress = math.Min(sum.Calories/float64(goal)*100, 100)
	}

	return sum
}

// MealEntries returns the summary's entries for one meal, newest first.
func (s Summary) MealEntries(meal models.MealType) []*models.FoodLogEntry {
	var out []*models.FoodLogEntry
	for _, e := range s.Entries {
		if e.Meal == meal {
			out = append(out, e)
		}
	}
	return out
}

// DailySummary loads and totals the entries for date.
func (s *Service) DailySummary(ctx context.Context, date string) (*Summary, error) {
	entries, err := s.EntriesForDate(ctx, date)
	if err != nil {
		return nil, err
	}
	sum := Summarize(date, entries, s.dailyGoal)
	return &sum, nil
}

// DayTotal is the calorie total for one day.
type DayTotal struct {
	Date     string
	Calories float64
}

// WeeklyTotals returns calorie totals for the seven days ending on date,
// oldest first. Days without entries report zero.
func (s *Service) WeeklyTotals(ctx context.Context, date string) ([]DayTotal, error) {
	from, err := util.ShiftDate(date, -6)
	if err != nil {
		return nil, fmt.Errorf("%w: date %q", models.ErrInvalidInput, date)
	}

	totals, err := s.entries.DailyCalories(ctx, from, date)
	if err != nil {
		return nil, err
	}

	days := make([]DayTotal, 0, 7)
	for i := 0; i < 7; i++ {
		d, _ := util.ShiftDate(from, i)
		days = append(days, DayTotal{Date: d, Calories: totals[d]})
	}

	return days, nil
}
