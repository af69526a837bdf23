package models

import (
	"fmt"
	"time"
)

// DateLayout is the layout of calendar dates stored with food log entries.
const DateLayout = "2006-01-02"

// MealType represents the meal a food log entry belongs to.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnacks    MealType = "snacks"
)

// MealTypes lists meals in the order of a day.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnacks}

// Valid returns true if the meal type is a known value.
func (m MealType) Valid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner, MealSnacks:
		return true
	}
	return false
}

func (m MealType) String() string {
	switch m {
	case MealBreakfast:
		return "Breakfast"
	case MealLunch:
		return "Lunch"
	case MealDinner:
		return "Dinner"
	case MealSnacks:
		return "Snacks"
	default:
		return "Unknown"
	}
}

// FoodItem is a catalog food with nutrition values per serving.
type FoodItem struct {
	ID       int
	Name     string
	NameHi   string // Hindi name
	Serving  string // "1 bowl (150g)"
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Category string
}

// FoodLogEntry is a food eaten on a given date, with macros scaled by quantity.
type FoodLogEntry struct {
	ID        string
	FoodID    int
	FoodName  string
	Serving   string
	Quantity  float64
	Meal      MealType
	Calories  float64
	Protein   float64
	Carbs     float64
	Fat       float64
	LogDate   string // YYYY-MM-DD
	CreatedAt time.Time
}

// Validate checks if the log entry is valid.
func (e *FoodLogEntry) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("id is required")
	}
	if e.FoodID <= 0 {
		return fmt.Errorf("food_id is required")
	}
	if e.FoodName == "" {
		return fmt.Errorf("food_name is required")
	}
	if e.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	if !e.Meal.Valid() {
		return fmt.Errorf("invalid meal: %s", e.Meal)
	}
	if _, err := time.Parse(DateLayout, e.LogDate); err != nil {
		return fmt.Errorf("invalid log_date: %s", e.LogDate)
	}
	return nil
}
