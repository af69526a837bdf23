package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/vedaai/veda/internal/models"
)

// FixtureAssessment creates a saved assessment for a 70 kg, 170 cm, 25 year
// old male with moderate activity.
func FixtureAssessment(overrides ...func(*models.Assessment)) *models.Assessment {
	a := &models.Assessment{
		ID:             uuid.New().String(),
		WeightKg:       70,
		HeightCm:       170,
		AgeYears:       25,
		Gender:         models.GenderMale,
		ActivityLevel:  models.ActivityModerate,
		Goal:           models.GoalMaintain,
		BMI:            24.2,
		Category:       models.BMINormal,
		BMR:            1643,
		TDEE:           2547,
		TargetCalories: 2547,
		WaterLiters:    2.5,
		CreatedAt:      time.Now().UTC(),
	}

	for _, override := range overrides {
		override(a)
	}

	return a
}

// FixtureQuote creates a saved quote for a 35 year old couple in a metro city.
func FixtureQuote(overrides ...func(*models.Quote)) *models.Quote {
	q := &models.Quote{
		ID:             uuid.New().String(),
		AgeYears:       35,
		Coverage:       models.Coverage5Lakh,
		Members:        2,
		HasPreExisting: false,
		Zone:           models.Zone1,
		TierName:       "Comprehensive",
		AnnualPremium:  10725,
		MonthlyPremium: 894,
		Savings:        858,
		CreatedAt:      time.Now().UTC(),
	}

	for _, override := range overrides {
		override(q)
	}

	return q
}

// FixtureFoodLogEntry creates two rotis logged for lunch on date.
func FixtureFoodLogEntry(date string, overrides ...func(*models.FoodLogEntry)) *models.FoodLogEntry {
	e := &models.FoodLogEntry{
		ID:        uuid.New().String(),
		FoodID:    1,
		FoodName:  "Roti",
		Serving:   "1 pc (30g)",
		Quantity:  2,
		Meal:      models.MealLunch,
		Calories:  144,
		Protein:   4.2,
		Carbs:     30,
		Fat:       0.8,
		LogDate:   date,
		CreatedAt: time.Now().UTC(),
	}

	for _, override := range overrides {
		override(e)
	}

	return e
}
