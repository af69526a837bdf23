package models

import (
	"fmt"
	"time"
)

// Assessment is a saved health metrics calculation.
type Assessment struct {
	ID            string
	WeightKg      float64
	HeightCm      float64
	AgeYears      int
	Gender        Gender
	ActivityLevel ActivityLevel
	Goal          Goal

	BMI            float64
	Category       BMICategoryName
	BMR            int
	TDEE           int
	TargetCalories int
	WaterLiters    float64

	CreatedAt time.Time
}

// Validate checks if the assessment data is valid.
func (a *Assessment) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("id is required")
	}
	if a.WeightKg <= 0 {
		return fmt.Errorf("weight_kg must be positive")
	}
	if a.HeightCm <= 0 {
		return fmt.Errorf("height_cm must be positive")
	}
	if a.AgeYears <= 0 {
		return fmt.Errorf("age_years must be positive")
	}
	if !a.Gender.Valid() {
		return fmt.Errorf("invalid gender: %s", a.Gender)
	}
	if !a.ActivityLevel.Valid() {
		return fmt.Errorf("invalid activity_level: %s", a.ActivityLevel)
	}
	if !a.Goal.Valid() {
		return fmt.Errorf("invalid goal: %s", a.Goal)
	}
	if !a.Category.Valid() {
		return fmt.Errorf("invalid category: %s", a.Category)
	}
	return nil
}

// AssessmentList represents a paginated list of assessments.
type AssessmentList struct {
	Assessments []*Assessment
	Total       int
	Page        int
	PageSize    int
	TotalPages  int
}

// Quote is a saved insurance premium estimate.
type Quote struct {
	ID             string
	AgeYears       int
	Coverage       CoverageAmount
	Members        int
	HasPreExisting bool
	Zone           Zone

	TierName       string
	AnnualPremium  int
	MonthlyPremium int
	Savings        int

	CreatedAt time.Time
}

// Validate checks if the quote data is valid.
func (q *Quote) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("id is required")
	}
	if q.AgeYears <= 0 {
		return fmt.Errorf("age_years must be positive")
	}
	if !q.Coverage.Valid() {
		return fmt.Errorf("invalid coverage: %d", int(q.Coverage))
	}
	if q.Members < 1 {
		return fmt.Errorf("members must be at least 1")
	}
	if !q.Zone.Valid() {
		return fmt.Errorf("invalid zone: %s", q.Zone)
	}
	if q.AnnualPremium < 0 {
		return fmt.Errorf("annual_premium must be non-negative")
	}
	return nil
}

// QuoteList represents a paginated list of quotes.
type QuoteList struct {
	Quotes     []*Quote
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}
