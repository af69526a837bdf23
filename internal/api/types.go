package api

import (
	"time"

	"github.com/vedaai/veda/internal/models"
	"github.com/vedaai/veda/internal/services/calories"
	"github.com/vedaai/veda/internal/services/metrics"
	"github.com/vedaai/veda/internal/services/premium"
)

// MetricsRequest is the body of POST /api/health/metrics. Empty enum fields
// take the configured profile defaults.
type MetricsRequest struct {
	WeightKg      float64              `json:"weight_kg"`
	HeightCm      float64              `json:"height_cm"`
	Age           int                  `json:"age"`
	Gender        models.Gender        `json:"gender"`
	ActivityLevel models.ActivityLevel `json:"activity_level"`
	Goal          models.Goal          `json:"goal"`
}

// CategoryJSON describes a BMI band.
type CategoryJSON struct {
	Name   models.BMICategoryName `json:"name"`
	Label  string                 `json:"label"`
	Color  string                 `json:"color"`
	Advice string                 `json:"advice"`
}

// RangeJSON is an inclusive integer range.
type RangeJSON struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// MetricsResponse is a computed health report.
type MetricsResponse struct {
	ID             string       `json:"id,omitempty"`
	BMI            float64      `json:"bmi"`
	Category       CategoryJSON `json:"category"`
	BMR            int          `json:"bmr"`
	TDEE           int          `json:"tdee"`
	TargetCalories int          `json:"target_calories"`
	IdealWeightKg  RangeJSON    `json:"ideal_weight_kg"`
	WaterLiters    float64      `json:"water_liters"`
	WaterGlasses   int          `json:"water_glasses"`
	ProteinGrams   RangeJSON    `json:"protein_grams"`
	Tips           []string     `json:"tips"`
	CreatedAt      *time.Time   `json:"created_at,omitempty"`
}

func newMetricsResponse(r metrics.HealthMetricsResult) MetricsResponse {
	return MetricsResponse{
		BMI: r.BMI,
		Category: CategoryJSON{
			Name:   r.Category.Name,
			Label:  r.Category.Label,
			Color:  r.Category.Color,
			Advice: r.Category.Advice,
		},
		BMR:            r.BMR,
		TDEE:           r.TDEE,
		TargetCalories: r.TargetCalories,
		IdealWeightKg:  RangeJSON{Min: r.IdealWeightMin, Max: r.IdealWeightMax},
		WaterLiters:    r.WaterLiters,
		WaterGlasses:   r.WaterGlasses(),
		ProteinGrams:   RangeJSON{Min: r.ProteinMin, Max: r.ProteinMax},
		Tips:           metrics.PersonalizedTips(r),
	}
}

// PremiumRequest is the body of POST /api/insurance/premium.
// Coverage is the sum insured in rupees.
type PremiumRequest struct {
	Age         int                   `json:"age"`
	Coverage    models.CoverageAmount `json:"coverage"`
	Members     int                   `json:"members"`
	PreExisting bool                  `json:"pre_existing"`
	Zone        models.Zone           `json:"zone"`
}

// TierJSON describes a coverage plan.
type TierJSON struct {
	Name          string                `json:"name"`
	DisplayAmount string                `json:"display_amount"`
	Coverage      models.CoverageAmount `json:"coverage"`
	Color         string                `json:"color"`
	Benefits      []string              `json:"benefits"`
}

func newTierJSON(t premium.Tier) TierJSON {
	benefits := t.Benefits
	if benefits == nil {
		benefits = []string{}
	}
	return TierJSON{
		Name:          t.Name,
		DisplayAmount: t.DisplayAmount,
		Coverage:      t.Coverage,
		Color:         t.Color,
		Benefits:      benefits,
	}
}

// BreakdownJSON lists the factors behind a premium.
type BreakdownJSON struct {
	AgeBand            string  `json:"age_band"`
	BaseRate           int     `json:"base_rate"`
	CoverageMultiplier float64 `json:"coverage_multiplier"`
	FamilyMultiplier   float64 `json:"family_multiplier"`
	PreExistingFactor  float64 `json:"pre_existing_factor"`
	ZoneFactor         float64 `json:"zone_factor"`
}

// PremiumResponse is a priced quote.
type PremiumResponse struct {
	ID             string        `json:"id,omitempty"`
	Zone           models.Zone   `json:"zone"`
	AnnualPremium  int           `json:"annual_premium"`
	MonthlyPremium int           `json:"monthly_premium"`
	Savings        int           `json:"savings"`
	Tier           TierJSON      `json:"tier"`
	Breakdown      BreakdownJSON `json:"breakdown"`
	Tips           []string      `json:"tips"`
	CreatedAt      *time.Time    `json:"created_at,omitempty"`
}

func newPremiumResponse(in premium.PremiumInput, r premium.PremiumResult) PremiumResponse {
	return PremiumResponse{
		Zone:           in.Zone.OrDefault(),
		AnnualPremium:  r.Annual,
		MonthlyPremium: r.Monthly,
		Savings:        r.Savings,
		Tier:           newTierJSON(r.Tier),
		Breakdown: BreakdownJSON{
			AgeBand:            r.Breakdown.AgeBand.Label,
			BaseRate:           r.Breakdown.AgeBand.BaseRate,
			CoverageMultiplier: r.Breakdown.CoverageMultiplier,
			FamilyMultiplier:   r.Breakdown.FamilyMultiplier,
			PreExistingFactor:  r.Breakdown.PreExistingFactor,
			ZoneFactor:         r.Breakdown.ZoneFactor,
		},
		Tips: premium.GetInsuranceTips(in.Age, in.HasPreExisting, in.Members),
	}
}

// TermJSON is a glossary entry.
type TermJSON struct {
	Term        string `json:"term"`
	Description string `json:"description"`
}

// FoodJSON is a catalog food.
type FoodJSON struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	NameHi   string  `json:"name_hi"`
	Serving  string  `json:"serving"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Category string  `json:"category"`
}

func newFoodsJSON(foods []models.FoodItem) []FoodJSON {
	out := make([]FoodJSON, len(foods))
	for i, f := range foods {
		out[i] = FoodJSON{
			ID:       f.ID,
			Name:     f.Name,
			NameHi:   f.NameHi,
			Serving:  f.Serving,
			Calories: f.Calories,
			Protein:  f.Protein,
			Carbs:    f.Carbs,
			Fat:      f.Fat,
			Category: f.Category,
		}
	}
	return out
}

// AddEntryRequest is the body of POST /api/calories.
type AddEntryRequest struct {
	FoodID   int             `json:"food_id"`
	Quantity float64         `json:"quantity"`
	Meal     models.MealType `json:"meal"`
	Date     string          `json:"date"`
}

// EntryJSON is a food log entry.
type EntryJSON struct {
	ID        string          `json:"id"`
	FoodID    int             `json:"food_id"`
	FoodName  string          `json:"food_name"`
	Serving   string          `json:"serving"`
	Quantity  float64         `json:"quantity"`
	Meal      models.MealType `json:"meal"`
	Calories  float64         `json:"calories"`
	Protein   float64         `json:"protein"`
	Carbs     float64         `json:"carbs"`
	Fat       float64         `json:"fat"`
	Date      string          `json:"date"`
	CreatedAt time.Time       `json:"created_at"`
}

func newEntryJSON(e *models.FoodLogEntry) EntryJSON {
	return EntryJSON{
		ID:        e.ID,
		FoodID:    e.FoodID,
		FoodName:  e.FoodName,
		Serving:   e.Serving,
		Quantity:  e.Quantity,
		Meal:      e.Meal,
		Calories:  e.Calories,
		Protein:   e.Protein,
		Carbs:     e.Carbs,
		Fat:       e.Fat,
		Date:      e.LogDate,
		CreatedAt: e.CreatedAt,
	}
}

// TotalsJSON holds nutrition totals.
type TotalsJSON struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// DailySummaryResponse is the body of GET /api/calories.
type DailySummaryResponse struct {
	Date      string                      `json:"date"`
	Goal      int                         `json:"goal"`
	Totals    TotalsJSON                  `json:"totals"`
	Remaining float64                     `json:"remaining"`
	Progress  float64                     `json:"progress"`
	Meals     map[models.MealType]float64 `json:"meals"`
	Entries   []EntryJSON                 `json:"entries"`
}

func newDailySummaryResponse(s *calories.Summary) DailySummaryResponse {
	entries := make([]EntryJSON, len(s.Entries))
	for i, e := range s.Entries {
		entries[i] = newEntryJSON(e)
	}
	return DailySummaryResponse{
		Date:      s.Date,
		Goal:      s.Goal,
		Totals:    TotalsJSON{Calories: s.Calories, Protein: s.Protein, Carbs: s.Carbs, Fat: s.Fat},
		Remaining: s.Remaining,
		Progress:  s.Progress,
		Meals:     s.MealCalories,
		Entries:   entries,
	}
}

// DayTotalJSON is one day of the weekly view.
type DayTotalJSON struct {
	Date     string  `json:"date"`
	Calories float64 `json:"calories"`
}

// AssessmentJSON is a saved assessment.
type AssessmentJSON struct {
	ID             string                 `json:"id"`
	WeightKg       float64                `json:"weight_kg"`
	HeightCm       float64                `json:"height_cm"`
	Age            int                    `json:"age"`
	Gender         models.Gender          `json:"gender"`
	ActivityLevel  models.ActivityLevel   `json:"activity_level"`
	Goal           models.Goal            `json:"goal"`
	BMI            float64                `json:"bmi"`
	Category       models.BMICategoryName `json:"category"`
	BMR            int                    `json:"bmr"`
	TDEE           int                    `json:"tdee"`
	TargetCalories int                    `json:"target_calories"`
	WaterLiters    float64                `json:"water_liters"`
	CreatedAt      time.Time              `json:"created_at"`
}

func newAssessmentJSON(a *models.Assessment) AssessmentJSON {
	return AssessmentJSON{
		ID:             a.ID,
		WeightKg:       a.WeightKg,
		HeightCm:       a.HeightCm,
		Age:            a.AgeYears,
		Gender:         a.Gender,
		ActivityLevel:  a.ActivityLevel,
		Goal:           a.Goal,
		BMI:            a.BMI,
		Category:       a.Category,
		BMR:            a.BMR,
		TDEE:           a.TDEE,
		TargetCalories: a.TargetCalories,
		WaterLiters:    a.WaterLiters,
		CreatedAt:      a.CreatedAt,
	}
}

// QuoteJSON is a saved quote.
type QuoteJSON struct {
	ID             string                `json:"id"`
	Age            int                   `json:"age"`
	Coverage       models.CoverageAmount `json:"coverage"`
	Members        int                   `json:"members"`
	PreExisting    bool                  `json:"pre_existing"`
	Zone           models.Zone           `json:"zone"`
	TierName       string                `json:"tier_name"`
	AnnualPremium  int                   `json:"annual_premium"`
	MonthlyPremium int                   `json:"monthly_premium"`
	Savings        int                   `json:"savings"`
	CreatedAt      time.Time             `json:"created_at"`
}

func newQuoteJSON(q *models.Quote) QuoteJSON {
	return QuoteJSON{
		ID:             q.ID,
		Age:            q.AgeYears,
		Coverage:       q.Coverage,
		Members:        q.Members,
		PreExisting:    q.HasPreExisting,
		Zone:           q.Zone,
		TierName:       q.TierName,
		AnnualPremium:  q.AnnualPremium,
		MonthlyPremium: q.MonthlyPremium,
		Savings:        q.Savings,
		CreatedAt:      q.CreatedAt,
	}
}

// Page wraps a page of history items.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}
