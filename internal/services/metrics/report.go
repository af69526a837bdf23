package metrics

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vedaai/veda/internal/models"
)

// BiometricInput contains the values a health metrics report is built from.
type BiometricInput struct {
	WeightKg      float64
	HeightCm      float64
	AgeYears      int
	Gender        models.Gender
	ActivityLevel models.ActivityLevel
	GoalDelta     int // kcal/day; negative to lose, positive to gain
}

// HealthMetricsResult is a complete health metrics report.
type HealthMetricsResult struct {
	BMI            float64
	Category       BMICategory
	BMR            int
	TDEE           int
	TargetCalories int
	IdealWeightMin int
	IdealWeightMax int
	WaterLiters    float64
	ProteinMin     int // sedentary ratio
	ProteinMax     int // very active ratio
}

// Calculate builds a full report from the input.
func Calculate(in BiometricInput) HealthMetricsResult {
	bmi := CalculateBMI(in.WeightKg, in.HeightCm)
	bmr := CalculateBMR(in.WeightKg, in.HeightCm, in.AgeYears, in.Gender)
	tdee := CalculateTDEE(bmr, in.ActivityLevel)
	ideal := CalculateIdealWeightRange(in.HeightCm)

	return HealthMetricsResult{
		BMI:            bmi,
		Category:       ClassifyBMI(bmi),
		BMR:            bmr,
		TDEE:           tdee,
		TargetCalories: CalculateTargetCalories(tdee, in.GoalDelta),
		IdealWeightMin: ideal.Min,
		IdealWeightMax: ideal.Max,
		WaterLiters:    CalculateWaterIntake(in.WeightKg),
		ProteinMin:     CalculateProteinNeeds(in.WeightKg, models.ActivitySedentary),
		ProteinMax:     CalculateProteinNeeds(in.WeightKg, models.ActivityVeryActive),
	}
}

// WaterGlasses returns the number of 250 ml glasses in the water target.
func (r HealthMetricsResult) WaterGlasses() int {
	return int(math.Round(r.WaterLiters * 4))
}

// PersonalizedTips returns lifestyle tips for the report. Weight tips come
// first, followed by the tips every report gets.
func PersonalizedTips(r HealthMetricsResult) []string {
	var tips []string

	if r.BMI < IdealBMIMin {
		tips = append(tips,
			"Add healthy fats: ghee, almonds, avocados daily",
			"Include protein-rich foods: eggs, paneer, legumes",
		)
	} else if r.BMI > 25 {
		tips = append(tips,
			"Fill half your plate with vegetables before grains",
			"Start with 10,000 steps/day and morning yoga",
		)
	}

	water := strconv.FormatFloat(r.WaterLiters, 'f', -1, 64)
	tips = append(tips,
		fmt.Sprintf("Drink %sL water daily (%d glasses)", water, r.WaterGlasses()),
		fmt.Sprintf("Aim for %d-%dg protein daily", r.ProteinMin, r.ProteinMax),
		"Eat dinner by 7 PM for better digestion and sleep",
		"Practice 15-20 mins of breathing exercises daily",
	)

	return tips
}
