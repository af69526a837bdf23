// Package metrics computes health metrics (BMI, BMR, TDEE and related targets)
// from basic biometrics and records assessments for later review.
//
// The calculation functions are pure and total: they never return errors and
// fall back to documented defaults for unrecognised enum values.
package metrics

import (
	"math"

	"github.com/vedaai/veda/internal/models"
)

// WaterLitersPerKg is the daily water intake rule (35 ml per kg of body weight).
const WaterLitersPerKg = 0.035

// Ideal weight bounds expressed as BMI values.
const (
	IdealBMIMin = 18.5
	IdealBMIMax = 24.9
)

// BMR offsets applied to the Mifflin-St Jeor base.
const (
	maleOffset   = 5
	femaleOffset = -161
)

var activityMultipliers = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  1.2,
	models.ActivityLight:      1.375,
	models.ActivityModerate:   1.55,
	models.ActivityActive:     1.725,
	models.ActivityVeryActive: 1.9,
}

var proteinRatios = map[models.ActivityLevel]float64{
	models.ActivitySedentary:  0.8,
	models.ActivityLight:      1.0,
	models.ActivityModerate:   1.2,
	models.ActivityActive:     1.6,
	models.ActivityVeryActive: 2.0,
}

// ActivityMultiplier returns the TDEE multiplier for the level.
// Unrecognised levels use the DefaultActivityLevel multiplier.
func ActivityMultiplier(level models.ActivityLevel) float64 {
	return activityMultipliers[level.OrDefault()]
}

// ProteinRatio returns grams of protein per kg of body weight for the level.
// Unrecognised levels use the DefaultActivityLevel ratio.
func ProteinRatio(level models.ActivityLevel) float64 {
	return proteinRatios[level.OrDefault()]
}

// CalculateBMI returns weight / height² rounded to one decimal place,
// or 0 if either dimension is not positive.
func CalculateBMI(weightKg, heightCm float64) float64 {
	if weightKg <= 0 || heightCm <= 0 {
		return 0
	}
	heightM := heightCm / 100
	return round1(weightKg / (heightM * heightM))
}

// CalculateBMR returns the basal metabolic rate using the Mifflin-St Jeor
// equation. Unrecognised genders use the DefaultGender offset.
func CalculateBMR(weightKg, heightCm float64, ageYears int, gender models.Gender) int {
	base := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	if gender.OrDefault() == models.GenderFemale {
		return int(math.Round(base + femaleOffset))
	}
	return int(math.Round(base + maleOffset))
}

// CalculateTDEE returns total daily energy expenditure for the activity level.
func CalculateTDEE(bmr int, level models.ActivityLevel) int {
	return int(math.Round(float64(bmr) * ActivityMultiplier(level)))
}

// CalculateTargetCalories returns tdee + goalDelta. The result is not clamped.
func CalculateTargetCalories(tdee, goalDelta int) int {
	return tdee + goalDelta
}

// WeightRange is an inclusive range of body weights in kilograms.
type WeightRange struct {
	Min int
	Max int
}

// CalculateIdealWeightRange returns the weights that keep BMI in the normal band.
func CalculateIdealWeightRange(heightCm float64) WeightRange {
	heightM := heightCm / 100
	sq := heightM * heightM
	return WeightRange{
		Min: int(math.Round(IdealBMIMin * sq)),
		Max: int(math.Round(IdealBMIMax * sq)),
	}
}

// CalculateWaterIntake returns recommended daily water in liters, one decimal.
func CalculateWaterIntake(weightKg float64) float64 {
	return round1(weightKg * WaterLitersPerKg)
}

// CalculateProteinNeeds returns daily protein in grams.
func CalculateProteinNeeds(weightKg float64, level models.ActivityLevel) int {
	return int(math.Round(weightKg * ProteinRatio(level)))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
