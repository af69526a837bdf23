package metrics

import (
	"math"

	"github.com/vedaai/veda/internal/models"
)

// BMICategory is a BMI classification band. Lower is inclusive and Upper exclusive.
type BMICategory struct {
	Name   models.BMICategoryName
	Label  string
	Lower  float64
	Upper  float64
	Color  string
	Advice string
}

// Contains reports whether bmi falls inside the band.
func (c BMICategory) Contains(bmi float64) bool {
	return bmi >= c.Lower && bmi < c.Upper
}

// Categories partitions [0, +Inf) into the four BMI bands, lowest first.
var Categories = []BMICategory{
	{
		Name:   models.BMIUnderweight,
		Label:  "Underweight",
		Lower:  0,
		Upper:  18.5,
		Color:  "#3B82F6",
		Advice: "Consider increasing calorie intake with nutritious foods like ghee, paneer, and nuts.",
	},
	{
		Name:   models.BMINormal,
		Label:  "Normal Weight",
		Lower:  18.5,
		Upper:  25,
		Color:  "#10B981",
		Advice: "Excellent! Maintain your weight with balanced meals and regular exercise.",
	},
	{
		Name:   models.BMIOverweight,
		Label:  "Overweight",
		Lower:  25,
		Upper:  30,
		Color:  "#F59E0B",
		Advice: "Reduce fried foods, increase fiber intake. Try walking and yoga daily.",
	},
	{
		Name:   models.BMIObese,
		Label:  "Obese",
		Lower:  30,
		Upper:  math.Inf(1),
		Color:  "#EF4444",
		Advice: "Consult a doctor. Switch to whole grains, reduce sugar, and start light exercise.",
	},
}

// ClassifyBMI returns the band containing bmi. Values below zero are
// classified as underweight.
func ClassifyBMI(bmi float64) BMICategory {
	for _, c := range Categories {
		if c.Contains(bmi) {
			return c
		}
	}
	if bmi < 0 {
		return Categories[0]
	}
	return Categories[len(Categories)-1]
}

// CategoryByName returns the band with the given name.
func CategoryByName(name models.BMICategoryName) (BMICategory, bool) {
	for _, c := range Categories {
		if c.Name == name {
			return c, true
		}
	}
	return BMICategory{}, false
}
