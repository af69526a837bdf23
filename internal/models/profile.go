package models

// Gender represents the biological sex used by the Mifflin-St Jeor equation.
// Only the two values the equation defines are supported.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// DefaultGender is used when a Gender value is not recognised.
const DefaultGender = GenderMale

// Valid returns true if the gender is a known value.
func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// OrDefault returns g if valid, otherwise DefaultGender.
func (g Gender) OrDefault() Gender {
	if g.Valid() {
		return g
	}
	return DefaultGender
}

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	default:
		return "Unknown"
	}
}

// ActivityLevel represents how physically active a person is.
type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// DefaultActivityLevel is used when an ActivityLevel value is not recognised.
const DefaultActivityLevel = ActivitySedentary

// ActivityLevels lists all levels from least to most active.
var ActivityLevels = []ActivityLevel{
	ActivitySedentary,
	ActivityLight,
	ActivityModerate,
	ActivityActive,
	ActivityVeryActive,
}

// Valid returns true if the activity level is a known value.
func (a ActivityLevel) Valid() bool {
	switch a {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
		return true
	}
	return false
}

// OrDefault returns a if valid, otherwise DefaultActivityLevel.
func (a ActivityLevel) OrDefault() ActivityLevel {
	if a.Valid() {
		return a
	}
	return DefaultActivityLevel
}

func (a ActivityLevel) String() string {
	switch a {
	case ActivitySedentary:
		return "Sedentary"
	case ActivityLight:
		return "Light"
	case ActivityModerate:
		return "Moderate"
	case ActivityActive:
		return "Active"
	case ActivityVeryActive:
		return "Very Active"
	default:
		return "Unknown"
	}
}

// Description returns a short explanation of the level.
func (a ActivityLevel) Description() string {
	switch a {
	case ActivitySedentary:
		return "Desk job, little/no exercise"
	case ActivityLight:
		return "Light exercise 1-3 days/week"
	case ActivityModerate:
		return "Moderate exercise 3-5 days/week"
	case ActivityActive:
		return "Hard exercise 6-7 days/week"
	case ActivityVeryActive:
		return "Physical job + intense exercise"
	default:
		return ""
	}
}

// Goal represents a weight goal preset.
type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

// Goals lists the presets in display order.
var Goals = []Goal{GoalLose, GoalMaintain, GoalGain}

// Valid returns true if the goal is a known value.
func (g Goal) Valid() bool {
	return g == GoalLose || g == GoalMaintain || g == GoalGain
}

// Delta returns the daily calorie offset for the goal. Unknown goals maintain.
func (g Goal) Delta() int {
	switch g {
	case GoalLose:
		return -500
	case GoalGain:
		return 500
	default:
		return 0
	}
}

func (g Goal) String() string {
	switch g {
	case GoalLose:
		return "Lose Weight"
	case GoalMaintain:
		return "Maintain"
	case GoalGain:
		return "Gain Weight"
	default:
		return "Unknown"
	}
}

// Description returns the expected rate of change for the goal.
func (g Goal) Description() string {
	switch g {
	case GoalLose:
		return "-0.5 kg/week"
	case GoalMaintain:
		return "Stay same weight"
	case GoalGain:
		return "+0.5 kg/week"
	default:
		return ""
	}
}

// BMICategoryName identifies one of the four BMI bands.
type BMICategoryName string

const (
	BMIUnderweight BMICategoryName = "Underweight"
	BMINormal      BMICategoryName = "Normal"
	BMIOverweight  BMICategoryName = "Overweight"
	BMIObese       BMICategoryName = "Obese"
)

// Valid returns true if the category name is a known value.
func (c BMICategoryName) Valid() bool {
	switch c {
	case BMIUnderweight, BMINormal, BMIOverweight, BMIObese:
		return true
	}
	return false
}

func (c BMICategoryName) String() string {
	return string(c)
}
