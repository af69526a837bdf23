package models

import "testing"

func TestGender_Valid(t *testing.T) {
	tests := []struct {
		name   string
		gender Gender
		want   bool
	}{
		{"Male", GenderMale, true},
		{"Female", GenderFemale, true},
		{"Empty", Gender(""), false},
		{"Uppercase", Gender("MALE"), false},
		{"Other", Gender("other"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.gender.Valid(); got != tt.want {
				t.Errorf("Gender.Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGender_OrDefault(t *testing.T) {
	if got := GenderFemale.OrDefault(); got != GenderFemale {
		t.Errorf("expected female, got %s", got)
	}
	if got := Gender("x").OrDefault(); got != DefaultGender {
		t.Errorf("expected default gender %s, got %s", DefaultGender, got)
	}
}

func TestActivityLevel_OrDefault(t *testing.T) {
	tests := []struct {
		name  string
		level ActivityLevel
		want  ActivityLevel
	}{
		{"Sedentary", ActivitySedentary, ActivitySedentary},
		{"Very active", ActivityVeryActive, ActivityVeryActive},
		{"Empty", ActivityLevel(""), DefaultActivityLevel},
		{"Unknown", ActivityLevel("extreme"), DefaultActivityLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.level.OrDefault(); got != tt.want {
				t.Errorf("ActivityLevel.OrDefault() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestActivityLevels_Ordered(t *testing.T) {
	if len(ActivityLevels) != 5 {
		t.Fatalf("expected 5 activity levels, got %d", len(ActivityLevels))
	}
	if ActivityLevels[0] != ActivitySedentary || ActivityLevels[4] != ActivityVeryActive {
		t.Errorf("unexpected ordering: %v", ActivityLevels)
	}
	for _, level := range ActivityLevels {
		if !level.Valid() {
			t.Errorf("level %s should be valid", level)
		}
		if level.Description() == "" {
			t.Errorf("level %s should have a description", level)
		}
	}
}

func TestGoal_Delta(t *testing.T) {
	tests := []struct {
		name string
		goal Goal
		want int
	}{
		{"Lose", GoalLose, -500},
		{"Maintain", GoalMaintain, 0},
		{"Gain", GoalGain, 500},
		{"Unknown", Goal("bulk"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.goal.Delta(); got != tt.want {
				t.Errorf("Goal.Delta() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGoal_String(t *testing.T) {
	tests := []struct {
		goal Goal
		want string
	}{
		{GoalLose, "Lose Weight"},
		{GoalMaintain, "Maintain"},
		{GoalGain, "Gain Weight"},
		{Goal(""), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.goal.String(); got != tt.want {
				t.Errorf("Goal.String() = %v, want %v", got, tt.want)
			}
		})
	}
}
