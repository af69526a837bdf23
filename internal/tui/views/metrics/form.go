// Package metrics provides the health metrics calculator view.
package metrics

import (
	"fmt"
	"strings"

	"github.com/vedaai/veda/internal/config"
	"github.com/vedaai/veda/internal/models"
	"github.com/vedaai/veda/internal/services/metrics"
	"github.com/vedaai/veda/internal/tui/components"
)

// MetricsView is the biometrics form with the latest report beside it.
type MetricsView struct {
	palette components.Palette
	form    *components.Form

	weight   *components.Input
	height   *components.Input
	age      *components.Input
	gender   *components.Select
	activity *components.Select
	goal     *components.Select

	defaults config.ProfileConfig
	report   *metrics.Report
}

// NewMetricsView creates the view with enum fields preset from the profile.
func NewMetricsView(p components.Palette, profile config.ProfileConfig) *MetricsView {
	v := &MetricsView{
		palette:  p,
		defaults: profile,
		weight:   components.NewInput("Weight").SetNumeric(true).SetRequired(true).SetWidth(6).SetMaxLength(5).SetSuffix("kg").SetPlaceholder("70"),
		height:   components.NewInput("Height").SetNumeric(true).SetRequired(true).SetWidth(6).SetMaxLength(5).SetSuffix("cm").SetPlaceholder("170"),
		age:      components.NewInput("Age").SetNumeric(true).SetRequired(true).SetWidth(6).SetMaxLength(3).SetSuffix("years").SetPlaceholder("25"),
		gender:   components.NewSelect("Gender", genderOptions()),
		activity: components.NewSelect("Activity", activityOptions()),
		goal:     components.NewSelect("Goal", goalOptions()),
	}

	v.form = components.NewForm("HEALTH METRICS").
		AddField(v.weight).
		AddField(v.height).
		AddField(v.age).
		AddField(v.gender).
		AddField(v.activity).
		AddField(v.goal)

	v.resetSelects()
	return v
}

func genderOptions() []components.Option {
	return []components.Option{
		{Label: models.GenderMale.String(), Value: string(models.GenderMale)},
		{Label: models.GenderFemale.String(), Value: string(models.GenderFemale)},
	}
}

func activityOptions() []components.Option {
	opts := make([]components.Option, len(models.ActivityLevels))
	for i, a := range models.ActivityLevels {
		opts[i] = components.Option{Label: a.String(), Value: string(a)}
	}
	return opts
}

func goalOptions() []components.Option {
	opts := make([]components.Option, len(models.Goals))
	for i, g := range models.Goals {
		opts[i] = components.Option{Label: g.String(), Value: string(g)}
	}
	return opts
}

func (v *MetricsView) resetSelects() {
	v.gender.SetValue(string(v.defaults.Gender.OrDefault()))
	v.activity.SetValue(string(v.defaults.ActivityLevel.OrDefault()))

	goal := v.defaults.Goal
	if !goal.Valid() {
		goal = models.GoalMaintain
	}
	v.goal.SetValue(string(goal))
}

// HandleKey forwards a key to the form.
func (v *MetricsView) HandleKey(key string) components.FormAction {
	return v.form.HandleKey(key)
}

// Input reads the form into service input. Field errors are shown inline.
func (v *MetricsView) Input() (metrics.AssessInput, error) {
	v.form.SetError("")
	if err := v.form.Validate(); err != nil {
		v.form.SetError(err.Error())
		return metrics.AssessInput{}, err
	}

	weight, err := v.weight.Float()
	if err != nil {
		v.form.SetError(err.Error())
		return metrics.AssessInput{}, err
	}
	height, err := v.height.Float()
	if err != nil {
		v.form.SetError(err.Error())
		return metrics.AssessInput{}, err
	}
	age, err := v.age.Int()
	if err != nil {
		v.form.SetError(err.Error())
		return metrics.AssessInput{}, err
	}

	return metrics.AssessInput{
		WeightKg:      weight,
		HeightCm:      height,
		AgeYears:      age,
		Gender:        models.Gender(v.gender.Value()),
		ActivityLevel: models.ActivityLevel(v.activity.Value()),
		Goal:          models.Goal(v.goal.Value()),
	}, nil
}

// SetReport shows a computed report and clears any error.
func (v *MetricsView) SetReport(r *metrics.Report) {
	v.report = r
	v.form.SetError("")
}

// Report returns the report on display, or nil.
func (v *MetricsView) Report() *metrics.Report {
	return v.report
}

// SetError shows an error under the form.
func (v *MetricsView) SetError(err error) {
	if err == nil {
		v.form.SetError("")
		return
	}
	v.form.SetError(err.Error())
}

// Reset clears the numeric fields and the report.
func (v *MetricsView) Reset() {
	v.weight.SetValue("")
	v.height.SetValue("")
	v.age.SetValue("")
	v.resetSelects()
	v.form.SetError("")
	v.report = nil
}

// Render renders the form and the report side by side, stacked when narrow.
func (v *MetricsView) Render(width int) string {
	form := v.form.RenderWith(v.palette)
	if v.report == nil {
		return form + "\n\n" + v.palette.Muted.Render("Enter your details and press Ctrl+S.")
	}
	return components.SideBySide(form, RenderResult(v.palette, v.report.Result, v.report.Tips), width, 4)
}

// RenderResult renders a metrics report. The history view reuses it for
// replayed assessments.
func RenderResult(p components.Palette, r metrics.HealthMetricsResult, tips []string) string {
	const lw = 16
	var b strings.Builder

	b.WriteString(p.Title.Render("═══ YOUR REPORT ═══"))
	b.WriteString("\n\n")

	categoryStyle := p.Success
	switch r.Category.Name {
	case models.BMIUnderweight, models.BMIOverweight:
		categoryStyle = p.Warning
	case models.BMIObese:
		categoryStyle = p.Error
	}

	b.WriteString(p.Label.Width(lw).Render("BMI:") + " " +
		p.Value.Render(fmt.Sprintf("%.1f", r.BMI)) + " " +
		categoryStyle.Render(r.Category.Label) + "\n")
	b.WriteString(p.Muted.Render(r.Category.Advice) + "\n\n")

	b.WriteString(p.Section.Render("ENERGY"))
	b.WriteString("\n")
	b.WriteString(components.KeyValue(p, "BMR", fmt.Sprintf("%d kcal", r.BMR), lw) + "\n")
	b.WriteString(components.KeyValue(p, "TDEE", fmt.Sprintf("%d kcal", r.TDEE), lw) + "\n")
	b.WriteString(components.KeyValue(p, "Target", fmt.Sprintf("%d kcal/day", r.TargetCalories), lw) + "\n\n")

	b.WriteString(p.Section.Render("DAILY NEEDS"))
	b.WriteString("\n")
	b.WriteString(components.KeyValue(p, "Ideal weight", fmt.Sprintf("%d-%d kg", r.IdealWeightMin, r.IdealWeightMax), lw) + "\n")
	b.WriteString(components.KeyValue(p, "Water", fmt.Sprintf("%.1f L (%d glasses)", r.WaterLiters, r.WaterGlasses()), lw) + "\n")
	b.WriteString(components.KeyValue(p, "Protein", fmt.Sprintf("%d-%d g", r.ProteinMin, r.ProteinMax), lw) + "\n")

	if len(tips) > 0 {
		b.WriteString("\n")
		b.WriteString(p.Section.Render("TIPS"))
		b.WriteString("\n")
		for _, tip := range tips {
			b.WriteString(p.Value.Render("• " + tip))
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
