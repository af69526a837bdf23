// Package premium provides the insurance premium estimator view.
package premium

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/vedaai/veda/internal/config"
	"github.com/vedaai/veda/internal/models"
	"github.com/vedaai/veda/internal/services/premium"
	"github.com/vedaai/veda/internal/tui/components"
)

// PremiumView is the household profile form with the priced quote beside it.
type PremiumView struct {
	palette components.Palette
	form    *components.Form

	age         *components.Input
	coverage    *components.Select
	members     *components.Input
	preExisting *components.Select
	zone        *components.Select

	defaults  config.InsuranceConfig
	report    *premium.QuoteReport
	showTerms bool
}

// NewPremiumView creates the view with coverage and zone preset from config.
func NewPremiumView(p components.Palette, defaults config.InsuranceConfig) *PremiumView {
	v := &PremiumView{
		palette:     p,
		defaults:    defaults,
		age:         components.NewInput("Eldest age").SetNumeric(true).SetRequired(true).SetWidth(6).SetMaxLength(3).SetSuffix("years").SetPlaceholder("35"),
		coverage:    components.NewSelect("Coverage", coverageOptions()),
		members:     components.NewInput("Members").SetNumeric(true).SetRequired(true).SetWidth(6).SetMaxLength(2).SetValue("1"),
		preExisting: components.NewSelect("Pre-existing", components.Options("No", "Yes")),
		zone: components.NewSelect("Zone", []components.Option{
			{Label: "Metro", Value: string(models.Zone1)},
			{Label: "Non-metro", Value: string(models.Zone2)},
		}),
	}

	v.form = components.NewForm("HEALTH INSURANCE").
		AddField(v.age).
		AddField(v.coverage).
		AddField(v.members).
		AddField(v.preExisting).
		AddField(v.zone)

	v.resetSelects()
	return v
}

func coverageOptions() []components.Option {
	opts := make([]components.Option, len(models.CoverageAmounts))
	for i, c := range models.CoverageAmounts {
		opts[i] = components.Option{
			Label: strings.TrimPrefix(c.String(), "₹"),
			Value: strconv.Itoa(int(c)),
		}
	}
	return opts
}

func (v *PremiumView) resetSelects() {
	coverage := v.defaults.DefaultCoverage
	if !coverage.Valid() {
		coverage = models.Coverage5Lakh
	}
	v.coverage.SetValue(strconv.Itoa(int(coverage)))
	v.preExisting.SetSelected(0)
	v.zone.SetValue(string(v.defaults.DefaultZone.OrDefault()))
}

// HandleKey handles view keys and forwards the rest to the form.
// "?" toggles the glossary.
func (v *PremiumView) HandleKey(key string) components.FormAction {
	if key == "?" {
		v.showTerms = !v.showTerms
		return components.FormNone
	}
	return v.form.HandleKey(key)
}

// Input reads the form into estimator input.
func (v *PremiumView) Input() (premium.PremiumInput, error) {
	v.form.SetError("")
	if err := v.form.Validate(); err != nil {
		v.form.SetError(err.Error())
		return premium.PremiumInput{}, err
	}

	age, err := v.age.Int()
	if err != nil {
		v.form.SetError(err.Error())
		return premium.PremiumInput{}, err
	}
	members, err := v.members.Int()
	if err != nil {
		v.form.SetError(err.Error())
		return premium.PremiumInput{}, err
	}
	coverage, err := models.ParseCoverageAmount(v.coverage.Value())
	if err != nil {
		v.form.SetError(err.Error())
		return premium.PremiumInput{}, err
	}

	return premium.PremiumInput{
		Age:            age,
		Coverage:       coverage,
		Members:        members,
		HasPreExisting: v.preExisting.Value() == "Yes",
		Zone:           models.Zone(v.zone.Value()),
	}, nil
}

// SetReport shows a priced quote and clears any error.
func (v *PremiumView) SetReport(r *premium.QuoteReport) {
	v.report = r
	v.form.SetError("")
}

// Report returns the quote on display, or nil.
func (v *PremiumView) Report() *premium.QuoteReport {
	return v.report
}

// SetError shows an error under the form.
func (v *PremiumView) SetError(err error) {
	if err == nil {
		v.form.SetError("")
		return
	}
	v.form.SetError(err.Error())
}

// Reset restores the form defaults and clears the quote.
func (v *PremiumView) Reset() {
	v.age.SetValue("")
	v.members.SetValue("1")
	v.resetSelects()
	v.form.SetError("")
	v.report = nil
}

// Render renders the form and the quote side by side, stacked when narrow.
func (v *PremiumView) Render(width int) string {
	left := v.form.RenderWith(v.palette)
	if v.showTerms {
		left += "\n\n" + RenderTerms(v.palette)
	} else {
		left += "\n" + v.palette.Help.Render("?:Glossary")
	}

	if v.report == nil {
		return left + "\n\n" + v.palette.Muted.Render("Enter the household details and press Ctrl+S.")
	}
	return components.SideBySide(left, RenderQuote(v.palette, v.report.Result, v.report.Tips), width, 4)
}

// Rupees formats an amount with thousands separators, e.g. "₹10,725".
func Rupees(n int) string {
	return "₹" + humanize.Comma(int64(n))
}

// RenderQuote renders a priced quote.
func RenderQuote(p components.Palette, r premium.PremiumResult, tips []string) string {
	const lw = 18
	var b strings.Builder

	b.WriteString(p.Title.Render("═══ YOUR QUOTE ═══"))
	b.WriteString("\n\n")

	b.WriteString(components.KeyValue(p, "Annual premium", Rupees(r.Annual), lw) + "\n")
	b.WriteString(components.KeyValue(p, "Monthly", Rupees(r.Monthly), lw) + "\n")
	b.WriteString(p.Label.Width(lw).Render("Est. savings:") + " " + p.Success.Render(Rupees(r.Savings)+"/year") + "\n\n")

	b.WriteString(p.Section.Render(strings.ToUpper(r.Tier.Name) + " PLAN  " + r.Tier.DisplayAmount))
	b.WriteString("\n")
	for _, benefit := range r.Tier.Benefits {
		b.WriteString(p.Value.Render("✓ " + benefit))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	bd := r.Breakdown
	b.WriteString(p.Section.Render("BREAKDOWN"))
	b.WriteString("\n")
	b.WriteString(components.KeyValue(p, "Age band "+bd.AgeBand.Label, Rupees(bd.AgeBand.BaseRate), lw) + "\n")
	b.WriteString(components.KeyValue(p, "Coverage", fmt.Sprintf("×%.1f", bd.CoverageMultiplier), lw) + "\n")
	b.WriteString(components.KeyValue(p, "Family", fmt.Sprintf("×%.1f", bd.FamilyMultiplier), lw) + "\n")
	b.WriteString(components.KeyValue(p, "Pre-existing", fmt.Sprintf("×%.1f", bd.PreExistingFactor), lw) + "\n")
	b.WriteString(components.KeyValue(p, "Zone", fmt.Sprintf("×%.1f", bd.ZoneFactor), lw) + "\n")

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

// RenderTerms renders the insurance glossary.
func RenderTerms(p components.Palette) string {
	var b strings.Builder
	b.WriteString(p.Section.Render("KNOW YOUR TERMS"))
	b.WriteString("\n")
	for _, t := range premium.Terms {
		b.WriteString(p.Value.Bold(true).Render(t.Term))
		b.WriteString("\n")
		b.WriteString(p.Muted.Render("  " + t.Description))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
