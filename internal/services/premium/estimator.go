// Package premium estimates health insurance premiums from a household
// profile and keeps a history of quotes.
//
// CalculatePremium and Estimate are pure. Each factor multiplies the running
// premium in a fixed order: age band base rate, coverage, family size,
// pre-existing condition, then zone.
package premium

import (
	"math"

	"github.com/vedaai/veda/internal/models"
)

// Surcharges and heuristics applied after the base × coverage × family product.
const (
	PreExistingSurcharge = 1.2
	MetroZoneSurcharge   = 1.1
	SavingsRate          = 0.08
)

// UnknownZoneFactor prices a non-empty zone outside the known set without
// the metro surcharge.
const UnknownZoneFactor = 1.0

// DefaultCoverageMultiplier is used for sums insured outside the rate table.
const DefaultCoverageMultiplier = 1.0

// AgeBand is an inclusive age range with its base annual premium.
type AgeBand struct {
	Label    string
	MinAge   int
	MaxAge   int // math.MaxInt for the open-ended band
	BaseRate int
}

// AgeBands lists the bands youngest first. Ages below the first band's
// minimum are priced in the first band.
var AgeBands = []AgeBand{
	{Label: "18-25", MinAge: 18, MaxAge: 25, BaseRate: 5000},
	{Label: "26-35", MinAge: 26, MaxAge: 35, BaseRate: 6500},
	{Label: "36-45", MinAge: 36, MaxAge: 45, BaseRate: 8500},
	{Label: "46-55", MinAge: 46, MaxAge: 55, BaseRate: 12000},
	{Label: "56-60", MinAge: 56, MaxAge: 60, BaseRate: 18000},
	{Label: "60+", MinAge: 61, MaxAge: math.MaxInt, BaseRate: 25000},
}

var coverageMultipliers = map[models.CoverageAmount]float64{
	models.Coverage3Lakh:  0.7,
	models.Coverage5Lakh:  1.0,
	models.Coverage10Lakh: 1.8,
	models.Coverage15Lakh: 2.5,
	models.Coverage25Lakh: 3.5,
	models.Coverage50Lakh: 6.0,
	models.Coverage1Crore: 10.0,
}

// familyMultipliers is indexed by member count; index 0 is unused.
var familyMultipliers = []float64{0, 1.0, 1.5, 1.9, 2.3, 2.7, 3.0}

// PremiumInput describes the household being priced.
type PremiumInput struct {
	Age            int
	Coverage       models.CoverageAmount
	Members        int
	HasPreExisting bool
	Zone           models.Zone // empty resolves to models.DefaultZone
}

// Breakdown records each factor used to price a premium.
type Breakdown struct {
	AgeBand            AgeBand
	CoverageMultiplier float64
	FamilyMultiplier   float64
	PreExistingFactor  float64
	ZoneFactor         float64
}

// PremiumResult is a priced premium with the matching coverage tier.
type PremiumResult struct {
	Annual    int
	Monthly   int
	Savings   int
	Tier      Tier
	Breakdown Breakdown
}

// BandForAge returns the age band used to price age.
func BandForAge(age int) AgeBand {
	for _, b := range AgeBands {
		if age <= b.MaxAge {
			return b
		}
	}
	return AgeBands[len(AgeBands)-1]
}

// CoverageMultiplier returns the rate multiplier for a sum insured.
func CoverageMultiplier(c models.CoverageAmount) float64 {
	if m, ok := coverageMultipliers[c]; ok {
		return m
	}
	return DefaultCoverageMultiplier
}

// FamilyMultiplier returns the multiplier for the number of members covered.
// Sizes beyond the table grow by 0.4 per extra member. Fewer than one member
// is priced as one.
func FamilyMultiplier(members int) float64 {
	if members < 1 {
		members = 1
	}
	if members < len(familyMultipliers) {
		return familyMultipliers[members]
	}
	return 1 + float64(members-1)*0.4
}

func breakdown(in PremiumInput) Breakdown {
	b := Breakdown{
		AgeBand:            BandForAge(in.Age),
		CoverageMultiplier: CoverageMultiplier(in.Coverage),
		FamilyMultiplier:   FamilyMultiplier(in.Members),
		PreExistingFactor:  1.0,
		ZoneFactor:         ZoneFactor(in.Zone),
	}
	if in.HasPreExisting {
		b.PreExistingFactor = PreExistingSurcharge
	}
	return b
}

// ZoneFactor returns the city surcharge for z. An empty zone is priced as
// models.DefaultZone; only Zone1 carries the metro surcharge.
func ZoneFactor(z models.Zone) float64 {
	switch z.OrDefault() {
	case models.Zone1:
		return MetroZoneSurcharge
	case models.Zone2:
		return 1.0
	default:
		return UnknownZoneFactor
	}
}

func (b Breakdown) annual() int {
	premium := float64(b.AgeBand.BaseRate)
	premium *= b.CoverageMultiplier
	premium *= b.FamilyMultiplier
	premium *= b.PreExistingFactor
	premium *= b.ZoneFactor
	return int(math.Round(premium))
}

// CalculatePremium returns the estimated annual premium in rupees.
func CalculatePremium(in PremiumInput) int {
	return breakdown(in).annual()
}

// Estimate prices the input and attaches monthly cost, savings and tier.
func Estimate(in PremiumInput) PremiumResult {
	b := breakdown(in)
	annual := b.annual()

	return PremiumResult{
		Annual:    annual,
		Monthly:   int(math.Round(float64(annual) / 12)),
		Savings:   int(math.Round(float64(annual) * SavingsRate)),
		Tier:      TierFor(in.Coverage),
		Breakdown: b,
	}
}
