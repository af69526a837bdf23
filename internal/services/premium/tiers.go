package premium

import "github.com/vedaai/veda/internal/models"

// Tier is a named coverage plan with its headline benefits.
type Tier struct {
	Name          string
	DisplayAmount string
	Coverage      models.CoverageAmount
	Color         string
	Benefits      []string
}

var (
	essentialBenefits     = []string{"Hospitalization", "Day Care", "Pre-hospitalization (30 days)"}
	comprehensiveBenefits = []string{"All Essential +", "Maternity Cover", "OPD Benefits", "No-Claim Bonus"}
	supremeBenefits       = []string{"All Comprehensive +", "Air Ambulance", "Worldwide Cover", "Restore Benefit", "Annual Health Checkup"}
	supremePlusBenefits   = []string{"All Supreme +", "No Room Rent Limit", "Organ Donor Cover"}
	eliteBenefits         = []string{"All Supreme Plus +", "Global Treatment", "Unlimited Restore", "Home Healthcare"}
)

// Tiers lists the three headline plans.
var Tiers = []Tier{
	TierFor(models.Coverage3Lakh),
	TierFor(models.Coverage5Lakh),
	TierFor(models.Coverage10Lakh),
}

// TierFor returns the plan for a sum insured. Amounts outside the rate table
// are shown as a custom plan with no listed benefits.
func TierFor(c models.CoverageAmount) Tier {
	t := Tier{Coverage: c, DisplayAmount: c.String()}

	switch c {
	case models.Coverage3Lakh:
		t.Name, t.Color, t.Benefits = "Essential", "#3B82F6", essentialBenefits
	case models.Coverage5Lakh:
		t.Name, t.Color, t.Benefits = "Comprehensive", "#10B981", comprehensiveBenefits
	case models.Coverage10Lakh:
		t.Name, t.Color, t.Benefits = "Supreme", "#F59E0B", supremeBenefits
	case models.Coverage15Lakh, models.Coverage25Lakh:
		t.Name, t.Color, t.Benefits = "Supreme Plus", "#8B5CF6", supremePlusBenefits
	case models.Coverage50Lakh, models.Coverage1Crore:
		t.Name, t.Color, t.Benefits = "Elite", "#EC4899", eliteBenefits
	default:
		t.Name, t.Color = "Custom", "#64748B"
	}

	return t
}

// Term is an insurance glossary entry.
type Term struct {
	Term        string
	Description string
}

// Terms explains common policy vocabulary.
var Terms = []Term{
	{"Sum Insured", "Maximum amount insurer will pay for treatment in a policy year"},
	{"Cashless Treatment", "Direct payment to network hospital, no out-of-pocket expense"},
	{"Waiting Period", "Time before certain illnesses are covered (usually 2-4 years for pre-existing)"},
	{"Co-payment", "Percentage of claim amount you pay from your pocket (usually 10-20%)"},
}
