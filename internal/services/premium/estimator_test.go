package premium

import (
	"slices"
	"testing"

	"github.com/vedaai/veda/internal/models"
)

func TestEstimate_EndToEnd(t *testing.T) {
	// 6500 (26-35) × 1.0 (5 lakh) × 1.5 (2 members) × 1.1 (Zone1) = 10725
	in := PremiumInput{
		Age:            35,
		Coverage:       models.Coverage5Lakh,
		Members:        2,
		HasPreExisting: false,
		Zone:           models.Zone1,
	}

	got := Estimate(in)

	if got.Annual != 10725 {
		t.Errorf("expected annual 10725, got %d", got.Annual)
	}
	if got.Monthly != 894 {
		t.Errorf("expected monthly 894, got %d", got.Monthly)
	}
	if got.Savings != 858 {
		t.Errorf("expected savings 858, got %d", got.Savings)
	}
	if got.Tier.Name != "Comprehensive" || got.Tier.DisplayAmount != "₹5 Lakh" {
		t.Errorf("unexpected tier %s / %s", got.Tier.Name, got.Tier.DisplayAmount)
	}
	if got.Breakdown.AgeBand.Label != "26-35" {
		t.Errorf("expected band 26-35, got %s", got.Breakdown.AgeBand.Label)
	}
	if CalculatePremium(in) != got.Annual {
		t.Error("CalculatePremium and Estimate disagree")
	}
}

func TestBandForAge(t *testing.T) {
	tests := []struct {
		age  int
		want int
	}{
		{10, 5000},
		{18, 5000},
		{25, 5000},
		{26, 6500},
		{35, 6500},
		{36, 8500},
		{45, 8500},
		{46, 12000},
		{55, 12000},
		{56, 18000},
		{60, 18000},
		{61, 25000},
		{99, 25000},
	}

	for _, tt := range tests {
		if got := BandForAge(tt.age).BaseRate; got != tt.want {
			t.Errorf("BandForAge(%d) = %d, want %d", tt.age, got, tt.want)
		}
	}
}

func TestCoverageMultiplier(t *testing.T) {
	tests := []struct {
		coverage models.CoverageAmount
		want     float64
	}{
		{models.Coverage3Lakh, 0.7},
		{models.Coverage5Lakh, 1.0},
		{models.Coverage10Lakh, 1.8},
		{models.Coverage15Lakh, 2.5},
		{models.Coverage25Lakh, 3.5},
		{models.Coverage50Lakh, 6.0},
		{models.Coverage1Crore, 10.0},
		{models.CoverageAmount(700000), DefaultCoverageMultiplier},
	}

	for _, tt := range tests {
		if got := CoverageMultiplier(tt.coverage); got != tt.want {
			t.Errorf("CoverageMultiplier(%d) = %v, want %v", tt.coverage, got, tt.want)
		}
	}
}

func TestFamilyMultiplier(t *testing.T) {
	tests := []struct {
		members int
		want    float64
	}{
		{0, 1.0},
		{1, 1.0},
		{2, 1.5},
		{3, 1.9},
		{4, 2.3},
		{5, 2.7},
		{6, 3.0},
		{7, 3.4},
		{10, 4.6},
	}

	for _, tt := range tests {
		got := FamilyMultiplier(tt.members)
		if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("FamilyMultiplier(%d) = %v, want %v", tt.members, got, tt.want)
		}
	}
}

func TestCalculatePremium_Monotonic(t *testing.T) {
	base := PremiumInput{Age: 40, Coverage: models.Coverage5Lakh, Members: 2, Zone: models.Zone2}

	t.Run("Age", func(t *testing.T) {
		prev := 0
		for age := 18; age <= 80; age++ {
			in := base
			in.Age = age
			p := CalculatePremium(in)
			if p < prev {
				t.Errorf("premium dropped at age %d: %d < %d", age, p, prev)
			}
			prev = p
		}
	})

	t.Run("Coverage", func(t *testing.T) {
		prev := 0
		for _, c := range models.CoverageAmounts {
			in := base
			in.Coverage = c
			p := CalculatePremium(in)
			if p < prev {
				t.Errorf("premium dropped at coverage %d: %d < %d", c, p, prev)
			}
			prev = p
		}
	})

	t.Run("Family size", func(t *testing.T) {
		prev := 0
		for n := 1; n <= 12; n++ {
			in := base
			in.Members = n
			p := CalculatePremium(in)
			if p < prev {
				t.Errorf("premium dropped at %d members: %d < %d", n, p, prev)
			}
			prev = p
		}
	})
}

func TestCalculatePremium_Surcharges(t *testing.T) {
	base := PremiumInput{Age: 30, Coverage: models.Coverage5Lakh, Members: 1, Zone: models.Zone2}
	plain := CalculatePremium(base)

	withCondition := base
	withCondition.HasPreExisting = true
	if CalculatePremium(withCondition) <= plain {
		t.Error("expected pre-existing condition to raise the premium")
	}

	metro := base
	metro.Zone = models.Zone1
	if CalculatePremium(metro) <= plain {
		t.Error("expected Zone1 to raise the premium")
	}

	if plain != 6500 {
		t.Errorf("expected 6500, got %d", plain)
	}
}

func TestCalculatePremium_Zones(t *testing.T) {
	tests := []struct {
		name string
		zone models.Zone
		want int
	}{
		{"Metro", models.Zone1, 7150},
		{"Non-metro", models.Zone2, 6500},
		{"Empty uses default zone", "", 7150},
		{"Unknown zone has no surcharge", "Zone3", 6500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := PremiumInput{Age: 30, Coverage: models.Coverage5Lakh, Members: 1, Zone: tt.zone}
			if got := CalculatePremium(in); got != tt.want {
				t.Errorf("CalculatePremium() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestZoneFactor(t *testing.T) {
	if got := ZoneFactor("Zone7"); got != UnknownZoneFactor {
		t.Errorf("ZoneFactor(unknown) = %v, want %v", got, UnknownZoneFactor)
	}
	if got := ZoneFactor(""); got != ZoneFactor(models.DefaultZone) {
		t.Errorf("ZoneFactor(empty) = %v, want default zone factor", got)
	}
}

func TestCalculatePremium_FloatRounding(t *testing.T) {
	// 8500 × 2.5 × 2.3 × 1.1 is 53762.4999... in float64, 53762.5 in exact decimal
	in := PremiumInput{Age: 40, Coverage: models.Coverage15Lakh, Members: 4, Zone: models.Zone1}
	if got := CalculatePremium(in); got != 53762 {
		t.Errorf("expected 53762, got %d", got)
	}
}

func TestCalculatePremium_Idempotent(t *testing.T) {
	in := PremiumInput{Age: 52, Coverage: models.Coverage25Lakh, Members: 4, HasPreExisting: true, Zone: models.Zone1}
	first := Estimate(in)
	second := Estimate(in)
	if first.Annual != second.Annual || first.Monthly != second.Monthly {
		t.Error("expected identical results for identical input")
	}
	// 12000 × 3.5 × 2.3 × 1.2 × 1.1 = 127512
	if first.Annual != 127512 {
		t.Errorf("expected 127512, got %d", first.Annual)
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		coverage models.CoverageAmount
		name     string
		benefits int
	}{
		{models.Coverage3Lakh, "Essential", 3},
		{models.Coverage5Lakh, "Comprehensive", 4},
		{models.Coverage10Lakh, "Supreme", 5},
		{models.Coverage25Lakh, "Supreme Plus", 3},
		{models.Coverage1Crore, "Elite", 4},
		{models.CoverageAmount(123), "Custom", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tier := TierFor(tt.coverage)
			if tier.Name != tt.name {
				t.Errorf("expected %s, got %s", tt.name, tier.Name)
			}
			if len(tier.Benefits) != tt.benefits {
				t.Errorf("expected %d benefits, got %d", tt.benefits, len(tier.Benefits))
			}
		})
	}

	if len(Tiers) != 3 || Tiers[0].Name != "Essential" {
		t.Errorf("unexpected headline tiers: %+v", Tiers)
	}
}

func TestGetInsuranceTips(t *testing.T) {
	t.Run("Young single", func(t *testing.T) {
		tips := GetInsuranceTips(25, false, 1)
		for _, want := range []string{TipYoungAge, TipNoClaimBonus} {
			if !slices.Contains(tips, want) {
				t.Errorf("expected %q", want)
			}
		}
		for _, unwanted := range []string{TipCriticalIllness, TipFamilyFloater} {
			if slices.Contains(tips, unwanted) {
				t.Errorf("did not expect %q", unwanted)
			}
		}
	})

	t.Run("Older family with condition", func(t *testing.T) {
		tips := GetInsuranceTips(50, true, 3)
		want := []string{
			TipCriticalIllness, TipRestoration,
			TipWaitingPeriod, TipDisclosure,
			TipFamilyFloater, TipMaternity,
		}
		if !slices.Equal(tips, want) {
			t.Errorf("got %v, want %v", tips, want)
		}
	})

	t.Run("Middle age, no flags", func(t *testing.T) {
		if tips := GetInsuranceTips(38, false, 1); len(tips) != 0 {
			t.Errorf("expected no tips, got %v", tips)
		}
	})

	t.Run("Boundaries", func(t *testing.T) {
		if slices.Contains(GetInsuranceTips(30, false, 1), TipYoungAge) {
			t.Error("age 30 should not get the young age tip")
		}
		if slices.Contains(GetInsuranceTips(45, false, 1), TipCriticalIllness) {
			t.Error("age 45 should not get the critical illness tip")
		}
	})
}
