package premium

import (
	"strings"
	"testing"

	"github.com/vedaai/veda/internal/config"
	"github.com/vedaai/veda/internal/models"
	"github.com/vedaai/veda/internal/services/premium"
	"github.com/vedaai/veda/internal/tui/components"
)

func newView() *PremiumView {
	return NewPremiumView(components.DefaultPalette(), config.Default().Insurance)
}

func TestPremiumView_Input(t *testing.T) {
	v := newView()

	v.HandleKey("3")
	v.HandleKey("5")
	v.HandleKey("tab") // coverage
	v.HandleKey("tab") // members
	v.HandleKey("ctrl+u")
	v.HandleKey("2")

	in, err := v.Input()
	if err != nil {
		t.Fatalf("Input: %v", err)
	}

	want := premium.PremiumInput{
		Age:      35,
		Coverage: models.Coverage5Lakh,
		Members:  2,
		Zone:     models.Zone1,
	}
	if in != want {
		t.Errorf("Input() = %+v, want %+v", in, want)
	}
}

func TestPremiumView_Selects(t *testing.T) {
	v := newView()
	v.HandleKey("4")
	v.HandleKey("0")

	v.HandleKey("tab")
	v.HandleKey("right") // 10 Lakh
	v.HandleKey("tab")
	v.HandleKey("tab")
	v.HandleKey(" ") // Yes
	v.HandleKey("tab")
	v.HandleKey("right") // Zone2

	in, err := v.Input()
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	if in.Coverage != models.Coverage10Lakh || !in.HasPreExisting || in.Zone != models.Zone2 {
		t.Errorf("unexpected input %+v", in)
	}
}

func TestPremiumView_RequiresAge(t *testing.T) {
	v := newView()
	if _, err := v.Input(); err == nil {
		t.Fatal("expected error without age")
	}
	if !strings.Contains(v.Render(120), "fill in the required fields") {
		t.Error("expected form error in render")
	}
}

func TestPremiumView_RenderQuote(t *testing.T) {
	v := newView()

	in := premium.PremiumInput{Age: 35, Coverage: models.Coverage5Lakh, Members: 2, Zone: models.Zone1}
	result := premium.Estimate(in)
	v.SetReport(&premium.QuoteReport{Result: result, Tips: premium.GetInsuranceTips(35, false, 2)})

	out := v.Render(160)
	for _, want := range []string{"₹10,725", "₹894", "₹858", "COMPREHENSIVE PLAN", "26-35", "Family Floater"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in quote, got:\n%s", want, out)
		}
	}

	v.Reset()
	if v.Report() != nil {
		t.Error("Reset should clear the quote")
	}
}

func TestPremiumView_Glossary(t *testing.T) {
	v := newView()
	if strings.Contains(v.Render(120), "Cashless Treatment") {
		t.Fatal("glossary should be hidden by default")
	}
	v.HandleKey("?")
	if !strings.Contains(v.Render(120), "Cashless Treatment") {
		t.Error("expected glossary after ?")
	}
}

func TestRupees(t *testing.T) {
	tests := map[int]string{0: "₹0", 894: "₹894", 10725: "₹10,725", 1250000: "₹1,250,000"}
	for n, want := range tests {
		if got := Rupees(n); got != want {
			t.Errorf("Rupees(%d) = %q, want %q", n, got, want)
		}
	}
}
