package components

import (
	"strings"
	"testing"
)

func TestInput_RequiredValidation(t *testing.T) {
	input := NewInput("Weight").SetRequired(true)

	if input.Validate() {
		t.Error("Expected validation to fail for empty required field")
	}

	input.SetValue("70")
	if !input.Validate() {
		t.Error("Expected validation to pass with value set")
	}

	input.SetValue("   ")
	if input.Validate() {
		t.Error("Expected validation to fail for whitespace-only required field")
	}
}

func TestInput_HandleKey(t *testing.T) {
	input := NewInput("Name")
	input.Focus(true)

	for _, k := range []string{"R", "o", "t", "i"} {
		input.HandleKey(k)
	}
	if input.Value() != "Roti" {
		t.Fatalf("Expected 'Roti', got %q", input.Value())
	}

	input.HandleKey("left")
	input.HandleKey("backspace")
	if input.Value() != "Roi" {
		t.Errorf("Expected 'Roi', got %q", input.Value())
	}

	input.HandleKey("home")
	input.HandleKey("delete")
	if input.Value() != "oi" {
		t.Errorf("Expected 'oi', got %q", input.Value())
	}

	input.HandleKey("ctrl+u")
	if input.Value() != "" {
		t.Errorf("Expected cleared value, got %q", input.Value())
	}
}

func TestInput_HandleKey_NotFocused(t *testing.T) {
	input := NewInput("Name")
	input.HandleKey("A")

	if input.Value() != "" {
		t.Errorf("Unfocused input should ignore keys, got %q", input.Value())
	}
}

func TestInput_Numeric(t *testing.T) {
	input := NewInput("Weight").SetNumeric(true)
	input.Focus(true)

	for _, k := range []string{"7", "a", "2", ".", "5", ".", "-"} {
		input.HandleKey(k)
	}

	if input.Value() != "72.5" {
		t.Fatalf("Expected '72.5', got %q", input.Value())
	}

	f, err := input.Float()
	if err != nil || f != 72.5 {
		t.Errorf("Float() = %v, %v", f, err)
	}
	if _, err := input.Int(); err == nil {
		t.Error("Expected Int() to reject a decimal")
	}
}

func TestInput_ParseErrors(t *testing.T) {
	input := NewInput("Age")

	if _, err := input.Int(); err == nil || !strings.Contains(err.Error(), "age is required") {
		t.Errorf("expected required error, got %v", err)
	}

	input.SetValue("abc")
	if _, err := input.Float(); err == nil || !strings.Contains(err.Error(), "must be a number") {
		t.Errorf("expected number error, got %v", err)
	}
}

func TestInput_Render(t *testing.T) {
	input := NewInput("Height").SetRequired(true).SetSuffix("cm").SetPlaceholder("170")

	out := input.Render()
	for _, want := range []string{"Height*:", "170", "cm"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}

	input.Focus(true)
	input.SetValue("16")
	if out := input.Render(); !strings.Contains(out, "16_") {
		t.Errorf("expected cursor in %q", out)
	}

	input.SetError("Required")
	if out := input.Render(); !strings.Contains(out, "Required") {
		t.Errorf("expected error in %q", out)
	}
}

func TestSelect(t *testing.T) {
	sel := NewSelect("Gender", []Option{{Label: "Male", Value: "male"}, {Label: "Female", Value: "female"}})

	if sel.Value() != "male" {
		t.Errorf("Expected first option selected, got %q", sel.Value())
	}

	sel.HandleKey("right")
	if sel.Value() != "male" {
		t.Error("Unfocused select should ignore keys")
	}

	sel.Focus(true)
	sel.HandleKey("right")
	sel.HandleKey("right")
	if sel.Value() != "female" {
		t.Errorf("Expected clamp at last option, got %q", sel.Value())
	}

	sel.HandleKey(" ")
	if sel.Value() != "male" {
		t.Errorf("Expected space to wrap around, got %q", sel.Value())
	}

	sel.SetValue("female")
	if sel.SelectedIndex() != 1 {
		t.Errorf("Expected index 1, got %d", sel.SelectedIndex())
	}
	sel.SetValue("other")
	if sel.SelectedIndex() != 1 {
		t.Error("Unknown value should leave the selection unchanged")
	}

	sel.SetSelected(9)
	if sel.SelectedIndex() != 1 {
		t.Error("Out-of-range index should be ignored")
	}

	if out := sel.Render(); !strings.Contains(out, "[Female]") {
		t.Errorf("expected focused selection marker in %q", out)
	}
}

func TestOptions(t *testing.T) {
	opts := Options("Zone1", "Zone2")
	if len(opts) != 2 || opts[1].Label != "Zone2" || opts[1].Value != "Zone2" {
		t.Errorf("unexpected options %+v", opts)
	}
}

func TestForm(t *testing.T) {
	weight := NewInput("Weight").SetRequired(true).SetNumeric(true)
	height := NewInput("Height").SetRequired(true).SetNumeric(true)
	goal := NewSelect("Goal", Options("lose", "maintain", "gain"))

	form := NewForm("HEALTH METRICS").AddField(weight).AddField(height).AddField(goal)

	if !weight.IsFocused() {
		t.Fatal("first field should have focus")
	}

	form.HandleKey("7")
	form.HandleKey("0")
	if got := form.HandleKey("tab"); got != FormNone {
		t.Errorf("tab returned %v", got)
	}
	if !height.IsFocused() || weight.IsFocused() {
		t.Error("tab should move focus to the second field")
	}

	form.HandleKey("shift+tab")
	form.HandleKey("shift+tab")
	if form.FocusIndex() != 2 {
		t.Errorf("shift+tab should wrap to the last field, got %d", form.FocusIndex())
	}

	if err := form.Validate(); err == nil {
		t.Error("expected missing height to fail validation")
	}

	if got := form.HandleKey("enter"); got != FormSubmit {
		t.Errorf("enter on last field should submit, got %v", got)
	}
	if got := form.HandleKey("ctrl+s"); got != FormSubmit {
		t.Errorf("ctrl+s should submit, got %v", got)
	}
	if got := form.HandleKey("esc"); got != FormCancel {
		t.Errorf("esc should cancel, got %v", got)
	}
	if weight.Value() != "70" {
		t.Errorf("typed keys should reach the focused field, got %q", weight.Value())
	}
}

func TestForm_Render(t *testing.T) {
	form := NewForm("PREMIUM").AddField(NewInput("Age"))
	form.SetError("age must be between 1 and 120")

	out := form.Render()
	for _, want := range []string{"PREMIUM", "Age:", "Error: age must be between 1 and 120", "Ctrl+S"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output", want)
		}
	}

	if err := NewForm("empty").Validate(); err != ErrNoFields {
		t.Errorf("expected ErrNoFields, got %v", err)
	}
}
