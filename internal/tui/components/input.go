package components

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const labelWidth = 16

// Input is a single-line text input.
type Input struct {
	label       string
	value       string
	placeholder string
	suffix      string
	width       int
	focused     bool
	cursorPos   int
	maxLength   int
	numeric     bool
	required    bool
	err         string
}

// NewInput creates a new input field.
func NewInput(label string) *Input {
	return &Input{
		label:     label,
		width:     20,
		maxLength: 100,
	}
}

// SetValue sets the input value.
func (i *Input) SetValue(v string) *Input {
	i.value = v
	i.cursorPos = len(v)
	return i
}

// SetPlaceholder sets the text shown while the input is empty and unfocused.
func (i *Input) SetPlaceholder(p string) *Input {
	i.placeholder = p
	return i
}

// SetSuffix sets a unit shown after the value, e.g. "kg".
func (i *Input) SetSuffix(s string) *Input {
	i.suffix = s
	return i
}

// SetWidth sets the input width.
func (i *Input) SetWidth(w int) *Input {
	i.width = w
	return i
}

// SetMaxLength sets the maximum input length.
func (i *Input) SetMaxLength(m int) *Input {
	i.maxLength = m
	return i
}

// SetNumeric restricts input to digits and a single decimal point.
func (i *Input) SetNumeric(n bool) *Input {
	i.numeric = n
	return i
}

// SetRequired marks the field as required.
func (i *Input) SetRequired(r bool) *Input {
	i.required = r
	return i
}

// SetError sets an error message shown next to the field.
func (i *Input) SetError(e string) *Input {
	i.err = e
	return i
}

// Focus sets the focus state.
func (i *Input) Focus(focused bool) {
	i.focused = focused
	if focused && i.cursorPos > len(i.value) {
		i.cursorPos = len(i.value)
	}
}

// IsFocused returns the focus state.
func (i *Input) IsFocused() bool {
	return i.focused
}

// Value returns the current value.
func (i *Input) Value() string {
	return i.value
}

// Float parses the value as a number.
func (i *Input) Float() (float64, error) {
	v := strings.TrimSpace(i.value)
	if v == "" {
		return 0, fmt.Errorf("%s is required", strings.ToLower(i.label))
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", strings.ToLower(i.label))
	}
	return f, nil
}

// Int parses the value as a whole number.
func (i *Input) Int() (int, error) {
	v := strings.TrimSpace(i.value)
	if v == "" {
		return 0, fmt.Errorf("%s is required", strings.ToLower(i.label))
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", strings.ToLower(i.label))
	}
	return n, nil
}

// HandleKey handles a key press.
func (i *Input) HandleKey(key string) {
	if !i.focused {
		return
	}

	switch key {
	case "backspace":
		if len(i.value) > 0 && i.cursorPos > 0 {
			i.value = i.value[:i.cursorPos-1] + i.value[i.cursorPos:]
			i.cursorPos--
		}
	case "delete":
		if i.cursorPos < len(i.value) {
			i.value = i.value[:i.cursorPos] + i.value[i.cursorPos+1:]
		}
	case "left":
		if i.cursorPos > 0 {
			i.cursorPos--
		}
	case "right":
		if i.cursorPos < len(i.value) {
			i.cursorPos++
		}
	case "home", "ctrl+a":
		i.cursorPos = 0
	case "end", "ctrl+e":
		i.cursorPos = len(i.value)
	case "ctrl+u":
		i.value = ""
		i.cursorPos = 0
	default:
		if len(key) == 1 && len(i.value) < i.maxLength && i.accepts(key[0]) {
			i.value = i.value[:i.cursorPos] + key + i.value[i.cursorPos:]
			i.cursorPos++
			i.err = ""
		}
	}
}

func (i *Input) accepts(c byte) bool {
	if c < ' ' || c > '~' {
		return false
	}
	if !i.numeric {
		return true
	}
	if c == '.' {
		return !strings.Contains(i.value, ".")
	}
	return c >= '0' && c <= '9'
}

// Validate checks the required flag.
func (i *Input) Validate() bool {
	if i.required && strings.TrimSpace(i.value) == "" {
		i.err = "Required"
		return false
	}
	i.err = ""
	return true
}

// Render renders the input with the default palette.
func (i *Input) Render() string {
	return i.RenderWith(DefaultPalette())
}

// RenderWith renders the input field.
func (i *Input) RenderWith(p Palette) string {
	label := i.label
	if i.required {
		label += "*"
	}
	label += ":"

	var display string
	switch {
	case i.value == "" && i.placeholder != "" && !i.focused:
		display = p.Muted.Render(i.placeholder)
	case i.focused:
		display = p.Focus.Render(i.value[:i.cursorPos] + "_" + i.value[i.cursorPos:])
	default:
		display = p.Value.Render(i.value)
	}

	shown := len(i.value)
	if i.value == "" && !i.focused {
		shown = len(i.placeholder)
	}
	if i.focused {
		shown++
	}
	if shown < i.width {
		display += strings.Repeat(" ", i.width-shown)
	}
	if i.suffix != "" {
		display += " " + p.Label.Render(i.suffix)
	}

	result := p.Label.Width(labelWidth).Render(label) + " " + display
	if i.err != "" {
		result += " " + p.Error.Render(i.err)
	}
	return result
}

// Option is one choice of a Select.
type Option struct {
	Label string
	Value string
}

// Options builds options whose labels and values are the same strings.
func Options(values ...string) []Option {
	opts := make([]Option, len(values))
	for i, v := range values {
		opts[i] = Option{Label: v, Value: v}
	}
	return opts
}

// Select cycles through a fixed list of options with left/right.
type Select struct {
	label    string
	options  []Option
	selected int
	focused  bool
}

// NewSelect creates a new select input.
func NewSelect(label string, options []Option) *Select {
	return &Select{
		label:   label,
		options: options,
	}
}

// SetSelected sets the selected index.
func (s *Select) SetSelected(idx int) *Select {
	if idx >= 0 && idx < len(s.options) {
		s.selected = idx
	}
	return s
}

// SetValue selects the option with value v. Unknown values are ignored.
func (s *Select) SetValue(v string) *Select {
	for i, o := range s.options {
		if o.Value == v {
			s.selected = i
			break
		}
	}
	return s
}

// Focus sets the focus state.
func (s *Select) Focus(focused bool) {
	s.focused = focused
}

// IsFocused returns the focus state.
func (s *Select) IsFocused() bool {
	return s.focused
}

// Value returns the selected option's value.
func (s *Select) Value() string {
	if s.selected >= 0 && s.selected < len(s.options) {
		return s.options[s.selected].Value
	}
	return ""
}

// SelectedIndex returns the selected index.
func (s *Select) SelectedIndex() int {
	return s.selected
}

// HandleKey handles a key press. Space cycles forward and wraps.
func (s *Select) HandleKey(key string) {
	if !s.focused || len(s.options) == 0 {
		return
	}

	switch key {
	case "left", "h":
		if s.selected > 0 {
			s.selected--
		}
	case "right", "l":
		if s.selected < len(s.options)-1 {
			s.selected++
		}
	case " ":
		s.selected = (s.selected + 1) % len(s.options)
	}
}

// Render renders the select with the default palette.
func (s *Select) Render() string {
	return s.RenderWith(DefaultPalette())
}

// RenderWith renders the select.
func (s *Select) RenderWith(p Palette) string {
	var b strings.Builder
	b.WriteString(p.Label.Width(labelWidth).Render(s.label + ":"))
	b.WriteString(" ")

	for i, opt := range s.options {
		if i > 0 {
			b.WriteString(" ")
		}

		switch {
		case i == s.selected && s.focused:
			b.WriteString(p.Focus.Render("[" + opt.Label + "]"))
		case i == s.selected:
			b.WriteString(p.Value.Bold(true).Render("(" + opt.Label + ")"))
		default:
			b.WriteString(p.Muted.Render(" " + opt.Label + " "))
		}
	}

	return b.String()
}

// FormField is a focusable form component.
type FormField interface {
	Focus(bool)
	IsFocused() bool
	HandleKey(string)
	RenderWith(Palette) string
}

var (
	_ FormField = (*Input)(nil)
	_ FormField = (*Select)(nil)
)

// FormAction reports what a key press did to a form.
type FormAction int

const (
	FormNone FormAction = iota
	FormSubmit
	FormCancel
)

// ErrNoFields is returned when validating an empty form.
var ErrNoFields = errors.New("form has no fields")

// Form groups fields with Tab/Shift+Tab focus, Ctrl+S submit and Esc cancel.
type Form struct {
	title      string
	fields     []FormField
	focusIndex int
	err        string
}

// NewForm creates a new form.
func NewForm(title string) *Form {
	return &Form{title: title}
}

// AddField adds a field to the form. The first field gets focus.
func (f *Form) AddField(field FormField) *Form {
	f.fields = append(f.fields, field)
	if len(f.fields) == 1 {
		field.Focus(true)
	}
	return f
}

// FocusIndex returns the index of the focused field.
func (f *Form) FocusIndex() int {
	return f.focusIndex
}

// HandleKey handles form navigation and forwards other keys to the focused field.
func (f *Form) HandleKey(key string) FormAction {
	switch key {
	case "tab", "down":
		f.nextField()
	case "shift+tab", "up":
		f.prevField()
	case "ctrl+s":
		return FormSubmit
	case "esc":
		return FormCancel
	case "enter":
		if f.focusIndex == len(f.fields)-1 {
			return FormSubmit
		}
		f.nextField()
	default:
		if f.focusIndex < len(f.fields) {
			f.fields[f.focusIndex].HandleKey(key)
		}
	}
	return FormNone
}

// Validate runs required checks on every input and reports the first failure.
func (f *Form) Validate() error {
	if len(f.fields) == 0 {
		return ErrNoFields
	}
	ok := true
	for _, field := range f.fields {
		if in, isInput := field.(*Input); isInput && !in.Validate() {
			ok = false
		}
	}
	if !ok {
		return errors.New("fill in the required fields")
	}
	return nil
}

func (f *Form) nextField() {
	if len(f.fields) == 0 {
		return
	}
	f.fields[f.focusIndex].Focus(false)
	f.focusIndex = (f.focusIndex + 1) % len(f.fields)
	f.fields[f.focusIndex].Focus(true)
}

func (f *Form) prevField() {
	if len(f.fields) == 0 {
		return
	}
	f.fields[f.focusIndex].Focus(false)
	f.focusIndex--
	if f.focusIndex < 0 {
		f.focusIndex = len(f.fields) - 1
	}
	f.fields[f.focusIndex].Focus(true)
}

// SetError sets the form-level error message. Empty clears it.
func (f *Form) SetError(err string) {
	f.err = err
}

// Error returns the form-level error message.
func (f *Form) Error() string {
	return f.err
}

// Render renders the form with the default palette.
func (f *Form) Render() string {
	return f.RenderWith(DefaultPalette())
}

// RenderWith renders the form.
func (f *Form) RenderWith(p Palette) string {
	var b strings.Builder

	b.WriteString(p.Title.Render(fmt.Sprintf("═══ %s ═══", f.title)))
	b.WriteString("\n\n")

	for _, field := range f.fields {
		b.WriteString(field.RenderWith(p))
		b.WriteString("\n")
	}

	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(p.Error.Render("Error: " + f.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(p.Help.Render("Tab:Next  Shift+Tab:Prev  ←/→:Choose  Ctrl+S:Calculate  Esc:Reset"))

	return b.String()
}
