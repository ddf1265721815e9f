package service

import (
	"math"
	"strconv"
	"strings"

	"emi-calculator/domain"
)

// FormSession is one calculator form: a single set of loan inputs exposed
// through a numeric field and a slider per input, and the result derived from
// them. Every accepted change recomputes the result before returning.
//
// A FormSession is not safe for concurrent use.
type FormSession struct {
	inputs   domain.LoanInputs
	result   domain.LoanResult
	onChange func(domain.LoanInputs, domain.LoanResult)
}

// NewFormSession returns a form at the default inputs.
func NewFormSession() *FormSession {
	return RestoreFormSession(DefaultInputs())
}

// RestoreFormSession returns a form holding in, clamped to the form bounds.
func RestoreFormSession(in domain.LoanInputs) *FormSession {
	s := &FormSession{inputs: ClampInputs(in)}
	s.recompute()
	return s
}

// OnChange registers fn to be called after every change that moves an input
// and after Reset, with the new inputs and result. It replaces any previous
// callback.
func (s *FormSession) OnChange(fn func(domain.LoanInputs, domain.LoanResult)) {
	s.onChange = fn
}

// OnInputChange applies text typed into a field's numeric entry. Text that is
// not a number is ignored and reported as unchanged.
func (s *FormSession) OnInputChange(f domain.Field, raw string) (bool, error) {
	if _, err := BoundsFor(f); err != nil {
		return false, err
	}
	v, ok := parseEntry(raw)
	if !ok {
		return false, nil
	}
	return s.set(f, v)
}

// OnSliderChange applies a slider position for f.
func (s *FormSession) OnSliderChange(f domain.Field, v float64) (bool, error) {
	if _, err := BoundsFor(f); err != nil {
		return false, err
	}
	if math.IsNaN(v) {
		return false, nil
	}
	return s.set(f, v)
}

// Apply routes a raw value to the given control of f.
func (s *FormSession) Apply(f domain.Field, c domain.Control, raw string) (bool, error) {
	switch c {
	case domain.ControlField:
		return s.OnInputChange(f, raw)
	case domain.ControlSlider:
		if _, err := BoundsFor(f); err != nil {
			return false, err
		}
		v, ok := parseEntry(raw)
		if !ok {
			return false, nil
		}
		return s.OnSliderChange(f, v)
	}
	return false, domain.ErrUnknownControl
}

// Reset puts every input back to its default.
func (s *FormSession) Reset() {
	s.inputs = DefaultInputs()
	s.recompute()
}

func (s *FormSession) Inputs() domain.LoanInputs { return s.inputs }

// Snapshot is the state a store needs to restore this form later. The result
// is left out; RestoreFormSession derives it again.
func (s *FormSession) Snapshot() domain.LoanInputs { return s.inputs }

func (s *FormSession) Result() domain.LoanResult { return s.result }

// Value is the stored value of f.
func (s *FormSession) Value(f domain.Field) float64 {
	switch f {
	case domain.FieldAmount:
		return s.inputs.Principal
	case domain.FieldRate:
		return s.inputs.AnnualRatePercent
	case domain.FieldTenure:
		return float64(s.inputs.TenureYears)
	}
	return 0
}

// FieldText is what the numeric entry for f displays.
func (s *FormSession) FieldText(f domain.Field) string {
	return strconv.FormatFloat(s.Value(f), 'f', -1, 64)
}

// SliderPosition is where the slider for f sits.
func (s *FormSession) SliderPosition(f domain.Field) float64 {
	return s.Value(f)
}

// Controls reports both presentation adapters of every field.
func (s *FormSession) Controls() map[domain.Field]domain.ControlState {
	out := make(map[domain.Field]domain.ControlState, len(domain.Fields))
	for _, f := range domain.Fields {
		out[f] = domain.ControlState{
			Field:  s.FieldText(f),
			Slider: s.SliderPosition(f),
			Bounds: fieldBounds[f],
		}
	}
	return out
}

func (s *FormSession) set(f domain.Field, v float64) (bool, error) {
	v, err := Clamp(f, v)
	if err != nil {
		return false, err
	}

	prev := s.inputs
	switch f {
	case domain.FieldAmount:
		s.inputs.Principal = v
	case domain.FieldRate:
		s.inputs.AnnualRatePercent = v
	case domain.FieldTenure:
		s.inputs.TenureYears = int(v)
	}
	if s.inputs == prev {
		return false, nil
	}
	s.recompute()
	return true, nil
}

func (s *FormSession) recompute() {
	s.result = ComputeInputs(s.inputs)
	if s.onChange != nil {
		s.onChange(s.inputs, s.result)
	}
}

// parseEntry reads a number the way a user may type it: surrounding spaces,
// a rupee sign and digit-group commas are tolerated.
func parseEntry(raw string) (float64, bool) {
	cleaned := strings.NewReplacer("₹", "", ",", "", "_", "", " ", "").Replace(raw)
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}
