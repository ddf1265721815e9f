package service

import (
	"errors"
	"strconv"
	"testing"

	"emi-calculator/domain"
)

func TestNewFormSession_Defaults(t *testing.T) {

	form := NewFormSession()

	if form.Inputs() != DefaultInputs() {
		t.Fatalf("expected defaults, got %+v", form.Inputs())
	}
	if form.Result() != Compute(1_000_000, 6.5, 5) {
		t.Errorf("expected result computed at startup, got %+v", form.Result())
	}
}

func TestOnInputChange_ClampsAmount(t *testing.T) {

	form := NewFormSession()

	changed, err := form.OnInputChange(domain.FieldAmount, "20000000")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !changed {
		t.Errorf("expected change")
	}
	if form.Inputs().Principal != MaxLoanAmount {
		t.Errorf("expected %.0f, got %.0f", MaxLoanAmount, form.Inputs().Principal)
	}
}

func TestOnInputChange_RecomputesImmediately(t *testing.T) {

	form := NewFormSession()
	before := form.Result()

	if _, err := form.OnInputChange(domain.FieldRate, "9.5"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := Compute(1_000_000, 9.5, 5)
	if form.Result() != want {
		t.Errorf("expected %+v, got %+v", want, form.Result())
	}
	if form.Result() == before {
		t.Errorf("expected result to move with the rate")
	}
}

func TestOnInputChange_IgnoresNonNumeric(t *testing.T) {

	form := NewFormSession()
	before := form.Inputs()

	for _, raw := range []string{"", "abc", "12..5", "NaN"} {
		changed, err := form.OnInputChange(domain.FieldAmount, raw)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", raw, err)
		}
		if changed {
			t.Errorf("%q: expected no change", raw)
		}
	}

	if form.Inputs() != before {
		t.Errorf("expected inputs untouched, got %+v", form.Inputs())
	}
}

func TestOnInputChange_AcceptsGroupedDigits(t *testing.T) {

	form := NewFormSession()

	if _, err := form.OnInputChange(domain.FieldAmount, "₹ 25,00,000"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if form.Inputs().Principal != 2_500_000 {
		t.Errorf("expected 2500000, got %.0f", form.Inputs().Principal)
	}
}

func TestOnInputChange_UnknownField(t *testing.T) {

	form := NewFormSession()

	_, err := form.OnInputChange(domain.Field("term"), "5")

	if !errors.Is(err, domain.ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}

func TestControlsStayInSync(t *testing.T) {

	form := NewFormSession()

	steps := []struct {
		field   domain.Field
		control domain.Control
		raw     string
	}{
		{domain.FieldAmount, domain.ControlSlider, "3450000"},
		{domain.FieldAmount, domain.ControlField, "12345678"},
		{domain.FieldRate, domain.ControlField, "7.33"},
		{domain.FieldRate, domain.ControlSlider, "0.4"},
		{domain.FieldTenure, domain.ControlSlider, "12.6"},
		{domain.FieldTenure, domain.ControlField, "31"},
	}

	for _, s := range steps {
		if _, err := form.Apply(s.field, s.control, s.raw); err != nil {
			t.Fatalf("%+v: unexpected error: %v", s, err)
		}
		for _, f := range domain.Fields {
			text, err := strconv.ParseFloat(form.FieldText(f), 64)
			if err != nil {
				t.Fatalf("field text %q does not parse: %v", form.FieldText(f), err)
			}
			if text != form.SliderPosition(f) {
				t.Errorf("after %+v: %s field %v != slider %v", s, f, text, form.SliderPosition(f))
			}
		}
		if form.Result() != ComputeInputs(form.Inputs()) {
			t.Errorf("after %+v: stale result", s)
		}
	}

	want := domain.LoanInputs{Principal: 10_000_000, AnnualRatePercent: 1, TenureYears: 30}
	if form.Inputs() != want {
		t.Errorf("expected %+v, got %+v", want, form.Inputs())
	}
}

func TestApply_UnknownControl(t *testing.T) {

	form := NewFormSession()

	_, err := form.Apply(domain.FieldRate, domain.Control("knob"), "7")

	if !errors.Is(err, domain.ErrUnknownControl) {
		t.Errorf("expected ErrUnknownControl, got %v", err)
	}
}

func TestOnChange_CalledOnlyWhenInputsMove(t *testing.T) {

	form := NewFormSession()
	calls := 0
	var last domain.LoanResult
	form.OnChange(func(in domain.LoanInputs, r domain.LoanResult) {
		calls++
		last = r
	})

	form.OnSliderChange(domain.FieldTenure, 10)
	form.OnSliderChange(domain.FieldTenure, 10)
	form.OnInputChange(domain.FieldTenure, "ten")

	if calls != 1 {
		t.Fatalf("expected 1 callback, got %d", calls)
	}
	if last != form.Result() {
		t.Errorf("callback saw %+v, form holds %+v", last, form.Result())
	}

	form.Reset()
	if calls != 2 {
		t.Errorf("expected reset to notify, got %d calls", calls)
	}
}

func TestReset(t *testing.T) {

	form := RestoreFormSession(domain.LoanInputs{Principal: 5_000_000, AnnualRatePercent: 11, TenureYears: 15})

	form.Reset()

	if form.Inputs() != DefaultInputs() {
		t.Errorf("expected defaults, got %+v", form.Inputs())
	}
	if form.Result() != ComputeInputs(DefaultInputs()) {
		t.Errorf("expected default result")
	}
}

func TestRestoreFormSession_Clamps(t *testing.T) {

	form := RestoreFormSession(domain.LoanInputs{Principal: 1, AnnualRatePercent: 99, TenureYears: 99})

	want := domain.LoanInputs{Principal: MinLoanAmount, AnnualRatePercent: MaxInterestRate, TenureYears: MaxTenureYears}
	if form.Inputs() != want {
		t.Errorf("expected %+v, got %+v", want, form.Inputs())
	}
}

func TestSnapshot_RestoresSameForm(t *testing.T) {

	form := NewFormSession()
	form.OnInputChange(domain.FieldAmount, "2,500,000")
	form.OnSliderChange(domain.FieldRate, 8.4)
	form.OnInputChange(domain.FieldTenure, "20")

	snap := form.Snapshot()
	restored := RestoreFormSession(snap)

	want := domain.LoanInputs{Principal: 2_500_000, AnnualRatePercent: 8.4, TenureYears: 20}
	if snap != want {
		t.Errorf("expected snapshot %+v, got %+v", want, snap)
	}
	if restored.Inputs() != form.Inputs() || restored.Result() != form.Result() {
		t.Errorf("restored form differs: %+v / %+v", restored.Inputs(), restored.Result())
	}
}
