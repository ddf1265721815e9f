package service

import (
	"math"

	"github.com/shopspring/decimal"

	"emi-calculator/domain"
)

// Clamp pins v to the field's range and snaps it to the step grid anchored at
// the minimum, the way a range slider settles.
func Clamp(f domain.Field, v float64) (float64, error) {
	b, err := BoundsFor(f)
	if err != nil {
		return 0, err
	}
	return clampTo(b, v), nil
}

func clampTo(b domain.Bounds, v float64) float64 {
	if math.IsNaN(v) || v < b.Min {
		return b.Min
	}
	if v > b.Max {
		return b.Max
	}

	// decimal keeps 0.1 steps from drifting into 6.499999999
	lo := decimal.NewFromFloat(b.Min)
	step := decimal.NewFromFloat(b.Step)
	snapped := decimal.NewFromFloat(v).Sub(lo).Div(step).Round(0).Mul(step).Add(lo)

	out := snapped.InexactFloat64()
	if out > b.Max {
		out = b.Max
	}
	return out
}

// ClampInputs brings every field of in inside its bounds.
func ClampInputs(in domain.LoanInputs) domain.LoanInputs {
	return domain.LoanInputs{
		Principal:         clampTo(fieldBounds[domain.FieldAmount], in.Principal),
		AnnualRatePercent: clampTo(fieldBounds[domain.FieldRate], in.AnnualRatePercent),
		TenureYears:       int(clampTo(fieldBounds[domain.FieldTenure], float64(in.TenureYears))),
	}
}
