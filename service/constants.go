package service

import "emi-calculator/domain"

const (
	MinLoanAmount  = 10_000.0
	MaxLoanAmount  = 10_000_000.0 // 1 crore
	LoanAmountStep = 10_000.0

	MinInterestRate  = 1.0
	MaxInterestRate  = 30.0
	InterestRateStep = 0.1

	MinTenureYears = 1
	MaxTenureYears = 30

	DefaultLoanAmount   = 1_000_000.0 // 10 lakh
	DefaultInterestRate = 6.5
	DefaultTenureYears  = 5

	monthsPerYear = 12
)

var fieldBounds = map[domain.Field]domain.Bounds{
	domain.FieldAmount: {Min: MinLoanAmount, Max: MaxLoanAmount, Step: LoanAmountStep},
	domain.FieldRate:   {Min: MinInterestRate, Max: MaxInterestRate, Step: InterestRateStep},
	domain.FieldTenure: {Min: MinTenureYears, Max: MaxTenureYears, Step: 1},
}

// BoundsFor returns the range shared by a field's numeric entry and slider.
func BoundsFor(f domain.Field) (domain.Bounds, error) {
	b, ok := fieldBounds[f]
	if !ok {
		return domain.Bounds{}, domain.ErrUnknownField
	}
	return b, nil
}

func DefaultInputs() domain.LoanInputs {
	return domain.LoanInputs{
		Principal:         DefaultLoanAmount,
		AnnualRatePercent: DefaultInterestRate,
		TenureYears:       DefaultTenureYears,
	}
}
