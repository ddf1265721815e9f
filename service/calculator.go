package service

import (
	"math"

	"emi-calculator/domain"
)

// Compute derives the monthly installment and totals for a loan. It does no
// clamping or rounding; callers pass inputs already inside the form bounds.
func Compute(principal, annualRatePercent float64, tenureYears int) domain.LoanResult {
	monthlyRate := annualRatePercent / 100 / monthsPerYear
	n := float64(tenureYears * monthsPerYear)
	if n <= 0 {
		return domain.LoanResult{}
	}

	var emi float64
	if monthlyRate == 0 {
		emi = principal / n
	} else {
		growth := math.Pow(1+monthlyRate, n)
		emi = principal * monthlyRate * growth / (growth - 1)
	}

	total := emi * n
	return domain.LoanResult{
		MonthlyPayment: emi,
		TotalInterest:  total - principal,
		TotalAmount:    total,
	}
}

// ComputeInputs is Compute over a LoanInputs value.
func ComputeInputs(in domain.LoanInputs) domain.LoanResult {
	return Compute(in.Principal, in.AnnualRatePercent, in.TenureYears)
}
