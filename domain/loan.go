package domain

type LoanInputs struct {
	Principal         float64 `json:"amount"`
	AnnualRatePercent float64 `json:"rate"`
	TenureYears       int     `json:"tenure"`
}

// LoanResult is derived from LoanInputs and never set on its own.
type LoanResult struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalInterest  float64 `json:"total_interest"`
	TotalAmount    float64 `json:"total_amount"`
}
