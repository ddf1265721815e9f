package domain

// ControlState is what the numeric entry and the slider of one field show.
type ControlState struct {
	Field  string  `json:"field"`
	Slider float64 `json:"slider"`
	Bounds Bounds  `json:"bounds"`
}

// Panel is the read-only results display, already formatted.
type Panel struct {
	MonthlyEMI     string `json:"monthly_emi"`
	TotalPrincipal string `json:"total_principal"`
	TotalInterest  string `json:"total_interest"`
	TotalAmount    string `json:"total_amount"`
}

type Quote struct {
	Inputs LoanInputs `json:"inputs"`
	Result LoanResult `json:"result"`
	Panel  Panel      `json:"panel"`
}

type SessionView struct {
	ID       string                 `json:"id"`
	Inputs   LoanInputs             `json:"inputs"`
	Controls map[Field]ControlState `json:"controls"`
	Result   LoanResult             `json:"result"`
	Panel    Panel                  `json:"panel"`
}
