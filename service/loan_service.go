package service

import (
	"go.uber.org/zap"

	"emi-calculator/domain"
	"emi-calculator/format"
)

type LoanService struct {
	logger *zap.Logger
}

// NewLoanService creates a new LoanService logging through logger.
func NewLoanService(logger *zap.Logger) *LoanService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoanService{logger: logger}
}

// CalculateLoan clamps the inputs to the form bounds and computes the result.
// Out-of-range values are pinned rather than rejected.
func (s *LoanService) CalculateLoan(input domain.LoanInputs) domain.Quote {
	clamped := ClampInputs(input)
	if clamped != input {
		s.logger.Debug("loan inputs clamped",
			zap.Any("requested", input),
			zap.Any("applied", clamped),
		)
	}

	result := ComputeInputs(clamped)
	return domain.Quote{
		Inputs: clamped,
		Result: result,
		Panel:  format.NewPanel(clamped, result),
	}
}
