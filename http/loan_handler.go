package http

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"emi-calculator/domain"
	"emi-calculator/service"
)

type LoanHandler struct {
	service *service.LoanService
	logger  *zap.Logger
}

func NewLoanHandler(service *service.LoanService, logger *zap.Logger) *LoanHandler {
	return &LoanHandler{service: service, logger: logger}
}

// CalculateLoan computes a one-off quote. Missing fields fall back to the
// form defaults; out-of-range fields are clamped.
func (h *LoanHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {
	input := service.DefaultInputs()
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Debug("decode loan request", zap.Error(err))
		writeError(w, h.logger, http.StatusBadRequest, "invalid request body")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, h.service.CalculateLoan(input))
}

// Bounds lists the range and step of every input.
func (h *LoanHandler) Bounds(w http.ResponseWriter, r *http.Request) {
	out := make(map[domain.Field]domain.Bounds, len(domain.Fields))
	for _, f := range domain.Fields {
		b, _ := service.BoundsFor(f)
		out[f] = b
	}
	writeJSON(w, h.logger, http.StatusOK, out)
}
