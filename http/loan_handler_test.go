package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"emi-calculator/domain"
)

func TestCalculateLoanHandler_OK(t *testing.T) {

	router := newTestRouter(nil)

	body := []byte(`{
		"amount": 1000000,
		"rate": 6.5,
		"tenure": 5
	}`)

	req := httptest.NewRequest(
		http.MethodPost,
		"/loan/calculate",
		bytes.NewBuffer(body),
	)

	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var quote domain.Quote
	if err := json.NewDecoder(w.Body).Decode(&quote); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if quote.Panel.MonthlyEMI != "₹ 19,566" {
		t.Errorf("expected ₹ 19,566, got %s", quote.Panel.MonthlyEMI)
	}
}

func TestCalculateLoanHandler_ClampsOutOfRange(t *testing.T) {

	router := newTestRouter(nil)

	req := httptest.NewRequest(
		http.MethodPost,
		"/loan/calculate",
		bytes.NewBufferString(`{"amount": 20000000, "rate": 45, "tenure": 0}`),
	)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var quote domain.Quote
	json.NewDecoder(w.Body).Decode(&quote)
	want := domain.LoanInputs{Principal: 10_000_000, AnnualRatePercent: 30, TenureYears: 1}
	if quote.Inputs != want {
		t.Errorf("expected %+v, got %+v", want, quote.Inputs)
	}
}

func TestCalculateLoanHandler_MissingFieldsUseDefaults(t *testing.T) {

	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/loan/calculate", bytes.NewBufferString(`{"tenure": 10}`))
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	var quote domain.Quote
	json.NewDecoder(w.Body).Decode(&quote)
	want := domain.LoanInputs{Principal: 1_000_000, AnnualRatePercent: 6.5, TenureYears: 10}
	if quote.Inputs != want {
		t.Errorf("expected %+v, got %+v", want, quote.Inputs)
	}
}

func TestCalculateLoanHandler_MethodNotAllowed(t *testing.T) {

	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/loan/calculate", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestCalculateLoanHandler_BadRequest(t *testing.T) {

	router := newTestRouter(nil)

	req := httptest.NewRequest(
		http.MethodPost,
		"/loan/calculate",
		bytes.NewBuffer([]byte(`{invalid-json}`)),
	)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestBoundsHandler(t *testing.T) {

	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/loan/bounds", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var bounds map[domain.Field]domain.Bounds
	if err := json.NewDecoder(w.Body).Decode(&bounds); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if bounds[domain.FieldAmount] != (domain.Bounds{Min: 10_000, Max: 10_000_000, Step: 10_000}) {
		t.Errorf("unexpected amount bounds %+v", bounds[domain.FieldAmount])
	}
}
