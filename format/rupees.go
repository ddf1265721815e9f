// Package format renders calculator results for display.
package format

import (
	"strings"

	"github.com/shopspring/decimal"

	"emi-calculator/domain"
)

const rupeePrefix = "₹ "

var half = decimal.NewFromFloat(0.5)

// Rupees rounds v to whole rupees and groups the digits the Indian way:
// the last three digits, then pairs (lakh, crore). Halves round up towards
// positive infinity, so -2.5 shows as -2.
func Rupees(v float64) string {
	return rupeePrefix + GroupIndian(decimal.NewFromFloat(v).Add(half).Floor().String())
}

// GroupIndian inserts separators into an integer string.
func GroupIndian(digits string) string {
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if len(digits) <= 3 {
		return sign + digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return sign + strings.Join(groups, ",") + "," + tail
}

// NewPanel builds the four lines of the results display.
func NewPanel(in domain.LoanInputs, r domain.LoanResult) domain.Panel {
	return domain.Panel{
		MonthlyEMI:     Rupees(r.MonthlyPayment),
		TotalPrincipal: Rupees(in.Principal),
		TotalInterest:  Rupees(r.TotalInterest),
		TotalAmount:    Rupees(r.TotalAmount),
	}
}
