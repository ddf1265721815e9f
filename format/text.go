package format

import (
	"fmt"
	"io"
	"text/tabwriter"

	"emi-calculator/domain"
)

// WritePanel prints the results display as aligned label/value rows.
func WritePanel(w io.Writer, p domain.Panel) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"Monthly EMI", p.MonthlyEMI},
		{"Total Principal", p.TotalPrincipal},
		{"Total Interest", p.TotalInterest},
		{"Total Amount", p.TotalAmount},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return tw.Flush()
}
