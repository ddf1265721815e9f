package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"emi-calculator/domain"
	"emi-calculator/format"
	"emi-calculator/internal/logging"
	"emi-calculator/service"
)

var (
	calcAmount float64
	calcRate   float64
	calcTenure int
	calcFormat string
)

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute the EMI for one loan",
	Long: `Compute the monthly installment, total interest and total amount.

Values outside the form range are clamped to the nearest bound.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		input := domain.LoanInputs{
			Principal:         calcAmount,
			AnnualRatePercent: calcRate,
			TenureYears:       calcTenure,
		}
		quote := service.NewLoanService(logging.Logger).CalculateLoan(input)
		return writeQuote(cmd.OutOrStdout(), quote, calcFormat)
	},
}

func init() {
	calcCmd.Flags().Float64VarP(&calcAmount, "amount", "a", service.DefaultLoanAmount, "loan amount")
	calcCmd.Flags().Float64VarP(&calcRate, "rate", "r", service.DefaultInterestRate, "annual interest rate in percent")
	calcCmd.Flags().IntVarP(&calcTenure, "tenure", "t", service.DefaultTenureYears, "tenure in years")
	calcCmd.Flags().StringVarP(&calcFormat, "format", "f", "text", "output format (text, json)")
}

func writeQuote(w io.Writer, q domain.Quote, outputFormat string) error {
	switch outputFormat {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(q)
	case "text", "":
		fmt.Fprintf(w, "Loan amount %s at %.1f%% p.a. for %d years\n\n",
			format.Rupees(q.Inputs.Principal), q.Inputs.AnnualRatePercent, q.Inputs.TenureYears)
		return format.WritePanel(w, q.Panel)
	}
	return fmt.Errorf("unsupported format %q", outputFormat)
}
