package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"emi-calculator/domain"
	"emi-calculator/format"
	"emi-calculator/internal/logging"
	"emi-calculator/service"
)

const interactiveHelp = `Commands:
  <field> [field|slider] <value>   change an input (fields: amount, rate, tenure)
  show                             print inputs and results
  reset                            restore the defaults
  help                             print this message
  quit                             leave
`

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Adjust a loan input by input and watch the results update",
	Long: `Start a calculator form in the terminal. Each line changes one input
through its numeric field (the default) or its slider, and the results are
printed again straight away.

Example session:
  amount 2500000
  rate slider 8.4
  tenure 20`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func runInteractive(in io.Reader, out io.Writer) error {
	form := service.NewFormSession()
	form.OnChange(func(inputs domain.LoanInputs, result domain.LoanResult) {
		printForm(out, form)
	})

	printForm(out, form)
	fmt.Fprint(out, "> ")

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if done := handleLine(out, form, line); done {
			return nil
		}
		fmt.Fprint(out, "> ")
	}
	return scanner.Err()
}

// handleLine applies one command and reports whether the session is over.
func handleLine(out io.Writer, form *service.FormSession, line string) bool {
	words := strings.Fields(line)
	if len(words) == 0 {
		return false
	}

	switch words[0] {
	case "quit", "exit":
		return true
	case "help":
		fmt.Fprint(out, interactiveHelp)
		return false
	case "show":
		printForm(out, form)
		return false
	case "reset":
		form.Reset()
		return false
	}

	field, err := domain.ParseField(words[0])
	if err != nil {
		fmt.Fprintf(out, "unknown command %q, type help\n", words[0])
		return false
	}

	control := domain.ControlField
	rest := words[1:]
	if len(rest) > 0 {
		if c, err := domain.ParseControl(rest[0]); err == nil {
			control, rest = c, rest[1:]
		}
	}
	if len(rest) == 0 {
		fmt.Fprintf(out, "missing value for %s\n", field)
		return false
	}

	raw := strings.Join(rest, " ")
	changed, err := form.Apply(field, control, raw)
	if err != nil {
		logging.Logger.Error("apply input", zap.String("field", string(field)), zap.Error(err))
		fmt.Fprintf(out, "%v\n", err)
		return false
	}
	if !changed {
		fmt.Fprintf(out, "%s unchanged\n", field)
	}
	return false
}

func printForm(out io.Writer, form *service.FormSession) {
	in := form.Inputs()
	fmt.Fprintf(out, "\n%-24s %s\n", domain.FieldAmount.Label(), format.Rupees(in.Principal))
	fmt.Fprintf(out, "%-24s %s%%\n", domain.FieldRate.Label(), form.FieldText(domain.FieldRate))
	fmt.Fprintf(out, "%-24s %s yr\n\n", domain.FieldTenure.Label(), form.FieldText(domain.FieldTenure))
	_ = format.WritePanel(out, format.NewPanel(in, form.Result()))
}
