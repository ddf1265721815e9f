// Command emi is the terminal front end of the EMI calculator.
package main

import (
	"os"

	"emi-calculator/cmd/emi/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
