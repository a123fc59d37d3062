package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fitch/proof"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [flags] input_file",
	Short: "Check a Fitch-style natural deduction proof.",
	Long: `Check a Fitch-style natural deduction proof. Each proof line carries a
number, a formula and a justification, separated by two or more spaces;
BeginScope and EndScope lines delimit assumption boxes. With --verbose every
rejected line is traced.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		configure(cmd)
		writeResult(cmd, proof.Verify(readInput(args[0])))
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
