package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fitch/proof"
)

var applyCmd = &cobra.Command{
	Use:   "apply [flags] input_file",
	Short: "Apply a single deduction rule to given formulas.",
	Long: `Apply a single deduction rule to given formulas. The input file lists
numbered formula lines followed by one rule clause, for example:

    1    p
    2    p → q
    →e, 2, 1`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		configure(cmd)
		writeResult(cmd, proof.ApplyText(readInput(args[0])))
	},
}

func init() {
	rootCmd.AddCommand(applyCmd)
}
