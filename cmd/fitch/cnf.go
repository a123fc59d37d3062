package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fitch/cnf"
	"fitch/formula"
	"fitch/sat"
)

var cnfCmd = &cobra.Command{
	Use:   "cnf [flags] input_file",
	Short: "Convert a formula to conjunctive normal form.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		configure(cmd)

		input := strings.TrimSpace(readInput(args[0]))
		f, err := formula.Parse(input)
		if err != nil {
			log.Debugf("rejected formula: %v", err)
			writeResult(cmd, "Invalid Formula")
			return
		}
		if getFlag(cmd, "dimacs") {
			var sb strings.Builder
			if err := sat.Dimacs(f, &sb); err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			writeResult(cmd, strings.TrimSuffix(sb.String(), "\n"))
			return
		}
		writeResult(cmd, cnf.Render(cnf.Convert(f)))
	},
}

func init() {
	rootCmd.AddCommand(cnfCmd)
	cnfCmd.Flags().Bool("dimacs", false, "print the clauses in DIMACS format")
}
