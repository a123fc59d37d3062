package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fitch/formula"
)

var wffCmd = &cobra.Command{
	Use:   "wff [flags] input_file",
	Short: "Check that a formula is well formed and print its syntax tree.",
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
		writeResult(cmd, "Valid Formula\n"+formula.TreeString(f))
	},
}

func init() {
	rootCmd.AddCommand(wffCmd)
}
