package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"fitch/horn"
)

var hornCmd = &cobra.Command{
	Use:   "horn [flags] input_file",
	Short: "Decide a Horn formula and print its minimal model.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		configure(cmd)

		input := readInput(args[0])
		if getFlag(cmd, "prolog") {
			verdict, err := horn.CheckSLD(input)
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			writeResult(cmd, verdict)
			return
		}
		writeResult(cmd, horn.Check(input))
	},
}

func init() {
	rootCmd.AddCommand(hornCmd)
	hornCmd.Flags().Bool("prolog", false, "answer by SLD resolution instead of forward chaining")
}
