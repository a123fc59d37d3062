package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fitch",
	Short: "A toolbox for propositional logic and Fitch-style natural deduction.",
	Long: `A toolbox for propositional logic: well-formedness checking, conversion to
conjunctive normal form, Horn satisfiability, single rule application and
Fitch-style proof verification. Every subcommand reads one input file and
prints its verdict.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().StringP("output", "o", "", "write the result to a file instead of stdout")
}

// getFlag reads an expected flag, or exits if it was never defined.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return r
}

// configure applies the persistent flags shared by every subcommand.
func configure(cmd *cobra.Command) {
	if getFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
}

func readInput(filename string) string {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	return string(bytes)
}

// writeResult prints the result, or writes it to the --output file.
func writeResult(cmd *cobra.Command, result string) {
	output := getString(cmd, "output")
	if output == "" {
		fmt.Println(result)
		return
	}
	if err := os.WriteFile(output, []byte(result+"\n"), 0o644); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}
