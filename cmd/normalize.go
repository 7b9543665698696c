package cmd

import (
	"fmt"
	"os"

	"github.com/jsphweid/pnote/pnote"
	"github.com/spf13/cobra"
)

var normalizeOutput string

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeOutput, "output", "o", "", "output file path (default: stdout)")
	rootCmd.AddCommand(normalizeCmd)
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize <pnote-file>",
	Short: "Re-emits a PNote file in canonical order",
	Long:  `Parses a PNote file and re-emits it with events in canonical order.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return normalize(args[0], normalizeOutput)
	},
}

func normalize(input string, output string) error {
	dat, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read %v: %w", input, err)
	}
	p, err := pnote.FromString(string(dat))
	if err != nil {
		return fmt.Errorf("failed to parse %v: %w", input, err)
	}
	return writeOutput(p.String(), output)
}
