package cmd

import (
	"github.com/spf13/cobra"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "pnote",
	Short:   "Convert MIDI files to PNote notation",
	Long:    `Converts binary MIDI files into the line-oriented PNote text notation and back into canonical form.`,
	Version: Version,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
