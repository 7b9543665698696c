package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/pnote/bucket"
	"github.com/jsphweid/pnote/pnote"
	"github.com/spf13/cobra"
)

var convertOutput string

func init() {
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output file path (default: stdout)")
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert <midi-file>",
	Short: "Converts a MIDI file to PNote text",
	Long:  `Converts a MIDI file (a local path or an s3://bucket/key URL) to PNote text.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return convert(args[0], convertOutput)
	},
}

func convert(input string, output string) error {
	var p *pnote.PNote

	if bucket.IsURL(input) {
		if err := validateMidiExt(input); err != nil {
			return err
		}
		dat, err := bucket.FetchMidi(input)
		if err != nil {
			return err
		}
		p, err = pnote.FromMIDI(dat)
		if err != nil {
			return fmt.Errorf("failed to convert %v: %w", input, err)
		}
	} else {
		if err := validateMidiPath(input); err != nil {
			return err
		}
		var err error
		p, err = pnote.FromMIDI(input)
		if err != nil {
			return fmt.Errorf("failed to convert %v: %w", input, err)
		}
	}

	return writeOutput(p.String(), output)
}

func validateMidiPath(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("MIDI file not found: %v", path)
	}
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("path is not a file: %v", path)
	}
	return validateMidiExt(path)
}

func validateMidiExt(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".mid" && ext != ".midi" {
		return fmt.Errorf("invalid file extension %q, expected .mid or .midi", ext)
	}
	return nil
}

func writeOutput(text string, path string) error {
	if path == "" {
		fmt.Println(text)
		return nil
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write output file %v: %w", path, err)
	}
	return nil
}
