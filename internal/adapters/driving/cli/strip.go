package cli

import (
	"github.com/spf13/cobra"
)

var (
	stripWrite   bool
	stripPattern string
)

var stripCmd = &cobra.Command{
	Use:   "strip [file...]",
	Short: "Strip comments without changing case",
	Long: `Removes comments matched by the configured pattern while leaving the
rest of the content untouched, including its case.

Reads from stdin when no files are given.`,
	RunE: runStrip,
}

func init() {
	stripCmd.Flags().BoolVarP(&stripWrite, "write", "w", false, "rewrite files in place instead of printing")
	stripCmd.Flags().StringVar(&stripPattern, "pattern", "", "comment pattern override (two capture groups)")
	rootCmd.AddCommand(stripCmd)
}

func runStrip(cmd *cobra.Command, args []string) error {
	pipeline, err := buildStripPipeline(stripPattern)
	if err != nil {
		return err
	}

	return runOverInput(cmd, args, stripWrite, pipeline)
}
