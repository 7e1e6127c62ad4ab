package cli

import (
	"github.com/spf13/cobra"
)

var (
	normalizeWrite   bool
	normalizePattern string
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file...]",
	Short: "Lowercase manifests and strip comments",
	Long: `Applies the full preprocessing pipeline: lowercase the content, then
strip comments. Line terminators are never removed, so line numbers in
the output address the same lines as the input.

Reads from stdin when no files are given.`,
	RunE: runNormalize,
}

func init() {
	normalizeCmd.Flags().BoolVarP(&normalizeWrite, "write", "w", false, "rewrite files in place instead of printing")
	normalizeCmd.Flags().StringVar(&normalizePattern, "pattern", "", "comment pattern override (two capture groups)")
	rootCmd.AddCommand(normalizeCmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	pipeline, err := buildPipeline(normalizePattern)
	if err != nil {
		return err
	}

	return runOverInput(cmd, args, normalizeWrite, pipeline)
}
