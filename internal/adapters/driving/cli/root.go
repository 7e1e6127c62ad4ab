// Package cli implements the manifestprep command line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/manifestprep/manifestprep/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verboseFlag bool
	configDir   string
)

var rootCmd = &cobra.Command{
	Use:   "manifestprep",
	Short: "Prepare dependency manifests for pattern matching",
	Long: `manifestprep lowercases dependency-manifest text and strips comments
while keeping line numbers stable, so downstream matchers can report
positions against the original file.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.manifestprep)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with the given context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
