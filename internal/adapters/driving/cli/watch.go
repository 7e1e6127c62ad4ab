package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/manifestprep/manifestprep/internal/logger"
)

var (
	watchOutput  string
	watchPattern string
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-normalize a manifest whenever it changes",
	Long: `Normalizes the file once, writes the result to --output, and then
keeps watching the file, rewriting the output on every change.
Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "output file (required)")
	watchCmd.Flags().StringVar(&watchPattern, "pattern", "", "comment pattern override (two capture groups)")
	_ = watchCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	target, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	pipeline, err := buildPipeline(watchPattern)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	process := func() error {
		data, err := os.ReadFile(target)
		if err != nil {
			return fmt.Errorf("reading %s: %w", target, err)
		}
		out, err := pipeline.Run(ctx, string(data))
		if err != nil {
			return err
		}
		if err := os.WriteFile(watchOutput, []byte(out), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", watchOutput, err)
		}
		logger.Info("wrote %s", watchOutput)
		return nil
	}

	if err := process(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors often replace files on
	// save, which would drop a direct file watch.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	cmd.Printf("watching %s\n", args[0])
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			logger.Debug("change detected: %s", event.Op)
			if err := process(); err != nil {
				logger.Warn("%v", err)
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", watchErr)
		}
	}
}
