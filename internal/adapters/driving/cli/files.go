package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/manifestprep/manifestprep/internal/logger"
	"github.com/manifestprep/manifestprep/internal/preprocessors"
)

// runOverInput applies the pipeline to each named file, or to stdin when
// no files are given. With write set, files are rewritten in place;
// otherwise results go to stdout in argument order.
func runOverInput(cmd *cobra.Command, args []string, write bool, pipeline *preprocessors.Pipeline) error {
	if len(args) == 0 {
		if write {
			return errors.New("--write requires file arguments")
		}
		return runOverStdin(cmd, pipeline)
	}

	ctx := cmd.Context()
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		out, err := pipeline.Run(ctx, string(data))
		if err != nil {
			return fmt.Errorf("processing %s: %w", path, err)
		}
		logger.Debug("processed %s (%d bytes in, %d bytes out)", path, len(data), len(out))

		if write {
			mode := fs.FileMode(0644)
			if info, statErr := os.Stat(path); statErr == nil {
				mode = info.Mode().Perm()
			}
			if err := os.WriteFile(path, []byte(out), mode); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			logger.Info("rewrote %s", path)
		} else {
			fmt.Fprint(cmd.OutOrStdout(), out)
		}
	}

	return nil
}

// runOverStdin applies the pipeline to everything read from stdin.
// Refuses to read from an interactive terminal.
func runOverStdin(cmd *cobra.Command, pipeline *preprocessors.Pipeline) error {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return errors.New("no input files and stdin is a terminal")
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	out, err := pipeline.Run(cmd.Context(), string(data))
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
