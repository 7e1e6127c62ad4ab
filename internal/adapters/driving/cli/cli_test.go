package cli

import (
	"bytes"
	"strings"
	"testing"
)

// runCLI executes the root command in-process with the given stdin and
// arguments, returning combined stdout/stderr output.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags()
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags clears package-level flag state that would otherwise leak
// between in-process executions.
func resetFlags() {
	verboseFlag = false
	configDir = ""
	normalizeWrite = false
	normalizePattern = ""
	stripWrite = false
	stripPattern = ""
	watchOutput = ""
	watchPattern = ""
}
