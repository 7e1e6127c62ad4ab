package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCmd_Use(t *testing.T) {
	assert.Equal(t, "normalize [file...]", normalizeCmd.Use)
}

func TestNormalizeCmd_HasWriteFlag(t *testing.T) {
	flag := normalizeCmd.Flags().Lookup("write")
	require.NotNil(t, flag)
	assert.Equal(t, "w", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)
}

func TestNormalizeCmd_Stdin(t *testing.T) {
	out, err := runCLI(t, "FOO # Bar\n", "--config", t.TempDir(), "normalize")
	require.NoError(t, err)
	assert.Equal(t, "foo\n", out)
}

func TestNormalizeCmd_Files(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "requirements.txt")
	require.NoError(t, os.WriteFile(path, []byte("Requests==2.0 # HTTP\nFlask\n"), 0644))

	out, err := runCLI(t, "", "--config", t.TempDir(), "normalize", path)
	require.NoError(t, err)
	assert.Equal(t, "requests==2.0\nflask\n", out)
}

func TestNormalizeCmd_WriteInPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "requirements.txt")
	require.NoError(t, os.WriteFile(path, []byte("Django # orm\n"), 0644))

	out, err := runCLI(t, "", "--config", t.TempDir(), "normalize", "-w", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "django\n", string(data))
}

func TestNormalizeCmd_WriteWithoutFiles(t *testing.T) {
	_, err := runCLI(t, "ignored\n", "--config", t.TempDir(), "normalize", "-w")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires file arguments")
}

func TestNormalizeCmd_PatternOverride(t *testing.T) {
	out, err := runCLI(t, "Value ; Note\n", "--config", t.TempDir(),
		"normalize", "--pattern", `()[\t ]*;.*($)`)
	require.NoError(t, err)
	assert.Equal(t, "value\n", out)
}

func TestNormalizeCmd_BadPattern(t *testing.T) {
	_, err := runCLI(t, "x\n", "--config", t.TempDir(),
		"normalize", "--pattern", `#.*`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly two capture groups")
}

func TestNormalizeCmd_MissingFile(t *testing.T) {
	_, err := runCLI(t, "", "--config", t.TempDir(),
		"normalize", filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading")
}

func TestNormalizeCmd_ConfiguredPipeline(t *testing.T) {
	cfgDir := t.TempDir()
	cfg := `
[[processors]]
name = "comments"
options = { pattern = '()[\t ]*//.*($)' }
`
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(cfg), 0600))

	// Only the comments stage is configured, so case is preserved and
	// '//' starts a comment instead of '#'.
	out, err := runCLI(t, "Keep # Me // but not this\n", "--config", cfgDir, "normalize")
	require.NoError(t, err)
	assert.Equal(t, "Keep # Me\n", out)
}

func TestNormalizeCmd_ConfiguredPattern(t *testing.T) {
	cfgDir := t.TempDir()
	cfg := "pattern = '()[\\t ]*;.*($)'\n"
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(cfg), 0600))

	out, err := runCLI(t, "A ; note\nB # kept\n", "--config", cfgDir, "normalize")
	require.NoError(t, err)
	assert.Equal(t, "a\nb # kept\n", out)
}
