package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurationError_Message(t *testing.T) {
	err := &ConfigurationError{Pattern: `(#.*)`, Groups: 1}

	msg := err.Error()
	assert.Contains(t, msg, "exactly two capture groups")
	assert.Contains(t, msg, "group 1 is text before the comment to keep")
	assert.Contains(t, msg, "group 2 is text after the comment to keep")
	assert.Contains(t, msg, `"(#.*)"`)
	assert.Contains(t, msg, "has 1 group(s)")
}

func TestConfigurationError_As(t *testing.T) {
	var err error = fmt.Errorf("loading config: %w", &ConfigurationError{Pattern: "#.*", Groups: 0})

	var cfgErr *ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "#.*", cfgErr.Pattern)
	assert.Equal(t, 0, cfgErr.Groups)
}
