package preprocessors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manifestprep/manifestprep/internal/core/domain"
)

func TestRegistry_BuildUnknown(t *testing.T) {
	r := NewRegistry()

	stage, err := r.Build("nope", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownProcessor)
	assert.Nil(t, stage)
}

func TestRegistry_RegisterAndBuild(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	assert.True(t, r.Has("casefold"))
	assert.True(t, r.Has("comments"))
	assert.False(t, r.Has("chunker"))
	assert.ElementsMatch(t, []string{"casefold", "comments"}, r.Names())

	stage, err := r.Build("casefold", nil)
	require.NoError(t, err)
	assert.Equal(t, "casefold", stage.Name())
}

func TestRegistry_BuildComments_CustomPattern(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	stage, err := r.Build("comments", map[string]any{"pattern": `()[\t ]*;.*($)`})
	require.NoError(t, err)

	got, err := stage.Process(context.Background(), "name ; note\n")
	require.NoError(t, err)
	assert.Equal(t, "name\n", got)
}

func TestRegistry_BuildComments_BadPattern(t *testing.T) {
	r := NewRegistry()
	RegisterDefaults(r)

	stage, err := r.Build("comments", map[string]any{"pattern": `#.*`})
	require.Error(t, err)
	assert.Nil(t, stage)

	var cfgErr *domain.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestDefaultPipeline(t *testing.T) {
	p, err := DefaultPipeline()
	require.NoError(t, err)
	require.Equal(t, 2, p.Len())

	got, err := p.Run(context.Background(), "FOO # Bar\n")
	require.NoError(t, err)
	assert.Equal(t, "foo\n", got)
}
