package preprocessors

import (
	"fmt"

	"github.com/manifestprep/manifestprep/internal/core/domain"
	"github.com/manifestprep/manifestprep/internal/core/ports/driven"
)

// BuilderFunc creates a Preprocessor from generic config.
// Config is a map of stage-specific settings parsed from user config.
type BuilderFunc func(cfg map[string]any) (driven.Preprocessor, error)

// Registry maps stage names to their builders.
// It allows dynamic construction of pipelines from configuration.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new stage registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a stage builder to the registry.
// Name should be unique and match the stage's Name() return value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates a stage by name with the given config.
// Returns an error wrapping domain.ErrUnknownProcessor if the name is
// not registered.
func (r *Registry) Build(name string, cfg map[string]any) (driven.Preprocessor, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownProcessor, name)
	}
	return builder(cfg)
}

// Has returns true if a stage with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered stage names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	return names
}
