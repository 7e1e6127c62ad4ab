package cli

import (
	"fmt"

	"github.com/manifestprep/manifestprep/internal/adapters/driven/config/file"
	"github.com/manifestprep/manifestprep/internal/logger"
	"github.com/manifestprep/manifestprep/internal/preprocessors"
)

// loadConfig reads the user configuration from the configured directory.
func loadConfig() (file.Config, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return file.Config{}, fmt.Errorf("loading config: %w", err)
	}
	return store.Config(), nil
}

// buildPipeline assembles the preprocessing pipeline from configuration.
// A non-empty patternOverride (from --pattern) beats the configured
// pattern; both only apply to comment stages that carry no explicit
// pattern option of their own.
func buildPipeline(patternOverride string) (*preprocessors.Pipeline, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	pattern := cfg.Pattern
	if patternOverride != "" {
		pattern = patternOverride
	}

	registry := preprocessors.NewRegistry()
	preprocessors.RegisterDefaults(registry)

	stages := cfg.Processors
	if len(stages) == 0 {
		stages = []file.StageConfig{
			{Name: "casefold"},
			{Name: "comments"},
		}
	}

	pipeline := preprocessors.NewPipeline()
	for _, stage := range stages {
		opts := stage.Options
		if stage.Name == "comments" && pattern != "" {
			opts = withDefaultPattern(opts, pattern)
		}

		built, err := registry.Build(stage.Name, opts)
		if err != nil {
			return nil, fmt.Errorf("building processor %q: %w", stage.Name, err)
		}
		pipeline.Add(built)
		logger.Debug("pipeline stage: %s", built.Name())
	}

	return pipeline, nil
}

// buildStripPipeline assembles a comment-stripping-only pipeline,
// used by the strip command.
func buildStripPipeline(patternOverride string) (*preprocessors.Pipeline, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	pattern := cfg.Pattern
	if patternOverride != "" {
		pattern = patternOverride
	}

	registry := preprocessors.NewRegistry()
	preprocessors.RegisterDefaults(registry)

	var opts map[string]any
	if pattern != "" {
		opts = map[string]any{"pattern": pattern}
	}

	stripper, err := registry.Build("comments", opts)
	if err != nil {
		return nil, fmt.Errorf("building processor %q: %w", "comments", err)
	}

	return preprocessors.NewPipeline(stripper), nil
}

// withDefaultPattern returns opts with the pattern filled in when the
// stage has no explicit pattern of its own. The original map is never
// mutated; it may be shared with the config store.
func withDefaultPattern(opts map[string]any, pattern string) map[string]any {
	if _, ok := opts["pattern"]; ok {
		return opts
	}

	merged := make(map[string]any, len(opts)+1)
	for k, v := range opts {
		merged[k] = v
	}
	merged["pattern"] = pattern
	return merged
}
