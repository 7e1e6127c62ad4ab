package preprocessors

import (
	"github.com/manifestprep/manifestprep/internal/core/ports/driven"
	"github.com/manifestprep/manifestprep/internal/preprocessors/casefold"
	"github.com/manifestprep/manifestprep/internal/preprocessors/comments"
)

// RegisterDefaults registers all built-in stages with the registry.
// Call this during application initialisation to enable standard stages.
func RegisterDefaults(r *Registry) {
	r.Register("casefold", buildCasefold)
	r.Register("comments", buildComments)
}

// DefaultPipeline returns the standard manifest preprocessing chain:
// casefold, then comment stripping with the default '#' pattern.
func DefaultPipeline() (*Pipeline, error) {
	stripper, err := comments.New()
	if err != nil {
		return nil, err
	}
	return NewPipeline(casefold.New(), stripper), nil
}

func buildCasefold(_ map[string]any) (driven.Preprocessor, error) {
	return casefold.New(), nil
}

// buildComments creates a comment stripper from generic config.
// Supported config keys:
//   - pattern (string): Comment pattern with two capture groups
//     (default: comments.DefaultPattern)
func buildComments(cfg map[string]any) (driven.Preprocessor, error) {
	var opts []comments.Option

	if cfg != nil {
		if pattern := getStringFromConfig(cfg, "pattern"); pattern != "" {
			opts = append(opts, comments.WithPattern(pattern))
		}
	}

	return comments.New(opts...)
}

// getStringFromConfig safely extracts a string from generic config map.
func getStringFromConfig(cfg map[string]any, key string) string {
	val, ok := cfg[key]
	if !ok {
		return ""
	}

	str, ok := val.(string)
	if !ok {
		return ""
	}
	return str
}
