// Package comments removes trailing and whole-line comments from
// manifest-like text while keeping line numbers stable.
package comments

import (
	"context"
	"fmt"
	"regexp"

	"github.com/manifestprep/manifestprep/internal/core/domain"
	"github.com/manifestprep/manifestprep/internal/core/ports/driven"
)

// DefaultPattern matches an optional run of spaces or tabs, a '#' marker,
// and everything up to the end of the line. Group 1 captures the (empty)
// text kept before the comment, group 2 captures the end-of-line anchor,
// so the line terminator itself survives the substitution.
const DefaultPattern = `()[\t ]*#.*($)`

// Ensure Stripper implements the interface.
var _ driven.Preprocessor = (*Stripper)(nil)

// Stripper deletes comments matched by a configurable pattern.
//
// The pattern is compiled in multi-line mode and must have exactly two
// capture groups: text to keep before the comment and text to keep after
// it. Each match is replaced with the concatenation of the two groups.
// A pattern whose second group captures the line anchor never consumes a
// line terminator, so the output has exactly as many lines as the input.
//
// A Stripper is immutable after construction and safe for concurrent use.
type Stripper struct {
	re      *regexp.Regexp
	pattern string
}

// Option configures the stripper.
type Option func(*Stripper)

// WithPattern sets a custom comment pattern, replacing DefaultPattern.
// The pattern must follow the same two-capture-group contract.
func WithPattern(pattern string) Option {
	return func(s *Stripper) {
		s.pattern = pattern
	}
}

// New creates a comment stripper with the given options.
//
// The pattern is validated here rather than at first use: a pattern with
// the wrong group count would still substitute, but it would substitute
// the wrong text and silently delete content that should have been kept.
// Returns *domain.ConfigurationError when the group count is not two.
func New(opts ...Option) (*Stripper, error) {
	s := &Stripper{pattern: DefaultPattern}

	for _, opt := range opts {
		opt(s)
	}

	re, err := regexp.Compile("(?m)" + s.pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling comment pattern %q: %w", s.pattern, err)
	}
	if n := re.NumSubexp(); n != 2 {
		return nil, &domain.ConfigurationError{Pattern: s.pattern, Groups: n}
	}

	s.re = re
	return s, nil
}

// Pattern returns the pattern text the stripper was built with.
func (s *Stripper) Pattern() string {
	return s.pattern
}

// Strip removes every comment from text. Text without comment markers is
// returned unchanged. Strip never fails and never changes the line count.
func (s *Stripper) Strip(text string) string {
	return s.re.ReplaceAllString(text, "${1}${2}")
}

// Name returns the stage name.
func (s *Stripper) Name() string {
	return "comments"
}

// Process implements driven.Preprocessor.
func (s *Stripper) Process(_ context.Context, text string) (string, error) {
	return s.Strip(text), nil
}
