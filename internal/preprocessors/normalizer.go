package preprocessors

import (
	"strings"

	"github.com/manifestprep/manifestprep/internal/preprocessors/comments"
)

// Normalizer applies the fixed preprocessing order used before manifest
// matching: lowercase the input, then strip comments.
//
// The order matters for custom patterns: any case-sensitive part of a
// comment pattern sees lowercased text, so patterns must be authored in
// lowercase. A Normalizer is stateless and safe for concurrent use.
type Normalizer struct {
	stripper *comments.Stripper
}

// NormalizerOption configures the normalizer.
type NormalizerOption func(*Normalizer)

// WithStripper replaces the default comment stripper.
func WithStripper(s *comments.Stripper) NormalizerOption {
	return func(n *Normalizer) {
		n.stripper = s
	}
}

// NewNormalizer creates a normalizer. Without options it uses a comment
// stripper built with comments.DefaultPattern; the only error condition
// is a misconfigured custom pattern surfaced by that construction.
func NewNormalizer(opts ...NormalizerOption) (*Normalizer, error) {
	n := &Normalizer{}

	for _, opt := range opts {
		opt(n)
	}

	if n.stripper == nil {
		stripper, err := comments.New()
		if err != nil {
			return nil, err
		}
		n.stripper = stripper
	}

	return n, nil
}

// Normalize lowercases the text and then strips comments.
// It never fails and preserves the line count of its input.
func (n *Normalizer) Normalize(text string) string {
	return n.stripper.Strip(strings.ToLower(text))
}

// StripComments strips comments without changing case.
func (n *Normalizer) StripComments(text string) string {
	return n.stripper.Strip(text)
}
