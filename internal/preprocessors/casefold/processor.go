// Package casefold lowercases text as a preprocessing stage.
package casefold

import (
	"context"
	"strings"

	"github.com/manifestprep/manifestprep/internal/core/ports/driven"
)

// Ensure Processor implements the interface.
var _ driven.Preprocessor = (*Processor)(nil)

// Processor lowercases its input. Downstream manifest matching is
// case-insensitive, so folding case up front lets patterns be authored
// in lowercase only.
type Processor struct{}

// New creates a new casefold processor.
func New() *Processor {
	return &Processor{}
}

// Name returns the stage name.
func (p *Processor) Name() string {
	return "casefold"
}

// Process lowercases the text. Lowercasing maps characters one-for-one
// and never touches line terminators, so line numbers stay stable.
func (p *Processor) Process(_ context.Context, text string) (string, error) {
	return strings.ToLower(text), nil
}
