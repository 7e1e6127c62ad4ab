// Package preprocessors provides the text preprocessing stages applied
// to manifest content before it is handed to a parser.
package preprocessors

import (
	"context"
	"fmt"

	"github.com/manifestprep/manifestprep/internal/core/ports/driven"
)

// Pipeline chains multiple Preprocessors and runs them in order.
type Pipeline struct {
	stages []driven.Preprocessor
}

// NewPipeline creates a preprocessing pipeline with the given stages.
// Stages are executed in the order provided.
func NewPipeline(stages ...driven.Preprocessor) *Pipeline {
	return &Pipeline{
		stages: stages,
	}
}

// Run passes the text through all stages in order and returns the result.
func (p *Pipeline) Run(ctx context.Context, text string) (string, error) {
	for _, stage := range p.stages {
		var err error
		text, err = stage.Process(ctx, text)
		if err != nil {
			return "", fmt.Errorf("processor %s: %w", stage.Name(), err)
		}
	}

	return text, nil
}

// Add appends a stage to the pipeline.
func (p *Pipeline) Add(stage driven.Preprocessor) {
	p.stages = append(p.stages, stage)
}

// Len returns the number of stages in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.stages)
}
