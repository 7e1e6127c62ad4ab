// Package driven defines the interfaces that core calls OUT to
// preprocessing implementations.
//
// Core code and the CLI depend on these interfaces; the packages under
// internal/preprocessors implement them.
//
// Import rules:
//   - Can import: domain package only
//   - Cannot import: any preprocessor or adapter package
package driven

import "context"

// Preprocessor is a single text transformation stage.
// Implementations are stateless after construction and safe for
// concurrent use; Process must not retain or mutate its input.
type Preprocessor interface {
	// Name returns the stage name for logging and configuration.
	Name() string

	// Process transforms the text and returns the result.
	// Line terminators in the output must match the input one-for-one,
	// so that line numbers reported against the processed text remain
	// valid against the original.
	Process(ctx context.Context, text string) (string, error)
}
