package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent preprocessing failures.
// These are distinct from infrastructure errors such as file I/O.
var (
	// ErrUnknownProcessor indicates a processor name with no registered builder.
	ErrUnknownProcessor = errors.New("unknown processor")
)

// ConfigurationError reports a comment pattern that violates the
// two-capture-group contract. It is raised at construction time only;
// a malformed pattern cannot be recovered from at call time, so callers
// should treat it as a startup failure.
type ConfigurationError struct {
	// Pattern is the offending pattern text as supplied by the caller.
	Pattern string

	// Groups is the number of capture groups the compiled pattern has.
	Groups int
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf(
		"a comment pattern must have exactly two capture groups: "+
			"group 1 is text before the comment to keep, group 2 is text after the comment to keep, "+
			"so that line numbers stay accurate after preprocessing; "+
			"pattern %q has %d group(s)",
		e.Pattern, e.Groups,
	)
}
