package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyPrompt is returned when analysis is requested for an empty or
// whitespace-only prompt. Callers surface it as a client validation error.
var ErrEmptyPrompt = errors.New("prompt must be non-empty")

// MalformedRecordError reports a record that failed schema validation
// during dataset loading. The engine never sees malformed records; the
// loader decides whether to skip-and-log or abort the load.
type MalformedRecordError struct {
	File   string
	Line   int
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("%s: line %d: %s", e.File, e.Line, e.Reason)
}
