package generations

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the generation record does not exist for this owner.
var ErrNotFound = errors.New("generation not found")

// ErrNoContent indicates the document yielded no usable text.
var ErrNoContent = errors.New("document has no content to process")

// ErrModelFailure indicates the model call failed and nothing was persisted.
// Only surfaced when legacy error persistence is disabled.
var ErrModelFailure = errors.New("model invocation failed")

// ParseError indicates the model returned text that is not valid JSON after
// fence stripping. Raw carries the original response for diagnostics.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("model response is not valid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
