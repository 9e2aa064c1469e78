package documents

import "errors"

var (
	// ErrNotFound indicates the document does not exist or is not visible to the caller.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidInput indicates a validation failure on ingest.
	ErrInvalidInput = errors.New("invalid input")
)
