package markup

import "errors"

// Sentinel errors for markup operations.
var (
	ErrParse     = errors.New("malformed markup")
	ErrEmptyDoc  = errors.New("markup has no root element")
	ErrSerialize = errors.New("failed to serialize markup")
)
