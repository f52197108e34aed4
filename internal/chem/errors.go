package chem

import "errors"

// Domain errors for model configuration.
var (
	// ErrInvalidSFH indicates a star-formation-history tag that is neither
	// "exp" nor "linexp" (case-insensitive).
	ErrInvalidSFH = errors.New("chem: unknown star-formation history")
)
