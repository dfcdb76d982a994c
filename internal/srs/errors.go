package srs

import "errors"

// Sentinel errors for caller bugs. Check them with errors.Is.
var (
	ErrInvalidLevel      = errors.New("srs: level must be an integer in [1,5]")
	ErrInvalidDifficulty = errors.New("srs: unknown difficulty")
	ErrInvalidCount      = errors.New("srs: selection count must not be negative")
)
