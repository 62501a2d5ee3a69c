package girocode

import "errors"

// Rejection causes carried by GenerationError.
var (
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrUnsupportedCharacter = errors.New("character not representable in selected character set")
	ErrPayloadEmpty         = errors.New("payload is empty")
	ErrPayloadTooLarge      = errors.New("payload exceeds maximum size")
)

// GenerationError is the only error returned to callers of code generation.
// The underlying cause stays reachable through errors.Is and errors.As.
type GenerationError struct {
	Cause error
}

// Error prefixes the cause with a fixed marker.
func (e *GenerationError) Error() string {
	return "girocode generation failed: " + e.Cause.Error()
}

// Unwrap returns the cause.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}
