package integrating

import "errors"

var (
	ErrUnknownIntegration = errors.New("unknown integration type")
	ErrTokenRequired      = errors.New("integration token is required")
)
