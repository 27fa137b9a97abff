package services

import "errors"

// Failure taxonomy shared by the domain services. Handlers translate these
// into client-error responses; anything else becomes a generic 500.
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidArgument = errors.New("invalid argument")
)
