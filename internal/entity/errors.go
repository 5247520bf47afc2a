package entity

import "errors"

// Sentinel errors for the catalog. Usecases wrap these with context via
// fmt.Errorf("%w: ..."); the HTTP layer maps them to status codes.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("not authenticated")
	ErrForbidden    = errors.New("access denied")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
)
