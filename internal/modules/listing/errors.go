package listing

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrInvalidRange = errors.New("range minimum exceeds maximum")
	ErrNotFound     = errors.New("listing not found")
	ErrForbidden    = errors.New("actor does not own this listing")
	ErrConflict     = errors.New("listing is not in a state compatible with the action")
)
