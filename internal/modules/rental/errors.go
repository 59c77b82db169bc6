package rental

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("rental or listing not found")
	ErrForbidden  = errors.New("actor is not a party to this rental")
	ErrConflict   = errors.New("entity is not in a state compatible with the action")
)
