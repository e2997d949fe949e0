package models

import "errors"

// Save failures. Handlers match these with errors.Is; everything below the
// handler layer wraps them with context via fmt.Errorf("%w: ...").
var (
	ErrValidation        = errors.New("validation failed")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidTime       = errors.New("invalid time")
	ErrTimeOutOfRange    = errors.New("time out of range")
	ErrDuplicateSlug     = errors.New("duplicate slug")
	ErrDanglingReference = errors.New("dangling event reference")
	ErrStoreUnavailable  = errors.New("store unavailable")
	ErrNotFound          = errors.New("not found")
)
