package apperrors

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid session transition")
	ErrEmptyTranscript   = errors.New("transcript has no entries")
	ErrForbidden         = errors.New("not permitted for role")
)
