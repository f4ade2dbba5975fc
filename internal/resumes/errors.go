package resumes

import "errors"

var (
	// ErrNotFound signals a resume file that does not exist.
	ErrNotFound = errors.New("resume not found")
	// ErrInvalidInput signals a request rejected before any disk write.
	ErrInvalidInput = errors.New("invalid input")
)
