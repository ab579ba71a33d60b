package resumes

import "errors"

var (
	// ErrNotFound indicates a resume is absent or not owned by the acting
	// user. The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("resume not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
