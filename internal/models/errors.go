package models

import "errors"

// Domain errors. Handlers map these to HTTP status codes; everything else
// surfaces as an internal error.
var (
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrInvalidResumeFile = errors.New("invalid resume file")
	ErrUnsupportedFormat = errors.New("unsupported resume format")
	ErrExtractionFailed  = errors.New("resume extraction failed")

	// ErrMissingID guards repository updates against unsaved records. Hitting
	// it is a programming error, not a domain condition.
	ErrMissingID = errors.New("record has no id")
)
