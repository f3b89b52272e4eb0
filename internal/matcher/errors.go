package matcher

import "errors"

var (
	// ErrEmptyKeywordSet is returned when no keywords survive extraction from
	// the job description, so a keyword percentage cannot be computed.
	ErrEmptyKeywordSet = errors.New("no keywords extracted from job description")
	// ErrInvalidInput is returned for text that is not valid UTF-8 or when the
	// matcher has no tagger.
	ErrInvalidInput = errors.New("invalid input")
)
