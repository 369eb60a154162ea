package app

import "errors"

var (
	// ErrNotFound indicates an identifier lookup matched no record.
	ErrNotFound = errors.New("record not found")
	// ErrForbidden indicates the acting user's role or ownership does not
	// permit the operation.
	ErrForbidden = errors.New("operation not permitted")
	// ErrInvalidRating indicates a rating outside the 0-5 scale.
	ErrInvalidRating = errors.New("rating must be between 0 and 5")
	// ErrEmptyContent indicates a comment or reply with no text.
	ErrEmptyContent = errors.New("content is required")
)
