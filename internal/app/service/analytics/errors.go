package analytics

import "errors"

var (
	// ErrNotFound is returned by Reset when the user has no analytics record.
	ErrNotFound = errors.New("analytics record not found")
	// ErrInvalidProduct rejects malformed product input before any counter
	// is touched, so cumulative sums cannot be corrupted.
	ErrInvalidProduct = errors.New("invalid product record")
)
