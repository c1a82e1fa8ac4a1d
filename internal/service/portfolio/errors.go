package portfolio

import "errors"

var (
	// ErrCategoryNotFound indicates no gallery exists for the requested slug.
	ErrCategoryNotFound = errors.New("portfolio category not found")

	// ErrUnavailable indicates the content lake could not be reached or
	// returned an unusable response.
	ErrUnavailable = errors.New("portfolio content unavailable")
)
