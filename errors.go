package inkwell

import (
	"database/sql"
	"errors"
)

var (
	// ErrNotFound is returned when a requested post does not exist.
	ErrNotFound = sql.ErrNoRows

	// ErrMissingContent marks a required input that is absent, such as a
	// layout without children or a post without a body.
	ErrMissingContent = errors.New("missing required content")

	// ErrDuplicateSlug is returned when two source files map to the same URL.
	ErrDuplicateSlug = errors.New("duplicate slug")
)
