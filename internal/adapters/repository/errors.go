package repository

import "errors"

// Sentinel kinds for catalog loading and lookup.
var (
	ErrNotFound      = errors.New("project not found")
	ErrDuplicateSlug = errors.New("duplicate project slug")
	ErrEmptySlug     = errors.New("project slug must not be empty")
	ErrLoadCatalog   = errors.New("load catalog failed")
)
