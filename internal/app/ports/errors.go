package ports

import "errors"

// Repository-level sentinels. Usecase-specific failures live next to their
// usecases.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
)
