package store

import "errors"

var (
	// ErrNotFound is returned when no record matches the given id.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateName is returned when an alias name is already taken.
	ErrDuplicateName = errors.New("name already in use")
	// ErrDisabled is returned when activating a disabled config.
	ErrDisabled = errors.New("config is disabled")
)
