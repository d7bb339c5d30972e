package domain

import "errors"

var (
	// ErrNotFound is returned when a lookup by id or email matches nothing
	ErrNotFound = errors.New("record not found")
	// ErrInvalidID is returned when an identifier cannot be parsed by the store
	ErrInvalidID = errors.New("invalid id")
)
