package repository

import "errors"

var (
	ErrNotFound       = errors.New("record not found")
	ErrEmptyQuery     = errors.New("empty search query")
	ErrInvalidRecord  = errors.New("record violates item invariants")
	ErrUnavailable    = errors.New("store unavailable")
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToUpdate = errors.New("failed to update record")
	ErrFailedToDelete = errors.New("failed to delete record")
	ErrFailedToSearch = errors.New("failed to search records")
)
