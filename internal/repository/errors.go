package repository

import "errors"

// Common repository errors
var (
	// ErrIssueNotFound is returned when an issue id is unknown to the board
	ErrIssueNotFound = errors.New("issue not found")

	// ErrPersistence is returned when a mutation could not be written durably.
	// The in-memory board is left as it was before the call.
	ErrPersistence = errors.New("failed to persist board")

	// ErrNoSnapshot is returned by a snapshot store that holds no board yet
	ErrNoSnapshot = errors.New("no board snapshot")
)
