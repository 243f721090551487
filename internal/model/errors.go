package model

import "errors"

var (
	// ErrInvalidBoard is returned when a board breaks a structural invariant
	ErrInvalidBoard = errors.New("invalid board")

	// ErrInvalidField is returned for unknown issue type or priority values
	ErrInvalidField = errors.New("invalid issue field")
)
