package racers

import "errors"

var (
	// ErrNotFound indicates the referenced racer does not exist.
	ErrNotFound = errors.New("racer not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
