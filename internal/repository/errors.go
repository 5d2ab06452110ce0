package repository

import "errors"

var (
	// ErrNotFound is wrapped by every lookup that matches no row.
	ErrNotFound = errors.New("not found")
	// ErrInsufficientCoins is returned when a spend would overdraw a balance.
	ErrInsufficientCoins = errors.New("insufficient coins")
)
