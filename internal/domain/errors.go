package domain

import "errors"

// Sentinel errors for every failure the core can produce on its own.
// Callers match them with errors.Is; anything outside this set is a
// storage failure and surfaces as a 500.
var (
	// ErrInvalidInput is a caller error, e.g. days_rented <= 0.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound means a customer, game or rental id did not resolve.
	ErrNotFound = errors.New("not found")

	// ErrStockExhausted means every copy of the game is currently rented.
	ErrStockExhausted = errors.New("stock exhausted")

	// ErrAlreadyReturned rejects a second return of the same rental.
	ErrAlreadyReturned = errors.New("rental already returned")

	// ErrStillActive rejects deletion of a rental that was never returned.
	ErrStillActive = errors.New("rental still active")

	// ErrDuplicate means a unique constraint was violated, e.g. customer CPF.
	ErrDuplicate = errors.New("already exists")
)
