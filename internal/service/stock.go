package service

import (
	"context"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/repository"
)

// StockLedger answers whether a new rental of a game may be admitted,
// based on how many copies are currently out versus the game's total
// stock. It is the single admission gate for rental creation.
type StockLedger struct {
	rentals repository.RentalRepository
}

func NewStockLedger(rentals repository.RentalRepository) *StockLedger {
	return &StockLedger{rentals: rentals}
}

// ActiveCount returns the number of rentals of the game with no return
// date. Side-effect-free read; the value may be stale by the time the
// caller acts on it, which is why admission goes through Reserve.
func (l *StockLedger) ActiveCount(ctx context.Context, gameID int32) (int32, error) {
	return l.rentals.CountActive(ctx, gameID)
}

// Reserve admits the rental and persists it, or refuses with
// ErrStockExhausted. The count-vs-stock comparison and the insert are
// one atomic unit inside the gateway's transaction, so two concurrent
// reservations for the last copy cannot both succeed.
func (l *StockLedger) Reserve(ctx context.Context, rental *domain.Rental) error {
	return l.rentals.Create(ctx, rental)
}
