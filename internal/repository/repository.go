package repository

import (
	"context"

	"boardcamp-backend/internal/domain"
)

type GameRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Game, error)
	List(ctx context.Context) ([]domain.Game, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
}

type RentalRepository interface {
	// Create inserts a new active rental. The active-rental count check
	// and the insert run inside one transaction holding a lock on the
	// game row, so concurrent creations can never push the active count
	// past the game's stock. Returns domain.ErrStockExhausted when every
	// copy is out.
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	CountActive(ctx context.Context, gameID int32) (int32, error)
	// MarkReturned closes an active rental, setting return_date and
	// delay_fee_cents in a single update guarded by return_date IS NULL.
	// Returns domain.ErrAlreadyReturned if the rental is already closed.
	MarkReturned(ctx context.Context, id int32, returnDate string, delayFeeCents int32) error
	// Delete removes a returned rental. Guarded by return_date IS NOT
	// NULL; returns domain.ErrStillActive for an active rental.
	Delete(ctx context.Context, id int32) error
	ListWithNames(ctx context.Context) ([]domain.RentalWithNames, error)
	// ListOverdue returns active rentals whose agreed period ended
	// before the given date.
	ListOverdue(ctx context.Context, today string) ([]domain.RentalWithNames, error)
}
