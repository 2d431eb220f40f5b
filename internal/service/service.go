package service

import (
	"context"

	"boardcamp-backend/internal/domain"
)

type RentalService interface {
	// Create opens a rental: state Active, return date and delay fee
	// unset, price snapshotted from the game. today is the rent date as
	// a yyyy-mm-dd calendar date.
	Create(ctx context.Context, customerID, gameID, daysRented int32, today string) (*domain.Rental, error)
	// Return closes an active rental, assessing the delay fee against
	// today. Active → Returned, exactly once.
	Return(ctx context.Context, rentalID int32, today string) error
	// Delete permanently removes a returned rental. Returned → Deleted.
	Delete(ctx context.Context, rentalID int32) error
	List(ctx context.Context) ([]domain.RentalWithNames, error)
}

type GameService interface {
	GetGame(ctx context.Context, id int32) (*domain.Game, error)
	ListGames(ctx context.Context) ([]domain.Game, error)
}

type CustomerService interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	GetCustomer(ctx context.Context, id int32) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
}
