package service

import (
	"context"
	"fmt"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/logger"
	"boardcamp-backend/internal/repository"
	"boardcamp-backend/internal/utils"
)

type rentalService struct {
	rentalRepo   repository.RentalRepository
	gameRepo     repository.GameRepository
	customerRepo repository.CustomerRepository
	stock        *StockLedger
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	gameRepo repository.GameRepository,
	customerRepo repository.CustomerRepository,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		gameRepo:     gameRepo,
		customerRepo: customerRepo,
		stock:        NewStockLedger(rentalRepo),
	}
}

func (s *rentalService) Create(ctx context.Context, customerID, gameID, daysRented int32, today string) (*domain.Rental, error) {
	if daysRented <= 0 {
		return nil, fmt.Errorf("days_rented must be greater than 0: %w", domain.ErrInvalidInput)
	}
	if _, err := utils.ParseDate(today); err != nil {
		return nil, fmt.Errorf("rent date: %v: %w", err, domain.ErrInvalidInput)
	}

	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		return nil, fmt.Errorf("customer %d: %w", customerID, err)
	}
	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("game %d: %w", gameID, err)
	}

	rental := &domain.Rental{
		CustomerID:         customerID,
		GameID:             gameID,
		RentDate:           today,
		DaysRented:         daysRented,
		OriginalPriceCents: utils.OriginalPriceCents(daysRented, game.PricePerDayCents),
	}

	// Admission and insert are one atomic unit inside the ledger.
	if err := s.stock.Reserve(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("Rental created", "rental_id", rental.ID, "game_id", gameID, "customer_id", customerID, "days_rented", daysRented)
	return rental, nil
}

func (s *rentalService) Return(ctx context.Context, rentalID int32, today string) error {
	returnDate, err := utils.ParseDate(today)
	if err != nil {
		return fmt.Errorf("return date: %v: %w", err, domain.ErrInvalidInput)
	}

	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return fmt.Errorf("rental %d: %w", rentalID, err)
	}
	if rental.Returned() {
		return domain.ErrAlreadyReturned
	}

	game, err := s.gameRepo.GetByID(ctx, rental.GameID)
	if err != nil {
		return fmt.Errorf("game %d: %w", rental.GameID, err)
	}
	rentDate, err := utils.ParseDate(rental.RentDate)
	if err != nil {
		return fmt.Errorf("stored rent date %q: %v", rental.RentDate, err)
	}

	fee := utils.DelayFeeCents(rentDate, rental.DaysRented, returnDate, game.PricePerDayCents)
	if err := s.rentalRepo.MarkReturned(ctx, rentalID, today, fee); err != nil {
		return err
	}

	logger.Info("Rental returned", "rental_id", rentalID, "return_date", today, "delay_fee_cents", fee)
	return nil
}

func (s *rentalService) Delete(ctx context.Context, rentalID int32) error {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return fmt.Errorf("rental %d: %w", rentalID, err)
	}
	if !rental.Returned() {
		return domain.ErrStillActive
	}

	if err := s.rentalRepo.Delete(ctx, rentalID); err != nil {
		return err
	}

	logger.Info("Rental deleted", "rental_id", rentalID)
	return nil
}

func (s *rentalService) List(ctx context.Context) ([]domain.RentalWithNames, error) {
	return s.rentalRepo.ListWithNames(ctx)
}
