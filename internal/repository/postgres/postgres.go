package postgres

import (
	"database/sql"
	"errors"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.GameRepository
	repository.CustomerRepository
	repository.RentalRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		GameRepository:     NewGameRepository(db),
		CustomerRepository: NewCustomerRepository(db),
		RentalRepository:   NewRentalRepository(db),
	}
}

const uniqueViolation = "23505"

// mapError translates driver-level errors into the domain taxonomy.
// sql.ErrNoRows becomes ErrNotFound and a unique-constraint violation
// becomes ErrDuplicate; everything else passes through as a storage
// failure.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.ErrDuplicate
	}
	return err
}
