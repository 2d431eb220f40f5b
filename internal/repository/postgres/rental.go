package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

// Create runs the stock admission check and the insert as one atomic
// unit. The SELECT ... FOR UPDATE on the game row serializes concurrent
// creations for the same game: whichever transaction commits first is
// counted by the next one, so the active count can never exceed
// stock_total.
func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var stockTotal int32
	err = tx.QueryRowContext(ctx, `SELECT stock_total FROM games WHERE id = $1 FOR UPDATE`, rt.GameID).Scan(&stockTotal)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("game %d: %w", rt.GameID, domain.ErrNotFound)
		}
		return err
	}

	var active int32
	err = tx.QueryRowContext(ctx, `SELECT count(*) FROM rentals WHERE game_id = $1 AND return_date IS NULL`, rt.GameID).Scan(&active)
	if err != nil {
		return err
	}
	if active >= stockTotal {
		return domain.ErrStockExhausted
	}

	query := `INSERT INTO rentals (customer_id, game_id, rent_date, days_rented, return_date, original_price_cents, delay_fee_cents)
	          VALUES ($1, $2, $3, $4, NULL, $5, NULL) RETURNING id`
	err = tx.QueryRowContext(ctx, query, rt.CustomerID, rt.GameID, rt.RentDate, rt.DaysRented, rt.OriginalPriceCents).Scan(&rt.ID)
	if err != nil {
		return mapError(err)
	}

	return tx.Commit()
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT id, customer_id, game_id, to_char(rent_date, 'YYYY-MM-DD'), days_rented, to_char(return_date, 'YYYY-MM-DD'), original_price_cents, delay_fee_cents
	          FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rt.ID, &rt.CustomerID, &rt.GameID, &rt.RentDate, &rt.DaysRented, &rt.ReturnDate, &rt.OriginalPriceCents, &rt.DelayFeeCents)
	if err != nil {
		return nil, mapError(err)
	}
	return rt, nil
}

func (r *rentalRepository) CountActive(ctx context.Context, gameID int32) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM rentals WHERE game_id = $1 AND return_date IS NULL`
	err := r.db.QueryRowContext(ctx, query, gameID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// MarkReturned closes the rental in a single guarded update. Both the
// date and the fee travel as bound parameters; the return_date IS NULL
// guard makes the Active → Returned transition happen at most once even
// if two returns race.
func (r *rentalRepository) MarkReturned(ctx context.Context, id int32, returnDate string, delayFeeCents int32) error {
	query := `UPDATE rentals SET return_date=$1, delay_fee_cents=$2 WHERE id=$3 AND return_date IS NULL`
	res, err := r.db.ExecContext(ctx, query, returnDate, delayFeeCents, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Distinguish a missing rental from one already closed.
		var exists bool
		if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM rentals WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("rental %d: %w", id, domain.ErrNotFound)
		}
		return domain.ErrAlreadyReturned
	}
	return nil
}

func (r *rentalRepository) Delete(ctx context.Context, id int32) error {
	query := `DELETE FROM rentals WHERE id=$1 AND return_date IS NOT NULL`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		var exists bool
		if err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM rentals WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("rental %d: %w", id, domain.ErrNotFound)
		}
		return domain.ErrStillActive
	}
	return nil
}

func (r *rentalRepository) ListWithNames(ctx context.Context) ([]domain.RentalWithNames, error) {
	query := `SELECT rentals.id, rentals.customer_id, rentals.game_id, to_char(rentals.rent_date, 'YYYY-MM-DD'), rentals.days_rented,
	                 to_char(rentals.return_date, 'YYYY-MM-DD'), rentals.original_price_cents, rentals.delay_fee_cents,
	                 customers.name, games.name
	          FROM rentals
	          JOIN customers ON customers.id = rentals.customer_id
	          JOIN games ON games.id = rentals.game_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.RentalWithNames
	for rows.Next() {
		var rt domain.RentalWithNames
		if err := rows.Scan(&rt.ID, &rt.CustomerID, &rt.GameID, &rt.RentDate, &rt.DaysRented, &rt.ReturnDate, &rt.OriginalPriceCents, &rt.DelayFeeCents, &rt.CustomerName, &rt.GameName); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) ListOverdue(ctx context.Context, today string) ([]domain.RentalWithNames, error) {
	query := `SELECT rentals.id, rentals.customer_id, rentals.game_id, to_char(rentals.rent_date, 'YYYY-MM-DD'), rentals.days_rented,
	                 to_char(rentals.return_date, 'YYYY-MM-DD'), rentals.original_price_cents, rentals.delay_fee_cents,
	                 customers.name, games.name
	          FROM rentals
	          JOIN customers ON customers.id = rentals.customer_id
	          JOIN games ON games.id = rentals.game_id
	          WHERE rentals.return_date IS NULL
	            AND rentals.rent_date + rentals.days_rented * INTERVAL '1 day' < $1::date`
	rows, err := r.db.QueryContext(ctx, query, today)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.RentalWithNames
	for rows.Next() {
		var rt domain.RentalWithNames
		if err := rows.Scan(&rt.ID, &rt.CustomerID, &rt.GameID, &rt.RentDate, &rt.DaysRented, &rt.ReturnDate, &rt.OriginalPriceCents, &rt.DelayFeeCents, &rt.CustomerName, &rt.GameName); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}
