package postgres

import (
	"context"
	"database/sql"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/repository"
)

type gameRepository struct {
	db *sql.DB
}

func NewGameRepository(db *sql.DB) repository.GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) GetByID(ctx context.Context, id int32) (*domain.Game, error) {
	g := &domain.Game{}
	query := `SELECT id, name, image, stock_total, price_per_day_cents FROM games WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&g.ID, &g.Name, &g.Image, &g.StockTotal, &g.PricePerDayCents)
	if err != nil {
		return nil, mapError(err)
	}
	return g, nil
}

func (r *gameRepository) List(ctx context.Context) ([]domain.Game, error) {
	query := `SELECT id, name, image, stock_total, price_per_day_cents FROM games ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []domain.Game
	for rows.Next() {
		var g domain.Game
		if err := rows.Scan(&g.ID, &g.Name, &g.Image, &g.StockTotal, &g.PricePerDayCents); err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, rows.Err()
}
