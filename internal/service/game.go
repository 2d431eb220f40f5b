package service

import (
	"context"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/repository"
)

type gameService struct {
	gameRepo repository.GameRepository
}

func NewGameService(gameRepo repository.GameRepository) GameService {
	return &gameService{gameRepo: gameRepo}
}

func (s *gameService) GetGame(ctx context.Context, id int32) (*domain.Game, error) {
	return s.gameRepo.GetByID(ctx, id)
}

func (s *gameService) ListGames(ctx context.Context) ([]domain.Game, error) {
	return s.gameRepo.List(ctx)
}
