package service

import (
	"context"

	"github.com/alexanderramin/readynurse/internal/domain"
	"github.com/alexanderramin/readynurse/internal/game"
	"github.com/alexanderramin/readynurse/internal/repository"
)

type leaderboardService struct {
	entries repository.LeaderboardRepo
}

func NewLeaderboardService(entries repository.LeaderboardRepo) LeaderboardService {
	return &leaderboardService{entries: entries}
}

// Top returns the best scores for a game. A non-positive limit uses the
// default board size.
func (s *leaderboardService) Top(ctx context.Context, gameID string, limit int) ([]*domain.LeaderboardEntry, error) {
	if _, err := game.Lookup(gameID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = domain.DefaultLeaderboardLimit
	}
	return s.entries.Top(ctx, gameID, limit)
}
