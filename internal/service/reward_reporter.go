package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/readynurse/internal/domain"
	"github.com/alexanderramin/readynurse/internal/game"
	"github.com/alexanderramin/readynurse/internal/repository"
	"go.uber.org/zap"
)

// RewardReporter persists game results: coins go to the profile balance and
// scores to the leaderboard. Failures are logged and returned; the game
// session records them without interrupting play.
type RewardReporter struct {
	profiles    repository.ProfileRepo
	leaderboard repository.LeaderboardRepo
	log         *zap.Logger
}

var _ game.Reporter = (*RewardReporter)(nil)

func NewRewardReporter(profiles repository.ProfileRepo, leaderboard repository.LeaderboardRepo, log *zap.Logger) *RewardReporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &RewardReporter{profiles: profiles, leaderboard: leaderboard, log: log.Named("rewards")}
}

func (r *RewardReporter) AwardCoins(ctx context.Context, userID string, coins int) error {
	if coins <= 0 {
		return nil
	}
	if err := r.profiles.IncrementCoins(ctx, userID, coins); err != nil {
		r.log.Warn("awarding coins failed", zap.String("user_id", userID), zap.Int("coins", coins), zap.Error(err))
		return fmt.Errorf("awarding %d coins: %w", coins, err)
	}
	r.log.Info("coins awarded", zap.String("user_id", userID), zap.Int("coins", coins))
	return nil
}

func (r *RewardReporter) SubmitScore(ctx context.Context, e game.Entry) error {
	err := r.leaderboard.Submit(ctx, &domain.LeaderboardEntry{
		GameID:    string(e.GameID),
		UserID:    e.UserID,
		UserName:  e.UserName,
		AvatarURL: e.AvatarURL,
		BorderID:  e.BorderID,
		Score:     e.Score,
	})
	if err != nil {
		r.log.Warn("leaderboard submit failed",
			zap.String("game", string(e.GameID)), zap.String("user_id", e.UserID), zap.Int("score", e.Score), zap.Error(err))
		return fmt.Errorf("submitting score: %w", err)
	}
	return nil
}

// PlayerFor maps a profile to the identity shown on leaderboards.
func PlayerFor(p *domain.Profile) *game.Player {
	if p == nil {
		return nil
	}
	return &game.Player{
		UserID:    p.ID,
		Name:      p.Name,
		AvatarURL: p.AvatarURL,
		BorderID:  p.SelectedBorderID,
	}
}
