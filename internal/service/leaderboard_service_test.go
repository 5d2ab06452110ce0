package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/readynurse/internal/domain"
	"github.com/alexanderramin/readynurse/internal/game"
	"github.com/alexanderramin/readynurse/internal/repository"
	"github.com/alexanderramin/readynurse/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderboardTop_DefaultLimit(t *testing.T) {
	repo := repository.NewSQLiteLeaderboardRepo(testutil.NewTestDB(t))
	svc := NewLeaderboardService(repo)
	ctx := context.Background()

	for i := range 12 {
		require.NoError(t, repo.Submit(ctx, &domain.LeaderboardEntry{
			GameID:   string(game.VitalsCrisisID),
			UserID:   fmt.Sprintf("u%d", i),
			UserName: fmt.Sprintf("Player %d", i),
			Score:    i * 100,
		}))
	}

	top, err := svc.Top(ctx, string(game.VitalsCrisisID), 0)
	require.NoError(t, err)
	require.Len(t, top, domain.DefaultLeaderboardLimit)
	assert.Equal(t, 1100, top[0].Score)

	top, err = svc.Top(ctx, string(game.VitalsCrisisID), 3)
	require.NoError(t, err)
	assert.Len(t, top, 3)

	empty, err := svc.Top(ctx, string(game.MedTermMayhemID), 5)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestLeaderboardTop_UnknownGame(t *testing.T) {
	svc := NewLeaderboardService(repository.NewSQLiteLeaderboardRepo(testutil.NewTestDB(t)))
	_, err := svc.Top(context.Background(), "tetris", 10)
	assert.Error(t, err)
}
