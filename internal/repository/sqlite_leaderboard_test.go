package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/alexanderramin/readynurse/internal/domain"
	"github.com/alexanderramin/readynurse/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(game, user string, score int) *domain.LeaderboardEntry {
	return &domain.LeaderboardEntry{
		GameID:   game,
		UserID:   user,
		UserName: "Player " + user,
		BorderID: domain.DefaultBorderID,
		Score:    score,
	}
}

func TestLeaderboardRepo_KeepsBestScore(t *testing.T) {
	repo := NewSQLiteLeaderboardRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Submit(ctx, entry("drug-dash", "u1", 340)))
	lower := entry("drug-dash", "u1", 150)
	lower.BorderID = "border_gold"
	require.NoError(t, repo.Submit(ctx, lower))

	top, err := repo.Top(ctx, "drug-dash", 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 340, top[0].Score)
	assert.Equal(t, "border_gold", top[0].BorderID, "display fields follow the latest submission")

	require.NoError(t, repo.Submit(ctx, entry("drug-dash", "u1", 500)))
	top, err = repo.Top(ctx, "drug-dash", 10)
	require.NoError(t, err)
	assert.Equal(t, 500, top[0].Score)
}

func TestLeaderboardRepo_TopOrdersAndLimits(t *testing.T) {
	repo := NewSQLiteLeaderboardRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	for i := 1; i <= 12; i++ {
		require.NoError(t, repo.Submit(ctx, entry("vitals-crisis", fmt.Sprintf("u%02d", i), i*100)))
	}
	require.NoError(t, repo.Submit(ctx, entry("drug-dash", "u99", 99999)))

	top, err := repo.Top(ctx, "vitals-crisis", domain.DefaultLeaderboardLimit)
	require.NoError(t, err)
	require.Len(t, top, 10)
	assert.Equal(t, 1200, top[0].Score)
	assert.Equal(t, 300, top[9].Score)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Score, top[i].Score)
	}
}
