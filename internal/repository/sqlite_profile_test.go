package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/readynurse/internal/domain"
	"github.com/alexanderramin/readynurse/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestProfile("Ada", testutil.WithCoins(25))
	require.NoError(t, repo.Create(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", got.Name)
	assert.Equal(t, 25, got.Coins)
	assert.Equal(t, domain.DefaultSchool, got.School)
	assert.Equal(t, domain.DefaultYearLevel, got.YearLevel)
	assert.Equal(t, domain.DefaultBorderID, got.SelectedBorderID)
	assert.Equal(t, domain.DefaultThemeID, got.SelectedTheme)
	assert.False(t, got.CustomAvatarUnlocked)
	assert.Empty(t, got.UnlockedBorders)
}

func TestProfileRepo_GetByID_NotFound(t *testing.T) {
	repo := NewSQLiteProfileRepo(testutil.NewTestDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProfileRepo_UpdateLeavesCoinsAlone(t *testing.T) {
	repo := NewSQLiteProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestProfile("Ada", testutil.WithCoins(10))
	require.NoError(t, repo.Create(ctx, p))

	p.School = "St. Luke's"
	p.YearLevel = "3rd Year"
	p.Coins = 9999
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "St. Luke's", got.School)
	assert.Equal(t, "3rd Year", got.YearLevel)
	assert.Equal(t, 10, got.Coins)
}

func TestProfileRepo_IncrementCoins(t *testing.T) {
	repo := NewSQLiteProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestProfile("Ada", testutil.WithCoins(5))
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, repo.IncrementCoins(ctx, p.ID, 12))
	require.NoError(t, repo.IncrementCoins(ctx, p.ID, 8))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, got.Coins)

	assert.ErrorIs(t, repo.IncrementCoins(ctx, "missing", 1), ErrNotFound)
}

func TestProfileRepo_SpendCoins(t *testing.T) {
	repo := NewSQLiteProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestProfile("Ada", testutil.WithCoins(100))
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, repo.SpendCoins(ctx, p.ID, 75))
	assert.ErrorIs(t, repo.SpendCoins(ctx, p.ID, 30), ErrInsufficientCoins)
	assert.ErrorIs(t, repo.SpendCoins(ctx, "missing", 1), ErrNotFound)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, got.Coins, "failed spend leaves balance untouched")
}

func TestProfileRepo_Unlock(t *testing.T) {
	repo := NewSQLiteProfileRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	p := testutil.NewTestProfile("Ada")
	require.NoError(t, repo.Create(ctx, p))

	require.NoError(t, repo.Unlock(ctx, p.ID, domain.ItemBorder, "border_gold"))
	require.NoError(t, repo.Unlock(ctx, p.ID, domain.ItemBorder, "border_gold"), "unlocking twice is harmless")
	require.NoError(t, repo.Unlock(ctx, p.ID, domain.ItemTheme, "ube"))
	require.NoError(t, repo.Unlock(ctx, p.ID, domain.ItemFeature, domain.FeatureCustomAvatar))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"border_gold"}, got.UnlockedBorders)
	assert.Equal(t, []string{"ube"}, got.UnlockedThemes)
	assert.True(t, got.CustomAvatarUnlocked)
}
