package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/readynurse/internal/domain"
	"github.com/alexanderramin/readynurse/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoalRepo_CreateGetToggle(t *testing.T) {
	repo := NewSQLiteGoalRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	start := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	g := testutil.NewTestGoal("Review 50 cards", testutil.WithGoalDates(start, start.AddDate(0, 0, 7)))
	require.NoError(t, repo.Create(ctx, g))

	got, err := repo.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.Equal(t, "Review 50 cards", got.Description)
	assert.Equal(t, domain.GoalWeekly, got.Type)
	assert.True(t, got.StartDate.Equal(start))
	assert.True(t, got.EndDate.Equal(start.AddDate(0, 0, 7)))
	assert.False(t, got.Completed)

	require.NoError(t, repo.SetCompleted(ctx, g.ID, true))
	got, err = repo.GetByID(ctx, g.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)

	assert.ErrorIs(t, repo.SetCompleted(ctx, "missing", true), ErrNotFound)
}

func TestGoalRepo_ListByUserOrderedByEnd(t *testing.T) {
	repo := NewSQLiteGoalRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	monthly := testutil.NewTestGoal("Finish pharm", testutil.WithGoalUser("u1"), testutil.WithGoalType(domain.GoalMonthly))
	daily := testutil.NewTestGoal("One quiz", testutil.WithGoalUser("u1"), testutil.WithGoalType(domain.GoalDaily))
	other := testutil.NewTestGoal("Not mine", testutil.WithGoalUser("u2"))
	for _, g := range []*domain.Goal{monthly, daily, other} {
		require.NoError(t, repo.Create(ctx, g))
	}

	goals, err := repo.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, goals, 2)
	assert.Equal(t, "One quiz", goals[0].Description)
	assert.Equal(t, "Finish pharm", goals[1].Description)
}

func TestGoalRepo_Delete(t *testing.T) {
	repo := NewSQLiteGoalRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	g := testutil.NewTestGoal("x")
	require.NoError(t, repo.Create(ctx, g))
	require.NoError(t, repo.Delete(ctx, g.ID))
	_, err := repo.GetByID(ctx, g.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
