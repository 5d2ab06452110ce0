package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/readynurse/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeckRepo_CreateAndGetByID(t *testing.T) {
	repo := NewSQLiteDeckRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	d := testutil.NewTestDeck("Cardiac Meds", testutil.WithDeckTopic("Pharmacology", "Cardiac"))
	require.NoError(t, repo.Create(ctx, d))

	got, err := repo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cardiac Meds", got.Title)
	assert.Equal(t, "Pharmacology", got.Subject)
	assert.Equal(t, d.Difficulty, got.Difficulty)
	assert.Zero(t, got.CardCount)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeckRepo_ListNewestFirstPerUser(t *testing.T) {
	repo := NewSQLiteDeckRepo(testutil.NewTestDB(t))
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	older := testutil.NewTestDeck("Older", testutil.WithDeckUser("u1"), testutil.WithDeckCreatedAt(base))
	newer := testutil.NewTestDeck("Newer", testutil.WithDeckUser("u1"), testutil.WithDeckCreatedAt(base.Add(time.Hour)))
	other := testutil.NewTestDeck("Other", testutil.WithDeckUser("u2"))
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, other))

	decks, err := repo.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, decks, 2)
	assert.Equal(t, "Newer", decks[0].Title)
	assert.Equal(t, "Older", decks[1].Title)
}

func TestDeckRepo_AddCardKeepsOrderAndCount(t *testing.T) {
	repo := NewSQLiteDeckRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	d := testutil.NewTestDeck("Electrolytes")
	require.NoError(t, repo.Create(ctx, d))

	fronts := []string{"Normal K+", "Normal Na+", "Normal Ca2+"}
	for _, f := range fronts {
		require.NoError(t, repo.AddCard(ctx, testutil.NewTestCard(d.ID, f, "range")))
	}

	cards, err := repo.ListCards(ctx, d.ID)
	require.NoError(t, err)
	require.Len(t, cards, 3)
	for i, c := range cards {
		assert.Equal(t, fronts[i], c.Front)
	}

	got, err := repo.GetByID(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.CardCount)
}

func TestDeckRepo_AddCardToMissingDeck(t *testing.T) {
	repo := NewSQLiteDeckRepo(testutil.NewTestDB(t))

	err := repo.AddCard(context.Background(), testutil.NewTestCard("missing", "Q", "A"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeckRepo_SetStarred(t *testing.T) {
	repo := NewSQLiteDeckRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	d := testutil.NewTestDeck("Electrolytes")
	require.NoError(t, repo.Create(ctx, d))
	c := testutil.NewTestCard(d.ID, "Q", "A")
	require.NoError(t, repo.AddCard(ctx, c))

	require.NoError(t, repo.SetStarred(ctx, c.ID, true))
	cards, err := repo.ListCards(ctx, d.ID)
	require.NoError(t, err)
	assert.True(t, cards[0].Starred)

	assert.ErrorIs(t, repo.SetStarred(ctx, "missing", true), ErrNotFound)
}

func TestDeckRepo_DeleteCascades(t *testing.T) {
	repo := NewSQLiteDeckRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	d := testutil.NewTestDeck("Electrolytes")
	require.NoError(t, repo.Create(ctx, d))
	require.NoError(t, repo.AddCard(ctx, testutil.NewTestCard(d.ID, "Q", "A")))

	require.NoError(t, repo.Delete(ctx, d.ID))
	cards, err := repo.ListCards(ctx, d.ID)
	require.NoError(t, err)
	assert.Empty(t, cards)
	assert.ErrorIs(t, repo.Delete(ctx, d.ID), ErrNotFound)
}
