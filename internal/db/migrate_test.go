package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesAllTables(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"profiles", "profile_unlocks", "decks", "flashcards", "quizzes",
		"quiz_questions", "quiz_results", "leaderboard_entries", "goals",
	}
	for _, table := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}
}

func TestMigrate_CreatesIndexes(t *testing.T) {
	db := openTestDB(t)

	expected := []string{
		"idx_flashcards_deck",
		"idx_quiz_questions_quiz",
		"idx_quiz_results_user",
		"idx_leaderboard_score",
		"idx_goals_user",
	}
	for _, idx := range expected {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_ForeignKeysEnabled(t *testing.T) {
	db := openTestDB(t)

	var fk int
	require.NoError(t, db.QueryRow(`PRAGMA foreign_keys`).Scan(&fk))
	assert.Equal(t, 1, fk, "foreign keys should be enabled")
}

func TestMigrate_CoinsCannotGoNegative(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO profiles (id, name, coins, created_at, updated_at) VALUES ('u1', 'Ada', 5, 'now', 'now')`)
	require.NoError(t, err)
	_, err = db.Exec(`UPDATE profiles SET coins = coins - 10 WHERE id = 'u1'`)
	assert.Error(t, err)
}

func TestMigrate_DeletingDeckCascadesToCards(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO decks (id, title, created_at, updated_at) VALUES ('d1', 'Cardio', 'now', 'now')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO flashcards (id, deck_id, front, back, created_at) VALUES ('c1', 'd1', 'Q', 'A', 'now')`)
	require.NoError(t, err)

	_, err = db.Exec(`DELETE FROM decks WHERE id = 'd1'`)
	require.NoError(t, err)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM flashcards`).Scan(&n))
	assert.Zero(t, n)
}
