package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := backfillCounts(db); err != nil {
		return fmt.Errorf("backfilling item counts: %w", err)
	}
	return nil
}

// backfillCounts repairs card and question counts for rows written before the
// counters were maintained on insert.
func backfillCounts(db *sql.DB) error {
	if _, err := db.Exec(`UPDATE decks SET card_count =
		(SELECT COUNT(*) FROM flashcards WHERE flashcards.deck_id = decks.id)
		WHERE card_count <> (SELECT COUNT(*) FROM flashcards WHERE flashcards.deck_id = decks.id)`); err != nil {
		return fmt.Errorf("decks: %w", err)
	}
	if _, err := db.Exec(`UPDATE quizzes SET question_count =
		(SELECT COUNT(*) FROM quiz_questions WHERE quiz_questions.quiz_id = quizzes.id)
		WHERE question_count <> (SELECT COUNT(*) FROM quiz_questions WHERE quiz_questions.quiz_id = quizzes.id)`); err != nil {
		return fmt.Errorf("quizzes: %w", err)
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id                 TEXT PRIMARY KEY,
		name               TEXT NOT NULL,
		email              TEXT NOT NULL DEFAULT '',
		school             TEXT NOT NULL DEFAULT 'N/A',
		year_level         TEXT NOT NULL DEFAULT '1st Year',
		coins              INTEGER NOT NULL DEFAULT 0 CHECK(coins >= 0),
		avatar_url         TEXT NOT NULL DEFAULT '',
		selected_border_id TEXT NOT NULL DEFAULT 'border_none',
		selected_theme     TEXT NOT NULL DEFAULT 'default',
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS profile_unlocks (
		profile_id TEXT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		kind       TEXT NOT NULL CHECK(kind IN ('border','theme','feature')),
		item_id    TEXT NOT NULL,
		unlocked_at TEXT NOT NULL,
		PRIMARY KEY (profile_id, kind, item_id)
	)`,

	`CREATE TABLE IF NOT EXISTS decks (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL DEFAULT '',
		title       TEXT NOT NULL,
		subject     TEXT NOT NULL DEFAULT '',
		topic       TEXT NOT NULL DEFAULT '',
		difficulty  TEXT NOT NULL DEFAULT 'Medium',
		description TEXT NOT NULL DEFAULT '',
		card_count  INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS flashcards (
		id         TEXT PRIMARY KEY,
		deck_id    TEXT NOT NULL REFERENCES decks(id) ON DELETE CASCADE,
		front      TEXT NOT NULL,
		back       TEXT NOT NULL,
		seq        INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_flashcards_deck ON flashcards(deck_id, seq)`,

	`CREATE TABLE IF NOT EXISTS quizzes (
		id             TEXT PRIMARY KEY,
		user_id        TEXT NOT NULL DEFAULT '',
		title          TEXT NOT NULL,
		topic          TEXT NOT NULL DEFAULT '',
		difficulty     TEXT NOT NULL DEFAULT 'Medium',
		description    TEXT NOT NULL DEFAULT '',
		question_count INTEGER NOT NULL DEFAULT 0,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS quiz_questions (
		id          TEXT PRIMARY KEY,
		quiz_id     TEXT NOT NULL REFERENCES quizzes(id) ON DELETE CASCADE,
		type        TEXT NOT NULL CHECK(type IN ('single','multi')),
		text        TEXT NOT NULL,
		correct     TEXT NOT NULL,
		incorrect   TEXT NOT NULL,
		explanation TEXT NOT NULL DEFAULT '',
		seq         INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_quiz_questions_quiz ON quiz_questions(quiz_id, seq)`,

	`CREATE TABLE IF NOT EXISTS quiz_results (
		id       TEXT PRIMARY KEY,
		user_id  TEXT NOT NULL DEFAULT '',
		quiz_id  TEXT NOT NULL,
		score    INTEGER NOT NULL CHECK(score BETWEEN 0 AND 100),
		taken_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_quiz_results_user ON quiz_results(user_id, taken_at)`,

	`CREATE TABLE IF NOT EXISTS leaderboard_entries (
		game_id    TEXT NOT NULL,
		user_id    TEXT NOT NULL,
		user_name  TEXT NOT NULL,
		avatar_url TEXT NOT NULL DEFAULT '',
		border_id  TEXT NOT NULL DEFAULT 'border_none',
		score      INTEGER NOT NULL,
		updated_at TEXT NOT NULL,
		PRIMARY KEY (game_id, user_id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_leaderboard_score ON leaderboard_entries(game_id, score DESC)`,

	`CREATE TABLE IF NOT EXISTS goals (
		id          TEXT PRIMARY KEY,
		user_id     TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL,
		type        TEXT NOT NULL DEFAULT 'weekly'
		            CHECK(type IN ('daily','weekly','monthly','custom')),
		start_date  TEXT NOT NULL,
		end_date    TEXT NOT NULL,
		completed   INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_goals_user ON goals(user_id, end_date)`,

	// Added after the first release.
	`ALTER TABLE flashcards ADD COLUMN starred INTEGER NOT NULL DEFAULT 0`,
	`ALTER TABLE profiles ADD COLUMN custom_avatar_unlocked INTEGER NOT NULL DEFAULT 0`,
}
