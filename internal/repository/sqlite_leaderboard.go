package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/readynurse/internal/db"
	"github.com/alexanderramin/readynurse/internal/domain"
)

// SQLiteLeaderboardRepo implements LeaderboardRepo using a SQLite database.
type SQLiteLeaderboardRepo struct {
	db db.DBTX
}

// NewSQLiteLeaderboardRepo creates a new SQLiteLeaderboardRepo.
func NewSQLiteLeaderboardRepo(conn db.DBTX) *SQLiteLeaderboardRepo {
	return &SQLiteLeaderboardRepo{db: conn}
}

// Submit refreshes the player's display fields and keeps the higher score.
func (r *SQLiteLeaderboardRepo) Submit(ctx context.Context, e *domain.LeaderboardEntry) error {
	query := `INSERT INTO leaderboard_entries (game_id, user_id, user_name, avatar_url, border_id, score, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (game_id, user_id) DO UPDATE SET
			user_name = excluded.user_name,
			avatar_url = excluded.avatar_url,
			border_id = excluded.border_id,
			score = MAX(leaderboard_entries.score, excluded.score),
			updated_at = CASE WHEN excluded.score > leaderboard_entries.score
				THEN excluded.updated_at ELSE leaderboard_entries.updated_at END`
	_, err := r.db.ExecContext(ctx, query,
		e.GameID,
		e.UserID,
		e.UserName,
		e.AvatarURL,
		e.BorderID,
		e.Score,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("submitting leaderboard entry: %w", err)
	}
	return nil
}

func (r *SQLiteLeaderboardRepo) Top(ctx context.Context, gameID string, limit int) ([]*domain.LeaderboardEntry, error) {
	query := `SELECT game_id, user_id, user_name, avatar_url, border_id, score, updated_at
		FROM leaderboard_entries WHERE game_id = ?
		ORDER BY score DESC, updated_at ASC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, gameID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []*domain.LeaderboardEntry
	for rows.Next() {
		var e domain.LeaderboardEntry
		var updated string
		if err := rows.Scan(&e.GameID, &e.UserID, &e.UserName, &e.AvatarURL, &e.BorderID, &e.Score, &updated); err != nil {
			return nil, fmt.Errorf("scanning leaderboard entry: %w", err)
		}
		e.UpdatedAt = parseTime(updated)
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating leaderboard: %w", err)
	}
	return entries, nil
}
