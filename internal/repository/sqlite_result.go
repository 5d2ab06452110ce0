package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/readynurse/internal/db"
	"github.com/alexanderramin/readynurse/internal/domain"
)

// SQLiteResultRepo implements ResultRepo using a SQLite database.
type SQLiteResultRepo struct {
	db db.DBTX
}

// NewSQLiteResultRepo creates a new SQLiteResultRepo.
func NewSQLiteResultRepo(conn db.DBTX) *SQLiteResultRepo {
	return &SQLiteResultRepo{db: conn}
}

func (r *SQLiteResultRepo) Create(ctx context.Context, res *domain.QuizResult) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO quiz_results (id, user_id, quiz_id, score, taken_at) VALUES (?, ?, ?, ?, ?)`,
		res.ID, res.UserID, res.QuizID, res.Score, res.TakenAt.UTC().Format(sortableNano))
	if err != nil {
		return fmt.Errorf("inserting quiz result: %w", err)
	}
	return nil
}

func (r *SQLiteResultRepo) ListByUser(ctx context.Context, userID string) ([]*domain.QuizResult, error) {
	query := `SELECT r.id, r.user_id, r.quiz_id, COALESCE(q.title, ?), r.score, r.taken_at
		FROM quiz_results r LEFT JOIN quizzes q ON q.id = r.quiz_id
		WHERE r.user_id = ?
		ORDER BY r.taken_at DESC`
	rows, err := r.db.QueryContext(ctx, query, domain.UnknownQuizTitle, userID)
	if err != nil {
		return nil, fmt.Errorf("listing quiz results: %w", err)
	}
	defer rows.Close()

	var results []*domain.QuizResult
	for rows.Next() {
		var res domain.QuizResult
		var taken string
		if err := rows.Scan(&res.ID, &res.UserID, &res.QuizID, &res.QuizTitle, &res.Score, &taken); err != nil {
			return nil, fmt.Errorf("scanning quiz result: %w", err)
		}
		res.TakenAt, _ = time.Parse(sortableNano, taken)
		results = append(results, &res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quiz results: %w", err)
	}
	return results, nil
}
