package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/readynurse/internal/db"
	"github.com/alexanderramin/readynurse/internal/domain"
	"github.com/alexanderramin/readynurse/internal/quiz"
)

// SQLiteQuizRepo implements QuizRepo using a SQLite database.
type SQLiteQuizRepo struct {
	db db.DBTX
}

// NewSQLiteQuizRepo creates a new SQLiteQuizRepo.
func NewSQLiteQuizRepo(conn db.DBTX) *SQLiteQuizRepo {
	return &SQLiteQuizRepo{db: conn}
}

const quizColumns = `id, user_id, title, topic, difficulty, description, question_count, created_at, updated_at`

func (r *SQLiteQuizRepo) Create(ctx context.Context, q *domain.Quiz) error {
	query := `INSERT INTO quizzes (` + quizColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		q.ID,
		q.UserID,
		q.Title,
		q.Topic,
		string(q.Difficulty),
		q.Description,
		q.QuestionCount,
		q.CreatedAt.UTC().Format(time.RFC3339),
		q.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting quiz: %w", err)
	}
	return nil
}

func (r *SQLiteQuizRepo) GetByID(ctx context.Context, id string) (*domain.Quiz, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+quizColumns+` FROM quizzes WHERE id = ?`, id)
	q, err := scanQuiz(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("quiz %s: %w", id, ErrNotFound)
	}
	return q, err
}

func (r *SQLiteQuizRepo) List(ctx context.Context, userID string) ([]*domain.Quiz, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+quizColumns+` FROM quizzes WHERE user_id = ? ORDER BY created_at DESC, title`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing quizzes: %w", err)
	}
	defer rows.Close()

	var quizzes []*domain.Quiz
	for rows.Next() {
		q, err := scanQuiz(rows)
		if err != nil {
			return nil, err
		}
		quizzes = append(quizzes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quizzes: %w", err)
	}
	return quizzes, nil
}

func (r *SQLiteQuizRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM quizzes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting quiz: %w", err)
	}
	return requireAffected(res, "quiz "+id)
}

func (r *SQLiteQuizRepo) AddQuestion(ctx context.Context, quizID string, q *quiz.Question) error {
	correct, err := encodeStrings(q.Correct)
	if err != nil {
		return err
	}
	incorrect, err := encodeStrings(q.Incorrect)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE quizzes SET question_count = question_count + 1, updated_at = ? WHERE id = ?`, nowUTC(), quizID)
	if err != nil {
		return fmt.Errorf("bumping question count: %w", err)
	}
	if err := requireAffected(res, "quiz "+quizID); err != nil {
		return err
	}

	query := `INSERT INTO quiz_questions (id, quiz_id, type, text, correct, incorrect, explanation, seq, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM quiz_questions WHERE quiz_id = ?), ?)`
	_, err = r.db.ExecContext(ctx, query,
		q.ID,
		quizID,
		string(q.Type),
		q.Text,
		correct,
		incorrect,
		q.Explanation,
		quizID,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting question: %w", err)
	}
	return nil
}

func (r *SQLiteQuizRepo) ListQuestions(ctx context.Context, quizID string) ([]*quiz.Question, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, type, text, correct, incorrect, explanation FROM quiz_questions WHERE quiz_id = ? ORDER BY seq`, quizID)
	if err != nil {
		return nil, fmt.Errorf("listing questions: %w", err)
	}
	defer rows.Close()

	var questions []*quiz.Question
	for rows.Next() {
		var q quiz.Question
		var typ, correct, incorrect string
		if err := rows.Scan(&q.ID, &typ, &q.Text, &correct, &incorrect, &q.Explanation); err != nil {
			return nil, fmt.Errorf("scanning question: %w", err)
		}
		q.Type = quiz.Type(typ)
		if q.Correct, err = decodeStrings(correct); err != nil {
			return nil, err
		}
		if q.Incorrect, err = decodeStrings(incorrect); err != nil {
			return nil, err
		}
		questions = append(questions, &q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating questions: %w", err)
	}
	return questions, nil
}

func scanQuiz(s rowScanner) (*domain.Quiz, error) {
	var q domain.Quiz
	var difficulty, created, updated string
	err := s.Scan(
		&q.ID,
		&q.UserID,
		&q.Title,
		&q.Topic,
		&difficulty,
		&q.Description,
		&q.QuestionCount,
		&created,
		&updated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning quiz: %w", err)
	}
	q.Difficulty = domain.Difficulty(difficulty)
	q.CreatedAt = parseTime(created)
	q.UpdatedAt = parseTime(updated)
	return &q, nil
}
