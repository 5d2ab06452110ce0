package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/readynurse/internal/content"
	"github.com/alexanderramin/readynurse/internal/db"
	"github.com/alexanderramin/readynurse/internal/domain"
	"github.com/alexanderramin/readynurse/internal/quiz"
	"github.com/alexanderramin/readynurse/internal/repository"
	"github.com/google/uuid"
)

type quizService struct {
	quizzes   repository.QuizRepo
	results   repository.ResultRepo
	uow       db.UnitOfWork
	generator ContentGenerator
	observer  UseCaseObserver
}

// NewQuizService returns a QuizService. generator may be nil when content
// generation is disabled.
func NewQuizService(
	quizzes repository.QuizRepo,
	results repository.ResultRepo,
	uow db.UnitOfWork,
	generator ContentGenerator,
	observers ...UseCaseObserver,
) QuizService {
	return &quizService{
		quizzes:   quizzes,
		results:   results,
		uow:       uow,
		generator: generator,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *quizService) Create(ctx context.Context, q *domain.Quiz) error {
	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	if q.Difficulty == "" {
		q.Difficulty = domain.DifficultyMedium
	}
	q.Title = strings.TrimSpace(q.Title)
	if err := q.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	q.CreatedAt = now
	q.UpdatedAt = now
	q.QuestionCount = 0
	return s.quizzes.Create(ctx, q)
}

func (s *quizService) GetByID(ctx context.Context, id string) (*domain.Quiz, error) {
	return s.quizzes.GetByID(ctx, id)
}

func (s *quizService) List(ctx context.Context, userID string) ([]*domain.Quiz, error) {
	return s.quizzes.List(ctx, userID)
}

func (s *quizService) Delete(ctx context.Context, id string) error {
	return s.quizzes.Delete(ctx, id)
}

func (s *quizService) AddQuestion(ctx context.Context, quizID string, q *quiz.Question) error {
	if q.ID == "" {
		q.ID = uuid.New().String()
	}
	if err := q.Validate(); err != nil {
		return err
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteQuizRepo(tx).AddQuestion(ctx, quizID, q)
	})
}

func (s *quizService) Questions(ctx context.Context, quizID string) ([]*quiz.Question, error) {
	if _, err := s.quizzes.GetByID(ctx, quizID); err != nil {
		return nil, err
	}
	return s.quizzes.ListQuestions(ctx, quizID)
}

func (s *quizService) Generate(ctx context.Context, quizID string, count int) (questions []*quiz.Question, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"quiz_id": quizID, "requested": count}
	defer func() { observe(ctx, s.observer, "generate-questions", startedAt, fields, err) }()

	if s.generator == nil {
		return nil, ErrGenerationDisabled
	}
	var qz *domain.Quiz
	qz, err = s.quizzes.GetByID(ctx, quizID)
	if err != nil {
		return nil, err
	}

	questions, err = s.generator.QuizQuestions(ctx, content.QuestionRequest{
		Topic:      domain.CoalesceStr(qz.Topic, qz.Title),
		Difficulty: string(qz.Difficulty),
		Count:      count,
	})
	if err != nil {
		return nil, err
	}
	for _, q := range questions {
		if q.ID == "" {
			q.ID = uuid.New().String()
		}
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txQuizzes := repository.NewSQLiteQuizRepo(tx)
		for _, q := range questions {
			if err := txQuizzes.AddQuestion(ctx, quizID, q); err != nil {
				return fmt.Errorf("saving generated question: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["saved"] = len(questions)
	return questions, nil
}

func (s *quizService) RecordResult(ctx context.Context, userID, quizID string, percent int) (res *domain.QuizResult, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"quiz_id": quizID, "score": percent}
	defer func() { observe(ctx, s.observer, "record-quiz-result", startedAt, fields, err) }()

	if percent < 0 || percent > 100 {
		return nil, fmt.Errorf("score %d is outside 0-100", percent)
	}
	title := domain.UnknownQuizTitle
	qz, err := s.quizzes.GetByID(ctx, quizID)
	switch {
	case err == nil:
		title = qz.Title
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	res = &domain.QuizResult{
		ID:        uuid.New().String(),
		UserID:    userID,
		QuizID:    quizID,
		QuizTitle: title,
		Score:     percent,
		TakenAt:   time.Now().UTC(),
	}
	if err = s.results.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *quizService) History(ctx context.Context, userID string) ([]*domain.QuizResult, error) {
	return s.results.ListByUser(ctx, userID)
}

// SessionQuestions converts stored questions for a quiz session.
func SessionQuestions(qs []*quiz.Question) []quiz.Question {
	out := make([]quiz.Question, len(qs))
	for i, q := range qs {
		out[i] = *q
	}
	return out
}
