package repository

import (
	"context"

	"github.com/alexanderramin/readynurse/internal/domain"
	"github.com/alexanderramin/readynurse/internal/quiz"
)

type ProfileRepo interface {
	Create(ctx context.Context, p *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	Update(ctx context.Context, p *domain.Profile) error
	// IncrementCoins adds delta to the balance in a single statement.
	IncrementCoins(ctx context.Context, id string, delta int) error
	// SpendCoins subtracts amount only if the balance covers it.
	SpendCoins(ctx context.Context, id string, amount int) error
	Unlock(ctx context.Context, id string, kind domain.ItemKind, itemID string) error
}

type DeckRepo interface {
	Create(ctx context.Context, d *domain.Deck) error
	GetByID(ctx context.Context, id string) (*domain.Deck, error)
	List(ctx context.Context, userID string) ([]*domain.Deck, error)
	Delete(ctx context.Context, id string) error
	// AddCard appends a card and bumps the deck's card count.
	AddCard(ctx context.Context, c *domain.Flashcard) error
	ListCards(ctx context.Context, deckID string) ([]*domain.Flashcard, error)
	SetStarred(ctx context.Context, cardID string, starred bool) error
}

type QuizRepo interface {
	Create(ctx context.Context, q *domain.Quiz) error
	GetByID(ctx context.Context, id string) (*domain.Quiz, error)
	List(ctx context.Context, userID string) ([]*domain.Quiz, error)
	Delete(ctx context.Context, id string) error
	// AddQuestion appends a question and bumps the quiz's question count.
	AddQuestion(ctx context.Context, quizID string, q *quiz.Question) error
	ListQuestions(ctx context.Context, quizID string) ([]*quiz.Question, error)
}

type ResultRepo interface {
	Create(ctx context.Context, r *domain.QuizResult) error
	// ListByUser returns results newest first with quiz titles resolved.
	ListByUser(ctx context.Context, userID string) ([]*domain.QuizResult, error)
}

type LeaderboardRepo interface {
	// Submit records a score, keeping the best score per (game, user).
	Submit(ctx context.Context, e *domain.LeaderboardEntry) error
	Top(ctx context.Context, gameID string, limit int) ([]*domain.LeaderboardEntry, error)
}

type GoalRepo interface {
	Create(ctx context.Context, g *domain.Goal) error
	GetByID(ctx context.Context, id string) (*domain.Goal, error)
	List(ctx context.Context, userID string) ([]*domain.Goal, error)
	SetCompleted(ctx context.Context, id string, completed bool) error
	Delete(ctx context.Context, id string) error
}
