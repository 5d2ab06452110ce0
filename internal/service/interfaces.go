package service

import (
	"context"
	"io"

	"github.com/alexanderramin/readynurse/internal/content"
	"github.com/alexanderramin/readynurse/internal/domain"
	"github.com/alexanderramin/readynurse/internal/quiz"
)

type ProfileService interface {
	// Ensure returns the profile for id, creating it with signup defaults
	// when it does not exist yet.
	Ensure(ctx context.Context, id, name, email string) (*domain.Profile, error)
	Get(ctx context.Context, id string) (*domain.Profile, error)
	Update(ctx context.Context, p *domain.Profile) error
	UploadAvatar(ctx context.Context, userID, filename string, r io.Reader, size int64) (string, error)
}

type ShopService interface {
	Listings(ctx context.Context, userID string) ([]Listing, error)
	Buy(ctx context.Context, userID, itemID string) (*domain.Profile, error)
	Equip(ctx context.Context, userID, itemID string) (*domain.Profile, error)
}

type DeckService interface {
	Create(ctx context.Context, d *domain.Deck) error
	GetByID(ctx context.Context, id string) (*domain.Deck, error)
	List(ctx context.Context, userID string) ([]*domain.Deck, error)
	Delete(ctx context.Context, id string) error
	AddCard(ctx context.Context, c *domain.Flashcard) error
	Cards(ctx context.Context, deckID string, starredOnly bool) ([]*domain.Flashcard, error)
	SetStarred(ctx context.Context, cardID string, starred bool) error
	// Generate asks the content model for count cards and appends them to the
	// deck in one transaction.
	Generate(ctx context.Context, deckID string, count int) ([]*domain.Flashcard, error)
}

type QuizService interface {
	Create(ctx context.Context, q *domain.Quiz) error
	GetByID(ctx context.Context, id string) (*domain.Quiz, error)
	List(ctx context.Context, userID string) ([]*domain.Quiz, error)
	Delete(ctx context.Context, id string) error
	AddQuestion(ctx context.Context, quizID string, q *quiz.Question) error
	Questions(ctx context.Context, quizID string) ([]*quiz.Question, error)
	Generate(ctx context.Context, quizID string, count int) ([]*quiz.Question, error)
	RecordResult(ctx context.Context, userID, quizID string, percent int) (*domain.QuizResult, error)
	History(ctx context.Context, userID string) ([]*domain.QuizResult, error)
}

type LeaderboardService interface {
	Top(ctx context.Context, gameID string, limit int) ([]*domain.LeaderboardEntry, error)
}

type GoalService interface {
	Add(ctx context.Context, g *domain.Goal) error
	Board(ctx context.Context, userID string) (*GoalBoard, error)
	Toggle(ctx context.Context, id string) (*domain.Goal, error)
	Delete(ctx context.Context, id string) error
}

// ContentGenerator produces study material. *content.Generator implements it.
type ContentGenerator interface {
	Flashcards(ctx context.Context, req content.FlashcardRequest) ([]content.CardDraft, error)
	QuizQuestions(ctx context.Context, req content.QuestionRequest) ([]*quiz.Question, error)
}

// AvatarStore saves profile pictures. *storage.S3Client implements it.
type AvatarStore interface {
	UploadAvatar(ctx context.Context, userID, filename string, r io.Reader, size int64) (string, error)
	// DeleteAvatar removes the picture behind a URL UploadAvatar returned.
	DeleteAvatar(ctx context.Context, url string) error
}
