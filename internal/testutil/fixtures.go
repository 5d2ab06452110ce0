package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/readynurse/internal/domain"
	"github.com/alexanderramin/readynurse/internal/quiz"
	"github.com/google/uuid"
)

var fixtureCounter atomic.Int64

// Profile options
type ProfileOption func(*domain.Profile)

func WithCoins(n int) ProfileOption {
	return func(p *domain.Profile) {
		p.Coins = n
	}
}

func WithAvatarURL(url string) ProfileOption {
	return func(p *domain.Profile) {
		p.AvatarURL = url
	}
}

func NewTestProfile(name string, opts ...ProfileOption) *domain.Profile {
	now := time.Now().UTC()
	p := domain.NewProfile(uuid.New().String(), name, fmt.Sprintf("student%d@example.com", fixtureCounter.Add(1)))
	p.CreatedAt = now
	p.UpdatedAt = now
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Deck options
type DeckOption func(*domain.Deck)

func WithDeckUser(userID string) DeckOption {
	return func(d *domain.Deck) {
		d.UserID = userID
	}
}

func WithDeckTopic(subject, topic string) DeckOption {
	return func(d *domain.Deck) {
		d.Subject = subject
		d.Topic = topic
	}
}

func WithDeckCreatedAt(t time.Time) DeckOption {
	return func(d *domain.Deck) {
		d.CreatedAt = t
		d.UpdatedAt = t
	}
}

func NewTestDeck(title string, opts ...DeckOption) *domain.Deck {
	now := time.Now().UTC()
	d := &domain.Deck{
		ID:         uuid.New().String(),
		Title:      title,
		Subject:    "Nursing",
		Topic:      title,
		Difficulty: domain.DifficultyMedium,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func NewTestCard(deckID, front, back string) *domain.Flashcard {
	return &domain.Flashcard{
		ID:        uuid.New().String(),
		DeckID:    deckID,
		Front:     front,
		Back:      back,
		CreatedAt: time.Now().UTC(),
	}
}

// Quiz options
type QuizOption func(*domain.Quiz)

func WithQuizUser(userID string) QuizOption {
	return func(q *domain.Quiz) {
		q.UserID = userID
	}
}

func WithQuizDifficulty(d domain.Difficulty) QuizOption {
	return func(q *domain.Quiz) {
		q.Difficulty = d
	}
}

func NewTestQuiz(title string, opts ...QuizOption) *domain.Quiz {
	now := time.Now().UTC()
	q := &domain.Quiz{
		ID:         uuid.New().String(),
		Title:      title,
		Topic:      title,
		Difficulty: domain.DifficultyMedium,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// NewTestQuestion builds a single-answer question with one correct option.
func NewTestQuestion(text, correct string, incorrect ...string) *quiz.Question {
	if len(incorrect) == 0 {
		incorrect = []string{"None of the above"}
	}
	return &quiz.Question{
		ID:        uuid.New().String(),
		Type:      quiz.Single,
		Text:      text,
		Correct:   []string{correct},
		Incorrect: incorrect,
	}
}

// NewTestSATAQuestion builds a select-all-that-apply question.
func NewTestSATAQuestion(text string, correct, incorrect []string) *quiz.Question {
	return &quiz.Question{
		ID:        uuid.New().String(),
		Type:      quiz.Multi,
		Text:      text,
		Correct:   correct,
		Incorrect: incorrect,
	}
}

// Goal options
type GoalOption func(*domain.Goal)

func WithGoalType(t domain.GoalType) GoalOption {
	return func(g *domain.Goal) {
		g.Type = t
		g.EndDate = domain.DefaultGoalEnd(t, g.StartDate)
	}
}

func WithGoalDates(start, end time.Time) GoalOption {
	return func(g *domain.Goal) {
		g.StartDate = start
		g.EndDate = end
	}
}

func WithGoalUser(userID string) GoalOption {
	return func(g *domain.Goal) {
		g.UserID = userID
	}
}

func NewTestGoal(desc string, opts ...GoalOption) *domain.Goal {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	g := &domain.Goal{
		ID:          uuid.New().String(),
		Description: desc,
		Type:        domain.GoalWeekly,
		StartDate:   start,
		EndDate:     domain.DefaultGoalEnd(domain.GoalWeekly, start),
		CreatedAt:   now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
