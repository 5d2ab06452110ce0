package domain

import (
	"fmt"
	"strings"
	"time"
)

// UnknownQuizTitle labels results whose quiz no longer exists.
const UnknownQuizTitle = "Unknown Quiz"

type Quiz struct {
	ID            string
	UserID        string
	Title         string
	Topic         string
	Difficulty    Difficulty
	Description   string
	QuestionCount int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (q *Quiz) Validate() error {
	if strings.TrimSpace(q.Title) == "" {
		return fmt.Errorf("quiz title is required")
	}
	if _, err := ParseDifficulty(string(q.Difficulty), QuizDifficulties); err != nil {
		return err
	}
	return nil
}

type QuizResult struct {
	ID        string
	UserID    string
	QuizID    string
	QuizTitle string
	Score     int
	TakenAt   time.Time
}
