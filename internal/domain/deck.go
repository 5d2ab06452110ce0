package domain

import (
	"fmt"
	"strings"
	"time"
)

type Deck struct {
	ID          string
	UserID      string
	Title       string
	Subject     string
	Topic       string
	Difficulty  Difficulty
	Description string
	CardCount   int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (d *Deck) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("deck title is required")
	}
	if _, err := ParseDifficulty(string(d.Difficulty), DeckDifficulties); err != nil {
		return err
	}
	return nil
}

type Flashcard struct {
	ID        string
	DeckID    string
	Front     string
	Back      string
	Starred   bool
	CreatedAt time.Time
}

func (c *Flashcard) Validate() error {
	if strings.TrimSpace(c.Front) == "" || strings.TrimSpace(c.Back) == "" {
		return fmt.Errorf("flashcard needs both a front and a back")
	}
	return nil
}
