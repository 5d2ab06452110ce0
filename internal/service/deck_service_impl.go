package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/readynurse/internal/content"
	"github.com/alexanderramin/readynurse/internal/db"
	"github.com/alexanderramin/readynurse/internal/domain"
	"github.com/alexanderramin/readynurse/internal/flashcard"
	"github.com/alexanderramin/readynurse/internal/repository"
	"github.com/google/uuid"
)

type deckService struct {
	decks     repository.DeckRepo
	uow       db.UnitOfWork
	generator ContentGenerator
	observer  UseCaseObserver
}

// NewDeckService returns a DeckService. generator may be nil when content
// generation is disabled.
func NewDeckService(decks repository.DeckRepo, uow db.UnitOfWork, generator ContentGenerator, observers ...UseCaseObserver) DeckService {
	return &deckService{
		decks:     decks,
		uow:       uow,
		generator: generator,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *deckService) Create(ctx context.Context, d *domain.Deck) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if d.Difficulty == "" {
		d.Difficulty = domain.DifficultyMedium
	}
	d.Title = strings.TrimSpace(d.Title)
	if err := d.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now
	d.CardCount = 0
	return s.decks.Create(ctx, d)
}

func (s *deckService) GetByID(ctx context.Context, id string) (*domain.Deck, error) {
	return s.decks.GetByID(ctx, id)
}

func (s *deckService) List(ctx context.Context, userID string) ([]*domain.Deck, error) {
	return s.decks.List(ctx, userID)
}

func (s *deckService) Delete(ctx context.Context, id string) error {
	return s.decks.Delete(ctx, id)
}

func (s *deckService) AddCard(ctx context.Context, c *domain.Flashcard) error {
	prepareCard(c)
	if err := c.Validate(); err != nil {
		return err
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteDeckRepo(tx).AddCard(ctx, c)
	})
}

func (s *deckService) Cards(ctx context.Context, deckID string, starredOnly bool) ([]*domain.Flashcard, error) {
	if _, err := s.decks.GetByID(ctx, deckID); err != nil {
		return nil, err
	}
	cards, err := s.decks.ListCards(ctx, deckID)
	if err != nil {
		return nil, err
	}
	if !starredOnly {
		return cards, nil
	}
	out := cards[:0]
	for _, c := range cards {
		if c.Starred {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *deckService) SetStarred(ctx context.Context, cardID string, starred bool) error {
	return s.decks.SetStarred(ctx, cardID, starred)
}

func (s *deckService) Generate(ctx context.Context, deckID string, count int) (cards []*domain.Flashcard, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"deck_id": deckID, "requested": count}
	defer func() { observe(ctx, s.observer, "generate-flashcards", startedAt, fields, err) }()

	if s.generator == nil {
		return nil, ErrGenerationDisabled
	}
	var deck *domain.Deck
	deck, err = s.decks.GetByID(ctx, deckID)
	if err != nil {
		return nil, err
	}

	var drafts []content.CardDraft
	drafts, err = s.generator.Flashcards(ctx, content.FlashcardRequest{
		Subject:    deck.Subject,
		Topic:      domain.CoalesceStr(deck.Topic, deck.Title),
		Difficulty: string(deck.Difficulty),
		Count:      count,
	})
	if err != nil {
		return nil, err
	}

	cards = make([]*domain.Flashcard, 0, len(drafts))
	for _, d := range drafts {
		c := &domain.Flashcard{DeckID: deckID, Front: d.Front, Back: d.Back}
		prepareCard(c)
		cards = append(cards, c)
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txDecks := repository.NewSQLiteDeckRepo(tx)
		for _, c := range cards {
			if err := txDecks.AddCard(ctx, c); err != nil {
				return fmt.Errorf("saving generated card: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["saved"] = len(cards)
	return cards, nil
}

func prepareCard(c *domain.Flashcard) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.Front = strings.TrimSpace(c.Front)
	c.Back = strings.TrimSpace(c.Back)
	c.CreatedAt = time.Now().UTC()
}

// PlayerCards converts stored cards for the flashcard player.
func PlayerCards(cards []*domain.Flashcard) []flashcard.Card {
	out := make([]flashcard.Card, len(cards))
	for i, c := range cards {
		out[i] = flashcard.Card{ID: c.ID, Front: c.Front, Back: c.Back, Starred: c.Starred}
	}
	return out
}
