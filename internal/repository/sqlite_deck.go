package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/readynurse/internal/db"
	"github.com/alexanderramin/readynurse/internal/domain"
)

// SQLiteDeckRepo implements DeckRepo using a SQLite database.
type SQLiteDeckRepo struct {
	db db.DBTX
}

// NewSQLiteDeckRepo creates a new SQLiteDeckRepo.
func NewSQLiteDeckRepo(conn db.DBTX) *SQLiteDeckRepo {
	return &SQLiteDeckRepo{db: conn}
}

const deckColumns = `id, user_id, title, subject, topic, difficulty, description, card_count, created_at, updated_at`

func (r *SQLiteDeckRepo) Create(ctx context.Context, d *domain.Deck) error {
	query := `INSERT INTO decks (` + deckColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		d.ID,
		d.UserID,
		d.Title,
		d.Subject,
		d.Topic,
		string(d.Difficulty),
		d.Description,
		d.CardCount,
		d.CreatedAt.UTC().Format(time.RFC3339),
		d.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting deck: %w", err)
	}
	return nil
}

func (r *SQLiteDeckRepo) GetByID(ctx context.Context, id string) (*domain.Deck, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+deckColumns+` FROM decks WHERE id = ?`, id)
	d, err := scanDeck(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("deck %s: %w", id, ErrNotFound)
	}
	return d, err
}

func (r *SQLiteDeckRepo) List(ctx context.Context, userID string) ([]*domain.Deck, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+deckColumns+` FROM decks WHERE user_id = ? ORDER BY created_at DESC, title`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing decks: %w", err)
	}
	defer rows.Close()

	var decks []*domain.Deck
	for rows.Next() {
		d, err := scanDeck(rows)
		if err != nil {
			return nil, err
		}
		decks = append(decks, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating decks: %w", err)
	}
	return decks, nil
}

func (r *SQLiteDeckRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM decks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting deck: %w", err)
	}
	return requireAffected(res, "deck "+id)
}

func (r *SQLiteDeckRepo) AddCard(ctx context.Context, c *domain.Flashcard) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE decks SET card_count = card_count + 1, updated_at = ? WHERE id = ?`, nowUTC(), c.DeckID)
	if err != nil {
		return fmt.Errorf("bumping card count: %w", err)
	}
	if err := requireAffected(res, "deck "+c.DeckID); err != nil {
		return err
	}

	query := `INSERT INTO flashcards (id, deck_id, front, back, starred, seq, created_at)
		VALUES (?, ?, ?, ?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM flashcards WHERE deck_id = ?), ?)`
	_, err = r.db.ExecContext(ctx, query,
		c.ID,
		c.DeckID,
		c.Front,
		c.Back,
		boolToInt(c.Starred),
		c.DeckID,
		c.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting flashcard: %w", err)
	}
	return nil
}

func (r *SQLiteDeckRepo) ListCards(ctx context.Context, deckID string) ([]*domain.Flashcard, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, deck_id, front, back, starred, created_at FROM flashcards WHERE deck_id = ? ORDER BY seq`, deckID)
	if err != nil {
		return nil, fmt.Errorf("listing flashcards: %w", err)
	}
	defer rows.Close()

	var cards []*domain.Flashcard
	for rows.Next() {
		var c domain.Flashcard
		var starred int
		var created string
		if err := rows.Scan(&c.ID, &c.DeckID, &c.Front, &c.Back, &starred, &created); err != nil {
			return nil, fmt.Errorf("scanning flashcard: %w", err)
		}
		c.Starred = intToBool(starred)
		c.CreatedAt = parseTime(created)
		cards = append(cards, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating flashcards: %w", err)
	}
	return cards, nil
}

func (r *SQLiteDeckRepo) SetStarred(ctx context.Context, cardID string, starred bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE flashcards SET starred = ? WHERE id = ?`, boolToInt(starred), cardID)
	if err != nil {
		return fmt.Errorf("starring flashcard: %w", err)
	}
	return requireAffected(res, "flashcard "+cardID)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDeck(s rowScanner) (*domain.Deck, error) {
	var d domain.Deck
	var difficulty, created, updated string
	err := s.Scan(
		&d.ID,
		&d.UserID,
		&d.Title,
		&d.Subject,
		&d.Topic,
		&difficulty,
		&d.Description,
		&d.CardCount,
		&created,
		&updated,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning deck: %w", err)
	}
	d.Difficulty = domain.Difficulty(difficulty)
	d.CreatedAt = parseTime(created)
	d.UpdatedAt = parseTime(updated)
	return &d, nil
}
