// Package flashcard navigates a deck of two-sided study cards.
package flashcard

import "math/rand/v2"

// Card is one study card.
type Card struct {
	ID      string
	Front   string
	Back    string
	Starred bool
}

// Player holds the position within a deck and which side is showing.
type Player struct {
	cards   []Card
	index   int
	flipped bool
}

// NewPlayer starts at the first card, front side up.
func NewPlayer(cards []Card) *Player {
	return &Player{cards: cards}
}

// Len is the number of cards in the deck.
func (p *Player) Len() int { return len(p.cards) }

// Index is the zero-based position of the current card.
func (p *Player) Index() int { return p.index }

// Flipped reports whether the back of the current card is showing.
func (p *Player) Flipped() bool { return p.flipped }

// Current returns the card being shown. ok is false for an empty deck.
func (p *Player) Current() (Card, bool) {
	if len(p.cards) == 0 {
		return Card{}, false
	}
	return p.cards[p.index], true
}

// Next moves forward, wrapping from the last card to the first.
func (p *Player) Next() {
	if len(p.cards) == 0 {
		return
	}
	p.index = (p.index + 1) % len(p.cards)
	p.flipped = false
}

// Prev moves back, wrapping from the first card to the last.
func (p *Player) Prev() {
	if len(p.cards) == 0 {
		return
	}
	p.index = (p.index - 1 + len(p.cards)) % len(p.cards)
	p.flipped = false
}

// Flip toggles the visible side.
func (p *Player) Flip() {
	if len(p.cards) == 0 {
		return
	}
	p.flipped = !p.flipped
}

// Shuffle reorders the deck and returns to the first card, front up.
func (p *Player) Shuffle() {
	shuffled := make([]Card, len(p.cards))
	copy(shuffled, p.cards)
	rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	p.cards = shuffled
	p.index = 0
	p.flipped = false
}

// Starred narrows a deck to starred cards only.
func Starred(cards []Card) []Card {
	var out []Card
	for _, c := range cards {
		if c.Starred {
			out = append(out, c)
		}
	}
	return out
}
