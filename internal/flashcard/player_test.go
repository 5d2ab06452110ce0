package flashcard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deck(n int) []Card {
	cards := make([]Card, n)
	for i := range cards {
		cards[i] = Card{ID: string(rune('a' + i)), Front: "front", Back: "back"}
	}
	return cards
}

func TestPlayer_NextWrapsModuloDeckSize(t *testing.T) {
	p := NewPlayer(deck(3))
	for i := 0; i < 7; i++ {
		p.Next()
	}
	assert.Equal(t, 7%3, p.Index())
}

func TestPlayer_PrevFromFirstWrapsToLast(t *testing.T) {
	p := NewPlayer(deck(4))
	p.Prev()
	assert.Equal(t, 3, p.Index())
	c, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, "d", c.ID)
}

func TestPlayer_NavigationUnflips(t *testing.T) {
	p := NewPlayer(deck(2))
	p.Flip()
	require.True(t, p.Flipped())
	p.Next()
	assert.False(t, p.Flipped())

	p.Flip()
	p.Prev()
	assert.False(t, p.Flipped())
}

func TestPlayer_FlipToggles(t *testing.T) {
	p := NewPlayer(deck(1))
	p.Flip()
	p.Flip()
	assert.False(t, p.Flipped())
}

func TestPlayer_EmptyDeckIsInert(t *testing.T) {
	p := NewPlayer(nil)
	p.Next()
	p.Prev()
	p.Flip()
	p.Shuffle()
	_, ok := p.Current()
	assert.False(t, ok)
	assert.Equal(t, 0, p.Index())
	assert.False(t, p.Flipped())
}

func TestPlayer_ShuffleKeepsCardsAndResets(t *testing.T) {
	original := deck(10)
	p := NewPlayer(original)
	p.Next()
	p.Flip()
	p.Shuffle()

	assert.Equal(t, 0, p.Index())
	assert.False(t, p.Flipped())

	var ids []string
	for i := 0; i < p.Len(); i++ {
		c, _ := p.Current()
		ids = append(ids, c.ID)
		p.Next()
	}
	var want []string
	for _, c := range original {
		want = append(want, c.ID)
	}
	assert.ElementsMatch(t, want, ids)
	assert.Equal(t, "a", original[0].ID, "caller slice untouched")
}

func TestStarred(t *testing.T) {
	cards := deck(3)
	cards[1].Starred = true
	got := Starred(cards)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}
