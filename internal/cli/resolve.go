package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/readynurse/internal/domain"
)

// resolveID matches input against ids: an exact match wins, otherwise a
// unique prefix is accepted.
func resolveID(what, input string, ids []string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("%s ID is required", what)
	}

	var matches []string
	for _, id := range ids {
		if id == input {
			return id, nil
		}
		if strings.HasPrefix(id, input) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%s not found: %q", what, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%s ID prefix %q is ambiguous (%d matches)", what, input, len(matches))
	}
}

func resolveDeckID(ctx context.Context, app *App, input string) (string, error) {
	decks, err := app.Decks.List(ctx, app.UserID)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(decks))
	for i, d := range decks {
		ids[i] = d.ID
	}
	return resolveID("deck", input, ids)
}

func resolveQuizID(ctx context.Context, app *App, input string) (string, error) {
	quizzes, err := app.Quizzes.List(ctx, app.UserID)
	if err != nil {
		return "", err
	}
	ids := make([]string, len(quizzes))
	for i, q := range quizzes {
		ids[i] = q.ID
	}
	return resolveID("quiz", input, ids)
}

func resolveGoalID(ctx context.Context, app *App, input string) (string, error) {
	board, err := app.Goals.Board(ctx, app.UserID)
	if err != nil {
		return "", err
	}
	var ids []string
	for _, group := range [][]*domain.Goal{board.Active, board.Completed, board.Expired} {
		for _, g := range group {
			ids = append(ids, g.ID)
		}
	}
	return resolveID("goal", input, ids)
}
