package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/readynurse/internal/cli/formatter"
	"github.com/alexanderramin/readynurse/internal/domain"
	"github.com/alexanderramin/readynurse/internal/flashcard"
	"github.com/alexanderramin/readynurse/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var errNeedsTerminal = errors.New("this command needs an interactive terminal")

func newDeckCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deck",
		Short: "Manage and study flashcard decks",
	}

	cmd.AddCommand(
		newDeckCreateCmd(app),
		newDeckListCmd(app),
		newDeckCardsCmd(app),
		newDeckAddCardCmd(app),
		newDeckStarCmd(app),
		newDeckGenerateCmd(app),
		newDeckDeleteCmd(app),
		newDeckStudyCmd(app),
	)

	return cmd
}

func newDeckCreateCmd(app *App) *cobra.Command {
	var subject, topic, difficulty, description string

	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a flashcard deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := &domain.Deck{
				UserID:      app.UserID,
				Title:       args[0],
				Subject:     subject,
				Topic:       topic,
				Description: description,
			}
			if difficulty != "" {
				diff, err := domain.ParseDifficulty(difficulty, domain.DeckDifficulties)
				if err != nil {
					return err
				}
				d.Difficulty = diff
			}
			if err := app.Decks.Create(cmd.Context(), d); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created deck %s [%s]\n", d.Title, d.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Subject, e.g. Pharmacology")
	cmd.Flags().StringVar(&topic, "topic", "", "Topic used when generating cards")
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Easy, Medium or Hard (default Medium)")
	cmd.Flags().StringVar(&description, "description", "", "Short description")

	return cmd
}

func newDeckListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List your decks",
		RunE: func(cmd *cobra.Command, args []string) error {
			decks, err := app.Decks.List(cmd.Context(), app.UserID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatDeckList(decks))
			return nil
		},
	}
}

func newDeckCardsCmd(app *App) *cobra.Command {
	var starred bool

	cmd := &cobra.Command{
		Use:   "cards <deck-id>",
		Short: "List the cards in a deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveDeckID(ctx, app, args[0])
			if err != nil {
				return err
			}
			deck, err := app.Decks.GetByID(ctx, id)
			if err != nil {
				return err
			}
			cards, err := app.Decks.Cards(ctx, id, starred)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCardList(deck, cards))
			return nil
		},
	}

	cmd.Flags().BoolVar(&starred, "starred", false, "Only starred cards")

	return cmd
}

func newDeckAddCardCmd(app *App) *cobra.Command {
	var front, back string

	cmd := &cobra.Command{
		Use:   "add-card <deck-id>",
		Short: "Add a card to a deck",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveDeckID(ctx, app, args[0])
			if err != nil {
				return err
			}
			card := &domain.Flashcard{DeckID: id, Front: front, Back: back}
			if err := app.Decks.AddCard(ctx, card); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added card %s\n", card.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&front, "front", "", "Front text (term or question)")
	cmd.Flags().StringVar(&back, "back", "", "Back text (definition or answer)")
	_ = cmd.MarkFlagRequired("front")
	_ = cmd.MarkFlagRequired("back")

	return cmd
}

func newDeckStarCmd(app *App) *cobra.Command {
	var off bool

	cmd := &cobra.Command{
		Use:   "star <card-id>",
		Short: "Star a card for focused review",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Decks.SetStarred(cmd.Context(), args[0], !off); err != nil {
				return err
			}
			if off {
				fmt.Fprintln(cmd.OutOrStdout(), "Card unstarred.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Card starred.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&off, "off", false, "Remove the star instead")

	return cmd
}

func newDeckGenerateCmd(app *App) *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "generate <deck-id>",
		Short: "Generate cards for a deck with the content model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveDeckID(ctx, app, args[0])
			if err != nil {
				return err
			}
			stop := app.spin(cmd, "Generating cards…")
			cards, err := app.Decks.Generate(ctx, id, count)
			stop()
			if err != nil {
				if errors.Is(err, service.ErrGenerationDisabled) {
					return fmt.Errorf("%w: set READYNURSE_LLM_ENABLED=true", err)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d cards.\n", len(cards))
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 10, "Number of cards to generate")

	return cmd
}

func newDeckDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <deck-id>",
		Short: "Delete a deck and its cards",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveDeckID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Decks.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deck deleted.")
			return nil
		},
	}
}

func newDeckStudyCmd(app *App) *cobra.Command {
	var starred, shuffle bool

	cmd := &cobra.Command{
		Use:   "study <deck-id>",
		Short: "Study a deck card by card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveDeckID(ctx, app, args[0])
			if err != nil {
				return err
			}
			deck, err := app.Decks.GetByID(ctx, id)
			if err != nil {
				return err
			}
			cards, err := app.Decks.Cards(ctx, id, starred)
			if err != nil {
				return err
			}
			if len(cards) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No cards to study.")
				return nil
			}
			if !app.interactive() {
				return errNeedsTerminal
			}

			player := flashcard.NewPlayer(service.PlayerCards(cards))
			if shuffle {
				player.Shuffle()
			}
			_, err = runProgram(cmd, newStudyModel(ctx, app, deck.Title, player))
			return err
		},
	}

	cmd.Flags().BoolVar(&starred, "starred", false, "Only starred cards")
	cmd.Flags().BoolVar(&shuffle, "shuffle", false, "Shuffle before starting")

	return cmd
}

// runProgram runs a full-screen model on the command's streams.
func runProgram(cmd *cobra.Command, m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(m,
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)
	return p.Run()
}
