package cli

import (
	"github.com/alexanderramin/readynurse/internal/cli/formatter"
	"github.com/alexanderramin/readynurse/internal/game"
	"github.com/alexanderramin/readynurse/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// GameSources builds the scenario source for a game. *content.Generator
// implements it.
type GameSources interface {
	SourceFor(v game.Variant, patient game.PatientType) (game.Source, error)
}

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Profiles    service.ProfileService
	Shop        service.ShopService
	Decks       service.DeckService
	Quizzes     service.QuizService
	Leaderboard service.LeaderboardService
	Goals       service.GoalService

	// Games is nil when content generation is disabled.
	Games   GameSources
	Rewards game.Reporter

	UserID string
	Log    *zap.Logger

	// IsInteractive reports whether full-screen views can be shown.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *zap.Logger {
	if a.Log == nil {
		return zap.NewNop()
	}
	return a.Log
}

// spin shows a spinner on stderr while a slow call runs. It is a no-op when
// output is not a terminal.
func (a *App) spin(cmd *cobra.Command, message string) func() {
	if !a.interactive() {
		return func() {}
	}
	return formatter.StartSpinner(cmd.ErrOrStderr(), message)
}

// NewRootCmd creates the top-level "readynurse" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "readynurse",
		Short:         "NCLEX study companion: flashcards, quizzes, dosage calculator and games",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&app.UserID, "user", app.UserID, "User ID to act as")

	root.AddCommand(
		newCalcCmd(app),
		newDeckCmd(app),
		newQuizCmd(app),
		newGameCmd(app),
		newLeaderboardCmd(app),
		newProfileCmd(app),
		newShopCmd(app),
		newGoalCmd(app),
	)

	return root
}
