package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/readynurse/internal/cli/formatter"
	"github.com/alexanderramin/readynurse/internal/game"
	"github.com/alexanderramin/readynurse/internal/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newGameCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Timed NCLEX mini-games",
	}

	cmd.AddCommand(
		newGameListCmd(),
		newGamePlayCmd(app),
	)

	return cmd
}

func newGameListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the games",
		RunE: func(cmd *cobra.Command, args []string) error {
			headers := []string{"ID", "GAME", "TIMER", "COINS"}
			rows := make([][]string, 0, len(game.Variants))
			for _, v := range game.Variants {
				timer := formatter.Dim("none")
				if v.TimeLimit > 0 {
					timer = v.TimeLimit.String()
				}
				rows = append(rows, []string{
					string(v.ID),
					formatter.Bold(v.Name),
					timer,
					fmt.Sprintf("1 per %d points", v.CoinDivisor),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("Games", formatter.RenderTable(headers, rows)))
			return nil
		},
	}
}

func newGamePlayCmd(app *App) *cobra.Command {
	var patient string

	cmd := &cobra.Command{
		Use:       "play <game-id>",
		Short:     "Play a game",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(game.DrugDashID), string(game.VitalsCrisisID), string(game.MedTermMayhemID)},
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := newGameSession(cmd, app, args[0], patient)
			if err != nil {
				return err
			}
			if !app.interactive() {
				return errNeedsTerminal
			}
			_, err = runProgram(cmd, newGameModel(cmd.Context(), app.logger(), session))
			return err
		},
	}

	cmd.Flags().StringVar(&patient, "patient", string(game.Adult), "Patient type for Vital Signs Crisis: adult or pediatric")

	return cmd
}

// newGameSession wires a session to the content source and, when the user has
// a profile, to the reward reporter.
func newGameSession(cmd *cobra.Command, app *App, gameID, patient string) (*game.Session, error) {
	v, err := game.Lookup(gameID)
	if err != nil {
		return nil, err
	}
	pt, ok := game.ParsePatientType(patient)
	if !ok {
		return nil, fmt.Errorf("unknown patient type %q (want adult or pediatric)", patient)
	}
	if app.Games == nil {
		return nil, fmt.Errorf("%w: set READYNURSE_LLM_ENABLED=true", service.ErrGenerationDisabled)
	}
	src, err := app.Games.SourceFor(v, pt)
	if err != nil {
		return nil, err
	}

	opts := []game.Option{game.WithReporter(app.Rewards)}
	profile, err := app.Profiles.Get(cmd.Context(), app.UserID)
	switch {
	case err == nil:
		opts = append(opts, game.WithPlayer(service.PlayerFor(profile)))
	case errors.Is(err, service.ErrNoProfile):
		fmt.Fprintln(cmd.ErrOrStderr(), formatter.Dim("Playing as guest: create a profile to earn coins and leaderboard spots."))
	default:
		return nil, err
	}
	app.logger().Debug("starting game", zap.String("game", string(v.ID)), zap.String("patient", string(pt)))
	return game.NewSession(v, src, opts...), nil
}
