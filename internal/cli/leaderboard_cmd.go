package cli

import (
	"fmt"

	"github.com/alexanderramin/readynurse/internal/cli/formatter"
	"github.com/alexanderramin/readynurse/internal/domain"
	"github.com/alexanderramin/readynurse/internal/game"
	"github.com/spf13/cobra"
)

func newLeaderboardCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:       "leaderboard <game-id>",
		Short:     "Show the top scores for a game",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(game.DrugDashID), string(game.VitalsCrisisID), string(game.MedTermMayhemID)},
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := game.Lookup(args[0])
			if err != nil {
				return err
			}
			entries, err := app.Leaderboard.Top(cmd.Context(), string(v.ID), limit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatLeaderboard(v, entries))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", domain.DefaultLeaderboardLimit, "Number of entries to show")

	return cmd
}
