package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/readynurse/internal/cli/formatter"
	"github.com/alexanderramin/readynurse/internal/domain"
	"github.com/spf13/cobra"
)

const dateLayout = "2006-01-02"

func newGoalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Track study goals",
	}

	cmd.AddCommand(
		newGoalAddCmd(app),
		newGoalListCmd(app),
		newGoalToggleCmd(app),
		newGoalDeleteCmd(app),
	)

	return cmd
}

func newGoalAddCmd(app *App) *cobra.Command {
	var typ, start, end string

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Add a study goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g := &domain.Goal{
				UserID:      app.UserID,
				Description: args[0],
				Type:        domain.GoalType(typ),
			}
			if start != "" {
				t, err := time.Parse(dateLayout, start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				g.StartDate = t
			}
			if end != "" {
				t, err := time.Parse(dateLayout, end)
				if err != nil {
					return fmt.Errorf("invalid end date %q: %w", end, err)
				}
				g.EndDate = t
			}
			if err := app.Goals.Add(cmd.Context(), g); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s goal due %s [%s]\n", g.Type, g.EndDate.Format(dateLayout), g.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&typ, "type", "", "daily, weekly, monthly or custom (default weekly)")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD, default from type)")

	return cmd
}

func newGoalListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals by status",
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := app.Goals.Board(cmd.Context(), app.UserID)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatGoalBoard(board, time.Now()))
			return nil
		},
	}
}

func newGoalToggleCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <goal-id>",
		Short: "Mark a goal done, or undo it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}
			g, err := app.Goals.Toggle(ctx, id)
			if err != nil {
				return err
			}
			if g.Completed {
				fmt.Fprintf(cmd.OutOrStdout(), "Completed: %s\n", g.Description)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Reopened: %s\n", g.Description)
			}
			return nil
		},
	}
}

func newGoalDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <goal-id>",
		Short: "Delete a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveGoalID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Goals.Delete(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Goal deleted.")
			return nil
		},
	}
}
