package cli

import (
	"fmt"

	"github.com/alexanderramin/readynurse/internal/cli/formatter"
	"github.com/alexanderramin/readynurse/internal/domain"
	"github.com/spf13/cobra"
)

func newShopCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Spend coins on borders, themes and features",
	}

	cmd.AddCommand(
		newShopListCmd(app),
		newShopBuyCmd(app),
		newShopEquipCmd(app),
	)

	return cmd
}

func newShopListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the catalogue",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Profiles.Get(ctx, app.UserID)
			if err != nil {
				return err
			}
			listings, err := app.Shop.Listings(ctx, app.UserID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatShop(p.Coins, listings))
			return nil
		},
	}
}

func newShopBuyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "buy <item-id>",
		Short: "Buy an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Shop.Buy(cmd.Context(), app.UserID, args[0])
			if err != nil {
				return err
			}
			item, _ := domain.LookupItem(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Unlocked %s. Balance: %s\n", item.Name, formatter.Coins(p.Coins))
			return nil
		},
	}
}

func newShopEquipCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "equip <item-id>",
		Short: "Equip an owned border or theme",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.Shop.Equip(cmd.Context(), app.UserID, args[0]); err != nil {
				return err
			}
			item, _ := domain.LookupItem(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Equipped %s.\n", item.Name)
			return nil
		},
	}
}
