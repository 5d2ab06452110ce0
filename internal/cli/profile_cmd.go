package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/readynurse/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "View and edit your profile",
	}

	cmd.AddCommand(
		newProfileInitCmd(app),
		newProfileShowCmd(app),
		newProfileUpdateCmd(app),
		newProfileAvatarCmd(app),
	)

	return cmd
}

func newProfileInitCmd(app *App) *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.Ensure(cmd.Context(), app.UserID, name, email)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatProfile(p))
			if app.UserID == "" {
				fmt.Fprintf(out, "Your user ID is %s. Save it with:\n  export READYNURSE_USER_ID=%s\n", p.ID, p.ID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.Get(cmd.Context(), app.UserID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}
}

func newProfileUpdateCmd(app *App) *cobra.Command {
	var name, email, school, year string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update profile details",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			p, err := app.Profiles.Get(ctx, app.UserID)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("name") {
				p.Name = name
			}
			if flags.Changed("email") {
				p.Email = email
			}
			if flags.Changed("school") {
				p.School = school
			}
			if flags.Changed("year") {
				p.YearLevel = year
			}
			if err := app.Profiles.Update(ctx, p); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatProfile(p))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&school, "school", "", "Nursing school (blank resets to N/A)")
	cmd.Flags().StringVar(&year, "year", "", "Year level, e.g. \"2nd Year\"")

	return cmd
}

func newProfileAvatarCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "avatar <image-file>",
		Short: "Upload a custom profile picture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			info, err := f.Stat()
			if err != nil {
				return err
			}
			url, err := app.Profiles.UploadAvatar(cmd.Context(), app.UserID, filepath.Base(args[0]), f, info.Size())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Avatar updated: %s\n", url)
			return nil
		},
	}
}
