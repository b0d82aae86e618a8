package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func logoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and discard stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Local credentials are cleared even when the server call
			// fails; the operator is logged out either way.
			if err := app.Client.Logout(cmd.Context()); err != nil {
				cmd.Printf("Logged out locally (server logout failed: %v)\n", err)
				return nil
			}
			cmd.Println("Logged out.")
			return nil
		},
	}
}

func meCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the authenticated admin profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.Client.Me(cmd.Context())
			if err != nil {
				return err
			}
			cmd.Printf("%s <%s>\n", profile.FullName, profile.Email)
			cmd.Printf("role: %s, active: %s\n", profile.Role, yesNo(profile.IsActive))
			return nil
		},
	}
}

func statusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show local session state without calling the API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Printf("API: %s\n", app.Config.APIBaseURL)
			if app.Store.IsAuthenticated() {
				cmd.Println("Session: valid access token present.")
				return nil
			}
			if _, ok := app.Store.RefreshToken(); ok {
				cmd.Println("Session: access token expired, refresh token present.")
				return nil
			}
			cmd.Println("Session: not logged in.")
			return nil
		},
	}
}

func keepaliveCmd(app *App) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "keepalive",
		Short: "Keep the session fresh until interrupted",
		Long: text(`
			Runs in the foreground and refreshes the token pair shortly
			before it expires, so scripts sharing the credential store
			never hit an expired session. Stop with Ctrl-C.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := app.Store.RefreshToken(); !ok {
				return fmt.Errorf("not logged in")
			}

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				return app.Client.KeepSessionAlive(ctx, interval)
			})
			if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 5*time.Minute, "How often to check token expiry")

	return cmd
}
