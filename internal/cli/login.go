package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func loginCmd(app *App) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the admin API",
		Long: text(`
			Authenticates with your admin email and password. The issued
			access and refresh tokens are stored encrypted on disk and
			reused by every other command.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if email == "" {
				email = promptForInput("Email: ")
			}
			password := promptForPassword("Password: ")
			if email == "" || password == "" {
				return fmt.Errorf("email and password cannot be empty")
			}

			if err := app.Client.Login(cmd.Context(), email, password); err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			cmd.Println("Login successful.")
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Admin email (prompted if omitted)")

	return cmd
}

// promptForInput prompts the user for input and returns the trimmed string.
func promptForInput(prompt string) string {
	reader := bufio.NewReader(os.Stdin)
	fmt.Print(prompt)
	input, err := reader.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(input)
}

// promptForPassword prompts for a password without echoing it.
func promptForPassword(prompt string) string {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(password))
}
