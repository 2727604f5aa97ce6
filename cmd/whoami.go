package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, creds, client, err := newClient()
		if err != nil {
			return err
		}
		if !creds.SignedIn() {
			return fmt.Errorf("not signed in - run `mbot login` first")
		}

		user, err := client.CurrentUser(context.Background())
		if err != nil {
			return fmt.Errorf("could not fetch account: %w", err)
		}

		name := user.ScreenName
		if name == "" {
			name = user.Name
		}
		fmt.Printf("%s <%s>\n", name, user.Email)
		if user.Pronouns != "" {
			fmt.Printf("  pronouns:   %s\n", user.Pronouns)
		}
		if user.FocusArea != "" {
			fmt.Printf("  focus:      %s\n", user.FocusArea)
		}
		if user.IdentityGoals != "" {
			goals := strings.ReplaceAll(user.IdentityGoals, "\n", " ")
			fmt.Printf("  goals:      %s\n", goals)
		}

		if health, err := client.Health(context.Background()); err == nil {
			fmt.Printf("  server:     %s (%s)\n", health.Status, health.Version)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
