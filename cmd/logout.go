package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and remove the stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, creds, client, err := newClient()
		if err != nil {
			return err
		}
		if !creds.SignedIn() {
			fmt.Println("Not signed in.")
			return nil
		}

		// The token is cleared locally even if the server call fails.
		if err := client.Logout(context.Background()); err != nil {
			fmt.Printf("Signed out locally (server logout failed: %v)\n", err)
			return nil
		}
		fmt.Println("Signed out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
