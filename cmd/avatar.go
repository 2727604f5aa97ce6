package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var avatarCmd = &cobra.Command{
	Use:   "avatar <image-file>",
	Short: "Upload a profile picture",
	Long: `Upload an image file as your profile picture. The picture shows up in the
web client; the terminal client only stores its URL.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, creds, client, err := newClient()
		if err != nil {
			return err
		}
		if !creds.SignedIn() {
			return fmt.Errorf("not signed in - run `mbot login` first")
		}

		url, err := client.UploadProfilePicture(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("upload failed: %w", err)
		}
		fmt.Printf("Profile picture updated: %s\n", url)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(avatarCmd)
}
