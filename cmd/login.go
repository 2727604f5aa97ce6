package cmd

import (
	"context"
	"fmt"
	"strings"

	huh "charm.land/huh/v2"
	"github.com/spf13/cobra"
)

var loginEmail string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the M backend",
	Long: `Sign in with your email and password. The bearer token is stored in
~/.mbot/token and used by every subsequent command.

Accounts created through Google sign-in cannot authenticate from the
terminal; use the web client's Google flow once to set a password.`,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Account email")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	cfg, _, client, err := newClient()
	if err != nil {
		return err
	}

	email := strings.TrimSpace(loginEmail)
	var password string

	var fields []huh.Field
	if email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Value(&email).
			Validate(validateEmail))
	}
	fields = append(fields, huh.NewInput().
		Title("Password").
		EchoMode(huh.EchoModePassword).
		Value(&password))

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return err
	}

	result, err := client.Login(context.Background(), strings.TrimSpace(email), password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	cfg.SetUserID(result.UserID)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("login succeeded but saving config failed: %w", err)
	}

	name := result.ScreenName
	if name == "" {
		name = result.Name
	}
	if name == "" {
		name = result.Email
	}
	fmt.Printf("Signed in as %s. Run `mbot` to start chatting with M.\n", name)
	return nil
}

func validateEmail(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || !strings.Contains(s, "@") {
		return fmt.Errorf("enter a valid email address")
	}
	return nil
}

// googleCmd prints the browser URL for Google sign-in; the terminal cannot
// host the OAuth redirect itself.
var googleCmd = &cobra.Command{
	Use:   "google-login",
	Short: "Print the Google sign-in URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, _, client, err := newClient()
		if err != nil {
			return err
		}
		fmt.Printf("Open this URL in your browser to sign in with Google:\n\n  %s\n\nThen set a password in the web client to use mbot login.\n", client.GoogleLoginURL())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(googleCmd)
}
