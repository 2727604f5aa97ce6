package cmd

import (
	"context"
	"fmt"
	"strings"

	huh "charm.land/huh/v2"
	"github.com/spf13/cobra"
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create a new account",
	RunE:  runSignup,
}

func init() {
	rootCmd.AddCommand(signupCmd)
}

func runSignup(cmd *cobra.Command, args []string) error {
	_, _, client, err := newClient()
	if err != nil {
		return err
	}

	var email, name, password, confirm string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Email").
			Value(&email).
			Validate(validateEmail),
		huh.NewInput().
			Title("Name").
			Value(&name),
		huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(&password).
			Validate(func(s string) error {
				if len(s) < 8 {
					return fmt.Errorf("password must be at least 8 characters")
				}
				return nil
			}),
		huh.NewInput().
			Title("Confirm password").
			EchoMode(huh.EchoModePassword).
			Value(&confirm),
	))
	if err := form.Run(); err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	if err := client.Signup(context.Background(), strings.TrimSpace(email), password, strings.TrimSpace(name)); err != nil {
		return fmt.Errorf("signup failed: %w", err)
	}

	fmt.Println("Account created. Run `mbot login` to sign in.")
	return nil
}
