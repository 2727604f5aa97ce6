// Package cmd wires the command-line interface: the TUI itself plus the
// account commands (login, signup, logout, whoami) that run outside it.
package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/Salman1205/M-bot/internal/api"
	"github.com/Salman1205/M-bot/internal/app"
	"github.com/Salman1205/M-bot/internal/auth"
	"github.com/Salman1205/M-bot/internal/config"
	"github.com/Salman1205/M-bot/internal/demo"
	"github.com/Salman1205/M-bot/internal/logger"
)

var (
	debugMode             bool
	demoMode              bool
	serverOverride        string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "mbot",
	Short: "Terminal client for M, your identity mentor",
	Long: `mbot is a terminal client for M, an AI identity mentor.
Chat with M, revisit past conversations, and track your mood and growth
over time - all without leaving the terminal.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&serverOverride, "server", "", "Backend origin (overrides config)")
	rootCmd.Flags().BoolVar(&demoMode, "demo", false, "Run against a built-in demo backend (no server needed)")
}

func initLogging() {
	logger.SetDebug(debugMode)
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("mbot %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("mbot %s\n", version)
}

// newClient loads config and credentials and builds the API client shared by
// all commands.
func newClient() (*config.Config, *auth.Store, *api.Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error loading config: %w", err)
	}
	if serverOverride != "" {
		cfg.SetServerURL(serverOverride)
	}

	creds, err := auth.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error loading credentials: %w", err)
	}

	return cfg, creds, api.New(cfg.GetServerURL(), creds), nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, creds, client, err := newClient()
	if err != nil {
		return err
	}

	var backend app.Backend = client
	if demoMode {
		backend = demo.New()
	} else if !creds.SignedIn() {
		return fmt.Errorf("not signed in - run `mbot login` first")
	}

	defer logger.Close()

	m := app.New(cfg, backend, version)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
