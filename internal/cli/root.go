// Package cli implements the notes command-line interface.
//
// The CLI is a thin presentation layer: every command parses flags, calls
// one method on the API client, and renders the result. Validation runs
// client-side before the network is touched (signup), and auth state lives
// in the session store that gets wired in here, once, for all commands.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sakif/notekeeper/internal/client"
	"github.com/sakif/notekeeper/internal/config"
	"github.com/sakif/notekeeper/internal/session"
)

// app holds the dependencies every subcommand shares. It is populated in
// the root command's PersistentPreRunE, after flags are parsed, so that
// --base-url and --config take effect before any client exists.
type app struct {
	client  *client.Client
	session *session.Store

	baseURL    string // --base-url override, empty means use config
	configPath string // --config override, empty means default location
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	configPath := a.configPath
	if configPath == "" {
		configPath = os.Getenv("NOTEKEEPER_CONFIG")
	}

	cfg, err := config.LoadClient(configPath)
	if err != nil {
		return err
	}
	if a.baseURL != "" {
		cfg.BaseURL = a.baseURL
	}

	if cfg.TokenPath != "" {
		a.session = session.NewWithPath(cfg.TokenPath)
	} else {
		a.session, err = session.New()
		if err != nil {
			return err
		}
	}

	a.client = client.New(cfg.BaseURL, a.session)
	return nil
}

// NewRootCmd builds the full command tree. Separated from Execute so tests
// can run commands against a fresh tree with controlled arguments.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "notes",
		Short: "A note-taking client",
		Long: `notes keeps your notes on a notekeeper server.

Sign up once, log in, and your session persists across invocations
until you log out or it expires.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.baseURL, "base-url", "", "API server address (overrides config)")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to config file")

	root.AddCommand(
		newSignupCmd(a),
		newLoginCmd(a),
		newLogoutCmd(a),
		newProfileCmd(a),
		newListCmd(a),
		newCreateCmd(a),
		newUpdateCmd(a),
		newDeleteCmd(a),
	)

	return root
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// renderError turns client failures into the messages a person at a
// terminal should see. An expired session gets a hint instead of a bare
// server message — by the time we print this, the dead token is already
// cleared, so "log in again" is accurate.
func renderError(err error) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
		return fmt.Errorf("%s (your session has ended — run `notes login` to start a new one)", apiErr.Message)
	}
	return err
}
