// Package cmd provides Cobra CLI commands for dockit.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dockit/internal/cli"
	"github.com/bnema/dockit/internal/domain/build"
)

var (
	app     *cli.App
	rootCmd = &cobra.Command{
		Use:   "dockit",
		Short: "Inspect, script and host dock layouts",
		Long: `dockit - a docking layout engine with a terminal host.

Dock widgets live in tabbed dock areas arranged by splitters, float in
their own windows, or pin to auto-hide sidebars. Layouts serialize to a
versioned XML state that can be stored as named perspectives.

Use 'dockit tui' to host a layout interactively, 'dockit script run' to
build one from JavaScript, and the state and perspectives subcommands to
inspect and manage saved layouts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	rootCmd.Version = info.String()
	rootCmd.SetVersionTemplate("dockit {{.Version}}\n" + build.RepoURL() + "\n")
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// requireApp returns the app or an error when the pre-run hook was skipped.
func requireApp() (*cli.App, error) {
	app := GetApp()
	if app == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return app, nil
}
