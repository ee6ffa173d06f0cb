// Package cli implements the frenchie command line.
package cli

import (
	"fmt"

	"github.com/example/frenchie/internal/config"
	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var (
	configDir   string
	memoryStore bool
	learnerName string
)

// app is built before the first command that needs it. Tests install their own.
var app *App

var rootCmd = &cobra.Command{
	Use:   "frenchie",
	Short: "Frenchie - spaced repetition for French vocabulary",
	Long: `Frenchie schedules French vocabulary reviews with the SM-2 algorithm.

Progress is stored per learner in SQLite, PostgreSQL or MySQL. Forgotten
words come back the same day, mastered words drift months apart.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "frenchie %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

// requireApp builds the App on first use
func requireApp() (*App, error) {
	if app != nil {
		return app, nil
	}
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, err
	}
	if learnerName != "" {
		cfg.Learner = learnerName
	}
	a, err := NewApp(cfg, memoryStore)
	if err != nil {
		return nil, err
	}
	app = a
	return app, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", ".", "Directory containing frenchie.yaml")
	rootCmd.PersistentFlags().BoolVar(&memoryStore, "memory", false, "Keep progress in memory only")
	rootCmd.PersistentFlags().StringVar(&learnerName, "learner", "", "Learner whose progress to use")
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command and releases the App afterwards.
func Execute() error {
	defer func() {
		if app != nil {
			app.Close()
			app = nil
		}
	}()
	return rootCmd.Execute()
}
