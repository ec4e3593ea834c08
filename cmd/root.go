package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/intervu/intervu/internal/app"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "intervu",
	Short: "AI-powered interview assistant CLI",
	Long: `Intervu conducts automated, timed technical interviews in your terminal.
It collects a candidate profile (optionally from a resume), asks six timed
questions, scores the answers, and lets you review every session from an
interviewer dashboard.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}
		cmd.SetContext(app.NewContext(cmd.Context(), application))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if application := app.FromContext(cmd.Context()); application != nil {
			application.Close()
		}
	},
}

// Execute runs the root command
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// mustApp pulls the App out of the command context. PersistentPreRunE has
// already run by the time any subcommand executes.
func mustApp(cmd *cobra.Command) *app.App {
	a := app.FromContext(cmd.Context())
	if a == nil {
		fmt.Fprintln(os.Stderr, "application not initialized")
		os.Exit(1)
	}
	return a
}
