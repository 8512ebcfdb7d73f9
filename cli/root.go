package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the gas command tree around an App.
func NewRootCmd(app *App, version string) *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "gas",
		Short:   "Git AI Sidekick - your intelligent Git assistant",
		Long:    "gas reads Git diffs and uses an AI model to explain changes, write commit messages, and open pull requests.",
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(
		newExplainCmd(app),
		newCommitCmd(app),
		newConfigCmd(app),
		newHistoryCmd(app),
		newPRCmd(app),
	)

	return rootCmd
}

// Execute runs the CLI and returns the process exit code.
func Execute(version string) int {
	app, err := NewApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if err := NewRootCmd(app, version).Execute(); err != nil {
		app.Console.Errorf("%v", err)
		return 1
	}
	return 0
}
