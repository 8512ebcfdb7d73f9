package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/randalmurphal/gas/history"
	"github.com/randalmurphal/gas/prompt"
)

func newExplainCmd(app *App) *cobra.Command {
	var detailed bool

	cmd := &cobra.Command{
		Use:   "explain [file]",
		Short: "Explain Git diff changes in plain English",
		Long: `Explain Git diff changes in plain English.

Reads from stdin if no file is provided:

  git diff | gas explain

When run interactively without piped input, explains the working-tree
diff of the enclosing repository.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			diff, err := readDiffInput(app, args)
			if err != nil {
				return err
			}
			return runExplain(cmd, app, diff, detailed)
		},
	}

	cmd.Flags().BoolVar(&detailed, "detailed", false, "show detailed explanation")

	return cmd
}

func readDiffInput(app *App, args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read diff file: %w", err)
		}
		return string(data), nil
	}

	// Interactive terminal with nothing piped: fall back to the
	// working-tree diff.
	if f, ok := app.Stdin.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		gitCtx, err := app.GitContext()
		if err != nil {
			return "", err
		}
		return gitCtx.DiffWorking()
	}

	data, err := io.ReadAll(app.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func runExplain(cmd *cobra.Command, app *App, diff string, detailed bool) error {
	if strings.TrimSpace(diff) == "" {
		app.Console.Warnf("No changes to explain")
		return nil
	}

	cur := app.Config.Current()
	p, err := app.Prompts.Explain(prompt.Vars{
		Changes:  diff,
		Language: cur.User.Language,
		Detailed: detailed,
	})
	if err != nil {
		return fmt.Errorf("build prompt: %w", err)
	}

	gen, err := app.Generator()
	if err != nil {
		return err
	}
	explanation, err := gen.Generate(cmd.Context(), p)
	if err != nil {
		return fmt.Errorf("explain changes: %w", err)
	}

	app.Console.Panel("Changes Explained", explanation)
	app.recordHistory(history.KindExplain, "", explanation)
	return nil
}
