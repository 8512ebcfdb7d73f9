package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/gas/history"
	"github.com/randalmurphal/gas/pr"
	"github.com/randalmurphal/gas/prompt"
)

func newPRCmd(app *App) *cobra.Command {
	var (
		base  string
		draft bool
	)

	cmd := &cobra.Command{
		Use:   "pr",
		Short: "Open a pull request with a generated title and description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPR(cmd, app, base, draft)
		},
	}

	cmd.Flags().StringVar(&base, "base", "main", "target branch")
	cmd.Flags().BoolVar(&draft, "draft", false, "open as a draft")

	return cmd
}

func runPR(cmd *cobra.Command, app *App, base string, draft bool) error {
	gitCtx, err := app.GitContext()
	if err != nil {
		return err
	}

	branch, err := gitCtx.CurrentBranch()
	if err != nil {
		return fmt.Errorf("detect current branch: %w", err)
	}
	if branch == base {
		return fmt.Errorf("already on %s, switch to a feature branch first", base)
	}

	diff, err := gitCtx.Diff(base, "HEAD")
	if err != nil {
		return fmt.Errorf("diff against %s: %w", base, err)
	}
	if strings.TrimSpace(diff) == "" {
		app.Console.Warnf("No changes between %s and %s", base, branch)
		return nil
	}

	cur := app.Config.Current()
	p, err := app.Prompts.PR(prompt.Vars{
		Changes:  diff,
		Language: cur.User.Language,
		Branch:   branch,
		Base:     base,
	})
	if err != nil {
		return fmt.Errorf("build prompt: %w", err)
	}

	gen, err := app.Generator()
	if err != nil {
		return err
	}
	generated, err := gen.Generate(cmd.Context(), p)
	if err != nil {
		return fmt.Errorf("generate description: %w", err)
	}

	title, body := splitTitleBody(generated)

	remoteURL, err := gitCtx.GetRemoteURL("origin")
	if err != nil {
		return fmt.Errorf("detect remote: %w", err)
	}
	provider, err := app.NewProvider(remoteURL)
	if err != nil {
		return err
	}

	created, err := provider.CreatePR(cmd.Context(), pr.Options{
		Title: title,
		Body:  body,
		Base:  base,
		Head:  branch,
		Draft: draft,
	})
	if err != nil {
		return err
	}

	app.Console.Successf("Opened %s", created.URL)
	app.recordHistory(history.KindPR, branch, generated)
	return nil
}

// splitTitleBody treats the first non-empty line of generated text as
// the PR title and the remainder as the body.
func splitTitleBody(generated string) (title, body string) {
	lines := strings.Split(strings.TrimSpace(generated), "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		title = strings.TrimSpace(line)
		body = strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
		return title, body
	}
	return strings.TrimSpace(generated), ""
}
