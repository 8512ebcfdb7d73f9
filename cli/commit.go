package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/gas/git"
	"github.com/randalmurphal/gas/history"
	"github.com/randalmurphal/gas/prompt"
)

// Conventional commit types accepted by --type.
var commitTypes = []string{"feat", "fix", "docs", "style", "refactor", "test", "chore"}

func newCommitCmd(app *App) *cobra.Command {
	var (
		commitType string
		edit       bool
		noEdit     bool
		yes        bool
	)

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Generate a commit message based on staged changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if commitType != "" && !validCommitType(commitType) {
				return fmt.Errorf("invalid commit type %q (one of: %s)", commitType, strings.Join(commitTypes, ", "))
			}
			return runCommit(cmd, app, commitType, edit && !noEdit, yes)
		},
	}

	cmd.Flags().StringVarP(&commitType, "type", "t", "", "type of change (conventional commits)")
	cmd.Flags().BoolVar(&edit, "edit", true, "open editor before committing")
	cmd.Flags().BoolVar(&noEdit, "no-edit", false, "skip the editor")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "commit without confirmation")

	return cmd
}

func validCommitType(t string) bool {
	for _, ct := range commitTypes {
		if t == ct {
			return true
		}
	}
	return false
}

func runCommit(cmd *cobra.Command, app *App, commitType string, edit, yes bool) error {
	gitCtx, err := app.GitContext()
	if err != nil {
		return err
	}

	staged, err := gitCtx.DiffStaged()
	if errors.Is(err, git.ErrNoStagedChanges) {
		app.Console.Warnf("No staged changes found. Stage some changes first.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("read staged changes: %w", err)
	}

	cur := app.Config.Current()
	p, err := app.Prompts.Commit(prompt.Vars{
		Changes:  staged,
		Language: cur.User.Language,
		Type:     commitType,
	})
	if err != nil {
		return fmt.Errorf("build prompt: %w", err)
	}

	gen, err := app.Generator()
	if err != nil {
		return err
	}
	message, err := gen.Generate(cmd.Context(), p)
	if err != nil {
		return fmt.Errorf("generate commit message: %w", err)
	}

	app.Console.Panel("Generated commit message", message)

	if edit {
		message, err = editMessage(app, message)
		if err != nil {
			return err
		}
	}

	if !yes && !confirm(app, "Commit with this message?") {
		app.Console.Warnf("Commit aborted")
		return nil
	}

	if err := gitCtx.Commit(message); err != nil {
		if errors.Is(err, git.ErrNothingToCommit) {
			app.Console.Warnf("Nothing to commit")
			return nil
		}
		return fmt.Errorf("commit changes: %w", err)
	}

	app.Console.Successf("Changes committed successfully")
	branch, _ := gitCtx.CurrentBranch()
	app.recordHistory(history.KindCommit, branch, message)
	return nil
}

// editMessage writes the message to a temp file and opens $EDITOR
// (falling back to $VISUAL) on it.
func editMessage(app *App, message string) (string, error) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		app.Console.Warnf("EDITOR not set, using message as generated")
		return message, nil
	}

	f, err := os.CreateTemp("", "gas-commit-*.txt")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(message); err != nil {
		f.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	f.Close()

	ed := exec.Command(editor, path)
	ed.Stdin = os.Stdin
	ed.Stdout = os.Stdout
	ed.Stderr = os.Stderr
	if err := ed.Run(); err != nil {
		return "", fmt.Errorf("run editor %s: %w", editor, err)
	}

	edited, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read edited message: %w", err)
	}
	if strings.TrimSpace(string(edited)) == "" {
		return message, nil
	}
	return strings.TrimSpace(string(edited)), nil
}

func confirm(app *App, question string) bool {
	app.Console.Printf("%s [y/N] ", question)
	scanner := bufio.NewScanner(app.Stdin)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
