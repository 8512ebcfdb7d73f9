package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/randalmurphal/gas/ai"
	"github.com/randalmurphal/gas/config"
	"github.com/randalmurphal/gas/git"
	"github.com/randalmurphal/gas/history"
	"github.com/randalmurphal/gas/pr"
	"github.com/randalmurphal/gas/prompt"
	"github.com/randalmurphal/gas/render"
)

// Generator produces text from a prompt. *ai.Client implements it;
// tests substitute a stub.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts ...ai.GenerateOption) (string, error)
}

// App holds everything the commands need. Built once in NewApp and
// passed down explicitly.
type App struct {
	Config  *config.Manager
	Console *render.Console
	Prompts *prompt.Loader
	History *history.Store // nil when the history dir is unavailable

	// AI and Git are lazily constructed on first use so that commands
	// which need neither (config, history) work without an API key or
	// a repository. Tests set them directly.
	AI  Generator
	Git *git.Context

	// NewProvider builds a PR provider for a remote URL.
	NewProvider func(remoteURL string) (pr.Provider, error)

	Stdin  io.Reader
	Stdout io.Writer
}

// NewApp builds the App for real use: configuration resolved from the
// enclosing repository (or the working directory outside one), console
// on stdout, history under the user data dir.
func NewApp() (*App, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	root := git.FindRoot(cwd)
	if root == "" {
		root = cwd
	}

	mgr, err := config.NewManager(config.NewStore(root))
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	cur := mgr.Current()

	app := &App{
		Config:      mgr,
		Console:     render.NewConsole(os.Stdout, cur.User.EmojiEnabled),
		Prompts:     prompt.NewLoader(root),
		NewProvider: pr.ProviderFromEnv,
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
	}

	if dir, err := history.DefaultDir(); err == nil {
		if store, err := history.NewStore(dir); err == nil {
			app.History = store
		} else {
			slog.Warn("history disabled", "error", err)
		}
	} else {
		slog.Warn("history disabled", "error", err)
	}

	return app, nil
}

// GitContext returns the repository context, constructing it on first use.
func (a *App) GitContext() (*git.Context, error) {
	if a.Git != nil {
		return a.Git, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}
	gitCtx, err := git.NewContext(cwd)
	if err != nil {
		return nil, err
	}
	a.Git = gitCtx
	return gitCtx, nil
}

// Generator returns the AI client, constructing it from the resolved
// configuration on first use.
func (a *App) Generator() (Generator, error) {
	if a.AI != nil {
		return a.AI, nil
	}

	cur := a.Config.Current()
	client, err := ai.NewClient(ai.ClientConfig{
		Model:       cur.AI.Model,
		Temperature: cur.AI.Temperature,
		MaxTokens:   cur.AI.MaxTokens,
	})
	if err != nil {
		return nil, err
	}
	a.AI = client
	return client, nil
}

// recordHistory appends a record, logging instead of failing when the
// history store is unavailable.
func (a *App) recordHistory(kind history.Kind, branch, output string) {
	if a.History == nil {
		return
	}
	rec := history.Record{
		Kind:   kind,
		Model:  a.Config.Current().AI.Model,
		Branch: branch,
		Output: output,
	}
	if _, err := a.History.Append(rec); err != nil {
		slog.Warn("record history", "kind", kind, "error", err)
	}
}
