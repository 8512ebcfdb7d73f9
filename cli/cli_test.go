package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/randalmurphal/gas/ai"
	"github.com/randalmurphal/gas/config"
	"github.com/randalmurphal/gas/git"
	"github.com/randalmurphal/gas/history"
	"github.com/randalmurphal/gas/pr"
	"github.com/randalmurphal/gas/prompt"
	"github.com/randalmurphal/gas/render"
)

// stubGenerator returns a fixed reply and records received prompts.
type stubGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (s *stubGenerator) Generate(_ context.Context, p string, _ ...ai.GenerateOption) (string, error) {
	s.prompts = append(s.prompts, p)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

type testApp struct {
	*App
	out    *bytes.Buffer
	gen    *stubGenerator
	runner *git.MockRunner
	pr     *pr.MockProvider
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	dir := t.TempDir()
	store := config.NewStoreWithPaths(
		filepath.Join(dir, "global", "config.yml"),
		filepath.Join(dir, ".gas.yaml"),
	)
	mgr, err := config.NewManager(store)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}

	hist, err := history.NewStore(filepath.Join(dir, "history"))
	if err != nil {
		t.Fatalf("history.NewStore() error = %v", err)
	}

	runner := git.NewMockRunner()
	gitCtx, err := git.NewContext(dir, git.WithRunner(runner))
	if err != nil {
		t.Fatalf("git.NewContext() error = %v", err)
	}

	out := &bytes.Buffer{}
	gen := &stubGenerator{reply: "generated output"}
	mock := &pr.MockProvider{}

	return &testApp{
		App: &App{
			Config:  mgr,
			Console: render.NewConsole(out, false),
			Prompts: prompt.NewLoader(dir),
			History: hist,
			AI:      gen,
			Git:     gitCtx,
			NewProvider: func(string) (pr.Provider, error) {
				return mock, nil
			},
			Stdin:  strings.NewReader(""),
			Stdout: out,
		},
		out:    out,
		gen:    gen,
		runner: runner,
		pr:     mock,
	}
}

func (ta *testApp) run(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewRootCmd(ta.App, "test")
	cmd.SetOut(ta.out)
	cmd.SetErr(ta.out)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestConfigSetThenGet(t *testing.T) {
	ta := newTestApp(t)

	if err := ta.run(t, "config", "set", "user.language", "fr"); err != nil {
		t.Fatalf("config set error = %v", err)
	}
	if !strings.Contains(ta.out.String(), "Set user.language = fr in local config") {
		t.Errorf("output = %q, want set confirmation", ta.out.String())
	}

	ta.out.Reset()
	if err := ta.run(t, "config", "get", "user.language"); err != nil {
		t.Fatalf("config get error = %v", err)
	}
	if !strings.Contains(ta.out.String(), "user.language = fr") {
		t.Errorf("output = %q, want %q", ta.out.String(), "user.language = fr")
	}
}

func TestConfigSetGlobalScope(t *testing.T) {
	ta := newTestApp(t)

	if err := ta.run(t, "config", "set", "ai.temperature", "0.3", "--scope", "global"); err != nil {
		t.Fatalf("config set error = %v", err)
	}
	if got := ta.Config.Current().AI.Temperature; got != 0.3 {
		t.Errorf("temperature = %v, want 0.3", got)
	}
	if got := ta.Config.Current().Source("ai.temperature"); got != config.SourceGlobal {
		t.Errorf("source = %v, want global", got)
	}
}

func TestConfigSetValidationError(t *testing.T) {
	ta := newTestApp(t)

	err := ta.run(t, "config", "set", "ai.temperature", "2.0")
	if !errors.Is(err, config.ErrValidation) {
		t.Fatalf("config set error = %v, want ErrValidation", err)
	}
}

func TestConfigSetUnknownKey(t *testing.T) {
	ta := newTestApp(t)

	err := ta.run(t, "config", "set", "ai.bogus", "1")
	if !errors.Is(err, config.ErrInvalidPath) {
		t.Fatalf("config set error = %v, want ErrInvalidPath", err)
	}
}

func TestConfigGetAllShowsSources(t *testing.T) {
	ta := newTestApp(t)

	if err := ta.run(t, "config", "set", "user.language", "es"); err != nil {
		t.Fatalf("config set error = %v", err)
	}
	ta.out.Reset()

	if err := ta.run(t, "config", "get"); err != nil {
		t.Fatalf("config get error = %v", err)
	}
	out := ta.out.String()
	for _, want := range []string{"user.language", "es", "local", "ai.model", "default"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigList(t *testing.T) {
	ta := newTestApp(t)

	if err := ta.run(t, "config", "list"); err != nil {
		t.Fatalf("config list error = %v", err)
	}
	out := ta.out.String()
	for _, want := range []string{"ai.model", "ai.temperature", "ai.max_tokens", "user.language", "user.emoji_enabled"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestExplainEmptyInput(t *testing.T) {
	ta := newTestApp(t)
	ta.Stdin = strings.NewReader("   \n")

	if err := ta.run(t, "explain"); err != nil {
		t.Fatalf("explain error = %v", err)
	}
	if !strings.Contains(ta.out.String(), "No changes to explain") {
		t.Errorf("output = %q, want empty-diff warning", ta.out.String())
	}
	if len(ta.gen.prompts) != 0 {
		t.Errorf("generator called %d times, want 0", len(ta.gen.prompts))
	}
}

func TestExplainRendersAndRecords(t *testing.T) {
	ta := newTestApp(t)
	ta.Stdin = strings.NewReader("diff --git a/main.go b/main.go\n+added line\n")
	ta.gen.reply = "This change adds a line."

	if err := ta.run(t, "explain", "--detailed"); err != nil {
		t.Fatalf("explain error = %v", err)
	}

	if !strings.Contains(ta.out.String(), "This change adds a line.") {
		t.Errorf("output missing explanation:\n%s", ta.out.String())
	}
	if len(ta.gen.prompts) != 1 {
		t.Fatalf("generator called %d times, want 1", len(ta.gen.prompts))
	}
	if !strings.Contains(ta.gen.prompts[0], "added line") {
		t.Errorf("prompt missing diff content")
	}

	records, err := ta.History.List(0)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(records) != 1 || records[0].Kind != history.KindExplain {
		t.Errorf("history = %+v, want one explain record", records)
	}
}

func TestCommitNoStagedChanges(t *testing.T) {
	ta := newTestApp(t)
	// MockRunner returns "" for "diff --cached" by default.

	if err := ta.run(t, "commit", "--yes", "--no-edit"); err != nil {
		t.Fatalf("commit error = %v", err)
	}
	if !strings.Contains(ta.out.String(), "No staged changes found") {
		t.Errorf("output = %q, want no-staged warning", ta.out.String())
	}
}

func TestCommitConfirmed(t *testing.T) {
	ta := newTestApp(t)
	ta.runner.Outputs["diff --cached"] = "+func main() {}"
	ta.runner.Outputs["rev-parse --abbrev-ref HEAD"] = "feature/x"
	ta.gen.reply = "Add main function"
	ta.Stdin = strings.NewReader("y\n")

	if err := ta.run(t, "commit", "--no-edit"); err != nil {
		t.Fatalf("commit error = %v", err)
	}

	wantCmd := "commit -m Add main function"
	found := false
	for _, c := range ta.runner.Commands {
		if c == wantCmd {
			found = true
		}
	}
	if !found {
		t.Errorf("commands = %v, want %q", ta.runner.Commands, wantCmd)
	}
	if !strings.Contains(ta.out.String(), "committed successfully") {
		t.Errorf("output = %q, want success line", ta.out.String())
	}
}

func TestCommitDeclined(t *testing.T) {
	ta := newTestApp(t)
	ta.runner.Outputs["diff --cached"] = "+change"
	ta.Stdin = strings.NewReader("n\n")

	if err := ta.run(t, "commit", "--no-edit"); err != nil {
		t.Fatalf("commit error = %v", err)
	}
	for _, c := range ta.runner.Commands {
		if strings.HasPrefix(c, "commit") {
			t.Errorf("commit ran despite decline: %v", ta.runner.Commands)
		}
	}
	if !strings.Contains(ta.out.String(), "Commit aborted") {
		t.Errorf("output = %q, want abort notice", ta.out.String())
	}
}

func TestCommitInvalidType(t *testing.T) {
	ta := newTestApp(t)

	err := ta.run(t, "commit", "--type", "wip")
	if err == nil || !strings.Contains(err.Error(), "invalid commit type") {
		t.Fatalf("commit error = %v, want invalid type", err)
	}
}

func TestCommitTypeInPrompt(t *testing.T) {
	ta := newTestApp(t)
	ta.runner.Outputs["diff --cached"] = "+change"
	ta.gen.reply = "fix(parser): handle empty input"

	if err := ta.run(t, "commit", "--type", "fix", "--yes", "--no-edit"); err != nil {
		t.Fatalf("commit error = %v", err)
	}
	if len(ta.gen.prompts) != 1 {
		t.Fatalf("generator called %d times, want 1", len(ta.gen.prompts))
	}
	if !strings.Contains(ta.gen.prompts[0], "fix") {
		t.Errorf("prompt missing commit type")
	}
}

func TestPROpensWithGeneratedTitleAndBody(t *testing.T) {
	ta := newTestApp(t)
	ta.runner.Outputs["rev-parse --abbrev-ref HEAD"] = "feature/login"
	ta.runner.Outputs["diff main...HEAD"] = "+login code"
	ta.runner.Outputs["remote get-url origin"] = "https://github.com/owner/repo.git"
	ta.gen.reply = "Add login flow\n\nImplements session handling."

	if err := ta.run(t, "pr", "--draft"); err != nil {
		t.Fatalf("pr error = %v", err)
	}

	if len(ta.pr.Created) != 1 {
		t.Fatalf("CreatePR called %d times, want 1", len(ta.pr.Created))
	}
	opts := ta.pr.Created[0]
	if opts.Title != "Add login flow" {
		t.Errorf("title = %q, want %q", opts.Title, "Add login flow")
	}
	if opts.Body != "Implements session handling." {
		t.Errorf("body = %q", opts.Body)
	}
	if opts.Head != "feature/login" || opts.Base != "main" || !opts.Draft {
		t.Errorf("opts = %+v", opts)
	}
	if !strings.Contains(ta.out.String(), "Opened") {
		t.Errorf("output = %q, want opened confirmation", ta.out.String())
	}
}

func TestPRNoChanges(t *testing.T) {
	ta := newTestApp(t)
	ta.runner.Outputs["rev-parse --abbrev-ref HEAD"] = "feature/empty"

	if err := ta.run(t, "pr"); err != nil {
		t.Fatalf("pr error = %v", err)
	}
	if len(ta.pr.Created) != 0 {
		t.Errorf("CreatePR called despite empty diff")
	}
	if !strings.Contains(ta.out.String(), "No changes between") {
		t.Errorf("output = %q, want no-changes warning", ta.out.String())
	}
}

func TestPROnBaseBranch(t *testing.T) {
	ta := newTestApp(t)
	ta.runner.Outputs["rev-parse --abbrev-ref HEAD"] = "main"

	err := ta.run(t, "pr")
	if err == nil || !strings.Contains(err.Error(), "feature branch") {
		t.Fatalf("pr error = %v, want feature-branch hint", err)
	}
}

func TestSplitTitleBody(t *testing.T) {
	tests := []struct {
		name      string
		generated string
		wantTitle string
		wantBody  string
	}{
		{"title and body", "Title line\n\nBody text", "Title line", "Body text"},
		{"title only", "Just a title", "Just a title", ""},
		{"leading blank lines", "\n\nTitle\nBody", "Title", "Body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, body := splitTitleBody(tt.generated)
			if title != tt.wantTitle || body != tt.wantBody {
				t.Errorf("splitTitleBody() = %q, %q, want %q, %q", title, body, tt.wantTitle, tt.wantBody)
			}
		})
	}
}
