package git

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func mockContext(t *testing.T, runner *MockRunner) *Context {
	t.Helper()
	g, err := NewContext(t.TempDir(), WithRunner(runner))
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	return g
}

func TestNewContext_NotARepo(t *testing.T) {
	runner := NewMockRunner()
	runner.Errors["rev-parse --git-dir"] = errors.New("fatal: not a git repository")

	if _, err := NewContext(t.TempDir(), WithRunner(runner)); !errors.Is(err, ErrNotGitRepo) {
		t.Errorf("NewContext() error = %v, want ErrNotGitRepo", err)
	}
}

func TestContext_CurrentBranch(t *testing.T) {
	runner := NewMockRunner()
	runner.Outputs["rev-parse --abbrev-ref HEAD"] = "feature/explain"

	g := mockContext(t, runner)
	branch, err := g.CurrentBranch()
	if err != nil {
		t.Fatalf("CurrentBranch() error = %v", err)
	}
	if branch != "feature/explain" {
		t.Errorf("branch = %q, want feature/explain", branch)
	}
}

func TestContext_DiffStaged(t *testing.T) {
	runner := NewMockRunner()
	runner.Outputs["diff --cached"] = "diff --git a/main.go b/main.go\n+added line"

	g := mockContext(t, runner)
	diff, err := g.DiffStaged()
	if err != nil {
		t.Fatalf("DiffStaged() error = %v", err)
	}
	if diff == "" {
		t.Error("DiffStaged() returned empty diff")
	}
}

func TestContext_DiffStagedEmpty(t *testing.T) {
	g := mockContext(t, NewMockRunner())

	_, err := g.DiffStaged()
	if !errors.Is(err, ErrNoStagedChanges) {
		t.Errorf("DiffStaged() error = %v, want ErrNoStagedChanges", err)
	}
}

func TestContext_Diff(t *testing.T) {
	runner := NewMockRunner()
	runner.Outputs["diff main...feature/x"] = "diff content"

	g := mockContext(t, runner)
	diff, err := g.Diff("main", "feature/x")
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}
	if diff != "diff content" {
		t.Errorf("Diff() = %q", diff)
	}
}

func TestContext_CommitNothingStaged(t *testing.T) {
	runner := NewMockRunner()
	runner.Outputs["commit -m msg"] = "nothing to commit, working tree clean"
	runner.Errors["commit -m msg"] = errors.New("exit status 1")

	g := mockContext(t, runner)
	if err := g.Commit("msg"); !errors.Is(err, ErrNothingToCommit) {
		t.Errorf("Commit() error = %v, want ErrNothingToCommit", err)
	}
}

func TestContext_CommitError(t *testing.T) {
	runner := NewMockRunner()
	runner.Outputs["commit -m msg"] = "hook rejected"
	runner.Errors["commit -m msg"] = errors.New("exit status 1")

	g := mockContext(t, runner)
	err := g.Commit("msg")

	var gitErr *Error
	if !errors.As(err, &gitErr) {
		t.Fatalf("Commit() error = %T, want *Error", err)
	}
	if gitErr.Op != "commit" {
		t.Errorf("Op = %q, want commit", gitErr.Op)
	}
}

func TestContext_GetRemoteURL(t *testing.T) {
	runner := NewMockRunner()
	runner.Outputs["remote get-url origin"] = "git@github.com:randalmurphal/gas.git"

	g := mockContext(t, runner)
	url, err := g.GetRemoteURL("origin")
	if err != nil {
		t.Fatalf("GetRemoteURL() error = %v", err)
	}
	if url != "git@github.com:randalmurphal/gas.git" {
		t.Errorf("url = %q", url)
	}
}

func TestFindRoot(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(tmpDir, ".git"), 0o755); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(tmpDir, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	if got := FindRoot(nested); got != tmpDir {
		t.Errorf("FindRoot(%q) = %q, want %q", nested, got, tmpDir)
	}
}

func TestFindRoot_NotFound(t *testing.T) {
	if got := FindRoot(t.TempDir()); got != "" {
		t.Errorf("FindRoot() = %q, want empty", got)
	}
}
