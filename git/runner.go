package git

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// CommandRunner executes external commands. The default implementation
// shells out; tests inject a mock.
type CommandRunner interface {
	// Run executes name with args in dir and returns trimmed stdout.
	Run(dir, name string, args ...string) (string, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// NewExecRunner creates the default command runner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run implements CommandRunner.
func (r *ExecRunner) Run(dir, name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := strings.TrimSpace(stdout.String())
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = out
		}
		if msg != "" {
			return out, fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, msg)
		}
		return out, fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return out, nil
}

// MockRunner returns scripted results for tests and records every
// command it receives.
type MockRunner struct {
	// Commands records each invocation as space-joined args.
	Commands []string

	// Outputs maps space-joined args to stdout.
	Outputs map[string]string

	// Errors maps space-joined args to a returned error.
	Errors map[string]error
}

// NewMockRunner creates an empty mock runner.
func NewMockRunner() *MockRunner {
	return &MockRunner{
		Outputs: make(map[string]string),
		Errors:  make(map[string]error),
	}
}

// Run implements CommandRunner.
func (m *MockRunner) Run(_, _ string, args ...string) (string, error) {
	key := strings.Join(args, " ")
	m.Commands = append(m.Commands, key)
	if err, ok := m.Errors[key]; ok {
		return m.Outputs[key], err
	}
	return m.Outputs[key], nil
}
