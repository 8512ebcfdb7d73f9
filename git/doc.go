// Package git provides the git operations the gas CLI needs: diff
// retrieval, commit execution, and repository introspection.
//
// Core types:
//   - Context: Repository handle that runs git commands
//   - CommandRunner: Interface for executing git commands (with mock for testing)
//   - Error: Git command error with operation context
//
// Example usage:
//
//	gitCtx, err := git.NewContext(".")
//	if err != nil {
//	    return err // ErrNotGitRepo outside a repository
//	}
//
//	diff, err := gitCtx.DiffStaged()
//	if err != nil {
//	    return err
//	}
//	if diff == "" {
//	    // nothing staged
//	}
//
// Diff content is opaque text; this package never parses it.
package git
