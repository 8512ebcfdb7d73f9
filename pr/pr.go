package pr

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Provider is the interface for opening pull requests.
// Implementations exist for GitHub and GitLab.
type Provider interface {
	// CreatePR creates a new pull request.
	CreatePR(ctx context.Context, opts Options) (*PullRequest, error)
}

// Options configures pull request creation.
type Options struct {
	Title string // PR title (required)
	Body  string // PR description (markdown)
	Base  string // Target branch (default: "main")
	Head  string // Source branch (required)
	Draft bool   // Create as draft
}

// PullRequest represents a created pull request.
type PullRequest struct {
	ID        int       // PR number/IID
	URL       string    // Web URL
	Title     string    // PR title
	Body      string    // PR description
	Draft     bool      // Whether it's a draft
	Head      string    // Source branch
	Base      string    // Target branch
	CreatedAt time.Time // Creation time
}

// DetectProvider attempts to detect the PR provider from a remote URL.
func DetectProvider(remoteURL string) (string, error) {
	remoteURL = strings.ToLower(remoteURL)

	if strings.Contains(remoteURL, "github.com") {
		return "github", nil
	}
	if strings.Contains(remoteURL, "gitlab") {
		return "gitlab", nil
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownProvider, remoteURL)
}

// ParseRepoFromURL extracts owner and repo from a git remote URL.
// Both SSH (git@host:owner/repo.git) and HTTPS forms are accepted.
func ParseRepoFromURL(remoteURL string) (owner, repo string, err error) {
	if strings.HasPrefix(remoteURL, "git@") {
		parts := strings.Split(remoteURL, ":")
		if len(parts) != 2 {
			return "", "", fmt.Errorf("invalid SSH URL format")
		}
		path := strings.TrimSuffix(parts[1], ".git")
		pathParts := strings.Split(path, "/")
		if len(pathParts) != 2 {
			return "", "", fmt.Errorf("invalid repository path")
		}
		return pathParts[0], pathParts[1], nil
	}

	remoteURL = strings.TrimPrefix(remoteURL, "https://")
	remoteURL = strings.TrimPrefix(remoteURL, "http://")
	remoteURL = strings.TrimSuffix(remoteURL, ".git")

	parts := strings.Split(remoteURL, "/")
	if len(parts) < 3 {
		return "", "", fmt.Errorf("invalid URL format")
	}

	// Last two parts are owner/repo
	return parts[len(parts)-2], parts[len(parts)-1], nil
}
