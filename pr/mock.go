package pr

import "context"

// MockProvider is a mock implementation of Provider for testing.
type MockProvider struct {
	CreatePRFunc func(ctx context.Context, opts Options) (*PullRequest, error)

	// Created records the options passed to CreatePR.
	Created []Options
}

// CreatePR implements Provider.
func (m *MockProvider) CreatePR(ctx context.Context, opts Options) (*PullRequest, error) {
	m.Created = append(m.Created, opts)
	if m.CreatePRFunc != nil {
		return m.CreatePRFunc(ctx, opts)
	}
	return &PullRequest{ID: 1, URL: "https://example.com/pr/1", Title: opts.Title}, nil
}
