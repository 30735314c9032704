package mock

import (
	"context"

	"github.com/statscard/statscard/internal/app"
)

// GithubClient mocks app.GithubClient
type GithubClient struct {
	ProfileByLoginFunc func(ctx context.Context, login string) (app.Profile, error)
	ReposByLoginFunc   func(ctx context.Context, login string) ([]app.Repository, error)
}

// ProfileByLogin returns the public profile of given user
func (m *GithubClient) ProfileByLogin(ctx context.Context, login string) (app.Profile, error) {
	if m.ProfileByLoginFunc != nil {
		return m.ProfileByLoginFunc(ctx, login)
	}

	return app.Profile{}, nil
}

// ReposByLogin returns public repositories of given user
func (m *GithubClient) ReposByLogin(ctx context.Context, login string) ([]app.Repository, error) {
	if m.ReposByLoginFunc != nil {
		return m.ReposByLoginFunc(ctx, login)
	}

	return []app.Repository{}, nil
}
