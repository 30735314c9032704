package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statscard/statscard/internal/app"
	"github.com/statscard/statscard/internal/mock"
)

func TestServiceStatsForUser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		newGithubClient func(*testing.T) *mock.GithubClient
		login           string
		want            app.Stats
		wantErr         bool
		wantUpstreamErr bool
	}{
		{
			name: "empty login",
			newGithubClient: func(t *testing.T) *mock.GithubClient {
				return &mock.GithubClient{
					ProfileByLoginFunc: func(ctx context.Context, login string) (app.Profile, error) {
						t.Error("unwanted call for ProfileByLogin")
						return app.Profile{}, nil
					},
					ReposByLoginFunc: func(ctx context.Context, login string) ([]app.Repository, error) {
						t.Error("unwanted call for ReposByLogin")
						return nil, nil
					},
				}
			},
			login:   "",
			wantErr: true,
		},
		{
			name: "profile error from client",
			newGithubClient: func(t *testing.T) *mock.GithubClient {
				return &mock.GithubClient{
					ProfileByLoginFunc: func(ctx context.Context, login string) (app.Profile, error) {
						return app.Profile{}, app.UpstreamError("got invalid http status code: 404")
					},
				}
			},
			login:           "alice",
			wantErr:         true,
			wantUpstreamErr: true,
		},
		{
			name: "repos error from client",
			newGithubClient: func(t *testing.T) *mock.GithubClient {
				return &mock.GithubClient{
					ReposByLoginFunc: func(ctx context.Context, login string) ([]app.Repository, error) {
						return nil, errors.New("error")
					},
				}
			},
			login:   "alice",
			wantErr: true,
		},
		{
			name: "client ok, both fetches aggregated",
			newGithubClient: func(t *testing.T) *mock.GithubClient {
				return &mock.GithubClient{
					ProfileByLoginFunc: func(ctx context.Context, login string) (app.Profile, error) {
						if login != "alice" {
							t.Errorf("invalid login arg, want 'alice', got %s", login)
						}
						return app.Profile{Login: "alice", PublicRepos: 2}, nil
					},
					ReposByLoginFunc: func(ctx context.Context, login string) ([]app.Repository, error) {
						return []app.Repository{
							{Name: "a", Stars: 7, Forks: 2, Language: "Go"},
							{Name: "b", Stars: 3, Forks: 1, Language: "Go"},
						}, nil
					},
				}
			},
			login: "alice",
			want: app.Stats{
				Username:   "alice",
				TotalRepos: 2,
				TotalStars: 10,
				TotalForks: 3,
				TopLanguages: []app.LanguageStat{
					{Name: "Go", Count: 2, Percentage: 100},
				},
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := app.NewService(tt.newGithubClient(t), time.Second)
			got, err := s.StatsForUser(context.Background(), tt.login)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantUpstreamErr {
					assert.True(t, app.IsUpstreamError(err), "want upstream error, got: %v", err)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServiceStatsForUserTimeout(t *testing.T) {
	t.Parallel()

	client := &mock.GithubClient{
		ProfileByLoginFunc: func(ctx context.Context, login string) (app.Profile, error) {
			select {
			case <-ctx.Done():
				return app.Profile{}, ctx.Err()
			case <-time.After(time.Second):
				return app.Profile{Login: login}, nil
			}
		},
	}

	s := app.NewService(client, time.Millisecond)
	_, err := s.StatsForUser(context.Background(), "alice")
	require.Error(t, err)
}
