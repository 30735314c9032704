package app

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// GithubClient returns details about a github user and their repositories
type GithubClient interface {
	ProfileByLogin(ctx context.Context, login string) (Profile, error)
	ReposByLogin(ctx context.Context, login string) ([]Repository, error)
}

// Service is main apps entry point. Provides all app functionality
type Service struct {
	githubClient GithubClient
	timeout      time.Duration
}

// NewService creates new Service instance
func NewService(githubClient GithubClient, timeout time.Duration) *Service {
	return &Service{
		githubClient: githubClient,
		timeout:      timeout,
	}
}

// StatsForUser returns aggregated stats for given user login.
// Profile and repository list are fetched concurrently; if either fetch
// fails the whole call fails, there is no partial aggregation.
func (s *Service) StatsForUser(ctx context.Context, login string) (Stats, error) {
	if login == "" {
		return Stats{}, InvalidRequestError("username cannot be empty")
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var (
		profile Profile
		repos   []Repository
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.githubClient.ProfileByLogin(ctx, login)
		if err != nil {
			return errors.Wrap(err, "retrieving profile")
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		r, err := s.githubClient.ReposByLogin(ctx, login)
		if err != nil {
			return errors.Wrap(err, "retrieving repositories")
		}
		repos = r
		return nil
	})
	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	return Aggregate(profile, repos), nil
}
