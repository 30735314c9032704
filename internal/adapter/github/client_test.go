package github

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statscard/statscard/internal/app"
	"github.com/statscard/statscard/internal/mock"
)

func TestClientProfileByLogin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		login        string
		doer         *mock.HTTPDoer
		want         app.Profile
		wantErr      bool
		wantInvalid  bool
		wantUpstream bool
	}{
		{
			name:        "empty login",
			login:       "",
			doer:        &mock.HTTPDoer{},
			wantErr:     true,
			wantInvalid: true,
		},
		{
			name:  "valid response",
			login: "alice",
			doer: &mock.HTTPDoer{
				Bodies: [][]byte{[]byte(`{"login":"alice","public_repos":3}`)},
			},
			want: app.Profile{Login: "alice", PublicRepos: 3},
		},
		{
			name:  "not found status",
			login: "alice",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusNotFound},
			},
			wantErr:      true,
			wantUpstream: true,
		},
		{
			name:  "rate limit exhausted",
			login: "alice",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusForbidden},
				Headers:  []http.Header{{"X-Ratelimit-Remaining": []string{"0"}}},
			},
			wantErr:      true,
			wantUpstream: true,
		},
		{
			name:  "malformed body",
			login: "alice",
			doer: &mock.HTTPDoer{
				Bodies: [][]byte{[]byte(`{"login":`)},
			},
			wantErr:      true,
			wantUpstream: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewClient(tt.doer, "https://api.example.com", "")
			got, err := c.ProfileByLogin(context.Background(), tt.login)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantInvalid {
					assert.True(t, app.IsInvalidRequestError(err), "want invalid request error, got: %v", err)
				}
				if tt.wantUpstream {
					assert.True(t, app.IsUpstreamError(err), "want upstream error, got: %v", err)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClientReposByLogin(t *testing.T) {
	t.Parallel()

	body := `[
		{"name":"a","stargazers_count":10,"forks_count":2,"language":"Go"},
		{"name":"b","stargazers_count":5,"forks_count":1,"language":null},
		{"name":"c"}
	]`
	doer := &mock.HTTPDoer{
		Bodies: [][]byte{[]byte(body)},
	}

	c := NewClient(doer, "https://api.example.com", "secrettoken")
	got, err := c.ReposByLogin(context.Background(), "alice")
	require.NoError(t, err)

	want := []app.Repository{
		{Name: "a", Stars: 10, Forks: 2, Language: "Go"},
		{Name: "b", Stars: 5, Forks: 1},
		{Name: "c"},
	}
	assert.Equal(t, want, got)

	require.Len(t, doer.Requests, 1)
	req := doer.Requests[0]
	assert.Equal(t, "/users/alice/repos", req.URL.Path)
	assert.Equal(t, "100", req.URL.Query().Get("per_page"))
	assert.Equal(t, "application/vnd.github.v3+json", req.Header.Get("Accept"))
	assert.Equal(t, "statscard", req.Header.Get("User-Agent"))
	assert.Equal(t, "token secrettoken", req.Header.Get("Authorization"))
}

func TestClientNoAuthHeaderWithoutToken(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Bodies: [][]byte{[]byte(`{"login":"alice","public_repos":3}`)},
	}

	c := NewClient(doer, "https://api.example.com", "")
	_, err := c.ProfileByLogin(context.Background(), "alice")
	require.NoError(t, err)

	require.Len(t, doer.Requests, 1)
	assert.Empty(t, doer.Requests[0].Header.Get("Authorization"))
}
