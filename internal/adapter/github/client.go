package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/statscard/statscard/internal/app"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

const (
	acceptedMediaType = "application/vnd.github.v3+json"
	userAgent         = "statscard"

	reposPerPage = 100
)

// Client returns details about github users and their repositories.
// This struct is an adapter for app.GithubClient.
type Client struct {
	doer      HTTPDoer
	address   string
	authToken string

	responseMaxSize int
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
// authToken is optional.
func NewClient(doer HTTPDoer, address string, authToken string) *Client {
	c := Client{
		doer:      doer,
		address:   address,
		authToken: authToken,

		responseMaxSize: 1024 * 1024 * 10,
	}

	return &c
}

// ProfileByLogin returns the public profile of given user.
func (c *Client) ProfileByLogin(ctx context.Context, login string) (app.Profile, error) {
	if login == "" {
		return app.Profile{}, app.InvalidRequestError("login cannot be empty")
	}

	u, err := url.Parse(c.address + "/users/" + url.PathEscape(login))
	if err != nil {
		return app.Profile{}, fmt.Errorf("invalid url: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return app.Profile{}, fmt.Errorf("creating http request: %w", err)
	}

	body, err := c.makeRequest(ctx, httpReq)
	if err != nil {
		return app.Profile{}, fmt.Errorf("making http request: %w", err)
	}

	var resp profileResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return app.Profile{}, app.UpstreamError(fmt.Sprintf("unmarshalling profile response: %v", err))
	}

	return resp.ToProfile(), nil
}

// ReposByLogin returns up to 100 public repositories of given user.
func (c *Client) ReposByLogin(ctx context.Context, login string) ([]app.Repository, error) {
	if login == "" {
		return nil, app.InvalidRequestError("login cannot be empty")
	}

	u, err := url.Parse(c.address + "/users/" + url.PathEscape(login) + "/repos")
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}

	v := make(url.Values)
	v.Set("per_page", strconv.Itoa(reposPerPage))
	u.RawQuery = v.Encode()

	httpReq, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}

	body, err := c.makeRequest(ctx, httpReq)
	if err != nil {
		return nil, fmt.Errorf("making http request: %w", err)
	}

	var resp reposResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, app.UpstreamError(fmt.Sprintf("unmarshalling repos response: %v", err))
	}

	return resp.ToRepositories(), nil
}

func (c *Client) makeRequest(ctx context.Context, req *http.Request) ([]byte, error) {
	req.Header.Set("Accept", acceptedMediaType)
	req.Header.Set("User-Agent", userAgent)
	if c.authToken != "" {
		req.Header.Set("Authorization", "token "+c.authToken)
	}

	resp, err := c.doer.Do(req.WithContext(ctx))
	if err != nil {
		return nil, app.UpstreamError(fmt.Sprintf("doing http request: %v", err))
	}
	// Always drain body before close to allow connection reuse.
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	if resp.StatusCode/100 != 2 {
		if c.checkRateLimitExceeded(&resp.Header) {
			return nil, app.UpstreamError("rate limit exceeded")
		}
		return nil, app.UpstreamError(fmt.Sprintf("got invalid http status code: %d", resp.StatusCode))
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, int64(c.responseMaxSize)))
	if err != nil {
		return nil, app.UpstreamError(fmt.Sprintf("reading http response body: %v", err))
	}

	return b, nil
}

func (c *Client) checkRateLimitExceeded(h *http.Header) bool {
	if s := h.Get("X-RateLimit-Remaining"); s != "" {
		if limit, err := strconv.Atoi(s); err == nil && limit == 0 {
			return true
		}
	}
	return false
}
