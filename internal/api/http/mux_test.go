package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/statscard/statscard/internal/app"
)

func TestMux(t *testing.T) {
	t.Parallel()

	serviceDelay := time.Millisecond

	tests := []struct {
		name           string
		path           string
		muxTimeout     time.Duration
		wantStatusCode int
	}{
		{
			name:           "index page",
			path:           "/",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "valid stats request",
			path:           "/api/stats?username=alice",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusOK,
		},
		{
			name:           "service exceeding handler timeout",
			path:           "/api/stats?username=alice",
			muxTimeout:     time.Microsecond,
			wantStatusCode: http.StatusInternalServerError,
		},
		{
			name:           "invalid path",
			path:           "/invalid_path",
			muxTimeout:     time.Second,
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			service := &serviceMock{
				StatsForUserFunc: func(ctx context.Context, login string) (app.Stats, error) {
					time.Sleep(serviceDelay)

					select {
					case <-ctx.Done():
						return app.Stats{}, errors.New("context timeout")
					default:
						return app.Stats{Username: login}, nil
					}
				},
			}

			l := logrus.New()
			mux := NewMux(service, tt.muxTimeout, l)

			server := httptest.NewServer(mux)
			defer server.Close()

			url := server.URL + tt.path
			resp, err := http.Get(url)
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tt.wantStatusCode, resp.StatusCode)
		})
	}
}
