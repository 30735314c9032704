package http

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/statscard/statscard/internal/app"
	"github.com/statscard/statscard/internal/render"
)

// Service can return aggregated user stats
type Service interface {
	StatsForUser(ctx context.Context, login string) (app.Stats, error)
}

// NewStatsHandler creates handlerfunc returning the rendered stats card.
//
// Query params: username (required), theme (unknown values fall back to
// default), animate (anything but the literal "false" enables animation).
func NewStatsHandler(service Service, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		username := q.Get("username")
		if username == "" {
			http.Error(w, "missing required parameter: username", http.StatusBadRequest)
			return
		}
		theme := render.ThemeByName(q.Get("theme"))
		animate := q.Get("animate") != "false"

		stats, err := service.StatsForUser(r.Context(), username)
		if err != nil {
			switch {
			case app.IsInvalidRequestError(err):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case app.IsUpstreamError(err):
				l.Warnf("upstream fetch for %q failed: %v", username, err)
				http.Error(w, "fetching data from github failed", http.StatusBadGateway)
			default:
				l.Errorf("stats request for %q failed: %v", username, err)
				http.Error(w, "", http.StatusInternalServerError)
			}
			return
		}

		card := render.Card(stats, theme, animate)

		w.Header().Set("Content-Type", "image/svg+xml")
		w.Header().Set("Cache-Control", "public, max-age=1800")
		_, _ = io.WriteString(w, card)
	}
}

// NewIndexHandler creates handlerfunc serving the informational root page.
// Any path other than "/" gets status 404.
func NewIndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "statscard - github profile stats cards")
		fmt.Fprintln(w, "")
		fmt.Fprintln(w, "usage: /api/stats?username=<login>&theme=<default|ocean|midnight>&animate=<true|false>")
	}
}
