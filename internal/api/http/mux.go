package http

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// NewMux creates router for app's http server
func NewMux(service Service, timeout time.Duration, l logrus.FieldLogger) *http.ServeMux {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)

	statsHandler := NewStatsHandler(service, l)
	statsHandler = timeoutMiddleware(statsHandler)

	m := http.NewServeMux()
	m.HandleFunc("/api/stats", statsHandler)
	m.HandleFunc("/", NewIndexHandler())

	return m
}
