package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/m-zajac/siteupdates/internal/app"
	"github.com/sirupsen/logrus"
)

// UpdatesPath is the route of updates endpoint.
const UpdatesPath = "/api/updates.json"

// Service can return recent updates of configured repositories.
//
//go:generate mockgen -destination mock/service.go -package mock github.com/m-zajac/siteupdates/internal/api/http Service
type Service interface {
	Updates(ctx context.Context) *app.Updates
}

// NewMux creates router for app's http server.
func NewMux(service Service, timeout time.Duration, l logrus.FieldLogger) http.Handler {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)

	updatesHandler := NewUpdatesHandler(service, l)
	updatesHandler = timeoutMiddleware(updatesHandler)

	m := mux.NewRouter()
	m.HandleFunc(UpdatesPath, updatesHandler).Methods(http.MethodGet)

	var h http.Handler = m
	h = NewCORSMiddleware()(h)
	h = NewLoggingMiddleware(l)(h)

	return h
}
