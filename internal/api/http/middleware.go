package http

import (
	"context"
	"io"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/sirupsen/logrus"
)

// NewTimeoutMiddleware creates middleware that cancels requests context after given time.
func NewTimeoutMiddleware(timeout time.Duration) func(http.HandlerFunc) http.HandlerFunc {
	return func(h http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)
			h(w, r)
		}
	}
}

// NewLoggingMiddleware creates middleware logging every handled request.
func NewLoggingMiddleware(l logrus.FieldLogger) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return handlers.CustomLoggingHandler(ioutil.Discard, h, func(_ io.Writer, p handlers.LogFormatterParams) {
			l.WithFields(logrus.Fields{
				"method":   p.Request.Method,
				"path":     p.URL.Path,
				"status":   p.StatusCode,
				"size":     p.Size,
				"duration": time.Since(p.TimeStamp).String(),
			}).Info("request handled")
		})
	}
}

// NewCORSMiddleware creates middleware allowing GET requests from any origin.
func NewCORSMiddleware() func(http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedMethods([]string{http.MethodGet}),
		handlers.AllowedOrigins([]string{"*"}),
	)
}
