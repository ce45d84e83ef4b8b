package http

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/siteupdates/internal/api/response"
	"github.com/sirupsen/logrus"
)

// NewUpdatesHandler creates handlerfunc returning recent updates of configured repositories.
//
// Failures of single repositories, including request timeout, are part of the response body,
// status is 200 anyway.
func NewUpdatesHandler(
	service Service,
	l logrus.FieldLogger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		updates := service.Updates(r.Context())
		if updates == nil {
			l.Error("service returned no updates")
			http.Error(w, "", http.StatusInternalServerError)
			return
		}

		resp := response.NewUpdates(*updates)

		w.Header().Set("Content-type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		if err := jsoniter.ConfigFastest.NewEncoder(w).Encode(resp); err != nil {
			l.Errorf("writing response: %v", err)
		}
	}
}
