package handler

import (
	"net/http"

	"github.com/salenest/salenest-api/pkg/apiErrors"
)

func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrRouteNotFound, "Route not found", nil)
	})
}
