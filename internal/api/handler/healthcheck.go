package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/salenest/salenest-api/pkg/apiErrors"
	"github.com/salenest/salenest-api/pkg/log"
)

const bannerMessage = "SaleNest Backend API is running! ✅"

// Pinger é implementado pela conexão com o banco
type Pinger interface {
	Ping(ctx context.Context) error
}

func BannerHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeText(w, r, http.StatusOK, bannerMessage)
	})
}

// HealthcheckHandler responde com a hora do servidor quando o banco responde
func HealthcheckHandler(store Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("healthcheck: store ping failed")
			apiErrors.WriteError(w, apiErrors.ErrStoreUnavailable, "Store unavailable", nil)
			return
		}

		writeText(w, r, http.StatusOK, time.Now().String())
	})
}
