package middleware

import (
	"net/http"

	"github.com/salenest/salenest-api/pkg/apiErrors"
	"github.com/salenest/salenest-api/pkg/log"
)

// LimitBody limita o corpo da requisição a maxBytes. Tamanho declarado acima
// do limite recebe 413 na hora, corpo em streaming falha na leitura seguinte.
func LimitBody(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"path":           r.URL.Path,
					"content_length": r.ContentLength,
				}).Warn("request body too large")
				apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Request body too large", nil)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
