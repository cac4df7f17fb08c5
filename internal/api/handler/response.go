package handler

import (
	"errors"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/json-iterator/go/extra"
	"github.com/salenest/salenest-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func init() {
	// formulários do PDV enviam preços e quantidades como texto
	extra.RegisterFuzzyDecoders()
}

func writeText(w http.ResponseWriter, r *http.Request, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(message)); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("error writing text response")
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("error encoding json response")
	}
}

// decodeBody decodifica o corpo JSON em v. Corpo vazio deixa v intacto.
func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
