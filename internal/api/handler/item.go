package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/salenest/salenest-api/internal/domain"
	"github.com/salenest/salenest-api/internal/usecases/catalog"
	"github.com/salenest/salenest-api/pkg/log"
)

// Endpoints do catálogo respondem em texto puro

func CreateItem(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var input domain.ItemInput
		if err := decodeBody(r, &input); err != nil {
			logger.WithError(err).Warn("catalog: invalid item body")
			writeText(w, r, http.StatusBadRequest, "Invalid request body")
			return
		}

		if _, err := service.CreateItem(r.Context(), input); err != nil {
			if errors.Is(err, catalog.ErrMissingItemFields) {
				writeText(w, r, http.StatusBadRequest, "Item name and price are required")
				return
			}

			logger.WithError(err).Error("catalog: error adding item")
			writeText(w, r, http.StatusInternalServerError, "Error adding item")
			return
		}

		writeText(w, r, http.StatusCreated, "Item added successfully")
	})
}

func ListItems(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		items, err := service.ListItems(r.Context())
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("catalog: error fetching items")
			writeText(w, r, http.StatusInternalServerError, "Error fetching items")
			return
		}

		writeJSON(w, r, http.StatusOK, items)
	})
}

func UpdateItem(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var input domain.ItemInput
		if err := decodeBody(r, &input); err != nil {
			logger.WithError(err).WithField("item_id", id).Warn("catalog: invalid item body")
			writeText(w, r, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := service.UpdateItem(r.Context(), id, input); err != nil {
			logger.WithError(err).WithField("item_id", id).Error("catalog: error updating item")
			writeText(w, r, http.StatusInternalServerError, "Error updating item")
			return
		}

		writeText(w, r, http.StatusOK, "Item updated successfully")
	})
}

func DeleteItem(service catalog.CatalogService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteItem(r.Context(), id); err != nil {
			log.ForContext(r.Context()).WithError(err).WithField("item_id", id).Error("catalog: error deleting item")
			writeText(w, r, http.StatusInternalServerError, "Error deleting item")
			return
		}

		writeText(w, r, http.StatusOK, "Item deleted successfully")
	})
}
