package handlers

import (
	"net/http"

	"github.com/Srivastav4327/RentMate/internal/services"
)

type CatalogHandler struct {
	Service *services.CatalogService
	Logger  Logger
}

func (h *CatalogHandler) Options(w http.ResponseWriter, r *http.Request) {
	opts, err := h.Service.BrowseOptions(r.Context())
	if err != nil {
		serviceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, opts)
}

func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Service.Categories(r.Context())
	if err != nil {
		serviceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *CatalogHandler) Cities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.Service.Cities(r.Context())
	if err != nil {
		serviceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, cities)
}
