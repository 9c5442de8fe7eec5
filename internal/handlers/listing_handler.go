package handlers

import (
	"net/http"

	"github.com/Srivastav4327/RentMate/internal/models"
	"github.com/Srivastav4327/RentMate/internal/rent/filter"
	"github.com/Srivastav4327/RentMate/internal/services"
)

type ListingHandler struct {
	Service *services.ListingService
	Logger  Logger
}

func (h *ListingHandler) List(w http.ResponseWriter, r *http.Request) {
	c, err := filter.CriteriaFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	listings, err := h.Service.List(r.Context(), c)
	if err != nil {
		serviceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listings)
}

func (h *ListingHandler) Featured(w http.ResponseWriter, r *http.Request) {
	listings, err := h.Service.Featured(r.Context())
	if err != nil {
		serviceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, listings)
}

func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing listing id")
		return
	}
	l, err := h.Service.Get(r.Context(), id)
	if err != nil {
		serviceError(w, h.Logger, err)
		return
	}
	if l == nil {
		writeError(w, http.StatusNotFound, "listing not found")
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var draft models.ListingDraft
	if err := decodeJSON(w, r, &draft, false); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	l, err := h.Service.Create(r.Context(), identity(r), draft)
	if err != nil {
		serviceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, l)
}

// Update applies a partial update. Unknown fields are rejected so a typo
// does not silently leave the listing unchanged.
func (h *ListingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing listing id")
		return
	}
	var upd models.ListingUpdate
	if err := decodeJSON(w, r, &upd, true); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	l, err := h.Service.Update(r.Context(), identity(r), id, upd)
	if err != nil {
		serviceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (h *ListingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing listing id")
		return
	}
	if err := h.Service.Remove(r.Context(), identity(r), id); err != nil {
		serviceError(w, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
