package handlers

import (
	"net/http"

	"github.com/Srivastav4327/RentMate/internal/models"
	"github.com/Srivastav4327/RentMate/internal/services"
)

type RentalHandler struct {
	Service *services.RentalService
	Logger  Logger
}

type rentalDatesInput struct {
	ListingID string `json:"listing_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (in rentalDatesInput) parse() (models.RentalRequest, error) {
	start, err := parseDate(in.StartDate)
	if err != nil {
		return models.RentalRequest{}, &services.ValidationError{Fields: map[string]string{"start_date": "must be a date (YYYY-MM-DD) or RFC 3339 timestamp"}}
	}
	end, err := parseDate(in.EndDate)
	if err != nil {
		return models.RentalRequest{}, &services.ValidationError{Fields: map[string]string{"end_date": "must be a date (YYYY-MM-DD) or RFC 3339 timestamp"}}
	}
	return models.RentalRequest{ListingID: in.ListingID, StartDate: start, EndDate: end}, nil
}

func (h *RentalHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var in rentalDatesInput
	if err := decodeJSON(w, r, &in, false); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	req, err := in.parse()
	if err != nil {
		serviceError(w, h.Logger, err)
		return
	}
	q, err := h.Service.Quote(r.Context(), req.ListingID, req.StartDate, req.EndDate)
	if err != nil {
		serviceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, q)
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in rentalDatesInput
	if err := decodeJSON(w, r, &in, false); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	req, err := in.parse()
	if err != nil {
		serviceError(w, h.Logger, err)
		return
	}
	rental, err := h.Service.RequestRental(r.Context(), identity(r), req)
	if err != nil {
		serviceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

// List returns the caller's rentals as renter (default) or owner. Admins
// may pass user_id to look at someone else's.
func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	actor := identity(r)
	userID := actor.ID
	if other := r.URL.Query().Get("user_id"); other != "" && other != actor.ID {
		if !actor.IsAdmin() {
			writeError(w, http.StatusForbidden, "forbidden")
			return
		}
		userID = other
	}
	role := models.RentalRole(r.URL.Query().Get("role"))
	if role == "" {
		role = models.RoleRenter
	}
	rentals, err := h.Service.ListByUser(r.Context(), userID, role)
	if err != nil {
		serviceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing rental id")
		return
	}
	rental, err := h.Service.View(r.Context(), identity(r), id)
	if err != nil {
		serviceError(w, h.Logger, err)
		return
	}
	if rental == nil {
		writeError(w, http.StatusNotFound, "rental not found")
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing rental id")
		return
	}
	var in struct {
		Status models.RentalStatus `json:"status"`
	}
	if err := decodeJSON(w, r, &in, true); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rental, err := h.Service.Transition(r.Context(), identity(r), id, in.Status)
	if err != nil {
		serviceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id := getParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing rental id")
		return
	}
	var upd models.PaymentUpdate
	if err := decodeJSON(w, r, &upd, true); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	rental, err := h.Service.RecordPayment(r.Context(), identity(r), id, upd)
	if err != nil {
		serviceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}
