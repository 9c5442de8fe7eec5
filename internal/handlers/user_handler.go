package handlers

import (
	"net/http"

	"github.com/Srivastav4327/RentMate/internal/models"
	"github.com/Srivastav4327/RentMate/internal/services"
)

type UserHandler struct {
	Service *services.UserService
	Logger  Logger
}

type refreshInput struct {
	RefreshToken string `json:"refresh_token"`
}

func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	u, err := h.Service.SignUp(r.Context(), req)
	if err != nil {
		serviceError(w, h.Logger, err)
		return
	}
	h.Logger.Infof("user %s signed up", u.ID)
	writeJSON(w, http.StatusCreated, u)
}

func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	tokens, err := h.Service.SignIn(r.Context(), req)
	if err != nil {
		serviceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, tokens)
}

func (h *UserHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var in refreshInput
	if err := decodeJSON(w, r, &in, false); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if in.RefreshToken == "" {
		writeError(w, http.StatusBadRequest, "refresh_token is required")
		return
	}
	tokens, err := h.Service.Refresh(r.Context(), in.RefreshToken)
	if err != nil {
		serviceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, tokens)
}

func (h *UserHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	var in refreshInput
	if err := decodeJSON(w, r, &in, false); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Service.SignOut(r.Context(), in.RefreshToken); err != nil {
		serviceError(w, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Me returns the stored profile of the caller. Callers known only to the
// identity provider get a profile built from their identity.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	id := identity(r)
	u, err := h.Service.Get(r.Context(), id.ID)
	if err != nil {
		serviceError(w, h.Logger, err)
		return
	}
	if u == nil {
		u = &models.User{ID: id.ID, DisplayName: id.DisplayName, Role: id.Role}
	}
	writeJSON(w, http.StatusOK, u)
}

func (h *UserHandler) RegisterDevice(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Token string `json:"token"`
	}
	if err := decodeJSON(w, r, &in, false); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Service.RegisterDevice(r.Context(), identity(r), in.Token); err != nil {
		serviceError(w, h.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.List(r.Context(), identity(r))
	if err != nil {
		serviceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}
