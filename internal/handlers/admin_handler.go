package handlers

import (
	"net/http"

	"github.com/Srivastav4327/RentMate/internal/admin"
)

type AdminHandler struct {
	Dashboard *admin.Dashboard
	Logger    Logger
}

func (h *AdminHandler) Overview(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("refresh") == "true" {
		if err := h.Dashboard.Refresh(r.Context()); err != nil {
			serviceError(w, h.Logger, err)
			return
		}
	}
	snap, err := h.Dashboard.Snapshot(r.Context(), identity(r))
	if err != nil {
		serviceError(w, h.Logger, err)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// Execute runs a command. A failed command answers 409 with the command
// body so the client can show the error and keep its previous state.
func (h *AdminHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Kind     admin.Kind `json:"kind"`
		TargetID string     `json:"target_id"`
	}
	if err := decodeJSON(w, r, &in, true); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if in.TargetID == "" {
		writeError(w, http.StatusBadRequest, "target_id is required")
		return
	}
	cmd, err := h.Dashboard.Execute(r.Context(), identity(r), in.Kind, in.TargetID)
	if err != nil {
		serviceError(w, h.Logger, err)
		return
	}
	status := http.StatusOK
	if cmd.Status == admin.StatusFailed {
		status = http.StatusConflict
	}
	writeJSON(w, status, cmd)
}

func (h *AdminHandler) Command(w http.ResponseWriter, r *http.Request) {
	cmd, ok := h.Dashboard.Command(getParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "command not found")
		return
	}
	writeJSON(w, http.StatusOK, cmd)
}
