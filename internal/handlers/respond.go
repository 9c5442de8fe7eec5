package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Srivastav4327/RentMate/internal/access"
	"github.com/Srivastav4327/RentMate/internal/admin"
	"github.com/Srivastav4327/RentMate/internal/models"
	"github.com/Srivastav4327/RentMate/internal/rent/fsm"
	"github.com/Srivastav4327/RentMate/internal/services"
)

const maxBodyBytes = 1 << 20

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON reads a single JSON object from the body. strict rejects
// fields the target does not declare.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, strict bool) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("invalid request body: %v", err)
	}
	if dec.More() {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

// serviceError maps a service failure onto a status code. Anything
// unrecognised is logged and answered 500.
func serviceError(w http.ResponseWriter, log Logger, err error) {
	var verr *services.ValidationError
	var perr *services.PreconditionError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
	case errors.As(err, &perr):
		writeError(w, http.StatusConflict, perr.Reason)
	case errors.Is(err, services.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, fsm.ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrStaleRecord):
		writeError(w, http.StatusConflict, "record was changed by another request, reload and retry")
	case errors.Is(err, models.ErrDuplicateEmail):
		writeError(w, http.StatusConflict, "email is already registered")
	case errors.Is(err, models.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, models.ErrSessionNotFound):
		writeError(w, http.StatusUnauthorized, "session expired, sign in again")
	case errors.Is(err, models.ErrListingNotFound):
		writeError(w, http.StatusNotFound, "listing not found")
	case errors.Is(err, models.ErrRentalNotFound):
		writeError(w, http.StatusNotFound, "rental not found")
	case errors.Is(err, models.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "user not found")
	case errors.Is(err, admin.ErrUnknownKind):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		log.Errorf("%s", err)
		writeError(w, http.StatusServiceUnavailable, "request timed out")
	default:
		log.Errorf("%s", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func identity(r *http.Request) models.Identity {
	id, _ := access.IdentityFrom(r.Context())
	return id
}

// parseDate accepts RFC 3339 timestamps and plain calendar dates.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

// getParam reads a pat route parameter.
func getParam(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(":" + name))
}
