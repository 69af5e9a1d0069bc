package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/arsicorp/zenith-lab-robotics/internal/application"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("encode response", "error", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps application errors to HTTP statuses. Unrecognized
// errors become a 500 with a generic body so internals never leak.
func respondError(w http.ResponseWriter, err error) {
	var denied *application.EligibilityDeniedError
	var persist *application.PersistenceError

	switch {
	case errors.Is(err, application.ErrInvalidInput),
		errors.Is(err, application.ErrEmptyCart),
		errors.Is(err, application.ErrProfileMissing),
		errors.Is(err, application.ErrUserExists):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrInvalidCredentials):
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
	case errors.As(err, &denied), errors.Is(err, application.ErrForbidden):
		respondJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, application.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.As(err, &persist):
		slog.Error("persistence failure", "stage", persist.Stage, "error", persist.Err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "Oops... our bad."})
	default:
		slog.Error("unhandled error", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "Oops... our bad."})
	}
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return application.ErrInvalidInput
	}
	return nil
}
