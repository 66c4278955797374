package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"github.com/tallermanager/workshop-backend/internal/db"
)

var validate = validator.New()

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeMessage emits a plain confirmation body, e.g. after a delete.
func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// translateError maps repository errors onto the HTTP error taxonomy:
// malformed id → 400, missing record → 404, anything else → 500.
func translateError(w http.ResponseWriter, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, db.ErrInvalidID):
		writeError(w, http.StatusBadRequest, "Invalid id")
	case errors.Is(err, db.ErrNotFound):
		writeError(w, http.StatusNotFound, notFoundMessage)
	default:
		log.WithError(err).Error("store operation failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeBody decodes a JSON request body, responding 400 on malformed
// input. Returns false when the request has already been answered.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return false
	}
	return true
}

// validateStruct runs field validation, responding 400 on failure.
// Returns false when the request has already been answered.
func validateStruct(w http.ResponseWriter, v any) bool {
	if err := validate.Struct(v); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
