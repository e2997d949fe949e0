package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"gatherly/models"
)

func RespondWithError(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, map[string]string{"error": msg})
}

// Sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// StatusFor maps a save-pipeline error onto an HTTP status code.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrInvalidDate),
		errors.Is(err, models.ErrInvalidTime),
		errors.Is(err, models.ErrTimeOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrDuplicateSlug):
		return http.StatusConflict
	case errors.Is(err, models.ErrNotFound),
		errors.Is(err, models.ErrDanglingReference):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

type M map[string]interface{}
