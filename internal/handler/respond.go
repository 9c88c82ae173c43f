package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// All API responses share one JSON envelope: {success, data} on success,
// {success:false, error, details?} on failure.

func respondData(w http.ResponseWriter, data any) {
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    data,
	})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]any{
		"success": false,
		"error":   message,
	})
}

func respondValidationError(w http.ResponseWriter, details any) {
	respondJSON(w, http.StatusBadRequest, map[string]any{
		"success": false,
		"error":   "Invalid request data",
		"details": details,
	})
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
