package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/mrarifat21/bashabari-server-side/utils"
)

// Small response helpers shared by every controller so error bodies stay
// consistent across the API.

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeValidationError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":   "Missing or invalid required fields",
		"details": utils.GetValidationErrors(err),
	})
}
