package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/joykbiswas/cupcake-backend/internal/repository"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleStoreError maps repository failures onto the HTTP surface. Only a
// malformed id gets its own branch; everything else is undistinguished.
func handleStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrInvalidID) {
		respondError(w, http.StatusBadRequest, "invalid_id", "id is not a valid object id")
		return
	}
	respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
}
