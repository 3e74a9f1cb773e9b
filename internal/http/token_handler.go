package http

import (
	"encoding/json"
	"net/http"
)

// TokenIssuer signs an access token for a claimed email.
type TokenIssuer interface {
	Issue(email string) (string, error)
}

type TokenHandler struct {
	issuer TokenIssuer
}

func NewTokenHandler(issuer TokenIssuer) *TokenHandler {
	return &TokenHandler{issuer: issuer}
}

type tokenRequestDTO struct {
	Email string `json:"email"`
}

type tokenResponseDTO struct {
	Token string `json:"token"`
}

// Issue signs a token for whatever email the body claims. There is no
// check that the email belongs to a stored user.
func (h *TokenHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var req tokenRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	token, err := h.issuer.Issue(req.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, tokenResponseDTO{Token: token})
}
