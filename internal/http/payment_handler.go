package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/joykbiswas/cupcake-backend/internal/auth"
	"github.com/joykbiswas/cupcake-backend/internal/domain"
)

// PaymentService is what the payment routes need from the service layer.
type PaymentService interface {
	CreateIntent(ctx context.Context, price float64) (string, error)
	Record(ctx context.Context, payment *domain.Payment) (*domain.PaymentReceipt, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Payment, error)
	ListAll(ctx context.Context) ([]domain.Payment, error)
}

type PaymentHandler struct {
	payments PaymentService
	timeout  time.Duration
}

func NewPaymentHandler(payments PaymentService, timeout time.Duration) *PaymentHandler {
	return &PaymentHandler{
		payments: payments,
		timeout:  timeout,
	}
}

type createIntentRequestDTO struct {
	Price float64 `json:"price"`
}

type createIntentResponseDTO struct {
	ClientSecret string `json:"clientSecret"`
}

// CreateIntent forwards the price to the processor and returns the intent's
// client secret verbatim. The price is deliberately not validated.
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req createIntentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	clientSecret, err := h.payments.CreateIntent(ctx, req.Price)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, createIntentResponseDTO{ClientSecret: clientSecret})
}

func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var payment domain.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	receipt, err := h.payments.Record(ctx, &payment)
	if err != nil {
		handleStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, receipt)
}

// History lists the payment records for the email in the path. The claim's
// email must match; anything else is forbidden.
func (h *PaymentHandler) History(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	email := chi.URLParam(r, "email")
	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok || claims.Email != email {
		respondJSON(w, http.StatusForbidden, map[string]string{"message": "forbidden access"})
		return
	}

	records, err := h.payments.ListByEmail(ctx, email)
	if err != nil {
		handleStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, records)
}

func (h *PaymentHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	records, err := h.payments.ListAll(ctx)
	if err != nil {
		handleStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, records)
}
