package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/joykbiswas/cupcake-backend/internal/domain"
)

// CartStore is what the cart routes need from storage.
type CartStore interface {
	Insert(ctx context.Context, item bson.M) (*domain.InsertAck, error)
	ListByEmail(ctx context.Context, email string) ([]bson.M, error)
	Delete(ctx context.Context, id string) (*domain.DeleteAck, error)
}

type CartHandler struct {
	carts   CartStore
	timeout time.Duration
}

func NewCartHandler(carts CartStore, timeout time.Duration) *CartHandler {
	return &CartHandler{
		carts:   carts,
		timeout: timeout,
	}
}

func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var item map[string]any
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	ack, err := h.carts.Insert(ctx, bson.M(item))
	if err != nil {
		handleStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ack)
}

// List returns the cart rows for the email in the query string. The route
// demands a valid token, but the claim's email is not compared against the
// queried one; any token reads any cart.
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	items, err := h.carts.ListByEmail(ctx, r.URL.Query().Get("email"))
	if err != nil {
		handleStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, items)
}

func (h *CartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	ack, err := h.carts.Delete(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ack)
}
