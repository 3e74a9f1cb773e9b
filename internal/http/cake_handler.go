package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/joykbiswas/cupcake-backend/internal/domain"
)

// CatalogService is what the cake routes need from the service layer.
type CatalogService interface {
	List(ctx context.Context) ([]domain.Cake, error)
	Get(ctx context.Context, id string) (*domain.Cake, error)
	Insert(ctx context.Context, cake *domain.Cake) (*domain.InsertAck, error)
	Update(ctx context.Context, id string, item *domain.Cake) (*domain.UpdateAck, error)
	Delete(ctx context.Context, id string) (*domain.DeleteAck, error)
}

type CakeHandler struct {
	catalog CatalogService
	timeout time.Duration
}

func NewCakeHandler(catalog CatalogService, timeout time.Duration) *CakeHandler {
	return &CakeHandler{
		catalog: catalog,
		timeout: timeout,
	}
}

func (h *CakeHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	cakes, err := h.catalog.List(ctx)
	if err != nil {
		handleStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cakes)
}

// Get answers a null body with 200 when no document matches the id,
// instead of a distinct not-found outcome.
func (h *CakeHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	cake, err := h.catalog.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cake)
}

func (h *CakeHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var cake domain.Cake
	if err := json.NewDecoder(r.Body).Decode(&cake); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	ack, err := h.catalog.Insert(ctx, &cake)
	if err != nil {
		handleStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ack)
}

func (h *CakeHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var item domain.Cake
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	ack, err := h.catalog.Update(ctx, chi.URLParam(r, "id"), &item)
	if err != nil {
		handleStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ack)
}

func (h *CakeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	ack, err := h.catalog.Delete(ctx, chi.URLParam(r, "id"))
	if err != nil {
		handleStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ack)
}
