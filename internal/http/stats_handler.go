package http

import (
	"context"
	"net/http"
	"time"

	"github.com/joykbiswas/cupcake-backend/internal/domain"
)

// Counter reports an approximate document count for one collection.
type Counter interface {
	EstimatedCount(ctx context.Context) (int64, error)
}

// PaymentReporter is what the reporting routes need from payment storage.
type PaymentReporter interface {
	Counter
	OrderStats(ctx context.Context) ([]domain.OrderStat, error)
	TotalRevenue(ctx context.Context) (float64, error)
}

type StatsHandler struct {
	users    Counter
	cakes    Counter
	payments PaymentReporter
	timeout  time.Duration
}

func NewStatsHandler(users, cakes Counter, payments PaymentReporter, timeout time.Duration) *StatsHandler {
	return &StatsHandler{
		users:    users,
		cakes:    cakes,
		payments: payments,
		timeout:  timeout,
	}
}

// OrderStats serves the per-category order aggregation. See the pipeline
// in the payment repository for why this reports empty against live data.
func (h *StatsHandler) OrderStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	stats, err := h.payments.OrderStats(ctx)
	if err != nil {
		handleStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

func (h *StatsHandler) AdminStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	users, err := h.users.EstimatedCount(ctx)
	if err != nil {
		handleStoreError(w, err)
		return
	}

	menuItem, err := h.cakes.EstimatedCount(ctx)
	if err != nil {
		handleStoreError(w, err)
		return
	}

	orders, err := h.payments.EstimatedCount(ctx)
	if err != nil {
		handleStoreError(w, err)
		return
	}

	revenue, err := h.payments.TotalRevenue(ctx)
	if err != nil {
		handleStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, domain.AdminStats{
		Users:    users,
		MenuItem: menuItem,
		Orders:   orders,
		Revenue:  revenue,
	})
}
