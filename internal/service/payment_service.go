package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/joykbiswas/cupcake-backend/internal/domain"
	"github.com/joykbiswas/cupcake-backend/internal/payments"
	"github.com/joykbiswas/cupcake-backend/internal/repository"
)

// PaymentService creates processor-side payment intents and records
// completed payments.
type PaymentService struct {
	repo      repository.PaymentRepository
	carts     repository.CartRepository
	processor payments.Processor
}

func NewPaymentService(repo repository.PaymentRepository, carts repository.CartRepository, processor payments.Processor) *PaymentService {
	return &PaymentService{
		repo:      repo,
		carts:     carts,
		processor: processor,
	}
}

// CreateIntent converts a decimal price to a minor-unit amount (truncating)
// and asks the processor for a card payment intent in USD. The price is not
// validated; whatever the client sent goes to the processor.
func (s *PaymentService) CreateIntent(ctx context.Context, price float64) (string, error) {
	amount := int64(price * 100)
	return s.processor.CreateIntent(ctx, amount, "usd")
}

// Record runs the record-then-purge sequence: store the payment, then
// bulk-delete the cart rows it paid for. The two steps are not atomic. If
// the purge fails after a successful insert there is no rollback; the
// orphaned rows are logged and the error is returned.
func (s *PaymentService) Record(ctx context.Context, payment *domain.Payment) (*domain.PaymentReceipt, error) {
	paymentResult, err := s.repo.Insert(ctx, payment)
	if err != nil {
		return nil, err
	}

	deleteResult, err := s.carts.DeleteByIDs(ctx, payment.CartIds)
	if err != nil {
		return nil, s.compensatePurgeFailure(payment, err)
	}

	return &domain.PaymentReceipt{
		PaymentResult: paymentResult,
		DeleteResult:  deleteResult,
	}, nil
}

// compensatePurgeFailure is the placeholder compensation for a purge that
// failed after the payment insert succeeded. There is no compensating delete
// or retry; it mints a step id, logs the orphaned cart ids under it, and
// returns an error carrying the same id so operators can match the response
// a client saw to the log line.
func (s *PaymentService) compensatePurgeFailure(payment *domain.Payment, cause error) error {
	stepID := uuid.NewString()
	log.Printf("payment recorded but cart purge failed: step=%s email=%s cartIds=%v cause=%v",
		stepID, payment.Email, payment.CartIds, cause)
	return fmt.Errorf("payment recorded but cart purge failed (step %s, orphaned cartIds %v): %w",
		stepID, payment.CartIds, cause)
}

func (s *PaymentService) ListByEmail(ctx context.Context, email string) ([]domain.Payment, error) {
	return s.repo.ListByEmail(ctx, email)
}

func (s *PaymentService) ListAll(ctx context.Context) ([]domain.Payment, error) {
	return s.repo.ListAll(ctx)
}
