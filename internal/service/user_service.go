package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/joykbiswas/cupcake-backend/internal/domain"
	"github.com/joykbiswas/cupcake-backend/internal/identity"
	"github.com/joykbiswas/cupcake-backend/internal/repository"
)

// UserService stores user profiles keyed by email. Creation is idempotent
// by email through an exists-then-insert check; the check and the insert
// are separate store calls, so a concurrent pair of creates can race.
type UserService struct {
	repo     repository.UserRepository
	verifier identity.Verifier
}

func NewUserService(repo repository.UserRepository, verifier identity.Verifier) *UserService {
	return &UserService{
		repo:     repo,
		verifier: verifier,
	}
}

func (s *UserService) List(ctx context.Context) ([]bson.M, error) {
	return s.repo.List(ctx)
}

// Create inserts the profile document verbatim unless a user with the same
// email already exists, in which case the stored data is left alone and
// the result carries the already-exists message with a null insertedId.
func (s *UserService) Create(ctx context.Context, user bson.M) (*domain.UserCreateResult, error) {
	email, _ := user["email"].(string)
	if err := s.verifier.Verify(ctx, email); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &domain.UserCreateResult{Message: "user already exists", InsertedID: nil}, nil
	}

	ack, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}
	return &domain.UserCreateResult{Acknowledged: ack.Acknowledged, InsertedID: ack.InsertedID}, nil
}

func (s *UserService) EstimatedCount(ctx context.Context) (int64, error) {
	return s.repo.EstimatedCount(ctx)
}
