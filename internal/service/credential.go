package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bgocumlu/menu/internal/domain"
	"github.com/bgocumlu/menu/internal/repo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrEmptyPassword = errors.New("password is required")

// CredentialService is the gate in front of every write. It holds one bcrypt
// hash and answers whether a candidate matches it; the hash never leaves.
type CredentialService struct {
	credentialRepo repo.CredentialRepository
	cost           int
	logger         *zap.SugaredLogger
}

func NewCredentialService(credentialRepo repo.CredentialRepository, cost int, logger *zap.SugaredLogger) *CredentialService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &CredentialService{
		credentialRepo: credentialRepo,
		cost:           cost,
		logger:         logger,
	}
}

// Create stores the admin password. It fails with repo.ErrCredentialExists
// once a password has been set.
func (s *CredentialService) Create(ctx context.Context, password string) error {
	if password == "" {
		return ErrEmptyPassword
	}

	if _, err := s.credentialRepo.Get(ctx); err == nil {
		return repo.ErrCredentialExists
	} else if !errors.Is(err, repo.ErrNotFound) {
		return fmt.Errorf("failed to check credential: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.credentialRepo.Create(ctx, &domain.Credential{PasswordHash: string(hash)}); err != nil {
		return err
	}

	s.logger.Info("admin credential created")

	return nil
}

// Verify reports whether candidate matches the stored password. It returns
// repo.ErrNotFound when no password has been set.
func (s *CredentialService) Verify(ctx context.Context, candidate string) (bool, error) {
	credential, err := s.credentialRepo.Get(ctx)
	if err != nil {
		return false, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(credential.PasswordHash), []byte(candidate))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			s.logger.Warn("admin password rejected")
			return false, nil
		}
		return false, fmt.Errorf("failed to compare password: %w", err)
	}

	return true, nil
}
