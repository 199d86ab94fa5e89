package repo

import (
	"context"

	"github.com/bgocumlu/menu/internal/domain"
)

type CredentialRepository interface {
	Get(ctx context.Context) (*domain.Credential, error)
	Create(ctx context.Context, credential *domain.Credential) error
}
