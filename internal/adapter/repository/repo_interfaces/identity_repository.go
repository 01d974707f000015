package repo_interfaces

import (
	"context"

	"github.com/api-sage/bank-back-office/internal/domain"
)

type IdentityRepository interface {
	Create(ctx context.Context, identity domain.Identity) (domain.Identity, error)
	GetByID(ctx context.Context, id string) (domain.Identity, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) error
	Delete(ctx context.Context, id string) error
}
