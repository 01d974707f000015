package repo_interfaces

import (
	"context"

	"github.com/api-sage/bank-back-office/internal/domain"
)

type CustomerRepository interface {
	// CreateWithIdentity persists the identity and its customer profile
	// in one atomic commit; neither row exists if either insert fails.
	CreateWithIdentity(ctx context.Context, identity domain.Identity, customer domain.Customer) (domain.Identity, domain.Customer, error)
	GetByID(ctx context.Context, id string) (domain.Customer, error)
	GetByIdentityID(ctx context.Context, identityID string) (domain.Customer, error)
	Update(ctx context.Context, customer domain.Customer) (domain.Customer, error)
	Delete(ctx context.Context, id string) error
}
