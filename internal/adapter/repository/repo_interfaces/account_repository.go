package repo_interfaces

import (
	"context"

	"github.com/api-sage/bank-back-office/internal/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, account domain.Account) (domain.Account, error)
	GetByID(ctx context.Context, id string) (domain.Account, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]domain.Account, error)
	AccountNumberExists(ctx context.Context, accountNumber string) (bool, error)
}
