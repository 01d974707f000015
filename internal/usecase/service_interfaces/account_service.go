package service_interfaces

import (
	"context"

	"github.com/api-sage/bank-back-office/internal/commons"
	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/api-sage/bank-back-office/internal/dto"
)

type AccountService interface {
	CreateAccount(ctx context.Context, caller domain.Identity, req dto.CreateAccountRequest) (commons.Response[dto.AccountResponse], error)
	GetAccount(ctx context.Context, caller domain.Identity, accountID string) (commons.Response[dto.AccountResponse], error)
	ListAccountsForCustomer(ctx context.Context, caller domain.Identity, customerID string) (commons.Response[[]dto.AccountResponse], error)
}
