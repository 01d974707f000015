package service_interfaces

import (
	"context"

	"github.com/api-sage/bank-back-office/internal/commons"
	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/api-sage/bank-back-office/internal/dto"
)

type LedgerService interface {
	PostTransaction(ctx context.Context, caller domain.Identity, req dto.PostTransactionRequest) (commons.Response[dto.PostTransactionResponse], error)
	ListTransactions(ctx context.Context, caller domain.Identity, accountID string) (commons.Response[dto.ListTransactionsResponse], error)
}
