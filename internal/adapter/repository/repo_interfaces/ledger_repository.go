package repo_interfaces

import (
	"context"

	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/shopspring/decimal"
)

type LedgerRepository interface {
	// Post adjusts the account balance and appends the transaction
	// record as a single all-or-nothing unit, serialized against
	// concurrent postings on the same account. Returns the appended
	// record and the post-adjustment balance. A withdrawal exceeding
	// the balance fails with *domain.InsufficientFundsError and leaves
	// both the balance and the log untouched.
	Post(ctx context.Context, accountID string, txType domain.TransactionType, amount decimal.Decimal, description string) (domain.Transaction, decimal.Decimal, error)
	ListByAccountID(ctx context.Context, accountID string) ([]domain.Transaction, error)
}
