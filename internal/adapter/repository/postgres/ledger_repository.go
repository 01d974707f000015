package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/api-sage/bank-back-office/internal/logger"
	"github.com/shopspring/decimal"
)

type LedgerRepository struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// Post runs the balance adjustment and the log append in one
// transaction. The row lock on the account serializes concurrent
// postings, so the insufficient-funds check and the decrement cannot
// race.
func (r *LedgerRepository) Post(ctx context.Context, accountID string, txType domain.TransactionType, amount decimal.Decimal, description string) (domain.Transaction, decimal.Decimal, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Transaction{}, decimal.Zero, fmt.Errorf("begin posting tx: %w", err)
	}

	const lockQuery = `
SELECT balance
FROM accounts
WHERE id = $1
FOR UPDATE`

	var balance decimal.Decimal
	if err := tx.QueryRowContext(ctx, lockQuery, accountID).Scan(&balance); err != nil {
		_ = tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Transaction{}, decimal.Zero, domain.ErrRecordNotFound
		}
		return domain.Transaction{}, decimal.Zero, fmt.Errorf("lock account row: %w", err)
	}

	var newBalance decimal.Decimal
	switch txType {
	case domain.TransactionTypeDeposit:
		newBalance = balance.Add(amount)
	case domain.TransactionTypeWithdrawal:
		if balance.LessThan(amount) {
			_ = tx.Rollback()
			return domain.Transaction{}, decimal.Zero, &domain.InsufficientFundsError{Balance: balance}
		}
		newBalance = balance.Sub(amount)
	default:
		_ = tx.Rollback()
		return domain.Transaction{}, decimal.Zero, domain.ErrInvalidAction
	}

	const updateQuery = `
UPDATE accounts
SET balance = $2::numeric,
    updated_at = NOW()
WHERE id = $1`

	if _, err := tx.ExecContext(ctx, updateQuery, accountID, newBalance.StringFixed(2)); err != nil {
		_ = tx.Rollback()
		return domain.Transaction{}, decimal.Zero, fmt.Errorf("update account balance: %w", err)
	}

	const insertQuery = `
INSERT INTO transactions (
	account_id,
	transaction_type,
	amount,
	description
) VALUES ($1, $2, $3, $4)
RETURNING id, created_at`

	record := domain.Transaction{
		AccountID:       accountID,
		TransactionType: txType,
		Amount:          amount,
		Description:     description,
	}
	if err := tx.QueryRowContext(
		ctx,
		insertQuery,
		accountID,
		txType,
		amount.StringFixed(2),
		description,
	).Scan(&record.ID, &record.CreatedAt); err != nil {
		_ = tx.Rollback()
		return domain.Transaction{}, decimal.Zero, fmt.Errorf("append transaction record: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Transaction{}, decimal.Zero, fmt.Errorf("commit posting tx: %w", err)
	}

	logger.Info("ledger repository posting committed", logger.Fields{
		"accountId":       accountID,
		"transactionId":   record.ID,
		"transactionType": string(txType),
		"amount":          amount.StringFixed(2),
	})

	return record, newBalance, nil
}

func (r *LedgerRepository) ListByAccountID(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	const query = `
SELECT id, account_id, transaction_type, amount, description, created_at
FROM transactions
WHERE account_id = $1
ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("list transactions by account id: %w", err)
	}
	defer rows.Close()

	transactions := make([]domain.Transaction, 0)
	for rows.Next() {
		var record domain.Transaction
		if err := rows.Scan(
			&record.ID,
			&record.AccountID,
			&record.TransactionType,
			&record.Amount,
			&record.Description,
			&record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		transactions = append(transactions, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transaction rows: %w", err)
	}

	return transactions, nil
}
