package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/api-sage/bank-back-office/internal/domain"
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	const query = `
INSERT INTO accounts (
	customer_id,
	account_number,
	account_type,
	balance
) VALUES ($1, $2, $3, $4)
RETURNING id, created_at, updated_at`

	var createdAt time.Time
	var updatedAt time.Time
	var id string

	if err := r.db.QueryRowContext(
		ctx,
		query,
		account.CustomerID,
		account.AccountNumber,
		account.AccountType,
		account.Balance.StringFixed(2),
	).Scan(&id, &createdAt, &updatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.Account{}, domain.ErrDuplicateIdentifier
		}
		return domain.Account{}, fmt.Errorf("create account: %w", err)
	}

	account.ID = id
	account.CreatedAt = createdAt
	account.UpdatedAt = updatedAt

	return account, nil
}

func (r *AccountRepository) GetByID(ctx context.Context, id string) (domain.Account, error) {
	const query = `
SELECT id, customer_id, account_number, account_type, balance, created_at, updated_at
FROM accounts
WHERE id = $1`

	var account domain.Account
	if err := r.db.QueryRowContext(ctx, query, id).Scan(
		&account.ID,
		&account.CustomerID,
		&account.AccountNumber,
		&account.AccountType,
		&account.Balance,
		&account.CreatedAt,
		&account.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Account{}, domain.ErrRecordNotFound
		}
		return domain.Account{}, fmt.Errorf("get account by id: %w", err)
	}

	return account, nil
}

func (r *AccountRepository) ListByCustomerID(ctx context.Context, customerID string) ([]domain.Account, error) {
	const query = `
SELECT id, customer_id, account_number, account_type, balance, created_at, updated_at
FROM accounts
WHERE customer_id = $1
ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list accounts by customer id: %w", err)
	}
	defer rows.Close()

	accounts := make([]domain.Account, 0)
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(
			&account.ID,
			&account.CustomerID,
			&account.AccountNumber,
			&account.AccountType,
			&account.Balance,
			&account.CreatedAt,
			&account.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan account row: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate account rows: %w", err)
	}

	return accounts, nil
}

func (r *AccountRepository) AccountNumberExists(ctx context.Context, accountNumber string) (bool, error) {
	const query = `
SELECT EXISTS (
	SELECT 1
	FROM accounts
	WHERE account_number = $1
)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, accountNumber).Scan(&exists); err != nil {
		return false, fmt.Errorf("check account number exists: %w", err)
	}

	return exists, nil
}
