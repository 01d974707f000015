package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeChecking AccountType = "checking"
	AccountTypeSavings  AccountType = "savings"
)

type Account struct {
	ID            string
	CustomerID    string
	AccountNumber string
	AccountType   AccountType
	Balance       decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
)

// Transaction is an append-only ledger record. Replaying an account's
// transactions from zero must always reproduce its balance.
type Transaction struct {
	ID              string
	AccountID       string
	TransactionType TransactionType
	Amount          decimal.Decimal
	Description     string
	CreatedAt       time.Time
}
