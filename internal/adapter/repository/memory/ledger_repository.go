// Package memory holds in-memory store implementations. They back the
// service tests and mirror the row-lock semantics of the postgres
// adapters with a single mutex critical section.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/shopspring/decimal"
)

// LedgerRepository implements both the account and ledger store
// contracts over one mutex so a posting's balance check, balance
// update and log append happen in a single critical section.
type LedgerRepository struct {
	mu           sync.Mutex
	nextID       int
	accounts     map[string]*domain.Account
	transactions map[string][]domain.Transaction
}

func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{
		accounts:     make(map[string]*domain.Account),
		transactions: make(map[string][]domain.Transaction),
	}
}

func (r *LedgerRepository) newID() string {
	r.nextID++
	return fmt.Sprintf("%d", r.nextID)
}

func (r *LedgerRepository) Create(_ context.Context, account domain.Account) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if existing.AccountNumber == account.AccountNumber {
			return domain.Account{}, domain.ErrDuplicateIdentifier
		}
	}

	account.ID = r.newID()
	account.CreatedAt = time.Now().UTC()
	account.UpdatedAt = account.CreatedAt
	stored := account
	r.accounts[account.ID] = &stored

	return account, nil
}

func (r *LedgerRepository) GetByID(_ context.Context, id string) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[id]
	if !ok {
		return domain.Account{}, domain.ErrRecordNotFound
	}

	return *account, nil
}

func (r *LedgerRepository) ListByCustomerID(_ context.Context, customerID string) ([]domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts := make([]domain.Account, 0)
	for _, account := range r.accounts {
		if account.CustomerID == customerID {
			accounts = append(accounts, *account)
		}
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].CreatedAt.After(accounts[j].CreatedAt)
	})

	return accounts, nil
}

func (r *LedgerRepository) AccountNumberExists(_ context.Context, accountNumber string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, account := range r.accounts {
		if account.AccountNumber == accountNumber {
			return true, nil
		}
	}

	return false, nil
}

func (r *LedgerRepository) Post(_ context.Context, accountID string, txType domain.TransactionType, amount decimal.Decimal, description string) (domain.Transaction, decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[accountID]
	if !ok {
		return domain.Transaction{}, decimal.Zero, domain.ErrRecordNotFound
	}

	switch txType {
	case domain.TransactionTypeDeposit:
		account.Balance = account.Balance.Add(amount)
	case domain.TransactionTypeWithdrawal:
		if account.Balance.LessThan(amount) {
			return domain.Transaction{}, decimal.Zero, &domain.InsufficientFundsError{Balance: account.Balance}
		}
		account.Balance = account.Balance.Sub(amount)
	default:
		return domain.Transaction{}, decimal.Zero, domain.ErrInvalidAction
	}
	account.UpdatedAt = time.Now().UTC()

	record := domain.Transaction{
		ID:              r.newID(),
		AccountID:       accountID,
		TransactionType: txType,
		Amount:          amount,
		Description:     description,
		CreatedAt:       account.UpdatedAt,
	}
	r.transactions[accountID] = append(r.transactions[accountID], record)

	return record, account.Balance, nil
}

func (r *LedgerRepository) ListByAccountID(_ context.Context, accountID string) ([]domain.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.transactions[accountID]
	// Newest first, matching the postgres ordering.
	out := make([]domain.Transaction, len(stored))
	for i, record := range stored {
		out[len(stored)-1-i] = record
	}

	return out, nil
}
