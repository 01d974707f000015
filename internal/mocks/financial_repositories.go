package mocks

import (
	"context"

	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type AccountRepository struct {
	mock.Mock
}

func NewAccountRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *AccountRepository {
	m := &AccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *AccountRepository) Create(ctx context.Context, account domain.Account) (domain.Account, error) {
	ret := _m.Called(ctx, account)
	return ret.Get(0).(domain.Account), ret.Error(1)
}

func (_m *AccountRepository) GetByID(ctx context.Context, id string) (domain.Account, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.Account), ret.Error(1)
}

func (_m *AccountRepository) ListByCustomerID(ctx context.Context, customerID string) ([]domain.Account, error) {
	ret := _m.Called(ctx, customerID)
	return ret.Get(0).([]domain.Account), ret.Error(1)
}

func (_m *AccountRepository) AccountNumberExists(ctx context.Context, accountNumber string) (bool, error) {
	ret := _m.Called(ctx, accountNumber)
	return ret.Get(0).(bool), ret.Error(1)
}

type LedgerRepository struct {
	mock.Mock
}

func NewLedgerRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *LedgerRepository {
	m := &LedgerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *LedgerRepository) Post(ctx context.Context, accountID string, txType domain.TransactionType, amount decimal.Decimal, description string) (domain.Transaction, decimal.Decimal, error) {
	ret := _m.Called(ctx, accountID, txType, amount, description)
	return ret.Get(0).(domain.Transaction), ret.Get(1).(decimal.Decimal), ret.Error(2)
}

func (_m *LedgerRepository) ListByAccountID(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	ret := _m.Called(ctx, accountID)
	return ret.Get(0).([]domain.Transaction), ret.Error(1)
}

type LoanRepository struct {
	mock.Mock
}

func NewLoanRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *LoanRepository {
	m := &LoanRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *LoanRepository) Create(ctx context.Context, loan domain.Loan) (domain.Loan, error) {
	ret := _m.Called(ctx, loan)
	return ret.Get(0).(domain.Loan), ret.Error(1)
}

func (_m *LoanRepository) GetByID(ctx context.Context, id string) (domain.Loan, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.Loan), ret.Error(1)
}

func (_m *LoanRepository) List(ctx context.Context) ([]domain.Loan, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).([]domain.Loan), ret.Error(1)
}

func (_m *LoanRepository) DecideFromPending(ctx context.Context, id string, status domain.ApplicationStatus) error {
	ret := _m.Called(ctx, id, status)
	return ret.Error(0)
}

type CreditCardRepository struct {
	mock.Mock
}

func NewCreditCardRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CreditCardRepository {
	m := &CreditCardRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *CreditCardRepository) Create(ctx context.Context, card domain.CreditCard) (domain.CreditCard, error) {
	ret := _m.Called(ctx, card)
	return ret.Get(0).(domain.CreditCard), ret.Error(1)
}

func (_m *CreditCardRepository) GetByID(ctx context.Context, id string) (domain.CreditCard, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.CreditCard), ret.Error(1)
}

func (_m *CreditCardRepository) List(ctx context.Context) ([]domain.CreditCard, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).([]domain.CreditCard), ret.Error(1)
}

func (_m *CreditCardRepository) DecideFromPending(ctx context.Context, id string, status domain.ApplicationStatus) error {
	ret := _m.Called(ctx, id, status)
	return ret.Error(0)
}

func (_m *CreditCardRepository) CardNumberExists(ctx context.Context, cardNumber string) (bool, error) {
	ret := _m.Called(ctx, cardNumber)
	return ret.Get(0).(bool), ret.Error(1)
}

type InvestmentRepository struct {
	mock.Mock
}

func NewInvestmentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *InvestmentRepository {
	m := &InvestmentRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *InvestmentRepository) Create(ctx context.Context, investment domain.Investment) (domain.Investment, error) {
	ret := _m.Called(ctx, investment)
	return ret.Get(0).(domain.Investment), ret.Error(1)
}

func (_m *InvestmentRepository) List(ctx context.Context) ([]domain.Investment, error) {
	ret := _m.Called(ctx)
	return ret.Get(0).([]domain.Investment), ret.Error(1)
}

type RetirementPlanRepository struct {
	mock.Mock
}

func NewRetirementPlanRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *RetirementPlanRepository {
	m := &RetirementPlanRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *RetirementPlanRepository) Create(ctx context.Context, plan domain.RetirementPlan) (domain.RetirementPlan, error) {
	ret := _m.Called(ctx, plan)
	return ret.Get(0).(domain.RetirementPlan), ret.Error(1)
}

func (_m *RetirementPlanRepository) ListByCustomerID(ctx context.Context, customerID string) ([]domain.RetirementPlan, error) {
	ret := _m.Called(ctx, customerID)
	return ret.Get(0).([]domain.RetirementPlan), ret.Error(1)
}
