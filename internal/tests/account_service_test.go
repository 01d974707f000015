package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/api-sage/bank-back-office/internal/dto"
	"github.com/api-sage/bank-back-office/internal/mocks"
	"github.com/api-sage/bank-back-office/internal/usecase/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountServiceCreateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("opens a zero-balance account with a generated number", func(t *testing.T) {
		customers := mocks.NewCustomerRepository(t)
		customers.On("GetByID", ctx, "cust-1").Return(domain.Customer{ID: "cust-1"}, nil).Once()

		accounts := mocks.NewAccountRepository(t)
		accounts.On("AccountNumberExists", ctx, mock.AnythingOfType("string")).Return(false, nil)
		var captured domain.Account
		accounts.
			On("Create", ctx, mock.AnythingOfType("domain.Account")).
			Run(func(args mock.Arguments) { captured = args.Get(1).(domain.Account) }).
			Return(domain.Account{
				ID:            "acct-1",
				CustomerID:    "cust-1",
				AccountNumber: "123456789012",
				AccountType:   domain.AccountTypeSavings,
				Balance:       decimal.Zero,
				CreatedAt:     time.Now().UTC(),
			}, nil).
			Once()

		svc := services.NewAccountService(accounts, customers, services.NewIdentifierGenerator(accounts, nil))

		resp, err := svc.CreateAccount(ctx, tellerCaller(), dto.CreateAccountRequest{
			CustomerID:  "cust-1",
			AccountType: "savings",
		})
		require.NoError(t, err)
		require.True(t, resp.Success)
		assert.Equal(t, "0.00", resp.Data.Balance)

		assert.Regexp(t, `^\d{12}$`, captured.AccountNumber)
		assert.True(t, captured.Balance.IsZero())
		assert.Equal(t, domain.AccountTypeSavings, captured.AccountType)
	})

	t.Run("retries the account number on a duplicate rejection", func(t *testing.T) {
		customers := mocks.NewCustomerRepository(t)
		customers.On("GetByID", ctx, "cust-1").Return(domain.Customer{ID: "cust-1"}, nil).Once()

		accounts := mocks.NewAccountRepository(t)
		accounts.On("AccountNumberExists", ctx, mock.AnythingOfType("string")).Return(false, nil)
		accounts.
			On("Create", ctx, mock.AnythingOfType("domain.Account")).
			Return(domain.Account{}, domain.ErrDuplicateIdentifier).
			Once()
		accounts.
			On("Create", ctx, mock.AnythingOfType("domain.Account")).
			Return(domain.Account{ID: "acct-2", CustomerID: "cust-1", AccountNumber: "210987654321", AccountType: domain.AccountTypeChecking, Balance: decimal.Zero}, nil).
			Once()

		svc := services.NewAccountService(accounts, customers, services.NewIdentifierGenerator(accounts, nil))

		resp, err := svc.CreateAccount(ctx, tellerCaller(), dto.CreateAccountRequest{
			CustomerID:  "cust-1",
			AccountType: "checking",
		})
		require.NoError(t, err)
		assert.Equal(t, "acct-2", resp.Data.ID)
	})

	t.Run("unknown customer", func(t *testing.T) {
		customers := mocks.NewCustomerRepository(t)
		customers.On("GetByID", ctx, "missing").Return(domain.Customer{}, domain.ErrRecordNotFound).Once()

		svc := services.NewAccountService(nil, customers, nil)

		_, err := svc.CreateAccount(ctx, tellerCaller(), dto.CreateAccountRequest{
			CustomerID:  "missing",
			AccountType: "checking",
		})
		require.ErrorIs(t, err, domain.ErrRecordNotFound)
	})

	t.Run("unknown account type is rejected", func(t *testing.T) {
		svc := services.NewAccountService(nil, nil, nil)

		resp, err := svc.CreateAccount(ctx, tellerCaller(), dto.CreateAccountRequest{
			CustomerID:  "cust-1",
			AccountType: "brokerage",
		})
		require.Error(t, err)
		assert.False(t, resp.Success)
	})

	t.Run("customer role cannot open accounts", func(t *testing.T) {
		svc := services.NewAccountService(nil, nil, nil)

		_, err := svc.CreateAccount(ctx, customerCaller(), dto.CreateAccountRequest{
			CustomerID:  "cust-1",
			AccountType: "checking",
		})
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestAccountServiceListAccountsForCustomer(t *testing.T) {
	ctx := context.Background()

	accounts := mocks.NewAccountRepository(t)
	accounts.
		On("ListByCustomerID", ctx, "cust-1").
		Return([]domain.Account{
			{ID: "acct-1", CustomerID: "cust-1", AccountNumber: "123456789012", AccountType: domain.AccountTypeChecking, Balance: decimal.RequireFromString("10.00")},
			{ID: "acct-2", CustomerID: "cust-1", AccountNumber: "210987654321", AccountType: domain.AccountTypeSavings, Balance: decimal.Zero},
		}, nil).
		Once()

	svc := services.NewAccountService(accounts, nil, nil)

	resp, err := svc.ListAccountsForCustomer(ctx, tellerCaller(), "cust-1")
	require.NoError(t, err)
	require.Len(t, *resp.Data, 2)
	assert.Equal(t, "10.00", (*resp.Data)[0].Balance)
}
