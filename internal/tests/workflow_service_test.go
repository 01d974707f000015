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

func applicantCustomerRepo(t *testing.T) *mocks.CustomerRepository {
	t.Helper()
	customers := mocks.NewCustomerRepository(t)
	customers.
		On("GetByIdentityID", context.Background(), "ident-1").
		Return(domain.Customer{ID: "cust-1", IdentityID: "ident-1"}, nil)
	return customers
}

func TestWorkflowServiceApplyLoan(t *testing.T) {
	ctx := context.Background()

	t.Run("application is recorded as pending", func(t *testing.T) {
		loans := mocks.NewLoanRepository(t)
		var captured domain.Loan
		loans.
			On("Create", ctx, mock.AnythingOfType("domain.Loan")).
			Run(func(args mock.Arguments) { captured = args.Get(1).(domain.Loan) }).
			Return(domain.Loan{
				ID:           "loan-7",
				CustomerID:   "cust-1",
				LoanType:     domain.LoanTypePersonal,
				Amount:       decimal.RequireFromString("5000.00"),
				InterestRate: decimal.RequireFromString("4.50"),
				TermMonths:   36,
				Status:       domain.ApplicationStatusPending,
				CreatedAt:    time.Now().UTC(),
			}, nil).
			Once()

		svc := services.NewWorkflowService(loans, nil, nil, nil, applicantCustomerRepo(t), nil)

		resp, err := svc.ApplyLoan(ctx, customerCaller(), dto.ApplyLoanRequest{
			LoanType:     "personal",
			Amount:       "5000",
			InterestRate: "4.5",
			TermMonths:   36,
		})
		require.NoError(t, err)
		require.True(t, resp.Success)
		assert.Equal(t, "pending", resp.Data.Status)
		assert.Equal(t, "5000.00", resp.Data.Amount)

		assert.Equal(t, domain.ApplicationStatusPending, captured.Status)
		assert.Equal(t, "cust-1", captured.CustomerID)
		assert.Equal(t, "4.5", captured.InterestRate.String())
	})

	t.Run("teller cannot apply", func(t *testing.T) {
		svc := services.NewWorkflowService(nil, nil, nil, nil, nil, nil)

		_, err := svc.ApplyLoan(ctx, domain.Identity{ID: "ident-9", Role: domain.RoleTeller}, dto.ApplyLoanRequest{
			LoanType:     "auto",
			Amount:       "100",
			InterestRate: "3",
			TermMonths:   12,
		})
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("non-positive amount is rejected", func(t *testing.T) {
		svc := services.NewWorkflowService(mocks.NewLoanRepository(t), nil, nil, nil, nil, nil)

		_, err := svc.ApplyLoan(ctx, customerCaller(), dto.ApplyLoanRequest{
			LoanType:     "auto",
			Amount:       "-100",
			InterestRate: "3",
			TermMonths:   12,
		})
		require.ErrorIs(t, err, domain.ErrInvalidAmount)
	})
}

func TestWorkflowServiceApplyCreditCard(t *testing.T) {
	ctx := context.Background()

	cards := mocks.NewCreditCardRepository(t)
	cards.On("CardNumberExists", ctx, mock.AnythingOfType("string")).Return(false, nil)

	issued := domain.CreditCard{
		ID:          "card-3",
		CustomerID:  "cust-1",
		CardNumber:  "4111222233334444",
		CVV:         "123",
		CardType:    domain.CardTypeReward,
		CreditLimit: decimal.RequireFromString("2500.00"),
		Status:      domain.ApplicationStatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	var captured domain.CreditCard
	cards.
		On("Create", ctx, mock.AnythingOfType("domain.CreditCard")).
		Run(func(args mock.Arguments) { captured = args.Get(1).(domain.CreditCard) }).
		Return(issued, nil).
		Once()

	idgen := services.NewIdentifierGenerator(nil, cards)
	svc := services.NewWorkflowService(nil, cards, nil, nil, applicantCustomerRepo(t), idgen)

	resp, err := svc.ApplyCreditCard(ctx, customerCaller(), dto.ApplyCreditCardRequest{
		CardType:    "reward",
		CreditLimit: "2500",
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	assert.Equal(t, "pending", resp.Data.Status)

	assert.Len(t, captured.CardNumber, 16)
	assert.Regexp(t, `^\d{16}$`, captured.CardNumber)
	assert.Regexp(t, `^\d{3}$`, captured.CVV)
	assert.Equal(t, domain.ApplicationStatusPending, captured.Status)
	assert.Equal(t, "cust-1", captured.CustomerID)
}

func TestWorkflowServiceApplyCreditCardRetriesDuplicateNumber(t *testing.T) {
	ctx := context.Background()

	cards := mocks.NewCreditCardRepository(t)
	cards.On("CardNumberExists", ctx, mock.AnythingOfType("string")).Return(false, nil)
	cards.
		On("Create", ctx, mock.AnythingOfType("domain.CreditCard")).
		Return(domain.CreditCard{}, domain.ErrDuplicateIdentifier).
		Once()
	cards.
		On("Create", ctx, mock.AnythingOfType("domain.CreditCard")).
		Return(domain.CreditCard{
			ID:         "card-4",
			CustomerID: "cust-1",
			Status:     domain.ApplicationStatusPending,
		}, nil).
		Once()

	idgen := services.NewIdentifierGenerator(nil, cards)
	svc := services.NewWorkflowService(nil, cards, nil, nil, applicantCustomerRepo(t), idgen)

	resp, err := svc.ApplyCreditCard(ctx, customerCaller(), dto.ApplyCreditCardRequest{
		CardType:    "standard",
		CreditLimit: "1000",
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	assert.Equal(t, "card-4", resp.Data.ID)
}

func TestWorkflowServiceDecideLoan(t *testing.T) {
	ctx := context.Background()
	officer := domain.Identity{ID: "ident-5", Username: "officer", Role: domain.RoleLoanOfficer}

	t.Run("approve moves a pending application to approved", func(t *testing.T) {
		loans := mocks.NewLoanRepository(t)
		loans.
			On("DecideFromPending", ctx, "loan-7", domain.ApplicationStatusApproved).
			Return(nil).
			Once()

		svc := services.NewWorkflowService(loans, nil, nil, nil, nil, nil)

		resp, err := svc.DecideLoan(ctx, officer, dto.DecideApplicationRequest{
			ApplicationID: "loan-7",
			Action:        "approve",
		})
		require.NoError(t, err)
		require.True(t, resp.Success)
		assert.Equal(t, "approved", resp.Data.Status)
	})

	t.Run("reject moves a pending application to rejected", func(t *testing.T) {
		loans := mocks.NewLoanRepository(t)
		loans.
			On("DecideFromPending", ctx, "loan-8", domain.ApplicationStatusRejected).
			Return(nil).
			Once()

		svc := services.NewWorkflowService(loans, nil, nil, nil, nil, nil)

		resp, err := svc.DecideLoan(ctx, officer, dto.DecideApplicationRequest{
			ApplicationID: "loan-8",
			Action:        "reject",
		})
		require.NoError(t, err)
		assert.Equal(t, "rejected", resp.Data.Status)
	})

	t.Run("already decided application cannot be decided again", func(t *testing.T) {
		loans := mocks.NewLoanRepository(t)
		loans.
			On("DecideFromPending", ctx, "loan-7", domain.ApplicationStatusRejected).
			Return(domain.ErrInvalidAction).
			Once()

		svc := services.NewWorkflowService(loans, nil, nil, nil, nil, nil)

		resp, err := svc.DecideLoan(ctx, officer, dto.DecideApplicationRequest{
			ApplicationID: "loan-7",
			Action:        "reject",
		})
		require.ErrorIs(t, err, domain.ErrInvalidAction)
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Errors, "application has already been decided")
	})

	t.Run("unknown action is rejected before touching the store", func(t *testing.T) {
		svc := services.NewWorkflowService(mocks.NewLoanRepository(t), nil, nil, nil, nil, nil)

		resp, err := svc.DecideLoan(ctx, officer, dto.DecideApplicationRequest{
			ApplicationID: "loan-7",
			Action:        "escalate",
		})
		require.ErrorIs(t, err, domain.ErrInvalidAction)
		assert.Contains(t, resp.Errors, "action must be approve or reject")
	})

	t.Run("unknown application id", func(t *testing.T) {
		loans := mocks.NewLoanRepository(t)
		loans.
			On("DecideFromPending", ctx, "missing", domain.ApplicationStatusApproved).
			Return(domain.ErrRecordNotFound).
			Once()

		svc := services.NewWorkflowService(loans, nil, nil, nil, nil, nil)

		_, err := svc.DecideLoan(ctx, officer, dto.DecideApplicationRequest{
			ApplicationID: "missing",
			Action:        "approve",
		})
		require.ErrorIs(t, err, domain.ErrRecordNotFound)
	})

	t.Run("credit card manager cannot decide loans", func(t *testing.T) {
		svc := services.NewWorkflowService(nil, nil, nil, nil, nil, nil)

		_, err := svc.DecideLoan(ctx, domain.Identity{ID: "ident-6", Role: domain.RoleCreditCardManager}, dto.DecideApplicationRequest{
			ApplicationID: "loan-7",
			Action:        "approve",
		})
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestWorkflowServiceDecideCreditCard(t *testing.T) {
	ctx := context.Background()

	t.Run("manager approves a pending card", func(t *testing.T) {
		cards := mocks.NewCreditCardRepository(t)
		cards.
			On("DecideFromPending", ctx, "card-3", domain.ApplicationStatusApproved).
			Return(nil).
			Once()

		svc := services.NewWorkflowService(nil, cards, nil, nil, nil, nil)

		resp, err := svc.DecideCreditCard(ctx, domain.Identity{ID: "ident-6", Role: domain.RoleCreditCardManager}, dto.DecideApplicationRequest{
			ApplicationID: "card-3",
			Action:        "approve",
		})
		require.NoError(t, err)
		assert.Equal(t, "approved", resp.Data.Status)
	})

	t.Run("loan officer cannot decide cards", func(t *testing.T) {
		svc := services.NewWorkflowService(nil, nil, nil, nil, nil, nil)

		_, err := svc.DecideCreditCard(ctx, domain.Identity{ID: "ident-5", Role: domain.RoleLoanOfficer}, dto.DecideApplicationRequest{
			ApplicationID: "card-3",
			Action:        "approve",
		})
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("admin can decide both kinds", func(t *testing.T) {
		admin := domain.Identity{ID: "ident-0", Role: domain.RoleAdmin}

		loans := mocks.NewLoanRepository(t)
		loans.On("DecideFromPending", ctx, "loan-9", domain.ApplicationStatusRejected).Return(nil).Once()
		cards := mocks.NewCreditCardRepository(t)
		cards.On("DecideFromPending", ctx, "card-9", domain.ApplicationStatusApproved).Return(nil).Once()

		svc := services.NewWorkflowService(loans, cards, nil, nil, nil, nil)

		_, err := svc.DecideLoan(ctx, admin, dto.DecideApplicationRequest{ApplicationID: "loan-9", Action: "reject"})
		require.NoError(t, err)
		_, err = svc.DecideCreditCard(ctx, admin, dto.DecideApplicationRequest{ApplicationID: "card-9", Action: "approve"})
		require.NoError(t, err)
	})
}

func TestWorkflowServiceSubmitInvestment(t *testing.T) {
	ctx := context.Background()

	t.Run("investment persists without a decision gate", func(t *testing.T) {
		investments := mocks.NewInvestmentRepository(t)
		var captured domain.Investment
		investments.
			On("Create", ctx, mock.AnythingOfType("domain.Investment")).
			Run(func(args mock.Arguments) { captured = args.Get(1).(domain.Investment) }).
			Return(domain.Investment{
				ID:             "inv-1",
				CustomerID:     "cust-1",
				InvestmentType: domain.InvestmentTypeStocks,
				Amount:         decimal.RequireFromString("750.00"),
				ReturnRate:     decimal.RequireFromString("6.25"),
				CreatedAt:      time.Now().UTC(),
			}, nil).
			Once()

		svc := services.NewWorkflowService(nil, nil, investments, nil, applicantCustomerRepo(t), nil)

		resp, err := svc.SubmitInvestment(ctx, customerCaller(), dto.SubmitInvestmentRequest{
			InvestmentType: "stocks",
			Amount:         "750",
			ReturnRate:     "6.25",
		})
		require.NoError(t, err)
		require.True(t, resp.Success)
		assert.Equal(t, "inv-1", resp.Data.ID)
		assert.Equal(t, "cust-1", captured.CustomerID)
	})

	t.Run("financial advisor lists all investments", func(t *testing.T) {
		investments := mocks.NewInvestmentRepository(t)
		investments.
			On("List", ctx).
			Return([]domain.Investment{
				{ID: "inv-1", CustomerID: "cust-1", InvestmentType: domain.InvestmentTypeBonds, Amount: decimal.RequireFromString("100.00"), ReturnRate: decimal.RequireFromString("2.00")},
			}, nil).
			Once()

		svc := services.NewWorkflowService(nil, nil, investments, nil, nil, nil)

		resp, err := svc.ListInvestments(ctx, domain.Identity{ID: "ident-7", Role: domain.RoleFinancialAdvisor})
		require.NoError(t, err)
		require.Len(t, *resp.Data, 1)
		assert.Equal(t, "bonds", (*resp.Data)[0].InvestmentType)
	})

	t.Run("customer cannot list investments", func(t *testing.T) {
		svc := services.NewWorkflowService(nil, nil, nil, nil, nil, nil)

		_, err := svc.ListInvestments(ctx, customerCaller())
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestWorkflowServiceSubmitRetirementPlan(t *testing.T) {
	ctx := context.Background()

	plans := mocks.NewRetirementPlanRepository(t)
	plans.
		On("Create", ctx, mock.AnythingOfType("domain.RetirementPlan")).
		Return(domain.RetirementPlan{
			ID:           "plan-1",
			CustomerID:   "cust-1",
			PlanType:     domain.PlanType401K,
			Contribution: decimal.RequireFromString("300.00"),
			CreatedAt:    time.Now().UTC(),
		}, nil).
		Once()

	svc := services.NewWorkflowService(nil, nil, nil, plans, applicantCustomerRepo(t), nil)

	resp, err := svc.SubmitRetirementPlan(ctx, customerCaller(), dto.SubmitRetirementPlanRequest{
		PlanType:     "401k",
		Contribution: "300",
	})
	require.NoError(t, err)
	require.True(t, resp.Success)
	assert.Equal(t, "401k", resp.Data.PlanType)
	assert.Equal(t, "300.00", resp.Data.Contribution)
}
