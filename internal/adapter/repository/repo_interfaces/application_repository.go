package repo_interfaces

import (
	"context"

	"github.com/api-sage/bank-back-office/internal/domain"
)

type LoanRepository interface {
	Create(ctx context.Context, loan domain.Loan) (domain.Loan, error)
	GetByID(ctx context.Context, id string) (domain.Loan, error)
	List(ctx context.Context) ([]domain.Loan, error)
	// DecideFromPending moves a pending loan into the given terminal
	// status. Returns domain.ErrRecordNotFound for an unknown id and
	// domain.ErrInvalidAction when the loan already left pending.
	DecideFromPending(ctx context.Context, id string, status domain.ApplicationStatus) error
}

type CreditCardRepository interface {
	Create(ctx context.Context, card domain.CreditCard) (domain.CreditCard, error)
	GetByID(ctx context.Context, id string) (domain.CreditCard, error)
	List(ctx context.Context) ([]domain.CreditCard, error)
	DecideFromPending(ctx context.Context, id string, status domain.ApplicationStatus) error
	CardNumberExists(ctx context.Context, cardNumber string) (bool, error)
}

type InvestmentRepository interface {
	Create(ctx context.Context, investment domain.Investment) (domain.Investment, error)
	List(ctx context.Context) ([]domain.Investment, error)
}

type RetirementPlanRepository interface {
	Create(ctx context.Context, plan domain.RetirementPlan) (domain.RetirementPlan, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]domain.RetirementPlan, error)
}
