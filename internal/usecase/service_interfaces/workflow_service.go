package service_interfaces

import (
	"context"

	"github.com/api-sage/bank-back-office/internal/commons"
	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/api-sage/bank-back-office/internal/dto"
)

type WorkflowService interface {
	ApplyLoan(ctx context.Context, caller domain.Identity, req dto.ApplyLoanRequest) (commons.Response[dto.LoanResponse], error)
	ApplyCreditCard(ctx context.Context, caller domain.Identity, req dto.ApplyCreditCardRequest) (commons.Response[dto.CreditCardResponse], error)
	DecideLoan(ctx context.Context, caller domain.Identity, req dto.DecideApplicationRequest) (commons.Response[dto.DecideApplicationResponse], error)
	DecideCreditCard(ctx context.Context, caller domain.Identity, req dto.DecideApplicationRequest) (commons.Response[dto.DecideApplicationResponse], error)
	SubmitInvestment(ctx context.Context, caller domain.Identity, req dto.SubmitInvestmentRequest) (commons.Response[dto.InvestmentResponse], error)
	SubmitRetirementPlan(ctx context.Context, caller domain.Identity, req dto.SubmitRetirementPlanRequest) (commons.Response[dto.RetirementPlanResponse], error)
	ListLoans(ctx context.Context, caller domain.Identity) (commons.Response[[]dto.LoanResponse], error)
	ListCreditCards(ctx context.Context, caller domain.Identity) (commons.Response[[]dto.CreditCardResponse], error)
	ListInvestments(ctx context.Context, caller domain.Identity) (commons.Response[[]dto.InvestmentResponse], error)
}
