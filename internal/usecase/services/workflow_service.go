package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/api-sage/bank-back-office/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/bank-back-office/internal/commons"
	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/api-sage/bank-back-office/internal/dto"
	"github.com/api-sage/bank-back-office/internal/logger"
	"github.com/shopspring/decimal"
)

const cardIssueAttempts = 5

// WorkflowService runs both application paths: the gated
// pending/approved/rejected machine for loans and credit cards, and
// the unconditional-accept path for investments and retirement plans.
type WorkflowService struct {
	loanRepo       repo_interfaces.LoanRepository
	cardRepo       repo_interfaces.CreditCardRepository
	investmentRepo repo_interfaces.InvestmentRepository
	retirementRepo repo_interfaces.RetirementPlanRepository
	customerRepo   repo_interfaces.CustomerRepository
	idgen          *IdentifierGenerator
}

func NewWorkflowService(
	loanRepo repo_interfaces.LoanRepository,
	cardRepo repo_interfaces.CreditCardRepository,
	investmentRepo repo_interfaces.InvestmentRepository,
	retirementRepo repo_interfaces.RetirementPlanRepository,
	customerRepo repo_interfaces.CustomerRepository,
	idgen *IdentifierGenerator,
) *WorkflowService {
	return &WorkflowService{
		loanRepo:       loanRepo,
		cardRepo:       cardRepo,
		investmentRepo: investmentRepo,
		retirementRepo: retirementRepo,
		customerRepo:   customerRepo,
		idgen:          idgen,
	}
}

func (s *WorkflowService) ApplyLoan(ctx context.Context, caller domain.Identity, req dto.ApplyLoanRequest) (commons.Response[dto.LoanResponse], error) {
	logger.Info("workflow service apply loan request", logger.Fields{
		"callerId": caller.ID,
		"payload":  logger.SanitizePayload(req),
	})

	if err := Authorize(caller, domain.CapApplyLoan); err != nil {
		return commons.ErrorResponse[dto.LoanResponse]("Unauthorized"), err
	}

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[dto.LoanResponse]("validation failed", err.Error()), err
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return commons.ErrorResponse[dto.LoanResponse]("Invalid amount", err.Error()), err
	}

	rate, err := parseRate(req.InterestRate)
	if err != nil {
		return commons.ErrorResponse[dto.LoanResponse]("Invalid amount", "interestRate must be a non-negative decimal"), err
	}

	customer, err := s.customerRepo.GetByIdentityID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[dto.LoanResponse]("Customer not found"), err
		}
		return commons.ErrorResponse[dto.LoanResponse]("failed to apply for loan", "Unable to apply right now"), err
	}

	loan := domain.Loan{
		CustomerID:   customer.ID,
		LoanType:     domain.LoanType(strings.ToLower(strings.TrimSpace(req.LoanType))),
		Amount:       amount,
		InterestRate: rate,
		TermMonths:   req.TermMonths,
		Status:       domain.ApplicationStatusPending,
	}

	created, err := s.loanRepo.Create(ctx, loan)
	if err != nil {
		logger.Error("workflow service apply loan repository failed", err, logger.Fields{
			"customerId": customer.ID,
		})
		return commons.ErrorResponse[dto.LoanResponse]("failed to apply for loan", "Unable to apply right now"), err
	}

	logger.Info("workflow service apply loan success", logger.Fields{
		"loanId":     created.ID,
		"customerId": created.CustomerID,
		"status":     string(created.Status),
	})

	return commons.SuccessResponse("loan application submitted", mapLoanToResponse(created)), nil
}

func (s *WorkflowService) ApplyCreditCard(ctx context.Context, caller domain.Identity, req dto.ApplyCreditCardRequest) (commons.Response[dto.CreditCardResponse], error) {
	logger.Info("workflow service apply credit card request", logger.Fields{
		"callerId": caller.ID,
		"payload":  logger.SanitizePayload(req),
	})

	if err := Authorize(caller, domain.CapApplyCreditCard); err != nil {
		return commons.ErrorResponse[dto.CreditCardResponse]("Unauthorized"), err
	}

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[dto.CreditCardResponse]("validation failed", err.Error()), err
	}

	limit, err := parseAmount(req.CreditLimit)
	if err != nil {
		return commons.ErrorResponse[dto.CreditCardResponse]("Invalid amount", err.Error()), err
	}

	customer, err := s.customerRepo.GetByIdentityID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[dto.CreditCardResponse]("Customer not found"), err
		}
		return commons.ErrorResponse[dto.CreditCardResponse]("failed to apply for credit card", "Unable to apply right now"), err
	}

	cvv, err := s.idgen.GenerateCVV()
	if err != nil {
		return commons.ErrorResponse[dto.CreditCardResponse]("failed to apply for credit card", "Unable to apply right now"), err
	}

	// The pre-checked card number can still lose a concurrent race to
	// the unique constraint; regenerate and retry a few times.
	var created domain.CreditCard
	for attempt := 0; attempt < cardIssueAttempts; attempt++ {
		cardNumber, genErr := s.idgen.GenerateCardNumber(ctx)
		if genErr != nil {
			return commons.ErrorResponse[dto.CreditCardResponse]("failed to apply for credit card", "Unable to apply right now"), genErr
		}

		created, err = s.cardRepo.Create(ctx, domain.CreditCard{
			CustomerID:  customer.ID,
			CardNumber:  cardNumber,
			CVV:         cvv,
			CreditLimit: limit,
			CardType:    domain.CardType(strings.ToLower(strings.TrimSpace(req.CardType))),
			Status:      domain.ApplicationStatusPending,
		})
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplicateIdentifier) {
			logger.Error("workflow service apply credit card repository failed", err, logger.Fields{
				"customerId": customer.ID,
			})
			return commons.ErrorResponse[dto.CreditCardResponse]("failed to apply for credit card", "Unable to apply right now"), err
		}
	}
	if err != nil {
		return commons.ErrorResponse[dto.CreditCardResponse]("failed to apply for credit card", "Unable to issue a card number right now"), err
	}

	logger.Info("workflow service apply credit card success", logger.Fields{
		"cardId":     created.ID,
		"customerId": created.CustomerID,
		"status":     string(created.Status),
	})

	return commons.SuccessResponse("credit card application submitted", mapCardToResponse(created)), nil
}

func (s *WorkflowService) DecideLoan(ctx context.Context, caller domain.Identity, req dto.DecideApplicationRequest) (commons.Response[dto.DecideApplicationResponse], error) {
	return s.decide(ctx, caller, req, domain.CapDecideLoan, "loan", func(ctx context.Context, id string, status domain.ApplicationStatus) error {
		return s.loanRepo.DecideFromPending(ctx, id, status)
	})
}

func (s *WorkflowService) DecideCreditCard(ctx context.Context, caller domain.Identity, req dto.DecideApplicationRequest) (commons.Response[dto.DecideApplicationResponse], error) {
	return s.decide(ctx, caller, req, domain.CapDecideCreditCard, "credit card", func(ctx context.Context, id string, status domain.ApplicationStatus) error {
		return s.cardRepo.DecideFromPending(ctx, id, status)
	})
}

func (s *WorkflowService) decide(
	ctx context.Context,
	caller domain.Identity,
	req dto.DecideApplicationRequest,
	capability domain.Capability,
	kind string,
	transition func(ctx context.Context, id string, status domain.ApplicationStatus) error,
) (commons.Response[dto.DecideApplicationResponse], error) {
	logger.Info("workflow service decide request", logger.Fields{
		"callerId":      caller.ID,
		"kind":          kind,
		"applicationId": req.ApplicationID,
		"action":        req.Action,
	})

	if err := Authorize(caller, capability); err != nil {
		return commons.ErrorResponse[dto.DecideApplicationResponse]("Unauthorized"), err
	}

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[dto.DecideApplicationResponse]("validation failed", err.Error()), err
	}

	action := domain.DecisionAction(strings.ToLower(strings.TrimSpace(req.Action)))
	status, ok := action.Status()
	if !ok {
		err := domain.ErrInvalidAction
		return commons.ErrorResponse[dto.DecideApplicationResponse]("Invalid action", "action must be approve or reject"), err
	}

	applicationID := strings.TrimSpace(req.ApplicationID)
	if err := transition(ctx, applicationID, status); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[dto.DecideApplicationResponse]("Application not found"), err
		}
		if errors.Is(err, domain.ErrInvalidAction) {
			return commons.ErrorResponse[dto.DecideApplicationResponse]("Invalid action", "application has already been decided"), err
		}
		logger.Error("workflow service decide failed", err, logger.Fields{
			"kind":          kind,
			"applicationId": applicationID,
		})
		return commons.ErrorResponse[dto.DecideApplicationResponse]("failed to decide application", "Unable to decide application right now"), err
	}

	logger.Info("workflow service decide success", logger.Fields{
		"kind":          kind,
		"applicationId": applicationID,
		"status":        string(status),
	})

	response := dto.DecideApplicationResponse{
		ApplicationID: applicationID,
		Status:        string(status),
	}

	return commons.SuccessResponse("application decided successfully", response), nil
}

func (s *WorkflowService) SubmitInvestment(ctx context.Context, caller domain.Identity, req dto.SubmitInvestmentRequest) (commons.Response[dto.InvestmentResponse], error) {
	logger.Info("workflow service submit investment request", logger.Fields{
		"callerId": caller.ID,
		"payload":  logger.SanitizePayload(req),
	})

	if err := Authorize(caller, domain.CapSubmitInvestment); err != nil {
		return commons.ErrorResponse[dto.InvestmentResponse]("Unauthorized"), err
	}

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[dto.InvestmentResponse]("validation failed", err.Error()), err
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return commons.ErrorResponse[dto.InvestmentResponse]("Invalid amount", err.Error()), err
	}

	rate, err := parseRate(req.ReturnRate)
	if err != nil {
		return commons.ErrorResponse[dto.InvestmentResponse]("Invalid amount", "returnRate must be a non-negative decimal"), err
	}

	customer, err := s.customerRepo.GetByIdentityID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[dto.InvestmentResponse]("Customer not found"), err
		}
		return commons.ErrorResponse[dto.InvestmentResponse]("failed to submit investment", "Unable to submit right now"), err
	}

	created, err := s.investmentRepo.Create(ctx, domain.Investment{
		CustomerID:     customer.ID,
		InvestmentType: domain.InvestmentType(strings.ToLower(strings.TrimSpace(req.InvestmentType))),
		Amount:         amount,
		ReturnRate:     rate,
	})
	if err != nil {
		logger.Error("workflow service submit investment repository failed", err, logger.Fields{
			"customerId": customer.ID,
		})
		return commons.ErrorResponse[dto.InvestmentResponse]("failed to submit investment", "Unable to submit right now"), err
	}

	return commons.SuccessResponse("investment submitted", mapInvestmentToResponse(created)), nil
}

func (s *WorkflowService) SubmitRetirementPlan(ctx context.Context, caller domain.Identity, req dto.SubmitRetirementPlanRequest) (commons.Response[dto.RetirementPlanResponse], error) {
	logger.Info("workflow service submit retirement plan request", logger.Fields{
		"callerId": caller.ID,
		"payload":  logger.SanitizePayload(req),
	})

	if err := Authorize(caller, domain.CapSubmitRetirementPlan); err != nil {
		return commons.ErrorResponse[dto.RetirementPlanResponse]("Unauthorized"), err
	}

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[dto.RetirementPlanResponse]("validation failed", err.Error()), err
	}

	contribution, err := parseAmount(req.Contribution)
	if err != nil {
		return commons.ErrorResponse[dto.RetirementPlanResponse]("Invalid amount", err.Error()), err
	}

	customer, err := s.customerRepo.GetByIdentityID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[dto.RetirementPlanResponse]("Customer not found"), err
		}
		return commons.ErrorResponse[dto.RetirementPlanResponse]("failed to submit retirement plan", "Unable to submit right now"), err
	}

	created, err := s.retirementRepo.Create(ctx, domain.RetirementPlan{
		CustomerID:   customer.ID,
		PlanType:     domain.PlanType(strings.ToLower(strings.TrimSpace(req.PlanType))),
		Contribution: contribution,
	})
	if err != nil {
		logger.Error("workflow service submit retirement plan repository failed", err, logger.Fields{
			"customerId": customer.ID,
		})
		return commons.ErrorResponse[dto.RetirementPlanResponse]("failed to submit retirement plan", "Unable to submit right now"), err
	}

	response := dto.RetirementPlanResponse{
		ID:           created.ID,
		CustomerID:   created.CustomerID,
		PlanType:     string(created.PlanType),
		Contribution: created.Contribution.StringFixed(2),
		CreatedAt:    created.CreatedAt.Format(time.RFC3339),
	}

	return commons.SuccessResponse("retirement plan submitted", response), nil
}

func (s *WorkflowService) ListLoans(ctx context.Context, caller domain.Identity) (commons.Response[[]dto.LoanResponse], error) {
	if err := Authorize(caller, domain.CapListLoans); err != nil {
		return commons.ErrorResponse[[]dto.LoanResponse]("Unauthorized"), err
	}

	loans, err := s.loanRepo.List(ctx)
	if err != nil {
		logger.Error("workflow service list loans failed", err, nil)
		return commons.ErrorResponse[[]dto.LoanResponse]("failed to list loans", "Unable to fetch loans right now"), err
	}

	out := make([]dto.LoanResponse, 0, len(loans))
	for _, loan := range loans {
		out = append(out, mapLoanToResponse(loan))
	}

	return commons.SuccessResponse("loans fetched successfully", out), nil
}

func (s *WorkflowService) ListCreditCards(ctx context.Context, caller domain.Identity) (commons.Response[[]dto.CreditCardResponse], error) {
	if err := Authorize(caller, domain.CapListCreditCards); err != nil {
		return commons.ErrorResponse[[]dto.CreditCardResponse]("Unauthorized"), err
	}

	cards, err := s.cardRepo.List(ctx)
	if err != nil {
		logger.Error("workflow service list credit cards failed", err, nil)
		return commons.ErrorResponse[[]dto.CreditCardResponse]("failed to list credit cards", "Unable to fetch credit cards right now"), err
	}

	out := make([]dto.CreditCardResponse, 0, len(cards))
	for _, card := range cards {
		out = append(out, mapCardToResponse(card))
	}

	return commons.SuccessResponse("credit cards fetched successfully", out), nil
}

func (s *WorkflowService) ListInvestments(ctx context.Context, caller domain.Identity) (commons.Response[[]dto.InvestmentResponse], error) {
	if err := Authorize(caller, domain.CapListInvestments); err != nil {
		return commons.ErrorResponse[[]dto.InvestmentResponse]("Unauthorized"), err
	}

	investments, err := s.investmentRepo.List(ctx)
	if err != nil {
		logger.Error("workflow service list investments failed", err, nil)
		return commons.ErrorResponse[[]dto.InvestmentResponse]("failed to list investments", "Unable to fetch investments right now"), err
	}

	out := make([]dto.InvestmentResponse, 0, len(investments))
	for _, investment := range investments {
		out = append(out, mapInvestmentToResponse(investment))
	}

	return commons.SuccessResponse("investments fetched successfully", out), nil
}

func mapLoanToResponse(loan domain.Loan) dto.LoanResponse {
	return dto.LoanResponse{
		ID:           loan.ID,
		CustomerID:   loan.CustomerID,
		LoanType:     string(loan.LoanType),
		Amount:       loan.Amount.StringFixed(2),
		InterestRate: loan.InterestRate.StringFixed(2),
		TermMonths:   loan.TermMonths,
		Status:       string(loan.Status),
		CreatedAt:    loan.CreatedAt.Format(time.RFC3339),
	}
}

func mapCardToResponse(card domain.CreditCard) dto.CreditCardResponse {
	return dto.CreditCardResponse{
		ID:          card.ID,
		CustomerID:  card.CustomerID,
		CardNumber:  card.CardNumber,
		CVV:         card.CVV,
		CardType:    string(card.CardType),
		CreditLimit: card.CreditLimit.StringFixed(2),
		Status:      string(card.Status),
		CreatedAt:   card.CreatedAt.Format(time.RFC3339),
	}
}

func mapInvestmentToResponse(investment domain.Investment) dto.InvestmentResponse {
	return dto.InvestmentResponse{
		ID:             investment.ID,
		CustomerID:     investment.CustomerID,
		InvestmentType: string(investment.InvestmentType),
		Amount:         investment.Amount.StringFixed(2),
		ReturnRate:     investment.ReturnRate.StringFixed(2),
		CreatedAt:      investment.CreatedAt.Format(time.RFC3339),
	}
}

func parseRate(raw string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	if rate.LessThan(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidAmount
	}

	return rate.Round(2), nil
}
