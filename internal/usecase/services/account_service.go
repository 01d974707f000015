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

const accountCreateAttempts = 5

type AccountService struct {
	accountRepo  repo_interfaces.AccountRepository
	customerRepo repo_interfaces.CustomerRepository
	idgen        *IdentifierGenerator
}

func NewAccountService(
	accountRepo repo_interfaces.AccountRepository,
	customerRepo repo_interfaces.CustomerRepository,
	idgen *IdentifierGenerator,
) *AccountService {
	return &AccountService{
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
		idgen:        idgen,
	}
}

func (s *AccountService) CreateAccount(ctx context.Context, caller domain.Identity, req dto.CreateAccountRequest) (commons.Response[dto.AccountResponse], error) {
	logger.Info("account service create account request", logger.Fields{
		"callerId": caller.ID,
		"payload":  logger.SanitizePayload(req),
	})

	if err := Authorize(caller, domain.CapCreateAccount); err != nil {
		return commons.ErrorResponse[dto.AccountResponse]("Unauthorized"), err
	}

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[dto.AccountResponse]("validation failed", err.Error()), err
	}

	customerID := strings.TrimSpace(req.CustomerID)
	if _, err := s.customerRepo.GetByID(ctx, customerID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[dto.AccountResponse]("Customer not found"), err
		}
		return commons.ErrorResponse[dto.AccountResponse]("failed to create account", "Unable to create account right now"), err
	}

	var created domain.Account
	var err error
	for attempt := 0; attempt < accountCreateAttempts; attempt++ {
		accountNumber, genErr := s.idgen.GenerateAccountNumber(ctx)
		if genErr != nil {
			return commons.ErrorResponse[dto.AccountResponse]("failed to create account", "Unable to create account right now"), genErr
		}

		created, err = s.accountRepo.Create(ctx, domain.Account{
			CustomerID:    customerID,
			AccountNumber: accountNumber,
			AccountType:   domain.AccountType(strings.ToLower(strings.TrimSpace(req.AccountType))),
			Balance:       decimal.Zero,
		})
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplicateIdentifier) {
			logger.Error("account service create account repository failed", err, logger.Fields{
				"customerId": customerID,
			})
			return commons.ErrorResponse[dto.AccountResponse]("failed to create account", "Unable to create account right now"), err
		}
	}
	if err != nil {
		return commons.ErrorResponse[dto.AccountResponse]("Duplicate identifier", "Unable to issue an account number right now"), err
	}

	logger.Info("account service create account success", logger.Fields{
		"accountId":     created.ID,
		"accountNumber": created.AccountNumber,
		"customerId":    created.CustomerID,
	})

	return commons.SuccessResponse("account created successfully", mapAccountToResponse(created)), nil
}

func (s *AccountService) GetAccount(ctx context.Context, caller domain.Identity, accountID string) (commons.Response[dto.AccountResponse], error) {
	if err := Authorize(caller, domain.CapCreateAccount); err != nil {
		return commons.ErrorResponse[dto.AccountResponse]("Unauthorized"), err
	}

	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		err := errors.New("accountId is required")
		return commons.ErrorResponse[dto.AccountResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[dto.AccountResponse]("Account not found"), err
		}
		return commons.ErrorResponse[dto.AccountResponse]("failed to get account", "Unable to fetch account right now"), err
	}

	return commons.SuccessResponse("account fetched successfully", mapAccountToResponse(account)), nil
}

func (s *AccountService) ListAccountsForCustomer(ctx context.Context, caller domain.Identity, customerID string) (commons.Response[[]dto.AccountResponse], error) {
	if err := Authorize(caller, domain.CapCreateAccount); err != nil {
		return commons.ErrorResponse[[]dto.AccountResponse]("Unauthorized"), err
	}

	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		err := errors.New("customerId is required")
		return commons.ErrorResponse[[]dto.AccountResponse]("validation failed", err.Error()), err
	}

	accounts, err := s.accountRepo.ListByCustomerID(ctx, customerID)
	if err != nil {
		logger.Error("account service list accounts failed", err, logger.Fields{
			"customerId": customerID,
		})
		return commons.ErrorResponse[[]dto.AccountResponse]("failed to list accounts", "Unable to fetch accounts right now"), err
	}

	out := make([]dto.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		out = append(out, mapAccountToResponse(account))
	}

	return commons.SuccessResponse("accounts fetched successfully", out), nil
}

func mapAccountToResponse(account domain.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:            account.ID,
		CustomerID:    account.CustomerID,
		AccountNumber: account.AccountNumber,
		AccountType:   string(account.AccountType),
		Balance:       account.Balance.StringFixed(2),
		CreatedAt:     account.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     account.UpdatedAt.Format(time.RFC3339),
	}
}
