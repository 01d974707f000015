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

type LedgerService struct {
	ledgerRepo   repo_interfaces.LedgerRepository
	accountRepo  repo_interfaces.AccountRepository
	customerRepo repo_interfaces.CustomerRepository
}

func NewLedgerService(
	ledgerRepo repo_interfaces.LedgerRepository,
	accountRepo repo_interfaces.AccountRepository,
	customerRepo repo_interfaces.CustomerRepository,
) *LedgerService {
	return &LedgerService{
		ledgerRepo:   ledgerRepo,
		accountRepo:  accountRepo,
		customerRepo: customerRepo,
	}
}

func (s *LedgerService) PostTransaction(ctx context.Context, caller domain.Identity, req dto.PostTransactionRequest) (commons.Response[dto.PostTransactionResponse], error) {
	logger.Info("ledger service post transaction request", logger.Fields{
		"callerId": caller.ID,
		"payload":  logger.SanitizePayload(req),
	})

	if err := Authorize(caller, domain.CapPostTransaction); err != nil {
		return commons.ErrorResponse[dto.PostTransactionResponse]("Unauthorized"), err
	}

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[dto.PostTransactionResponse]("validation failed", err.Error()), err
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return commons.ErrorResponse[dto.PostTransactionResponse]("Invalid amount", err.Error()), err
	}

	accountID := strings.TrimSpace(req.AccountID)
	if err := s.requireOwnership(ctx, caller, accountID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[dto.PostTransactionResponse]("Account not found"), err
		}
		return commons.ErrorResponse[dto.PostTransactionResponse]("Unauthorized"), err
	}

	txType := domain.TransactionType(strings.ToLower(strings.TrimSpace(req.TransactionType)))
	record, balance, err := s.ledgerRepo.Post(ctx, accountID, txType, amount, strings.TrimSpace(req.Description))
	if err != nil {
		var insufficient *domain.InsufficientFundsError
		if errors.As(err, &insufficient) {
			logger.Info("ledger service withdrawal rejected", logger.Fields{
				"accountId": accountID,
				"amount":    amount.StringFixed(2),
				"balance":   insufficient.Balance.StringFixed(2),
			})
			return commons.ErrorResponse[dto.PostTransactionResponse]("Insufficient funds", insufficient.Error()), err
		}
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[dto.PostTransactionResponse]("Account not found"), err
		}
		logger.Error("ledger service post transaction failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[dto.PostTransactionResponse]("failed to post transaction", "Unable to post transaction right now"), err
	}

	response := dto.PostTransactionResponse{
		TransactionID:   record.ID,
		AccountID:       record.AccountID,
		TransactionType: string(record.TransactionType),
		Amount:          record.Amount.StringFixed(2),
		Description:     record.Description,
		Balance:         balance.StringFixed(2),
		CreatedAt:       record.CreatedAt.Format(time.RFC3339),
	}

	logger.Info("ledger service post transaction success", logger.Fields{
		"transactionId": response.TransactionID,
		"accountId":     response.AccountID,
		"balance":       response.Balance,
	})

	return commons.SuccessResponse("transaction posted successfully", response), nil
}

func (s *LedgerService) ListTransactions(ctx context.Context, caller domain.Identity, accountID string) (commons.Response[dto.ListTransactionsResponse], error) {
	logger.Info("ledger service list transactions request", logger.Fields{
		"callerId":  caller.ID,
		"accountId": accountID,
	})

	if err := Authorize(caller, domain.CapListTransactions); err != nil {
		return commons.ErrorResponse[dto.ListTransactionsResponse]("Unauthorized"), err
	}

	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		err := errors.New("accountId is required")
		return commons.ErrorResponse[dto.ListTransactionsResponse]("validation failed", err.Error()), err
	}

	if err := s.requireOwnership(ctx, caller, accountID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[dto.ListTransactionsResponse]("Account not found"), err
		}
		return commons.ErrorResponse[dto.ListTransactionsResponse]("Unauthorized"), err
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[dto.ListTransactionsResponse]("Account not found"), err
		}
		return commons.ErrorResponse[dto.ListTransactionsResponse]("failed to list transactions", "Unable to fetch transactions right now"), err
	}

	records, err := s.ledgerRepo.ListByAccountID(ctx, accountID)
	if err != nil {
		logger.Error("ledger service list transactions failed", err, logger.Fields{
			"accountId": accountID,
		})
		return commons.ErrorResponse[dto.ListTransactionsResponse]("failed to list transactions", "Unable to fetch transactions right now"), err
	}

	views := make([]dto.TransactionView, 0, len(records))
	for _, record := range records {
		views = append(views, dto.TransactionView{
			TransactionID:   record.ID,
			AccountID:       record.AccountID,
			TransactionType: string(record.TransactionType),
			Amount:          record.Amount.StringFixed(2),
			Description:     record.Description,
			CreatedAt:       record.CreatedAt.Format(time.RFC3339),
		})
	}

	response := dto.ListTransactionsResponse{
		AccountID:    accountID,
		Balance:      account.Balance.StringFixed(2),
		Transactions: views,
	}

	return commons.SuccessResponse("transactions fetched successfully", response), nil
}

// requireOwnership restricts customers to their own accounts. Staff
// roles that pass the capability gate are not ownership-scoped.
func (s *LedgerService) requireOwnership(ctx context.Context, caller domain.Identity, accountID string) error {
	if caller.Role != domain.RoleCustomer {
		return nil
	}

	customer, err := s.customerRepo.GetByIdentityID(ctx, caller.ID)
	if err != nil {
		return err
	}

	account, err := s.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return err
	}

	if account.CustomerID != customer.ID {
		return domain.ErrUnauthorized
	}

	return nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, domain.ErrInvalidAmount
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domain.ErrInvalidAmount
	}

	return amount.Round(2), nil
}
