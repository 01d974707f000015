package dto

import (
	"errors"
	"strings"
)

type PostTransactionRequest struct {
	AccountID       string `json:"accountId"`
	TransactionType string `json:"transactionType"`
	Amount          string `json:"amount"`
	Description     string `json:"description"`
}

func (r PostTransactionRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountID) == "" {
		errs = append(errs, "accountId is required")
	}

	txType := strings.ToLower(strings.TrimSpace(r.TransactionType))
	if txType == "" {
		errs = append(errs, "transactionType is required")
	} else if txType != "deposit" && txType != "withdrawal" {
		errs = append(errs, "transactionType must be one of deposit, withdrawal")
	}

	if strings.TrimSpace(r.Amount) == "" {
		errs = append(errs, "amount is required")
	}

	if len(r.Description) > 255 {
		errs = append(errs, "description must be at most 255 characters")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type PostTransactionResponse struct {
	TransactionID   string `json:"transactionId"`
	AccountID       string `json:"accountId"`
	TransactionType string `json:"transactionType"`
	Amount          string `json:"amount"`
	Description     string `json:"description"`
	Balance         string `json:"balance"`
	CreatedAt       string `json:"createdAt"`
}

type TransactionView struct {
	TransactionID   string `json:"transactionId"`
	AccountID       string `json:"accountId"`
	TransactionType string `json:"transactionType"`
	Amount          string `json:"amount"`
	Description     string `json:"description"`
	CreatedAt       string `json:"createdAt"`
}

type ListTransactionsResponse struct {
	AccountID    string            `json:"accountId"`
	Balance      string            `json:"balance"`
	Transactions []TransactionView `json:"transactions"`
}
