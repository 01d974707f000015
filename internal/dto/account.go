package dto

import (
	"errors"
	"strings"
)

type CreateAccountRequest struct {
	CustomerID  string `json:"customerId"`
	AccountType string `json:"accountType"`
}

func (r CreateAccountRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.CustomerID) == "" {
		errs = append(errs, "customerId is required")
	}

	accountType := strings.ToLower(strings.TrimSpace(r.AccountType))
	if accountType == "" {
		errs = append(errs, "accountType is required")
	} else if accountType != "checking" && accountType != "savings" {
		errs = append(errs, "accountType must be one of checking, savings")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type AccountResponse struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customerId"`
	AccountNumber string `json:"accountNumber"`
	AccountType   string `json:"accountType"`
	Balance       string `json:"balance"`
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}
