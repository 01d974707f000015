package dto

import (
	"errors"
	"strings"
)

type ApplyLoanRequest struct {
	LoanType     string `json:"loanType"`
	Amount       string `json:"amount"`
	InterestRate string `json:"interestRate"`
	TermMonths   int    `json:"termMonths"`
}

func (r ApplyLoanRequest) Validate() error {
	var errs []string

	loanType := strings.ToLower(strings.TrimSpace(r.LoanType))
	if loanType == "" {
		errs = append(errs, "loanType is required")
	} else if loanType != "personal" && loanType != "auto" && loanType != "mortgage" {
		errs = append(errs, "loanType must be one of personal, auto, mortgage")
	}

	if strings.TrimSpace(r.Amount) == "" {
		errs = append(errs, "amount is required")
	}
	if strings.TrimSpace(r.InterestRate) == "" {
		errs = append(errs, "interestRate is required")
	}
	if r.TermMonths <= 0 {
		errs = append(errs, "termMonths must be greater than zero")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type LoanResponse struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customerId"`
	LoanType     string `json:"loanType"`
	Amount       string `json:"amount"`
	InterestRate string `json:"interestRate"`
	TermMonths   int    `json:"termMonths"`
	Status       string `json:"status"`
	CreatedAt    string `json:"createdAt"`
}

type ApplyCreditCardRequest struct {
	CardType    string `json:"cardType"`
	CreditLimit string `json:"creditLimit"`
}

func (r ApplyCreditCardRequest) Validate() error {
	var errs []string

	cardType := strings.ToLower(strings.TrimSpace(r.CardType))
	if cardType == "" {
		errs = append(errs, "cardType is required")
	} else if cardType != "standard" && cardType != "reward" {
		errs = append(errs, "cardType must be one of standard, reward")
	}

	if strings.TrimSpace(r.CreditLimit) == "" {
		errs = append(errs, "creditLimit is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

// CreditCardResponse exposes the generated card number and CVV once at
// issuance; list views should redact them upstream if needed.
type CreditCardResponse struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customerId"`
	CardNumber  string `json:"cardNumber"`
	CVV         string `json:"cvv"`
	CardType    string `json:"cardType"`
	CreditLimit string `json:"creditLimit"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

type DecideApplicationRequest struct {
	ApplicationID string `json:"applicationId"`
	Action        string `json:"action"`
}

func (r DecideApplicationRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.ApplicationID) == "" {
		errs = append(errs, "applicationId is required")
	}
	if strings.TrimSpace(r.Action) == "" {
		errs = append(errs, "action is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type DecideApplicationResponse struct {
	ApplicationID string `json:"applicationId"`
	Status        string `json:"status"`
}

type SubmitInvestmentRequest struct {
	InvestmentType string `json:"investmentType"`
	Amount         string `json:"amount"`
	ReturnRate     string `json:"returnRate"`
}

func (r SubmitInvestmentRequest) Validate() error {
	var errs []string

	investmentType := strings.ToLower(strings.TrimSpace(r.InvestmentType))
	if investmentType == "" {
		errs = append(errs, "investmentType is required")
	} else if investmentType != "stocks" && investmentType != "bonds" && investmentType != "mutual_funds" {
		errs = append(errs, "investmentType must be one of stocks, bonds, mutual_funds")
	}

	if strings.TrimSpace(r.Amount) == "" {
		errs = append(errs, "amount is required")
	}
	if strings.TrimSpace(r.ReturnRate) == "" {
		errs = append(errs, "returnRate is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type InvestmentResponse struct {
	ID             string `json:"id"`
	CustomerID     string `json:"customerId"`
	InvestmentType string `json:"investmentType"`
	Amount         string `json:"amount"`
	ReturnRate     string `json:"returnRate"`
	CreatedAt      string `json:"createdAt"`
}

type SubmitRetirementPlanRequest struct {
	PlanType     string `json:"planType"`
	Contribution string `json:"contribution"`
}

func (r SubmitRetirementPlanRequest) Validate() error {
	var errs []string

	planType := strings.ToLower(strings.TrimSpace(r.PlanType))
	if planType == "" {
		errs = append(errs, "planType is required")
	} else if planType != "ira" && planType != "401k" {
		errs = append(errs, "planType must be one of ira, 401k")
	}

	if strings.TrimSpace(r.Contribution) == "" {
		errs = append(errs, "contribution is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type RetirementPlanResponse struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customerId"`
	PlanType     string `json:"planType"`
	Contribution string `json:"contribution"`
	CreatedAt    string `json:"createdAt"`
}
