package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApplicationStatus is the state machine for gated instruments.
// pending is the only non-terminal state; the two valid transitions
// both leave it and nothing leaves approved or rejected.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusApproved ApplicationStatus = "approved"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationStatusApproved || s == ApplicationStatusRejected
}

type DecisionAction string

const (
	DecisionApprove DecisionAction = "approve"
	DecisionReject  DecisionAction = "reject"
)

func (a DecisionAction) Status() (ApplicationStatus, bool) {
	switch a {
	case DecisionApprove:
		return ApplicationStatusApproved, true
	case DecisionReject:
		return ApplicationStatusRejected, true
	}
	return "", false
}

type LoanType string

const (
	LoanTypePersonal LoanType = "personal"
	LoanTypeAuto     LoanType = "auto"
	LoanTypeMortgage LoanType = "mortgage"
)

type Loan struct {
	ID           string
	CustomerID   string
	LoanType     LoanType
	Amount       decimal.Decimal
	InterestRate decimal.Decimal
	TermMonths   int
	Status       ApplicationStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CardType string

const (
	CardTypeStandard CardType = "standard"
	CardTypeReward   CardType = "reward"
)

type CreditCard struct {
	ID          string
	CustomerID  string
	CardNumber  string
	CVV         string
	CreditLimit decimal.Decimal
	CardType    CardType
	Status      ApplicationStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type InvestmentType string

const (
	InvestmentTypeStocks      InvestmentType = "stocks"
	InvestmentTypeBonds       InvestmentType = "bonds"
	InvestmentTypeMutualFunds InvestmentType = "mutual_funds"
)

// Investment has no approval gate: submission persists it directly.
type Investment struct {
	ID             string
	CustomerID     string
	InvestmentType InvestmentType
	Amount         decimal.Decimal
	ReturnRate     decimal.Decimal
	CreatedAt      time.Time
}

type PlanType string

const (
	PlanTypeIRA    PlanType = "ira"
	PlanType401K   PlanType = "401k"
)

// RetirementPlan has no approval gate either.
type RetirementPlan struct {
	ID           string
	CustomerID   string
	PlanType     PlanType
	Contribution decimal.Decimal
	CreatedAt    time.Time
}
