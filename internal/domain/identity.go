package domain

import "time"

type Role string

const (
	RoleCustomer          Role = "customer"
	RoleTeller            Role = "teller"
	RoleLoanOfficer       Role = "loan_officer"
	RoleCreditCardManager Role = "credit_card_manager"
	RoleFinancialAdvisor  Role = "financial_advisor"
	RoleAdmin             Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleTeller, RoleLoanOfficer, RoleCreditCardManager, RoleFinancialAdvisor, RoleAdmin:
		return true
	}
	return false
}

// Identity is the authenticated principal the UI layer hands to every
// core operation. The core never authenticates callers itself.
type Identity struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
