package domain

// Capability names a mutating or read operation the UI layer may
// request. Each capability is owned by exactly one staff or customer
// role; admin passes every check.
type Capability string

const (
	CapPostTransaction      Capability = "ledger:post"
	CapListTransactions     Capability = "ledger:list"
	CapOnboardCustomer      Capability = "customer:onboard"
	CapManageCustomer       Capability = "customer:manage"
	CapCreateAccount        Capability = "account:create"
	CapApplyLoan            Capability = "loan:apply"
	CapDecideLoan           Capability = "loan:decide"
	CapListLoans            Capability = "loan:list"
	CapApplyCreditCard      Capability = "card:apply"
	CapDecideCreditCard     Capability = "card:decide"
	CapListCreditCards      Capability = "card:list"
	CapSubmitInvestment     Capability = "investment:submit"
	CapListInvestments      Capability = "investment:list"
	CapSubmitRetirementPlan Capability = "retirement:submit"
	CapManageIdentities     Capability = "identity:manage"
)

var capabilityRoles = map[Capability]Role{
	CapPostTransaction:      RoleCustomer,
	CapListTransactions:     RoleCustomer,
	CapOnboardCustomer:      RoleTeller,
	CapManageCustomer:       RoleTeller,
	CapCreateAccount:        RoleTeller,
	CapApplyLoan:            RoleCustomer,
	CapDecideLoan:           RoleLoanOfficer,
	CapListLoans:            RoleLoanOfficer,
	CapApplyCreditCard:      RoleCustomer,
	CapDecideCreditCard:     RoleCreditCardManager,
	CapListCreditCards:      RoleCreditCardManager,
	CapSubmitInvestment:     RoleCustomer,
	CapListInvestments:      RoleFinancialAdvisor,
	CapSubmitRetirementPlan: RoleCustomer,
	CapManageIdentities:     RoleAdmin,
}

// Allowed reports whether the identity's role owns the capability.
// Admin is allowed everything.
func Allowed(identity Identity, capability Capability) bool {
	if identity.Role == RoleAdmin {
		return true
	}
	role, ok := capabilityRoles[capability]
	return ok && identity.Role == role
}
