package services

import (
	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/api-sage/bank-back-office/internal/logger"
)

// Authorize is the single role gate every mutating service method runs
// before touching state. The rule is the capability's owning role or
// admin; anything else is denied.
func Authorize(caller domain.Identity, capability domain.Capability) error {
	if domain.Allowed(caller, capability) {
		return nil
	}

	logger.Info("access policy denied request", logger.Fields{
		"identityId": caller.ID,
		"username":   caller.Username,
		"role":       string(caller.Role),
		"capability": string(capability),
	})

	return domain.ErrUnauthorized
}
