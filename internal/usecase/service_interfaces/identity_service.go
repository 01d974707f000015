package service_interfaces

import (
	"context"

	"github.com/api-sage/bank-back-office/internal/commons"
	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/api-sage/bank-back-office/internal/dto"
)

type IdentityService interface {
	CreateIdentity(ctx context.Context, caller domain.Identity, req dto.CreateIdentityRequest) (commons.Response[dto.IdentityResponse], error)
	UpdateIdentityRole(ctx context.Context, caller domain.Identity, req dto.UpdateIdentityRoleRequest) (commons.Response[dto.IdentityResponse], error)
	DeleteIdentity(ctx context.Context, caller domain.Identity, identityID string) (commons.Response[struct{}], error)
}
