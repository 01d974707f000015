package service_interfaces

import (
	"context"

	"github.com/api-sage/bank-back-office/internal/commons"
	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/api-sage/bank-back-office/internal/dto"
)

type OnboardingService interface {
	OnboardCustomer(ctx context.Context, caller domain.Identity, req dto.OnboardCustomerRequest) (commons.Response[dto.OnboardCustomerResponse], error)
	UpdateCustomer(ctx context.Context, caller domain.Identity, req dto.UpdateCustomerRequest) (commons.Response[dto.CustomerResponse], error)
	DeleteCustomer(ctx context.Context, caller domain.Identity, customerID string) (commons.Response[struct{}], error)
}
