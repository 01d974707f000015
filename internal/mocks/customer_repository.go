package mocks

import (
	"context"

	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/stretchr/testify/mock"
)

type CustomerRepository struct {
	mock.Mock
}

func NewCustomerRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CustomerRepository {
	m := &CustomerRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *CustomerRepository) CreateWithIdentity(ctx context.Context, identity domain.Identity, customer domain.Customer) (domain.Identity, domain.Customer, error) {
	ret := _m.Called(ctx, identity, customer)
	return ret.Get(0).(domain.Identity), ret.Get(1).(domain.Customer), ret.Error(2)
}

func (_m *CustomerRepository) GetByID(ctx context.Context, id string) (domain.Customer, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.Customer), ret.Error(1)
}

func (_m *CustomerRepository) GetByIdentityID(ctx context.Context, identityID string) (domain.Customer, error) {
	ret := _m.Called(ctx, identityID)
	return ret.Get(0).(domain.Customer), ret.Error(1)
}

func (_m *CustomerRepository) Update(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	ret := _m.Called(ctx, customer)
	return ret.Get(0).(domain.Customer), ret.Error(1)
}

func (_m *CustomerRepository) Delete(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}
