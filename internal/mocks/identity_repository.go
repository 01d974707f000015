// Package mocks holds testify doubles for the store and notification
// contracts consumed by the services.
package mocks

import (
	"context"

	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/stretchr/testify/mock"
)

type IdentityRepository struct {
	mock.Mock
}

func NewIdentityRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *IdentityRepository {
	m := &IdentityRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *IdentityRepository) Create(ctx context.Context, identity domain.Identity) (domain.Identity, error) {
	ret := _m.Called(ctx, identity)
	return ret.Get(0).(domain.Identity), ret.Error(1)
}

func (_m *IdentityRepository) GetByID(ctx context.Context, id string) (domain.Identity, error) {
	ret := _m.Called(ctx, id)
	return ret.Get(0).(domain.Identity), ret.Error(1)
}

func (_m *IdentityRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	ret := _m.Called(ctx, username)
	return ret.Get(0).(bool), ret.Error(1)
}

func (_m *IdentityRepository) UpdateRole(ctx context.Context, id string, role domain.Role) error {
	ret := _m.Called(ctx, id, role)
	return ret.Error(0)
}

func (_m *IdentityRepository) Delete(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}
