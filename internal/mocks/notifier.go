package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type Notifier struct {
	mock.Mock
}

func NewNotifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *Notifier {
	m := &Notifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (_m *Notifier) Send(ctx context.Context, to string, subject string, body string) error {
	ret := _m.Called(ctx, to, subject, body)
	return ret.Error(0)
}
