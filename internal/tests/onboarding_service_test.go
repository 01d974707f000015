package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/api-sage/bank-back-office/internal/dto"
	"github.com/api-sage/bank-back-office/internal/mocks"
	"github.com/api-sage/bank-back-office/internal/usecase/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()"

func tellerCaller() domain.Identity {
	return domain.Identity{ID: "ident-2", Username: "teller", Role: domain.RoleTeller}
}

func onboardRequest() dto.OnboardCustomerRequest {
	return dto.OnboardCustomerRequest{
		Name:        "Jane Doe",
		Email:       "jane.doe@example.com",
		DOB:         "1990-04-15",
		Address:     "1 Main St",
		PhoneNumber: "5550001234",
	}
}

func TestOnboardingServiceOnboardCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("derives username from the email local part", func(t *testing.T) {
		identities := mocks.NewIdentityRepository(t)
		identities.On("UsernameExists", ctx, "jane.doe").Return(false, nil).Once()

		customers := mocks.NewCustomerRepository(t)
		var createdIdentity domain.Identity
		customers.
			On("CreateWithIdentity", ctx, mock.AnythingOfType("domain.Identity"), mock.AnythingOfType("domain.Customer")).
			Run(func(args mock.Arguments) { createdIdentity = args.Get(1).(domain.Identity) }).
			Return(
				domain.Identity{ID: "ident-10", Username: "jane.doe", Role: domain.RoleCustomer},
				domain.Customer{ID: "cust-10", IdentityID: "ident-10", Email: "jane.doe@example.com"},
				nil,
			).
			Once()

		notifier := mocks.NewNotifier(t)
		notifier.
			On("Send", ctx, "jane.doe@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
			Return(nil).
			Once()

		svc := services.NewOnboardingService(customers, identities, notifier)

		resp, err := svc.OnboardCustomer(ctx, tellerCaller(), onboardRequest())
		require.NoError(t, err)
		require.True(t, resp.Success)
		assert.Equal(t, "jane.doe", resp.Data.Username)
		assert.Equal(t, "jane.doe", createdIdentity.Username)
		assert.Equal(t, domain.RoleCustomer, createdIdentity.Role)
	})

	t.Run("taken username gets a numeric suffix starting at 2", func(t *testing.T) {
		identities := mocks.NewIdentityRepository(t)
		identities.On("UsernameExists", ctx, "jane.doe").Return(true, nil).Once()
		identities.On("UsernameExists", ctx, "jane.doe2").Return(false, nil).Once()

		customers := mocks.NewCustomerRepository(t)
		var createdIdentity domain.Identity
		customers.
			On("CreateWithIdentity", ctx, mock.AnythingOfType("domain.Identity"), mock.AnythingOfType("domain.Customer")).
			Run(func(args mock.Arguments) { createdIdentity = args.Get(1).(domain.Identity) }).
			Return(
				domain.Identity{ID: "ident-11", Username: "jane.doe2", Role: domain.RoleCustomer},
				domain.Customer{ID: "cust-11", IdentityID: "ident-11", Email: "jane.doe@example.com"},
				nil,
			).
			Once()

		notifier := mocks.NewNotifier(t)
		notifier.On("Send", ctx, "jane.doe@example.com", mock.Anything, mock.Anything).Return(nil).Once()

		svc := services.NewOnboardingService(customers, identities, notifier)

		resp, err := svc.OnboardCustomer(ctx, tellerCaller(), onboardRequest())
		require.NoError(t, err)
		assert.Equal(t, "jane.doe2", resp.Data.Username)
		assert.Equal(t, "jane.doe2", createdIdentity.Username)
	})

	t.Run("issues a 12-character password and stores only its hash", func(t *testing.T) {
		identities := mocks.NewIdentityRepository(t)
		identities.On("UsernameExists", ctx, "jane.doe").Return(false, nil).Once()

		customers := mocks.NewCustomerRepository(t)
		var createdIdentity domain.Identity
		customers.
			On("CreateWithIdentity", ctx, mock.AnythingOfType("domain.Identity"), mock.AnythingOfType("domain.Customer")).
			Run(func(args mock.Arguments) { createdIdentity = args.Get(1).(domain.Identity) }).
			Return(
				domain.Identity{ID: "ident-12", Username: "jane.doe", Role: domain.RoleCustomer},
				domain.Customer{ID: "cust-12", IdentityID: "ident-12", Email: "jane.doe@example.com"},
				nil,
			).
			Once()

		notifier := mocks.NewNotifier(t)
		var body string
		notifier.
			On("Send", ctx, "jane.doe@example.com", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { body = args.Get(3).(string) }).
			Return(nil).
			Once()

		svc := services.NewOnboardingService(customers, identities, notifier)

		resp, err := svc.OnboardCustomer(ctx, tellerCaller(), onboardRequest())
		require.NoError(t, err)

		password := resp.Data.Password
		require.Len(t, password, 12)
		for _, c := range password {
			assert.True(t, strings.ContainsRune(passwordAlphabet, c), "unexpected password character %q", c)
		}

		require.NotEmpty(t, createdIdentity.PasswordHash)
		assert.NotEqual(t, password, createdIdentity.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(createdIdentity.PasswordHash), []byte(password)))

		assert.Contains(t, body, "jane.doe")
		assert.Contains(t, body, password)
	})

	t.Run("notification failure still onboards, with a warning", func(t *testing.T) {
		identities := mocks.NewIdentityRepository(t)
		identities.On("UsernameExists", ctx, "jane.doe").Return(false, nil).Once()

		customers := mocks.NewCustomerRepository(t)
		customers.
			On("CreateWithIdentity", ctx, mock.AnythingOfType("domain.Identity"), mock.AnythingOfType("domain.Customer")).
			Return(
				domain.Identity{ID: "ident-13", Username: "jane.doe", Role: domain.RoleCustomer},
				domain.Customer{ID: "cust-13", IdentityID: "ident-13", Email: "jane.doe@example.com"},
				nil,
			).
			Once()

		notifier := mocks.NewNotifier(t)
		notifier.
			On("Send", ctx, "jane.doe@example.com", mock.Anything, mock.Anything).
			Return(errors.New("smtp: connection refused")).
			Once()

		svc := services.NewOnboardingService(customers, identities, notifier)

		resp, err := svc.OnboardCustomer(ctx, tellerCaller(), onboardRequest())
		require.NoError(t, err)
		require.True(t, resp.Success)
		assert.Equal(t, "ident-13", resp.Data.IdentityID)
		require.NotEmpty(t, resp.Warnings)
		assert.Contains(t, resp.Warnings[0], "notification")
	})

	t.Run("retries identity creation on a username race", func(t *testing.T) {
		identities := mocks.NewIdentityRepository(t)
		identities.On("UsernameExists", ctx, "jane.doe").Return(false, nil).Once()
		identities.On("UsernameExists", ctx, "jane.doe").Return(true, nil).Once()
		identities.On("UsernameExists", ctx, "jane.doe2").Return(false, nil).Once()

		customers := mocks.NewCustomerRepository(t)
		customers.
			On("CreateWithIdentity", ctx, mock.AnythingOfType("domain.Identity"), mock.AnythingOfType("domain.Customer")).
			Return(domain.Identity{}, domain.Customer{}, domain.ErrDuplicateIdentifier).
			Once()
		customers.
			On("CreateWithIdentity", ctx, mock.AnythingOfType("domain.Identity"), mock.AnythingOfType("domain.Customer")).
			Return(
				domain.Identity{ID: "ident-14", Username: "jane.doe2", Role: domain.RoleCustomer},
				domain.Customer{ID: "cust-14", IdentityID: "ident-14", Email: "jane.doe@example.com"},
				nil,
			).
			Once()

		notifier := mocks.NewNotifier(t)
		notifier.On("Send", ctx, "jane.doe@example.com", mock.Anything, mock.Anything).Return(nil).Once()

		svc := services.NewOnboardingService(customers, identities, notifier)

		resp, err := svc.OnboardCustomer(ctx, tellerCaller(), onboardRequest())
		require.NoError(t, err)
		assert.Equal(t, "jane.doe2", resp.Data.Username)
	})

	t.Run("customer role cannot onboard", func(t *testing.T) {
		svc := services.NewOnboardingService(nil, nil, nil)

		_, err := svc.OnboardCustomer(ctx, customerCaller(), onboardRequest())
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("malformed dob is rejected", func(t *testing.T) {
		svc := services.NewOnboardingService(mocks.NewCustomerRepository(t), mocks.NewIdentityRepository(t), mocks.NewNotifier(t))

		req := onboardRequest()
		req.DOB = "15/04/1990"
		resp, err := svc.OnboardCustomer(ctx, tellerCaller(), req)
		require.Error(t, err)
		assert.False(t, resp.Success)
	})
}

func TestOnboardingServiceUpdateCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("updates mutable profile fields", func(t *testing.T) {
		customers := mocks.NewCustomerRepository(t)
		customers.
			On("GetByID", ctx, "cust-10").
			Return(domain.Customer{ID: "cust-10", IdentityID: "ident-10", Name: "Jane Doe", Email: "jane.doe@example.com"}, nil).
			Once()
		var updated domain.Customer
		customers.
			On("Update", ctx, mock.AnythingOfType("domain.Customer")).
			Run(func(args mock.Arguments) { updated = args.Get(1).(domain.Customer) }).
			Return(domain.Customer{ID: "cust-10", IdentityID: "ident-10", Name: "Jane Smith", Email: "jane.doe@example.com", Address: "2 Oak Ave"}, nil).
			Once()

		svc := services.NewOnboardingService(customers, nil, nil)

		resp, err := svc.UpdateCustomer(ctx, tellerCaller(), dto.UpdateCustomerRequest{
			CustomerID:  "cust-10",
			Name:        "Jane Smith",
			Address:     "2 Oak Ave",
			PhoneNumber: "5550009999",
		})
		require.NoError(t, err)
		assert.Equal(t, "Jane Smith", resp.Data.Name)

		assert.Equal(t, "Jane Smith", updated.Name)
		assert.Equal(t, "2 Oak Ave", updated.Address)
		// Email is not updatable through this path.
		assert.Equal(t, "jane.doe@example.com", updated.Email)
	})

	t.Run("unknown customer", func(t *testing.T) {
		customers := mocks.NewCustomerRepository(t)
		customers.On("GetByID", ctx, "missing").Return(domain.Customer{}, domain.ErrRecordNotFound).Once()

		svc := services.NewOnboardingService(customers, nil, nil)

		_, err := svc.UpdateCustomer(ctx, tellerCaller(), dto.UpdateCustomerRequest{
			CustomerID: "missing",
			Name:       "Jane Smith",
		})
		require.ErrorIs(t, err, domain.ErrRecordNotFound)
	})
}

func TestOnboardingServiceDeleteCustomer(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes by id", func(t *testing.T) {
		customers := mocks.NewCustomerRepository(t)
		customers.On("Delete", ctx, "cust-10").Return(nil).Once()

		svc := services.NewOnboardingService(customers, nil, nil)

		resp, err := svc.DeleteCustomer(ctx, tellerCaller(), "cust-10")
		require.NoError(t, err)
		assert.True(t, resp.Success)
	})

	t.Run("customer role is denied", func(t *testing.T) {
		svc := services.NewOnboardingService(nil, nil, nil)

		_, err := svc.DeleteCustomer(ctx, customerCaller(), "cust-10")
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}
