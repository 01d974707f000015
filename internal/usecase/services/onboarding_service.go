package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/api-sage/bank-back-office/internal/adapter/notification"
	"github.com/api-sage/bank-back-office/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/bank-back-office/internal/commons"
	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/api-sage/bank-back-office/internal/dto"
	"github.com/api-sage/bank-back-office/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

const passwordLength = 12
const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()"
const onboardingAttempts = 5

// OnboardingService provisions a customer's login out-of-band: it
// derives a username from the email, issues a one-time password,
// stores only the bcrypt hash and hands the plaintext to the notifier
// exactly once.
type OnboardingService struct {
	customerRepo repo_interfaces.CustomerRepository
	identityRepo repo_interfaces.IdentityRepository
	notifier     notification.Notifier
}

func NewOnboardingService(
	customerRepo repo_interfaces.CustomerRepository,
	identityRepo repo_interfaces.IdentityRepository,
	notifier notification.Notifier,
) *OnboardingService {
	return &OnboardingService{
		customerRepo: customerRepo,
		identityRepo: identityRepo,
		notifier:     notifier,
	}
}

func (s *OnboardingService) OnboardCustomer(ctx context.Context, caller domain.Identity, req dto.OnboardCustomerRequest) (commons.Response[dto.OnboardCustomerResponse], error) {
	logger.Info("onboarding service onboard customer request", logger.Fields{
		"callerId": caller.ID,
		"payload":  logger.SanitizePayload(req),
	})

	if err := Authorize(caller, domain.CapOnboardCustomer); err != nil {
		return commons.ErrorResponse[dto.OnboardCustomerResponse]("Unauthorized"), err
	}

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[dto.OnboardCustomerResponse]("validation failed", err.Error()), err
	}

	dob, err := time.Parse("2006-01-02", strings.TrimSpace(req.DOB))
	if err != nil {
		return commons.ErrorResponse[dto.OnboardCustomerResponse]("validation failed", "dob must be in YYYY-MM-DD format"), err
	}

	email := strings.TrimSpace(req.Email)
	password, err := generatePassword()
	if err != nil {
		logger.Error("onboarding service generate password failed", err, nil)
		return commons.ErrorResponse[dto.OnboardCustomerResponse]("failed to onboard customer", "Unable to onboard customer right now"), err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("onboarding service hash password failed", err, nil)
		return commons.ErrorResponse[dto.OnboardCustomerResponse]("failed to onboard customer", "Unable to onboard customer right now"), err
	}

	profile := domain.Customer{
		Name:        strings.TrimSpace(req.Name),
		Email:       email,
		DOB:         dob,
		Address:     strings.TrimSpace(req.Address),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
	}

	// The derived username can be grabbed by a concurrent onboarding
	// between the pre-check and the insert; the unique constraint
	// rejects the loser, which re-derives and tries again.
	var identity domain.Identity
	var customer domain.Customer
	for attempt := 0; attempt < onboardingAttempts; attempt++ {
		username, deriveErr := s.deriveUsername(ctx, email)
		if deriveErr != nil {
			return commons.ErrorResponse[dto.OnboardCustomerResponse]("failed to onboard customer", "Unable to onboard customer right now"), deriveErr
		}

		identity, customer, err = s.customerRepo.CreateWithIdentity(ctx, domain.Identity{
			Username:     username,
			PasswordHash: string(passwordHash),
			Role:         domain.RoleCustomer,
		}, profile)
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplicateIdentifier) {
			logger.Error("onboarding service create customer repository failed", err, logger.Fields{
				"email": email,
			})
			return commons.ErrorResponse[dto.OnboardCustomerResponse]("failed to onboard customer", "Unable to onboard customer right now"), err
		}
	}
	if err != nil {
		return commons.ErrorResponse[dto.OnboardCustomerResponse]("Duplicate identifier", "Unable to derive a free username"), err
	}

	response := dto.OnboardCustomerResponse{
		IdentityID: identity.ID,
		CustomerID: customer.ID,
		Username:   identity.Username,
		Password:   password,
		Email:      customer.Email,
	}

	logger.Info("onboarding service onboard customer success", logger.Fields{
		"identityId": identity.ID,
		"customerId": customer.ID,
		"username":   identity.Username,
	})

	subject := "Your Bank Account Credentials"
	body := fmt.Sprintf("Your account has been created successfully. Your username is %s and your password is %s.", identity.Username, password)
	if sendErr := s.notifier.Send(ctx, customer.Email, subject, body); sendErr != nil {
		// Identity creation stands; the caller delivers the
		// credentials another way.
		logger.Error("onboarding service credential notification failed", domain.ErrNotificationFailed, logger.Fields{
			"identityId": identity.ID,
			"email":      customer.Email,
		})
		return commons.WarningResponse("customer onboarded successfully", response, "credential notification could not be delivered"), nil
	}

	return commons.SuccessResponse("customer onboarded successfully", response), nil
}

func (s *OnboardingService) UpdateCustomer(ctx context.Context, caller domain.Identity, req dto.UpdateCustomerRequest) (commons.Response[dto.CustomerResponse], error) {
	logger.Info("onboarding service update customer request", logger.Fields{
		"callerId": caller.ID,
		"payload":  logger.SanitizePayload(req),
	})

	if err := Authorize(caller, domain.CapManageCustomer); err != nil {
		return commons.ErrorResponse[dto.CustomerResponse]("Unauthorized"), err
	}

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[dto.CustomerResponse]("validation failed", err.Error()), err
	}

	customer, err := s.customerRepo.GetByID(ctx, strings.TrimSpace(req.CustomerID))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[dto.CustomerResponse]("Customer not found"), err
		}
		return commons.ErrorResponse[dto.CustomerResponse]("failed to update customer", "Unable to update customer right now"), err
	}

	customer.Name = strings.TrimSpace(req.Name)
	customer.Address = strings.TrimSpace(req.Address)
	customer.PhoneNumber = strings.TrimSpace(req.PhoneNumber)

	updated, err := s.customerRepo.Update(ctx, customer)
	if err != nil {
		logger.Error("onboarding service update customer repository failed", err, logger.Fields{
			"customerId": customer.ID,
		})
		return commons.ErrorResponse[dto.CustomerResponse]("failed to update customer", "Unable to update customer right now"), err
	}

	return commons.SuccessResponse("customer updated successfully", mapCustomerToResponse(updated)), nil
}

func (s *OnboardingService) DeleteCustomer(ctx context.Context, caller domain.Identity, customerID string) (commons.Response[struct{}], error) {
	logger.Info("onboarding service delete customer request", logger.Fields{
		"callerId":   caller.ID,
		"customerId": customerID,
	})

	if err := Authorize(caller, domain.CapManageCustomer); err != nil {
		return commons.ErrorResponse[struct{}]("Unauthorized"), err
	}

	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		err := errors.New("customerId is required")
		return commons.ErrorResponse[struct{}]("validation failed", err.Error()), err
	}

	if err := s.customerRepo.Delete(ctx, customerID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[struct{}]("Customer not found"), err
		}
		logger.Error("onboarding service delete customer repository failed", err, logger.Fields{
			"customerId": customerID,
		})
		return commons.ErrorResponse[struct{}]("failed to delete customer", "Unable to delete customer right now"), err
	}

	return commons.SuccessResponse("customer deleted successfully", struct{}{}), nil
}

// deriveUsername takes the email local part and, when taken, appends
// the smallest free numeric suffix starting at 2.
func (s *OnboardingService) deriveUsername(ctx context.Context, email string) (string, error) {
	base := strings.ToLower(strings.TrimSpace(strings.SplitN(email, "@", 2)[0]))

	candidate := base
	for suffix := 2; ; suffix++ {
		exists, err := s.identityRepo.UsernameExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("check username candidate: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d", base, suffix)
	}
}

func generatePassword() (string, error) {
	out := make([]byte, passwordLength)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}
		out[i] = passwordAlphabet[n.Int64()]
	}

	return string(out), nil
}

func mapCustomerToResponse(customer domain.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:          customer.ID,
		IdentityID:  customer.IdentityID,
		Name:        customer.Name,
		Email:       customer.Email,
		DOB:         customer.DOB.Format("2006-01-02"),
		Address:     customer.Address,
		PhoneNumber: customer.PhoneNumber,
		CreatedAt:   customer.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   customer.UpdatedAt.Format(time.RFC3339),
	}
}
