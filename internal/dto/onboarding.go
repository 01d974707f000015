package dto

import (
	"errors"
	"strings"
)

type OnboardCustomerRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	DOB         string `json:"dob"`
	Address     string `json:"address,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

func (r OnboardCustomerRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}

	email := strings.TrimSpace(r.Email)
	if email == "" {
		errs = append(errs, "email is required")
	} else {
		at := strings.Index(email, "@")
		if at <= 0 || at == len(email)-1 {
			errs = append(errs, "email must contain a local part and a domain")
		}
	}

	if strings.TrimSpace(r.DOB) == "" {
		errs = append(errs, "dob is required")
	}

	if len(r.PhoneNumber) > 15 {
		errs = append(errs, "phoneNumber must be at most 15 characters")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

// OnboardCustomerResponse carries the one-time plaintext password for
// out-of-band delivery. It is never persisted and the logger masks it.
type OnboardCustomerResponse struct {
	IdentityID string `json:"identityId"`
	CustomerID string `json:"customerId"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	Email      string `json:"email"`
}

type UpdateCustomerRequest struct {
	CustomerID  string `json:"customerId"`
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

func (r UpdateCustomerRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.CustomerID) == "" {
		errs = append(errs, "customerId is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}
	if len(r.PhoneNumber) > 15 {
		errs = append(errs, "phoneNumber must be at most 15 characters")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type CustomerResponse struct {
	ID          string `json:"id"`
	IdentityID  string `json:"identityId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	DOB         string `json:"dob"`
	Address     string `json:"address,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}
