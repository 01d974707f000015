package dto

import (
	"errors"
	"strings"
)

type CreateIdentityRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r CreateIdentityRequest) Validate() error {
	var errs []string

	email := strings.TrimSpace(r.Email)
	if email == "" {
		errs = append(errs, "email is required")
	} else {
		at := strings.Index(email, "@")
		if at <= 0 || at == len(email)-1 {
			errs = append(errs, "email must contain a local part and a domain")
		}
	}

	if len(strings.TrimSpace(r.Password)) < 8 {
		errs = append(errs, "password must be at least 8 characters")
	}

	if strings.TrimSpace(r.Role) == "" {
		errs = append(errs, "role is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type UpdateIdentityRoleRequest struct {
	IdentityID string `json:"identityId"`
	Role       string `json:"role"`
}

func (r UpdateIdentityRoleRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.IdentityID) == "" {
		errs = append(errs, "identityId is required")
	}
	if strings.TrimSpace(r.Role) == "" {
		errs = append(errs, "role is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

type IdentityResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
