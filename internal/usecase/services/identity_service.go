package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/api-sage/bank-back-office/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/bank-back-office/internal/commons"
	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/api-sage/bank-back-office/internal/dto"
	"github.com/api-sage/bank-back-office/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

const identityCreateAttempts = 5

// IdentityService covers admin provisioning of staff identities. Roles
// are immutable except through UpdateIdentityRole, which is itself
// admin-gated.
type IdentityService struct {
	identityRepo repo_interfaces.IdentityRepository
}

func NewIdentityService(identityRepo repo_interfaces.IdentityRepository) *IdentityService {
	return &IdentityService{identityRepo: identityRepo}
}

func (s *IdentityService) CreateIdentity(ctx context.Context, caller domain.Identity, req dto.CreateIdentityRequest) (commons.Response[dto.IdentityResponse], error) {
	logger.Info("identity service create identity request", logger.Fields{
		"callerId": caller.ID,
		"payload":  logger.SanitizePayload(req),
	})

	if err := Authorize(caller, domain.CapManageIdentities); err != nil {
		return commons.ErrorResponse[dto.IdentityResponse]("Unauthorized"), err
	}

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[dto.IdentityResponse]("validation failed", err.Error()), err
	}

	role := domain.Role(strings.ToLower(strings.TrimSpace(req.Role)))
	if !role.Valid() {
		err := fmt.Errorf("role %q is not recognised", req.Role)
		return commons.ErrorResponse[dto.IdentityResponse]("validation failed", err.Error()), err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(req.Password)), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("identity service hash password failed", err, nil)
		return commons.ErrorResponse[dto.IdentityResponse]("failed to create identity", "Unable to create identity right now"), err
	}

	email := strings.TrimSpace(req.Email)
	var created domain.Identity
	for attempt := 0; attempt < identityCreateAttempts; attempt++ {
		username, deriveErr := s.deriveUsername(ctx, email)
		if deriveErr != nil {
			return commons.ErrorResponse[dto.IdentityResponse]("failed to create identity", "Unable to create identity right now"), deriveErr
		}

		created, err = s.identityRepo.Create(ctx, domain.Identity{
			Username:     username,
			PasswordHash: string(passwordHash),
			Role:         role,
		})
		if err == nil {
			break
		}
		if !errors.Is(err, domain.ErrDuplicateIdentifier) {
			logger.Error("identity service create identity repository failed", err, logger.Fields{
				"email": email,
			})
			return commons.ErrorResponse[dto.IdentityResponse]("failed to create identity", "Unable to create identity right now"), err
		}
	}
	if err != nil {
		return commons.ErrorResponse[dto.IdentityResponse]("Duplicate identifier", "Unable to derive a free username"), err
	}

	logger.Info("identity service create identity success", logger.Fields{
		"identityId": created.ID,
		"username":   created.Username,
		"role":       string(created.Role),
	})

	return commons.SuccessResponse("identity created successfully", mapIdentityToResponse(created)), nil
}

func (s *IdentityService) UpdateIdentityRole(ctx context.Context, caller domain.Identity, req dto.UpdateIdentityRoleRequest) (commons.Response[dto.IdentityResponse], error) {
	logger.Info("identity service update role request", logger.Fields{
		"callerId":   caller.ID,
		"identityId": req.IdentityID,
		"role":       req.Role,
	})

	if err := Authorize(caller, domain.CapManageIdentities); err != nil {
		return commons.ErrorResponse[dto.IdentityResponse]("Unauthorized"), err
	}

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[dto.IdentityResponse]("validation failed", err.Error()), err
	}

	role := domain.Role(strings.ToLower(strings.TrimSpace(req.Role)))
	if !role.Valid() {
		err := fmt.Errorf("role %q is not recognised", req.Role)
		return commons.ErrorResponse[dto.IdentityResponse]("validation failed", err.Error()), err
	}

	identityID := strings.TrimSpace(req.IdentityID)
	if err := s.identityRepo.UpdateRole(ctx, identityID, role); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[dto.IdentityResponse]("Identity not found"), err
		}
		logger.Error("identity service update role repository failed", err, logger.Fields{
			"identityId": identityID,
		})
		return commons.ErrorResponse[dto.IdentityResponse]("failed to update role", "Unable to update role right now"), err
	}

	updated, err := s.identityRepo.GetByID(ctx, identityID)
	if err != nil {
		return commons.ErrorResponse[dto.IdentityResponse]("failed to update role", "Unable to fetch identity right now"), err
	}

	return commons.SuccessResponse("role updated successfully", mapIdentityToResponse(updated)), nil
}

func (s *IdentityService) DeleteIdentity(ctx context.Context, caller domain.Identity, identityID string) (commons.Response[struct{}], error) {
	logger.Info("identity service delete identity request", logger.Fields{
		"callerId":   caller.ID,
		"identityId": identityID,
	})

	if err := Authorize(caller, domain.CapManageIdentities); err != nil {
		return commons.ErrorResponse[struct{}]("Unauthorized"), err
	}

	identityID = strings.TrimSpace(identityID)
	if identityID == "" {
		err := errors.New("identityId is required")
		return commons.ErrorResponse[struct{}]("validation failed", err.Error()), err
	}

	if err := s.identityRepo.Delete(ctx, identityID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[struct{}]("Identity not found"), err
		}
		logger.Error("identity service delete identity repository failed", err, logger.Fields{
			"identityId": identityID,
		})
		return commons.ErrorResponse[struct{}]("failed to delete identity", "Unable to delete identity right now"), err
	}

	return commons.SuccessResponse("identity deleted successfully", struct{}{}), nil
}

func (s *IdentityService) deriveUsername(ctx context.Context, email string) (string, error) {
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

func mapIdentityToResponse(identity domain.Identity) dto.IdentityResponse {
	return dto.IdentityResponse{
		ID:        identity.ID,
		Username:  identity.Username,
		Role:      string(identity.Role),
		CreatedAt: identity.CreatedAt.Format(time.RFC3339),
		UpdatedAt: identity.UpdatedAt.Format(time.RFC3339),
	}
}
