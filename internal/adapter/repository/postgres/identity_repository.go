package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/api-sage/bank-back-office/internal/domain"
)

type IdentityRepository struct {
	db *sql.DB
}

func NewIdentityRepository(db *sql.DB) *IdentityRepository {
	return &IdentityRepository{db: db}
}

func (r *IdentityRepository) Create(ctx context.Context, identity domain.Identity) (domain.Identity, error) {
	const query = `
INSERT INTO identities (
	username,
	password_hash,
	role
) VALUES ($1, $2, $3)
RETURNING id, created_at, updated_at`

	var createdAt time.Time
	var updatedAt time.Time
	var id string

	if err := r.db.QueryRowContext(
		ctx,
		query,
		identity.Username,
		identity.PasswordHash,
		identity.Role,
	).Scan(&id, &createdAt, &updatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.Identity{}, domain.ErrDuplicateIdentifier
		}
		return domain.Identity{}, fmt.Errorf("create identity: %w", err)
	}

	identity.ID = id
	identity.CreatedAt = createdAt
	identity.UpdatedAt = updatedAt

	return identity, nil
}

func (r *IdentityRepository) GetByID(ctx context.Context, id string) (domain.Identity, error) {
	const query = `
SELECT id, username, password_hash, role, created_at, updated_at
FROM identities
WHERE id = $1`

	var identity domain.Identity
	if err := r.db.QueryRowContext(ctx, query, id).Scan(
		&identity.ID,
		&identity.Username,
		&identity.PasswordHash,
		&identity.Role,
		&identity.CreatedAt,
		&identity.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Identity{}, domain.ErrRecordNotFound
		}
		return domain.Identity{}, fmt.Errorf("get identity by id: %w", err)
	}

	return identity, nil
}

func (r *IdentityRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	const query = `
SELECT EXISTS (
	SELECT 1
	FROM identities
	WHERE username = $1
)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("check username exists: %w", err)
	}

	return exists, nil
}

func (r *IdentityRepository) UpdateRole(ctx context.Context, id string, role domain.Role) error {
	const query = `
UPDATE identities
SET role = $2,
    updated_at = NOW()
WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, role)
	if err != nil {
		return fmt.Errorf("update identity role: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update identity role rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (r *IdentityRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM identities WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete identity: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete identity rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}
