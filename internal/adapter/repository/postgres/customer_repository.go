package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/api-sage/bank-back-office/internal/domain"
	"github.com/api-sage/bank-back-office/internal/logger"
)

type CustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) CreateWithIdentity(ctx context.Context, identity domain.Identity, customer domain.Customer) (domain.Identity, domain.Customer, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Identity{}, domain.Customer{}, fmt.Errorf("begin onboarding tx: %w", err)
	}

	const identityQuery = `
INSERT INTO identities (
	username,
	password_hash,
	role
) VALUES ($1, $2, $3)
RETURNING id, created_at, updated_at`

	if err := tx.QueryRowContext(
		ctx,
		identityQuery,
		identity.Username,
		identity.PasswordHash,
		identity.Role,
	).Scan(&identity.ID, &identity.CreatedAt, &identity.UpdatedAt); err != nil {
		_ = tx.Rollback()
		if isUniqueViolation(err) {
			return domain.Identity{}, domain.Customer{}, domain.ErrDuplicateIdentifier
		}
		return domain.Identity{}, domain.Customer{}, fmt.Errorf("create identity for customer: %w", err)
	}

	const customerQuery = `
INSERT INTO customers (
	identity_id,
	name,
	email,
	dob,
	address,
	phone_number
) VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at, updated_at`

	customer.IdentityID = identity.ID
	if err := tx.QueryRowContext(
		ctx,
		customerQuery,
		customer.IdentityID,
		customer.Name,
		customer.Email,
		customer.DOB,
		customer.Address,
		customer.PhoneNumber,
	).Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt); err != nil {
		_ = tx.Rollback()
		if isUniqueViolation(err) {
			return domain.Identity{}, domain.Customer{}, domain.ErrDuplicateIdentifier
		}
		return domain.Identity{}, domain.Customer{}, fmt.Errorf("create customer: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return domain.Identity{}, domain.Customer{}, fmt.Errorf("commit onboarding tx: %w", err)
	}

	logger.Info("customer repository onboarding committed", logger.Fields{
		"identityId": identity.ID,
		"customerId": customer.ID,
	})

	return identity, customer, nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id string) (domain.Customer, error) {
	const query = `
SELECT id, identity_id, name, email, dob, address, phone_number, created_at, updated_at
FROM customers
WHERE id = $1`

	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *CustomerRepository) GetByIdentityID(ctx context.Context, identityID string) (domain.Customer, error) {
	const query = `
SELECT id, identity_id, name, email, dob, address, phone_number, created_at, updated_at
FROM customers
WHERE identity_id = $1`

	return r.scanOne(r.db.QueryRowContext(ctx, query, identityID))
}

func (r *CustomerRepository) Update(ctx context.Context, customer domain.Customer) (domain.Customer, error) {
	const query = `
UPDATE customers
SET name = $2,
    address = $3,
    phone_number = $4,
    updated_at = NOW()
WHERE id = $1
RETURNING id, identity_id, name, email, dob, address, phone_number, created_at, updated_at`

	updated, err := r.scanOne(r.db.QueryRowContext(
		ctx,
		query,
		customer.ID,
		customer.Name,
		customer.Address,
		customer.PhoneNumber,
	))
	if err != nil {
		return domain.Customer{}, err
	}

	return updated, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM customers WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete customer rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func (r *CustomerRepository) scanOne(row *sql.Row) (domain.Customer, error) {
	var customer domain.Customer
	if err := row.Scan(
		&customer.ID,
		&customer.IdentityID,
		&customer.Name,
		&customer.Email,
		&customer.DOB,
		&customer.Address,
		&customer.PhoneNumber,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Customer{}, domain.ErrRecordNotFound
		}
		return domain.Customer{}, fmt.Errorf("scan customer: %w", err)
	}

	return customer, nil
}
