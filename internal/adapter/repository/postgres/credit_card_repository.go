package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/api-sage/bank-back-office/internal/domain"
)

type CreditCardRepository struct {
	db *sql.DB
}

func NewCreditCardRepository(db *sql.DB) *CreditCardRepository {
	return &CreditCardRepository{db: db}
}

func (r *CreditCardRepository) Create(ctx context.Context, card domain.CreditCard) (domain.CreditCard, error) {
	const query = `
INSERT INTO credit_cards (
	customer_id,
	card_number,
	cvv,
	credit_limit,
	card_type,
	status
) VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at, updated_at`

	var createdAt time.Time
	var updatedAt time.Time
	var id string

	if err := r.db.QueryRowContext(
		ctx,
		query,
		card.CustomerID,
		card.CardNumber,
		card.CVV,
		card.CreditLimit.StringFixed(2),
		card.CardType,
		card.Status,
	).Scan(&id, &createdAt, &updatedAt); err != nil {
		if isUniqueViolation(err) {
			return domain.CreditCard{}, domain.ErrDuplicateIdentifier
		}
		return domain.CreditCard{}, fmt.Errorf("create credit card: %w", err)
	}

	card.ID = id
	card.CreatedAt = createdAt
	card.UpdatedAt = updatedAt

	return card, nil
}

func (r *CreditCardRepository) GetByID(ctx context.Context, id string) (domain.CreditCard, error) {
	const query = `
SELECT id, customer_id, card_number, cvv, credit_limit, card_type, status, created_at, updated_at
FROM credit_cards
WHERE id = $1`

	var card domain.CreditCard
	if err := r.db.QueryRowContext(ctx, query, id).Scan(
		&card.ID,
		&card.CustomerID,
		&card.CardNumber,
		&card.CVV,
		&card.CreditLimit,
		&card.CardType,
		&card.Status,
		&card.CreatedAt,
		&card.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.CreditCard{}, domain.ErrRecordNotFound
		}
		return domain.CreditCard{}, fmt.Errorf("get credit card by id: %w", err)
	}

	return card, nil
}

func (r *CreditCardRepository) List(ctx context.Context) ([]domain.CreditCard, error) {
	const query = `
SELECT id, customer_id, card_number, cvv, credit_limit, card_type, status, created_at, updated_at
FROM credit_cards
ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list credit cards: %w", err)
	}
	defer rows.Close()

	cards := make([]domain.CreditCard, 0)
	for rows.Next() {
		var card domain.CreditCard
		if err := rows.Scan(
			&card.ID,
			&card.CustomerID,
			&card.CardNumber,
			&card.CVV,
			&card.CreditLimit,
			&card.CardType,
			&card.Status,
			&card.CreatedAt,
			&card.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan credit card row: %w", err)
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate credit card rows: %w", err)
	}

	return cards, nil
}

func (r *CreditCardRepository) DecideFromPending(ctx context.Context, id string, status domain.ApplicationStatus) error {
	const query = `
UPDATE credit_cards
SET status = $2,
    updated_at = NOW()
WHERE id = $1
  AND status = 'pending'`

	result, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("decide credit card: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("decide credit card rows affected: %w", err)
	}

	if rowsAffected == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return domain.ErrInvalidAction
	}

	return nil
}

func (r *CreditCardRepository) CardNumberExists(ctx context.Context, cardNumber string) (bool, error) {
	const query = `
SELECT EXISTS (
	SELECT 1
	FROM credit_cards
	WHERE card_number = $1
)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, cardNumber).Scan(&exists); err != nil {
		return false, fmt.Errorf("check card number exists: %w", err)
	}

	return exists, nil
}
