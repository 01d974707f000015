package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/api-sage/bank-back-office/internal/domain"
)

type LoanRepository struct {
	db *sql.DB
}

func NewLoanRepository(db *sql.DB) *LoanRepository {
	return &LoanRepository{db: db}
}

func (r *LoanRepository) Create(ctx context.Context, loan domain.Loan) (domain.Loan, error) {
	const query = `
INSERT INTO loans (
	customer_id,
	loan_type,
	amount,
	interest_rate,
	term_months,
	status
) VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, created_at, updated_at`

	var createdAt time.Time
	var updatedAt time.Time
	var id string

	if err := r.db.QueryRowContext(
		ctx,
		query,
		loan.CustomerID,
		loan.LoanType,
		loan.Amount.StringFixed(2),
		loan.InterestRate.StringFixed(2),
		loan.TermMonths,
		loan.Status,
	).Scan(&id, &createdAt, &updatedAt); err != nil {
		return domain.Loan{}, fmt.Errorf("create loan: %w", err)
	}

	loan.ID = id
	loan.CreatedAt = createdAt
	loan.UpdatedAt = updatedAt

	return loan, nil
}

func (r *LoanRepository) GetByID(ctx context.Context, id string) (domain.Loan, error) {
	const query = `
SELECT id, customer_id, loan_type, amount, interest_rate, term_months, status, created_at, updated_at
FROM loans
WHERE id = $1`

	var loan domain.Loan
	if err := r.db.QueryRowContext(ctx, query, id).Scan(
		&loan.ID,
		&loan.CustomerID,
		&loan.LoanType,
		&loan.Amount,
		&loan.InterestRate,
		&loan.TermMonths,
		&loan.Status,
		&loan.CreatedAt,
		&loan.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Loan{}, domain.ErrRecordNotFound
		}
		return domain.Loan{}, fmt.Errorf("get loan by id: %w", err)
	}

	return loan, nil
}

func (r *LoanRepository) List(ctx context.Context) ([]domain.Loan, error) {
	const query = `
SELECT id, customer_id, loan_type, amount, interest_rate, term_months, status, created_at, updated_at
FROM loans
ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list loans: %w", err)
	}
	defer rows.Close()

	loans := make([]domain.Loan, 0)
	for rows.Next() {
		var loan domain.Loan
		if err := rows.Scan(
			&loan.ID,
			&loan.CustomerID,
			&loan.LoanType,
			&loan.Amount,
			&loan.InterestRate,
			&loan.TermMonths,
			&loan.Status,
			&loan.CreatedAt,
			&loan.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan loan row: %w", err)
		}
		loans = append(loans, loan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate loan rows: %w", err)
	}

	return loans, nil
}

// DecideFromPending only matches rows still in pending, so a decision
// that lost a race, or targets an already decided loan, affects zero
// rows and maps to ErrInvalidAction.
func (r *LoanRepository) DecideFromPending(ctx context.Context, id string, status domain.ApplicationStatus) error {
	const query = `
UPDATE loans
SET status = $2,
    updated_at = NOW()
WHERE id = $1
  AND status = 'pending'`

	result, err := r.db.ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("decide loan: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("decide loan rows affected: %w", err)
	}

	if rowsAffected == 0 {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		return domain.ErrInvalidAction
	}

	return nil
}
