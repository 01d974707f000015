package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/api-sage/bank-back-office/internal/domain"
)

// Investments and retirement plans have no approval gate, so their
// repositories are plain insert-and-list.

type InvestmentRepository struct {
	db *sql.DB
}

func NewInvestmentRepository(db *sql.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

func (r *InvestmentRepository) Create(ctx context.Context, investment domain.Investment) (domain.Investment, error) {
	const query = `
INSERT INTO investments (
	customer_id,
	investment_type,
	amount,
	return_rate
) VALUES ($1, $2, $3, $4)
RETURNING id, created_at`

	var createdAt time.Time
	var id string

	if err := r.db.QueryRowContext(
		ctx,
		query,
		investment.CustomerID,
		investment.InvestmentType,
		investment.Amount.StringFixed(2),
		investment.ReturnRate.StringFixed(2),
	).Scan(&id, &createdAt); err != nil {
		return domain.Investment{}, fmt.Errorf("create investment: %w", err)
	}

	investment.ID = id
	investment.CreatedAt = createdAt

	return investment, nil
}

func (r *InvestmentRepository) List(ctx context.Context) ([]domain.Investment, error) {
	const query = `
SELECT id, customer_id, investment_type, amount, return_rate, created_at
FROM investments
ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	defer rows.Close()

	investments := make([]domain.Investment, 0)
	for rows.Next() {
		var investment domain.Investment
		if err := rows.Scan(
			&investment.ID,
			&investment.CustomerID,
			&investment.InvestmentType,
			&investment.Amount,
			&investment.ReturnRate,
			&investment.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan investment row: %w", err)
		}
		investments = append(investments, investment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate investment rows: %w", err)
	}

	return investments, nil
}

type RetirementPlanRepository struct {
	db *sql.DB
}

func NewRetirementPlanRepository(db *sql.DB) *RetirementPlanRepository {
	return &RetirementPlanRepository{db: db}
}

func (r *RetirementPlanRepository) Create(ctx context.Context, plan domain.RetirementPlan) (domain.RetirementPlan, error) {
	const query = `
INSERT INTO retirement_plans (
	customer_id,
	plan_type,
	contribution
) VALUES ($1, $2, $3)
RETURNING id, created_at`

	var createdAt time.Time
	var id string

	if err := r.db.QueryRowContext(
		ctx,
		query,
		plan.CustomerID,
		plan.PlanType,
		plan.Contribution.StringFixed(2),
	).Scan(&id, &createdAt); err != nil {
		return domain.RetirementPlan{}, fmt.Errorf("create retirement plan: %w", err)
	}

	plan.ID = id
	plan.CreatedAt = createdAt

	return plan, nil
}

func (r *RetirementPlanRepository) ListByCustomerID(ctx context.Context, customerID string) ([]domain.RetirementPlan, error) {
	const query = `
SELECT id, customer_id, plan_type, contribution, created_at
FROM retirement_plans
WHERE customer_id = $1
ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list retirement plans by customer id: %w", err)
	}
	defer rows.Close()

	plans := make([]domain.RetirementPlan, 0)
	for rows.Next() {
		var plan domain.RetirementPlan
		if err := rows.Scan(
			&plan.ID,
			&plan.CustomerID,
			&plan.PlanType,
			&plan.Contribution,
			&plan.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan retirement plan row: %w", err)
		}
		plans = append(plans, plan)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate retirement plan rows: %w", err)
	}

	return plans, nil
}
