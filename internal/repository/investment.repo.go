package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SYK3S999/tamweeli-sub001/internal/domain"
	"github.com/SYK3S999/tamweeli-sub001/pkg/xerrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const investmentColumns = `id, investor_id, project_id, amount, status, message, created_at, updated_at`

type InvestmentRepository struct {
	db *pgxpool.Pool
}

func NewInvestmentRepository(db *pgxpool.Pool) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

func (r *InvestmentRepository) Create(ctx context.Context, inv *domain.Investment) error {
	query := `INSERT INTO investments
	(id, investor_id, project_id, amount, status, message, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		inv.ID, inv.InvestorID, inv.ProjectID, inv.Amount, inv.Status, inv.Message,
		inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create investment: %w", err)
	}
	return nil
}

func (r *InvestmentRepository) GetByID(ctx context.Context, id string) (*domain.Investment, error) {
	row := r.db.QueryRow(ctx, `SELECT `+investmentColumns+` FROM investments WHERE id = $1`, id)
	inv, err := scanInvestment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrInvestmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get investment: %w", err)
	}
	return inv, nil
}

func (r *InvestmentRepository) UpdateStatus(ctx context.Context, id string, status domain.InvestmentStatus) error {
	_, err := r.db.Exec(ctx,
		`UPDATE investments SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, time.Now())
	if err != nil {
		return fmt.Errorf("update investment status: %w", err)
	}
	return nil
}

// Accept marks a pending investment accepted and adds its amount to the
// project's raised total in one database transaction. The project row is
// locked first so two concurrent acceptances cannot both pass the capacity
// check. Acceptance fails with ErrFundingExceeded when the amount no longer
// fits the remaining capacity.
func (r *InvestmentRepository) Accept(ctx context.Context, id string) (*domain.Investment, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin accept: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `SELECT `+investmentColumns+` FROM investments WHERE id = $1 FOR UPDATE`, id)
	inv, err := scanInvestment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrInvestmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock investment: %w", err)
	}
	if inv.Status != domain.InvestmentPending {
		return nil, xerrors.ErrInvestmentNotPending
	}

	var goal, raised float64
	err = tx.QueryRow(ctx,
		`SELECT funding_goal, funding_raised FROM projects WHERE id = $1 FOR UPDATE`,
		inv.ProjectID).Scan(&goal, &raised)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("lock project: %w", err)
	}
	if raised+inv.Amount > goal {
		return nil, xerrors.ErrFundingExceeded
	}

	now := time.Now()
	if _, err := tx.Exec(ctx,
		`UPDATE investments SET status = $2, updated_at = $3 WHERE id = $1`,
		id, domain.InvestmentAccepted, now); err != nil {
		return nil, fmt.Errorf("accept investment: %w", err)
	}
	if _, err := tx.Exec(ctx,
		`UPDATE projects SET funding_raised = funding_raised + $2, updated_at = $3 WHERE id = $1`,
		inv.ProjectID, inv.Amount, now); err != nil {
		return nil, fmt.Errorf("raise project funding: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit accept: %w", err)
	}

	inv.Status = domain.InvestmentAccepted
	inv.UpdatedAt = now
	return inv, nil
}

func (r *InvestmentRepository) ListByInvestor(ctx context.Context, investorID string) ([]*domain.Investment, error) {
	return r.list(ctx, `SELECT `+investmentColumns+` FROM investments
		WHERE investor_id = $1 ORDER BY created_at DESC`, investorID)
}

func (r *InvestmentRepository) ListByProject(ctx context.Context, projectID string) ([]*domain.Investment, error) {
	return r.list(ctx, `SELECT `+investmentColumns+` FROM investments
		WHERE project_id = $1 ORDER BY created_at DESC`, projectID)
}

func (r *InvestmentRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Investment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}
	defer rows.Close()

	var investments []*domain.Investment
	for rows.Next() {
		inv, err := scanInvestment(rows)
		if err != nil {
			return nil, err
		}
		investments = append(investments, inv)
	}
	return investments, rows.Err()
}

func scanInvestment(row pgx.Row) (*domain.Investment, error) {
	var inv domain.Investment
	err := row.Scan(&inv.ID, &inv.InvestorID, &inv.ProjectID, &inv.Amount,
		&inv.Status, &inv.Message, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
