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

const projectColumns = `id, owner_id, title, description, sector, contract_type,
	funding_goal, funding_raised, duration_months, status, review_note, created_at, updated_at`

type ProjectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects
	(id, owner_id, title, description, sector, contract_type, funding_goal,
	 funding_raised, duration_months, status, review_note, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.OwnerID, p.Title, p.Description, p.Sector, p.ContractType,
		p.FundingGoal, p.FundingRaised, p.DurationMonths, p.Status, p.ReviewNote,
		p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	row := r.db.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	p, err := scanProject(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

type ProjectUpdate struct {
	Title          *string              `json:"title"`
	Description    *string              `json:"description"`
	Sector         *domain.Sector       `json:"sector"`
	ContractType   *domain.ContractType `json:"contract_type"`
	FundingGoal    *float64             `json:"funding_goal"`
	DurationMonths *int                 `json:"duration_months"`
}

// Update shallow-merges the non-nil fields and restamps updated_at.
// Updating an absent id is a no-op.
func (r *ProjectRepository) Update(ctx context.Context, id string, upd ProjectUpdate) error {
	query := `UPDATE projects SET
		title           = COALESCE($2, title),
		description     = COALESCE($3, description),
		sector          = COALESCE($4, sector),
		contract_type   = COALESCE($5, contract_type),
		funding_goal    = COALESCE($6, funding_goal),
		duration_months = COALESCE($7, duration_months),
		updated_at      = $8
	WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id,
		upd.Title, upd.Description, upd.Sector, upd.ContractType,
		upd.FundingGoal, upd.DurationMonths, time.Now())
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) UpdateStatus(ctx context.Context, id string, status domain.ProjectStatus, note string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE projects SET status = $2, review_note = $3, updated_at = $4 WHERE id = $1`,
		id, status, note, time.Now())
	if err != nil {
		return fmt.Errorf("update project status: %w", err)
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Project, error) {
	return r.list(ctx, `SELECT `+projectColumns+` FROM projects
		WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
}

func (r *ProjectRepository) ListByStatus(ctx context.Context, status domain.ProjectStatus) ([]*domain.Project, error) {
	return r.list(ctx, `SELECT `+projectColumns+` FROM projects
		WHERE status = $1 ORDER BY created_at DESC`, status)
}

func (r *ProjectRepository) ListAll(ctx context.Context) ([]*domain.Project, error) {
	return r.list(ctx, `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC`)
}

func (r *ProjectRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.Project, error) {
	return r.list(ctx, `SELECT `+projectColumns+` FROM projects
		WHERE id = ANY($1) ORDER BY created_at DESC`, ids)
}

func (r *ProjectRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Project, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.OwnerID, &p.Title, &p.Description, &p.Sector,
		&p.ContractType, &p.FundingGoal, &p.FundingRaised, &p.DurationMonths,
		&p.Status, &p.ReviewNote, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
