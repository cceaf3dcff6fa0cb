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

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users
	(id, name, email, password_hash, user_type, investor_type, is_verified, is_demo, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(ctx, query,
		u.ID, u.Name, u.Email, u.PasswordHash, u.UserType, u.InvestorType,
		u.IsVerified, u.IsDemo, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if xerrors.ParsePGErrorCode(err) == "23505" {
			return xerrors.ErrEmailAlreadyInUse
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, `WHERE email = $1`, email)
}

func (r *UserRepository) getOne(ctx context.Context, where string, arg any) (*domain.User, error) {
	var u domain.User
	query := `SELECT id, name, email, password_hash, user_type, investor_type,
	          is_verified, is_demo, created_at, updated_at FROM users ` + where
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.UserType, &u.InvestorType,
		&u.IsVerified, &u.IsDemo, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

type UserUpdate struct {
	Name         *string              `json:"name"`
	InvestorType *domain.InvestorType `json:"investor_type"`
}

// Update shallow-merges the non-nil fields. Updating an absent id is a no-op.
func (r *UserRepository) Update(ctx context.Context, id string, upd UserUpdate) error {
	query := `UPDATE users SET
		name          = COALESCE($2, name),
		investor_type = COALESCE($3, investor_type),
		updated_at    = $4
	WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id, upd.Name, upd.InvestorType, time.Now())
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *UserRepository) SetVerified(ctx context.Context, id string, verified bool) error {
	_, err := r.db.Exec(ctx,
		`UPDATE users SET is_verified = $2, updated_at = $3 WHERE id = $1`,
		id, verified, time.Now())
	if err != nil {
		return fmt.Errorf("set verified: %w", err)
	}
	return nil
}

func (r *UserRepository) ListByType(ctx context.Context, userType domain.UserType) ([]*domain.User, error) {
	query := `SELECT id, name, email, password_hash, user_type, investor_type,
	          is_verified, is_demo, created_at, updated_at
	          FROM users WHERE user_type = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userType)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.UserType,
			&u.InvestorType, &u.IsVerified, &u.IsDemo, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}
