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

type ServiceRepository struct {
	db *pgxpool.Pool
}

func NewServiceRepository(db *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.Service) error {
	query := `INSERT INTO services
	(id, consultant_id, title, description, category, price, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		s.ID, s.ConsultantID, s.Title, s.Description, s.Category, s.Price,
		s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create service: %w", err)
	}
	return nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	var s domain.Service
	err := r.db.QueryRow(ctx,
		`SELECT id, consultant_id, title, description, category, price, created_at, updated_at
		 FROM services WHERE id = $1`, id).
		Scan(&s.ID, &s.ConsultantID, &s.Title, &s.Description, &s.Category,
			&s.Price, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}
	return &s, nil
}

type ServiceUpdate struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
}

func (r *ServiceRepository) Update(ctx context.Context, id string, upd ServiceUpdate) error {
	query := `UPDATE services SET
		title       = COALESCE($2, title),
		description = COALESCE($3, description),
		category    = COALESCE($4, category),
		price       = COALESCE($5, price),
		updated_at  = $6
	WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id, upd.Title, upd.Description, upd.Category,
		upd.Price, time.Now())
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}

func (r *ServiceRepository) ListAll(ctx context.Context) ([]*domain.Service, error) {
	return r.listServices(ctx,
		`SELECT id, consultant_id, title, description, category, price, created_at, updated_at
		 FROM services ORDER BY created_at DESC`)
}

func (r *ServiceRepository) ListByConsultant(ctx context.Context, consultantID string) ([]*domain.Service, error) {
	return r.listServices(ctx,
		`SELECT id, consultant_id, title, description, category, price, created_at, updated_at
		 FROM services WHERE consultant_id = $1 ORDER BY created_at DESC`, consultantID)
}

func (r *ServiceRepository) listServices(ctx context.Context, query string, args ...any) ([]*domain.Service, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()

	var services []*domain.Service
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(&s.ID, &s.ConsultantID, &s.Title, &s.Description,
			&s.Category, &s.Price, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		services = append(services, &s)
	}
	return services, rows.Err()
}

func (r *ServiceRepository) CreateRequest(ctx context.Context, req *domain.ServiceRequest) error {
	query := `INSERT INTO service_requests
	(id, service_id, client_id, consultant_id, status, details, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		req.ID, req.ServiceID, req.ClientID, req.ConsultantID, req.Status,
		req.Details, req.CreatedAt, req.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create service request: %w", err)
	}
	return nil
}

func (r *ServiceRepository) GetRequest(ctx context.Context, id string) (*domain.ServiceRequest, error) {
	var req domain.ServiceRequest
	err := r.db.QueryRow(ctx,
		`SELECT id, service_id, client_id, consultant_id, status, details, created_at, updated_at
		 FROM service_requests WHERE id = $1`, id).
		Scan(&req.ID, &req.ServiceID, &req.ClientID, &req.ConsultantID,
			&req.Status, &req.Details, &req.CreatedAt, &req.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrServiceRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get service request: %w", err)
	}
	return &req, nil
}

func (r *ServiceRepository) UpdateRequestStatus(ctx context.Context, id string, status domain.ServiceRequestStatus) error {
	_, err := r.db.Exec(ctx,
		`UPDATE service_requests SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, time.Now())
	if err != nil {
		return fmt.Errorf("update request status: %w", err)
	}
	return nil
}

func (r *ServiceRepository) ListRequestsByClient(ctx context.Context, clientID string) ([]*domain.ServiceRequest, error) {
	return r.listRequests(ctx, `WHERE client_id = $1`, clientID)
}

func (r *ServiceRepository) ListRequestsByConsultant(ctx context.Context, consultantID string) ([]*domain.ServiceRequest, error) {
	return r.listRequests(ctx, `WHERE consultant_id = $1`, consultantID)
}

func (r *ServiceRepository) listRequests(ctx context.Context, where string, arg any) ([]*domain.ServiceRequest, error) {
	query := `SELECT id, service_id, client_id, consultant_id, status, details, created_at, updated_at
	          FROM service_requests ` + where + ` ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list service requests: %w", err)
	}
	defer rows.Close()

	var requests []*domain.ServiceRequest
	for rows.Next() {
		var req domain.ServiceRequest
		if err := rows.Scan(&req.ID, &req.ServiceID, &req.ClientID, &req.ConsultantID,
			&req.Status, &req.Details, &req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, &req)
	}
	return requests, rows.Err()
}
