package consulting

import (
	"context"
	"fmt"
	"time"

	"github.com/SYK3S999/tamweeli-sub001/internal/domain"
	"github.com/SYK3S999/tamweeli-sub001/internal/repository"
	"github.com/SYK3S999/tamweeli-sub001/pkg/id"
	"github.com/SYK3S999/tamweeli-sub001/pkg/xerrors"
)

type Store interface {
	Create(ctx context.Context, s *domain.Service) error
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	Update(ctx context.Context, id string, upd repository.ServiceUpdate) error
	Delete(ctx context.Context, id string) error
	ListAll(ctx context.Context) ([]*domain.Service, error)
	ListByConsultant(ctx context.Context, consultantID string) ([]*domain.Service, error)
	CreateRequest(ctx context.Context, req *domain.ServiceRequest) error
	GetRequest(ctx context.Context, id string) (*domain.ServiceRequest, error)
	UpdateRequestStatus(ctx context.Context, id string, status domain.ServiceRequestStatus) error
	ListRequestsByClient(ctx context.Context, clientID string) ([]*domain.ServiceRequest, error)
	ListRequestsByConsultant(ctx context.Context, consultantID string) ([]*domain.ServiceRequest, error)
}

// WalletTransferer settles a completed engagement: the client pays, the
// consultant is paid, atomically.
type WalletTransferer interface {
	Transfer(ctx context.Context, fromUserID, toUserID string, amount float64, debitType, creditType domain.TransactionType, description string, refID *string) error
}

type Notifier interface {
	Notify(ctx context.Context, userID, title, body string, typ domain.NotificationType)
}

type Service struct {
	store    Store
	wallets  WalletTransferer
	notifier Notifier
}

func New(store Store, wallets WalletTransferer, notifier Notifier) *Service {
	return &Service{store: store, wallets: wallets, notifier: notifier}
}

type ServiceInput struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
}

func (s *Service) CreateService(ctx context.Context, consultantID string, in ServiceInput) (*domain.Service, error) {
	if in.Title == "" {
		return nil, xerrors.ErrTitleRequired
	}
	if in.Price <= 0 {
		return nil, xerrors.ErrInvalidAmount
	}

	now := time.Now()
	svc := &domain.Service{
		ID:           id.New(id.Service),
		ConsultantID: consultantID,
		Title:        in.Title,
		Description:  in.Description,
		Category:     in.Category,
		Price:        in.Price,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) UpdateService(ctx context.Context, consultantID, serviceID string, upd repository.ServiceUpdate) (*domain.Service, error) {
	svc, err := s.store.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if svc.ConsultantID != consultantID {
		return nil, xerrors.ErrNotServiceConsultant
	}
	if upd.Price != nil && *upd.Price <= 0 {
		return nil, xerrors.ErrInvalidAmount
	}
	if err := s.store.Update(ctx, serviceID, upd); err != nil {
		return nil, err
	}
	return s.store.GetByID(ctx, serviceID)
}

func (s *Service) DeleteService(ctx context.Context, consultantID, serviceID string) error {
	svc, err := s.store.GetByID(ctx, serviceID)
	if err != nil {
		return err
	}
	if svc.ConsultantID != consultantID {
		return xerrors.ErrNotServiceConsultant
	}
	return s.store.Delete(ctx, serviceID)
}

func (s *Service) GetService(ctx context.Context, serviceID string) (*domain.Service, error) {
	return s.store.GetByID(ctx, serviceID)
}

func (s *Service) ListServices(ctx context.Context) ([]*domain.Service, error) {
	return s.store.ListAll(ctx)
}

func (s *Service) ListByConsultant(ctx context.Context, consultantID string) ([]*domain.Service, error) {
	return s.store.ListByConsultant(ctx, consultantID)
}

func (s *Service) RequestService(ctx context.Context, clientID, serviceID, details string) (*domain.ServiceRequest, error) {
	svc, err := s.store.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	req := &domain.ServiceRequest{
		ID:           id.New(id.ServiceRequest),
		ServiceID:    serviceID,
		ClientID:     clientID,
		ConsultantID: svc.ConsultantID,
		Status:       domain.RequestPending,
		Details:      details,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.CreateRequest(ctx, req); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, svc.ConsultantID, "New service request", svc.Title, domain.NotifyInfo)
	return req, nil
}

func (s *Service) AcceptRequest(ctx context.Context, consultantID, requestID string) (*domain.ServiceRequest, error) {
	return s.resolveRequest(ctx, consultantID, requestID, domain.RequestAccepted,
		"Service request accepted", domain.NotifySuccess)
}

func (s *Service) RejectRequest(ctx context.Context, consultantID, requestID string) (*domain.ServiceRequest, error) {
	return s.resolveRequest(ctx, consultantID, requestID, domain.RequestRejected,
		"Service request rejected", domain.NotifyWarning)
}

func (s *Service) resolveRequest(ctx context.Context, consultantID, requestID string, to domain.ServiceRequestStatus, title string, typ domain.NotificationType) (*domain.ServiceRequest, error) {
	req, err := s.store.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.ConsultantID != consultantID {
		return nil, xerrors.ErrNotServiceConsultant
	}
	if req.Status != domain.RequestPending {
		return nil, xerrors.ErrRequestNotPending
	}
	if err := s.store.UpdateRequestStatus(ctx, requestID, to); err != nil {
		return nil, err
	}
	req.Status = to
	s.notifier.Notify(ctx, req.ClientID, title, req.Details, typ)
	return req, nil
}

// CompleteRequest closes an accepted engagement and settles payment: the
// service fee moves from the client's wallet to the consultant's.
func (s *Service) CompleteRequest(ctx context.Context, consultantID, requestID string) (*domain.ServiceRequest, error) {
	req, err := s.store.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.ConsultantID != consultantID {
		return nil, xerrors.ErrNotServiceConsultant
	}
	if req.Status != domain.RequestAccepted {
		return nil, xerrors.ErrRequestNotPending
	}

	svc, err := s.store.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	desc := fmt.Sprintf("consulting fee: %s", svc.Title)
	if err := s.wallets.Transfer(ctx, req.ClientID, req.ConsultantID, svc.Price,
		domain.TxFee, domain.TxReturn, desc, &req.ID); err != nil {
		return nil, err
	}
	if err := s.store.UpdateRequestStatus(ctx, requestID, domain.RequestCompleted); err != nil {
		return nil, err
	}

	req.Status = domain.RequestCompleted
	s.notifier.Notify(ctx, req.ClientID, "Service completed", svc.Title, domain.NotifySuccess)
	return req, nil
}

func (s *Service) ListRequestsByClient(ctx context.Context, clientID string) ([]*domain.ServiceRequest, error) {
	return s.store.ListRequestsByClient(ctx, clientID)
}

func (s *Service) ListRequestsByConsultant(ctx context.Context, consultantID string) ([]*domain.ServiceRequest, error) {
	return s.store.ListRequestsByConsultant(ctx, consultantID)
}
