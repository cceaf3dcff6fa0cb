package investment

import (
	"context"
	"fmt"
	"time"

	"github.com/SYK3S999/tamweeli-sub001/internal/domain"
	"github.com/SYK3S999/tamweeli-sub001/pkg/id"
	"github.com/SYK3S999/tamweeli-sub001/pkg/xerrors"
)

type Store interface {
	Create(ctx context.Context, inv *domain.Investment) error
	GetByID(ctx context.Context, id string) (*domain.Investment, error)
	UpdateStatus(ctx context.Context, id string, status domain.InvestmentStatus) error
	Accept(ctx context.Context, id string) (*domain.Investment, error)
	ListByInvestor(ctx context.Context, investorID string) ([]*domain.Investment, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Investment, error)
}

type ProjectGetter interface {
	GetByID(ctx context.Context, id string) (*domain.Project, error)
}

type WalletMover interface {
	Debit(ctx context.Context, userID string, amount float64, txType domain.TransactionType, description string, refID *string) (*domain.Wallet, *domain.Transaction, error)
	Credit(ctx context.Context, userID string, amount float64, txType domain.TransactionType, description string, refID *string) (*domain.Wallet, *domain.Transaction, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID, title, body string, typ domain.NotificationType)
}

type Service struct {
	store    Store
	projects ProjectGetter
	wallets  WalletMover
	notifier Notifier
}

func New(store Store, projects ProjectGetter, wallets WalletMover, notifier Notifier) *Service {
	return &Service{store: store, projects: projects, wallets: wallets, notifier: notifier}
}

type CreateInput struct {
	ProjectID string  `json:"project_id"`
	Amount    float64 `json:"amount"`
	Message   string  `json:"message"`
}

// Create opens a pending investment. The amount is debited from the
// investor's wallet immediately and held until the owner accepts or
// rejects; rejection refunds it.
func (s *Service) Create(ctx context.Context, investorID string, in CreateInput) (*domain.Investment, error) {
	if in.Amount <= 0 {
		return nil, xerrors.ErrInvalidAmount
	}

	p, err := s.projects.GetByID(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}
	if p.Status != domain.ProjectApproved {
		return nil, xerrors.ErrProjectNotApproved
	}
	if in.Amount > p.Remaining() {
		return nil, xerrors.ErrFundingExceeded
	}

	now := time.Now()
	inv := &domain.Investment{
		ID:         id.New(id.Investment),
		InvestorID: investorID,
		ProjectID:  in.ProjectID,
		Amount:     in.Amount,
		Status:     domain.InvestmentPending,
		Message:    in.Message,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	desc := fmt.Sprintf("investment in %s", p.Title)
	if _, _, err := s.wallets.Debit(ctx, investorID, in.Amount, domain.TxInvestment, desc, &inv.ID); err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, inv); err != nil {
		// Funds were already held; give them back before reporting failure.
		_, _, refundErr := s.wallets.Credit(ctx, investorID, in.Amount, domain.TxRefund, "investment rollback", &inv.ID)
		if refundErr != nil {
			return nil, fmt.Errorf("create investment: %w (refund also failed: %v)", err, refundErr)
		}
		return nil, err
	}

	s.notifier.Notify(ctx, p.OwnerID, "New investment offer", desc, domain.NotifyInfo)
	return inv, nil
}

func (s *Service) Get(ctx context.Context, investmentID string) (*domain.Investment, error) {
	return s.store.GetByID(ctx, investmentID)
}

// Accept is restricted to the owner of the invested project. The funding
// total update and status change are atomic in the store.
func (s *Service) Accept(ctx context.Context, ownerID, investmentID string) (*domain.Investment, error) {
	inv, err := s.store.GetByID(ctx, investmentID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwner(ctx, ownerID, inv.ProjectID); err != nil {
		return nil, err
	}

	inv, err = s.store.Accept(ctx, investmentID)
	if err != nil {
		return nil, err
	}
	s.notifier.Notify(ctx, inv.InvestorID, "Investment accepted",
		"Your investment offer was accepted", domain.NotifySuccess)
	return inv, nil
}

// Reject refunds the held amount to the investor's wallet.
func (s *Service) Reject(ctx context.Context, ownerID, investmentID string) (*domain.Investment, error) {
	inv, err := s.store.GetByID(ctx, investmentID)
	if err != nil {
		return nil, err
	}
	if err := s.requireOwner(ctx, ownerID, inv.ProjectID); err != nil {
		return nil, err
	}
	if inv.Status != domain.InvestmentPending {
		return nil, xerrors.ErrInvestmentNotPending
	}

	if err := s.store.UpdateStatus(ctx, investmentID, domain.InvestmentRejected); err != nil {
		return nil, err
	}
	if _, _, err := s.wallets.Credit(ctx, inv.InvestorID, inv.Amount, domain.TxRefund, "investment refund", &inv.ID); err != nil {
		return nil, err
	}

	inv.Status = domain.InvestmentRejected
	s.notifier.Notify(ctx, inv.InvestorID, "Investment rejected",
		"Your investment offer was rejected and refunded", domain.NotifyWarning)
	return inv, nil
}

// Complete pays the investor their return once the project concludes.
// Admin-only; the handler enforces the role.
func (s *Service) Complete(ctx context.Context, investmentID string, returnAmount float64) (*domain.Investment, error) {
	if returnAmount <= 0 {
		return nil, xerrors.ErrInvalidAmount
	}
	inv, err := s.store.GetByID(ctx, investmentID)
	if err != nil {
		return nil, err
	}
	if inv.Status != domain.InvestmentAccepted {
		return nil, xerrors.ErrInvestmentNotAccepted
	}

	if err := s.store.UpdateStatus(ctx, investmentID, domain.InvestmentCompleted); err != nil {
		return nil, err
	}
	if _, _, err := s.wallets.Credit(ctx, inv.InvestorID, returnAmount, domain.TxReturn, "investment return", &inv.ID); err != nil {
		return nil, err
	}

	inv.Status = domain.InvestmentCompleted
	s.notifier.Notify(ctx, inv.InvestorID, "Investment completed",
		"Your investment return has been paid out", domain.NotifySuccess)
	return inv, nil
}

func (s *Service) ListByInvestor(ctx context.Context, investorID string) ([]*domain.Investment, error) {
	return s.store.ListByInvestor(ctx, investorID)
}

func (s *Service) ListByProject(ctx context.Context, ownerID, projectID string) ([]*domain.Investment, error) {
	if err := s.requireOwner(ctx, ownerID, projectID); err != nil {
		return nil, err
	}
	return s.store.ListByProject(ctx, projectID)
}

func (s *Service) requireOwner(ctx context.Context, ownerID, projectID string) error {
	p, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if p.OwnerID != ownerID {
		return xerrors.ErrNotProjectOwner
	}
	return nil
}
