package wallet

import (
	"context"
	"errors"
	"time"

	"github.com/SYK3S999/tamweeli-sub001/internal/domain"
	"github.com/SYK3S999/tamweeli-sub001/pkg/id"
	"github.com/SYK3S999/tamweeli-sub001/pkg/xerrors"
)

type Service struct {
	store Store
	txs   TransactionStore
}

func New(store Store, txs TransactionStore) *Service {
	return &Service{store: store, txs: txs}
}

// GetOrCreate returns the user's wallet, creating an empty one on first use.
func (s *Service) GetOrCreate(ctx context.Context, userID string) (*domain.Wallet, error) {
	w, err := s.store.GetByUserID(ctx, userID)
	if err == nil {
		return w, nil
	}
	if !errors.Is(err, xerrors.ErrWalletNotFound) {
		return nil, err
	}

	now := time.Now()
	w = &domain.Wallet{
		ID:        id.New(id.Wallet),
		UserID:    userID,
		Balance:   0,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Create(ctx, w); err != nil {
		if errors.Is(err, xerrors.ErrWalletExists) {
			return s.store.GetByUserID(ctx, userID)
		}
		return nil, err
	}
	return w, nil
}

func (s *Service) Deposit(ctx context.Context, userID string, amount float64) (*domain.Wallet, *domain.Transaction, error) {
	if amount <= 0 {
		return nil, nil, xerrors.ErrInvalidAmount
	}
	return s.store.Credit(ctx, userID, amount, domain.TxDeposit, "wallet deposit", nil)
}

func (s *Service) Withdraw(ctx context.Context, userID string, amount float64) (*domain.Wallet, *domain.Transaction, error) {
	if amount <= 0 {
		return nil, nil, xerrors.ErrInvalidAmount
	}
	return s.store.Debit(ctx, userID, amount, domain.TxWithdrawal, "wallet withdrawal", nil)
}

// Debit is used by other services (investments, consulting) that move money
// for their own records; they supply the transaction type and reference.
func (s *Service) Debit(ctx context.Context, userID string, amount float64, txType domain.TransactionType, description string, refID *string) (*domain.Wallet, *domain.Transaction, error) {
	if amount <= 0 {
		return nil, nil, xerrors.ErrInvalidAmount
	}
	return s.store.Debit(ctx, userID, amount, txType, description, refID)
}

func (s *Service) Credit(ctx context.Context, userID string, amount float64, txType domain.TransactionType, description string, refID *string) (*domain.Wallet, *domain.Transaction, error) {
	if amount <= 0 {
		return nil, nil, xerrors.ErrInvalidAmount
	}
	return s.store.Credit(ctx, userID, amount, txType, description, refID)
}

func (s *Service) Transfer(ctx context.Context, fromUserID, toUserID string, amount float64, debitType, creditType domain.TransactionType, description string, refID *string) error {
	if amount <= 0 {
		return xerrors.ErrInvalidAmount
	}
	return s.store.Transfer(ctx, fromUserID, toUserID, amount, debitType, creditType, description, refID)
}

func (s *Service) Transactions(ctx context.Context, userID string) ([]*domain.Transaction, error) {
	return s.txs.ListByUser(ctx, userID)
}
