package wallet

import (
	"context"

	"github.com/SYK3S999/tamweeli-sub001/internal/domain"
)

// Store is the persistence contract the wallet service needs. The pgx
// implementation lives in internal/repository; tests use an in-memory fake.
type Store interface {
	Create(ctx context.Context, w *domain.Wallet) error
	GetByUserID(ctx context.Context, userID string) (*domain.Wallet, error)
	Credit(ctx context.Context, userID string, amount float64, txType domain.TransactionType, description string, refID *string) (*domain.Wallet, *domain.Transaction, error)
	Debit(ctx context.Context, userID string, amount float64, txType domain.TransactionType, description string, refID *string) (*domain.Wallet, *domain.Transaction, error)
	Transfer(ctx context.Context, fromUserID, toUserID string, amount float64, debitType, creditType domain.TransactionType, description string, refID *string) error
}

type TransactionStore interface {
	ListByUser(ctx context.Context, userID string) ([]*domain.Transaction, error)
}
