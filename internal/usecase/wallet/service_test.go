package wallet

import (
	"context"
	"testing"
	"time"

	"github.com/SYK3S999/tamweeli-sub001/internal/domain"
	"github.com/SYK3S999/tamweeli-sub001/pkg/id"
	"github.com/SYK3S999/tamweeli-sub001/pkg/xerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore mirrors the pgx repository's semantics: the debit balance check
// and the transaction append happen together or not at all.
type fakeStore struct {
	wallets map[string]*domain.Wallet
	txs     []*domain.Transaction
}

func newFakeStore() *fakeStore {
	return &fakeStore{wallets: make(map[string]*domain.Wallet)}
}

func (f *fakeStore) Create(_ context.Context, w *domain.Wallet) error {
	if _, ok := f.wallets[w.UserID]; ok {
		return xerrors.ErrWalletExists
	}
	cp := *w
	f.wallets[w.UserID] = &cp
	return nil
}

func (f *fakeStore) GetByUserID(_ context.Context, userID string) (*domain.Wallet, error) {
	w, ok := f.wallets[userID]
	if !ok {
		return nil, xerrors.ErrWalletNotFound
	}
	cp := *w
	return &cp, nil
}

func (f *fakeStore) record(w *domain.Wallet, amount float64, txType domain.TransactionType, description string, refID *string) *domain.Transaction {
	t := &domain.Transaction{
		ID:          id.New(id.Transaction),
		WalletID:    w.ID,
		UserID:      w.UserID,
		Type:        txType,
		Amount:      amount,
		Status:      domain.TxCompleted,
		Description: description,
		RefID:       refID,
		CreatedAt:   time.Now(),
	}
	f.txs = append(f.txs, t)
	return t
}

func (f *fakeStore) Credit(_ context.Context, userID string, amount float64, txType domain.TransactionType, description string, refID *string) (*domain.Wallet, *domain.Transaction, error) {
	w, ok := f.wallets[userID]
	if !ok {
		return nil, nil, xerrors.ErrWalletNotFound
	}
	w.Balance += amount
	w.UpdatedAt = time.Now()
	t := f.record(w, amount, txType, description, refID)
	cp := *w
	return &cp, t, nil
}

func (f *fakeStore) Debit(_ context.Context, userID string, amount float64, txType domain.TransactionType, description string, refID *string) (*domain.Wallet, *domain.Transaction, error) {
	w, ok := f.wallets[userID]
	if !ok {
		return nil, nil, xerrors.ErrWalletNotFound
	}
	if w.Balance < amount {
		return nil, nil, xerrors.ErrInsufficientFunds
	}
	w.Balance -= amount
	w.UpdatedAt = time.Now()
	t := f.record(w, amount, txType, description, refID)
	cp := *w
	return &cp, t, nil
}

func (f *fakeStore) Transfer(ctx context.Context, fromUserID, toUserID string, amount float64, debitType, creditType domain.TransactionType, description string, refID *string) error {
	if _, _, err := f.Debit(ctx, fromUserID, amount, debitType, description, refID); err != nil {
		return err
	}
	_, _, err := f.Credit(ctx, toUserID, amount, creditType, description, refID)
	return err
}

func (f *fakeStore) ListByUser(_ context.Context, userID string) ([]*domain.Transaction, error) {
	var out []*domain.Transaction
	for _, t := range f.txs {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func seedWallet(t *testing.T, f *fakeStore, userID string, balance float64) {
	t.Helper()
	require.NoError(t, f.Create(context.Background(), &domain.Wallet{
		ID:      id.New(id.Wallet),
		UserID:  userID,
		Balance: balance,
	}))
}

func TestGetOrCreate(t *testing.T) {
	store := newFakeStore()
	svc := New(store, store)
	ctx := context.Background()

	w, err := svc.GetOrCreate(ctx, "usr_1")
	require.NoError(t, err)
	assert.Equal(t, "usr_1", w.UserID)
	assert.Zero(t, w.Balance)

	again, err := svc.GetOrCreate(ctx, "usr_1")
	require.NoError(t, err)
	assert.Equal(t, w.ID, again.ID)
}

func TestWithdrawThenDeposit(t *testing.T) {
	store := newFakeStore()
	svc := New(store, store)
	ctx := context.Background()
	seedWallet(t, store, "usr_1", 100000)

	_, tx1, err := svc.Withdraw(ctx, "usr_1", 30000)
	require.NoError(t, err)
	assert.Equal(t, domain.TxWithdrawal, tx1.Type)

	w, tx2, err := svc.Deposit(ctx, "usr_1", 10000)
	require.NoError(t, err)
	assert.Equal(t, domain.TxDeposit, tx2.Type)
	assert.Equal(t, float64(80000), w.Balance)

	txs, err := svc.Transactions(ctx, "usr_1")
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, tx1.ID, txs[0].ID)
	assert.Equal(t, tx2.ID, txs[1].ID)
}

func TestWithdrawInsufficientFunds(t *testing.T) {
	store := newFakeStore()
	svc := New(store, store)
	ctx := context.Background()
	seedWallet(t, store, "usr_1", 500)

	_, _, err := svc.Withdraw(ctx, "usr_1", 501)
	assert.ErrorIs(t, err, xerrors.ErrInsufficientFunds)

	// Balance untouched, nothing recorded.
	w, err := svc.GetOrCreate(ctx, "usr_1")
	require.NoError(t, err)
	assert.Equal(t, float64(500), w.Balance)
	txs, err := svc.Transactions(ctx, "usr_1")
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestInvalidAmounts(t *testing.T) {
	store := newFakeStore()
	svc := New(store, store)
	ctx := context.Background()
	seedWallet(t, store, "usr_1", 1000)

	for _, amount := range []float64{0, -1} {
		_, _, err := svc.Deposit(ctx, "usr_1", amount)
		assert.ErrorIs(t, err, xerrors.ErrInvalidAmount)
		_, _, err = svc.Withdraw(ctx, "usr_1", amount)
		assert.ErrorIs(t, err, xerrors.ErrInvalidAmount)
	}

	w, err := svc.GetOrCreate(ctx, "usr_1")
	require.NoError(t, err)
	assert.Equal(t, float64(1000), w.Balance)
}

func TestTransfer(t *testing.T) {
	store := newFakeStore()
	svc := New(store, store)
	ctx := context.Background()
	seedWallet(t, store, "usr_client", 5000)
	seedWallet(t, store, "usr_consultant", 0)

	err := svc.Transfer(ctx, "usr_client", "usr_consultant", 2000,
		domain.TxFee, domain.TxReturn, "consulting fee", nil)
	require.NoError(t, err)

	from, _ := svc.GetOrCreate(ctx, "usr_client")
	to, _ := svc.GetOrCreate(ctx, "usr_consultant")
	assert.Equal(t, float64(3000), from.Balance)
	assert.Equal(t, float64(2000), to.Balance)

	err = svc.Transfer(ctx, "usr_client", "usr_consultant", -5,
		domain.TxFee, domain.TxReturn, "bad", nil)
	assert.ErrorIs(t, err, xerrors.ErrInvalidAmount)
}
