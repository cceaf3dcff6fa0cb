package investment

import (
	"context"
	"testing"

	"github.com/SYK3S999/tamweeli-sub001/internal/domain"
	"github.com/SYK3S999/tamweeli-sub001/pkg/xerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend covers the investment store and the project getter from one
// map so Accept can mimic the repository's combined update.
type fakeBackend struct {
	investments map[string]*domain.Investment
	projects    map[string]*domain.Project
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		investments: make(map[string]*domain.Investment),
		projects:    make(map[string]*domain.Project),
	}
}

func (f *fakeBackend) Create(_ context.Context, inv *domain.Investment) error {
	cp := *inv
	f.investments[inv.ID] = &cp
	return nil
}

func (f *fakeBackend) GetByID(_ context.Context, id string) (*domain.Investment, error) {
	inv, ok := f.investments[id]
	if !ok {
		return nil, xerrors.ErrInvestmentNotFound
	}
	cp := *inv
	return &cp, nil
}

func (f *fakeBackend) UpdateStatus(_ context.Context, id string, status domain.InvestmentStatus) error {
	inv, ok := f.investments[id]
	if !ok {
		return xerrors.ErrInvestmentNotFound
	}
	inv.Status = status
	return nil
}

func (f *fakeBackend) Accept(_ context.Context, id string) (*domain.Investment, error) {
	inv, ok := f.investments[id]
	if !ok {
		return nil, xerrors.ErrInvestmentNotFound
	}
	if inv.Status != domain.InvestmentPending {
		return nil, xerrors.ErrInvestmentNotPending
	}
	p, ok := f.projects[inv.ProjectID]
	if !ok {
		return nil, xerrors.ErrProjectNotFound
	}
	if p.FundingRaised+inv.Amount > p.FundingGoal {
		return nil, xerrors.ErrFundingExceeded
	}
	p.FundingRaised += inv.Amount
	inv.Status = domain.InvestmentAccepted
	cp := *inv
	return &cp, nil
}

func (f *fakeBackend) ListByInvestor(_ context.Context, investorID string) ([]*domain.Investment, error) {
	var out []*domain.Investment
	for _, inv := range f.investments {
		if inv.InvestorID == investorID {
			cp := *inv
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeBackend) ListByProject(_ context.Context, projectID string) ([]*domain.Investment, error) {
	var out []*domain.Investment
	for _, inv := range f.investments {
		if inv.ProjectID == projectID {
			cp := *inv
			out = append(out, &cp)
		}
	}
	return out, nil
}

type projectGetter struct{ b *fakeBackend }

func (g projectGetter) GetByID(_ context.Context, id string) (*domain.Project, error) {
	p, ok := g.b.projects[id]
	if !ok {
		return nil, xerrors.ErrProjectNotFound
	}
	cp := *p
	return &cp, nil
}

type walletMove struct {
	userID string
	amount float64
	txType domain.TransactionType
}

type fakeWallets struct {
	balances map[string]float64
	moves    []walletMove
}

func newFakeWallets() *fakeWallets {
	return &fakeWallets{balances: make(map[string]float64)}
}

func (f *fakeWallets) Debit(_ context.Context, userID string, amount float64, txType domain.TransactionType, _ string, _ *string) (*domain.Wallet, *domain.Transaction, error) {
	if f.balances[userID] < amount {
		return nil, nil, xerrors.ErrInsufficientFunds
	}
	f.balances[userID] -= amount
	f.moves = append(f.moves, walletMove{userID, -amount, txType})
	return &domain.Wallet{UserID: userID, Balance: f.balances[userID]}, &domain.Transaction{Type: txType, Amount: amount}, nil
}

func (f *fakeWallets) Credit(_ context.Context, userID string, amount float64, txType domain.TransactionType, _ string, _ *string) (*domain.Wallet, *domain.Transaction, error) {
	f.balances[userID] += amount
	f.moves = append(f.moves, walletMove{userID, amount, txType})
	return &domain.Wallet{UserID: userID, Balance: f.balances[userID]}, &domain.Transaction{Type: txType, Amount: amount}, nil
}

type fakeNotifier struct{ sent []string }

func (f *fakeNotifier) Notify(_ context.Context, userID, title, _ string, _ domain.NotificationType) {
	f.sent = append(f.sent, userID+":"+title)
}

func setup() (*Service, *fakeBackend, *fakeWallets, *fakeNotifier) {
	backend := newFakeBackend()
	wallets := newFakeWallets()
	notifier := &fakeNotifier{}
	svc := New(backend, projectGetter{backend}, wallets, notifier)

	backend.projects["prj_1"] = &domain.Project{
		ID:          "prj_1",
		OwnerID:     "usr_owner",
		Title:       "Clinic",
		FundingGoal: 10000,
		Status:      domain.ProjectApproved,
	}
	wallets.balances["usr_inv"] = 100000
	return svc, backend, wallets, notifier
}

func TestCreateHoldsFunds(t *testing.T) {
	svc, _, wallets, notifier := setup()
	ctx := context.Background()

	inv, err := svc.Create(ctx, "usr_inv", CreateInput{ProjectID: "prj_1", Amount: 4000})
	require.NoError(t, err)
	assert.Equal(t, domain.InvestmentPending, inv.Status)
	assert.Equal(t, float64(96000), wallets.balances["usr_inv"])

	require.Len(t, wallets.moves, 1)
	assert.Equal(t, domain.TxInvestment, wallets.moves[0].txType)
	require.Len(t, notifier.sent, 1)
	assert.Contains(t, notifier.sent[0], "usr_owner")
}

func TestCreateGuards(t *testing.T) {
	svc, backend, wallets, _ := setup()
	ctx := context.Background()

	_, err := svc.Create(ctx, "usr_inv", CreateInput{ProjectID: "prj_1", Amount: 0})
	assert.ErrorIs(t, err, xerrors.ErrInvalidAmount)

	_, err = svc.Create(ctx, "usr_inv", CreateInput{ProjectID: "prj_1", Amount: 10001})
	assert.ErrorIs(t, err, xerrors.ErrFundingExceeded)

	backend.projects["prj_1"].Status = domain.ProjectDraft
	_, err = svc.Create(ctx, "usr_inv", CreateInput{ProjectID: "prj_1", Amount: 4000})
	assert.ErrorIs(t, err, xerrors.ErrProjectNotApproved)

	wallets.balances["usr_inv"] = 100
	backend.projects["prj_1"].Status = domain.ProjectApproved
	_, err = svc.Create(ctx, "usr_inv", CreateInput{ProjectID: "prj_1", Amount: 4000})
	assert.ErrorIs(t, err, xerrors.ErrInsufficientFunds)
}

func TestAcceptAddsToFunding(t *testing.T) {
	svc, backend, _, _ := setup()
	ctx := context.Background()

	inv, err := svc.Create(ctx, "usr_inv", CreateInput{ProjectID: "prj_1", Amount: 4000})
	require.NoError(t, err)

	_, err = svc.Accept(ctx, "usr_other", inv.ID)
	assert.ErrorIs(t, err, xerrors.ErrNotProjectOwner)

	got, err := svc.Accept(ctx, "usr_owner", inv.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InvestmentAccepted, got.Status)
	assert.Equal(t, float64(4000), backend.projects["prj_1"].FundingRaised)

	// Double accept must not double count.
	_, err = svc.Accept(ctx, "usr_owner", inv.ID)
	assert.ErrorIs(t, err, xerrors.ErrInvestmentNotPending)
	assert.Equal(t, float64(4000), backend.projects["prj_1"].FundingRaised)
}

func TestAcceptRejectsOverflow(t *testing.T) {
	svc, backend, _, _ := setup()
	ctx := context.Background()

	inv, err := svc.Create(ctx, "usr_inv", CreateInput{ProjectID: "prj_1", Amount: 6000})
	require.NoError(t, err)

	// Another acceptance landed first and ate most of the capacity.
	backend.projects["prj_1"].FundingRaised = 7000

	_, err = svc.Accept(ctx, "usr_owner", inv.ID)
	assert.ErrorIs(t, err, xerrors.ErrFundingExceeded)
	assert.Equal(t, float64(7000), backend.projects["prj_1"].FundingRaised)
	assert.Equal(t, domain.InvestmentPending, backend.investments[inv.ID].Status)
}

func TestRejectRefunds(t *testing.T) {
	svc, _, wallets, _ := setup()
	ctx := context.Background()

	inv, err := svc.Create(ctx, "usr_inv", CreateInput{ProjectID: "prj_1", Amount: 4000})
	require.NoError(t, err)
	assert.Equal(t, float64(96000), wallets.balances["usr_inv"])

	got, err := svc.Reject(ctx, "usr_owner", inv.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.InvestmentRejected, got.Status)
	assert.Equal(t, float64(100000), wallets.balances["usr_inv"])

	last := wallets.moves[len(wallets.moves)-1]
	assert.Equal(t, domain.TxRefund, last.txType)

	_, err = svc.Reject(ctx, "usr_owner", inv.ID)
	assert.ErrorIs(t, err, xerrors.ErrInvestmentNotPending)
}

func TestCompletePaysReturn(t *testing.T) {
	svc, _, wallets, _ := setup()
	ctx := context.Background()

	inv, err := svc.Create(ctx, "usr_inv", CreateInput{ProjectID: "prj_1", Amount: 4000})
	require.NoError(t, err)

	// Completion requires acceptance first.
	_, err = svc.Complete(ctx, inv.ID, 4400)
	assert.ErrorIs(t, err, xerrors.ErrInvestmentNotAccepted)

	_, err = svc.Accept(ctx, "usr_owner", inv.ID)
	require.NoError(t, err)

	got, err := svc.Complete(ctx, inv.ID, 4400)
	require.NoError(t, err)
	assert.Equal(t, domain.InvestmentCompleted, got.Status)
	assert.Equal(t, float64(100400), wallets.balances["usr_inv"])

	last := wallets.moves[len(wallets.moves)-1]
	assert.Equal(t, domain.TxReturn, last.txType)
}

func TestListByProjectOwnerOnly(t *testing.T) {
	svc, _, _, _ := setup()
	ctx := context.Background()

	_, err := svc.Create(ctx, "usr_inv", CreateInput{ProjectID: "prj_1", Amount: 4000})
	require.NoError(t, err)

	_, err = svc.ListByProject(ctx, "usr_other", "prj_1")
	assert.ErrorIs(t, err, xerrors.ErrNotProjectOwner)

	invs, err := svc.ListByProject(ctx, "usr_owner", "prj_1")
	require.NoError(t, err)
	assert.Len(t, invs, 1)
}
