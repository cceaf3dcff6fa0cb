package auth

import (
	"context"
	"testing"
	"time"

	"github.com/SYK3S999/tamweeli-sub001/internal/domain"
	"github.com/SYK3S999/tamweeli-sub001/internal/repository"
	"github.com/SYK3S999/tamweeli-sub001/internal/session"
	"github.com/SYK3S999/tamweeli-sub001/pkg/jwtutil"
	"github.com/SYK3S999/tamweeli-sub001/pkg/xerrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIssuer() *jwtutil.Issuer {
	return jwtutil.NewIssuer("test-secret", time.Hour)
}

type fakeUsers struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: make(map[string]*domain.User), byEmail: make(map[string]*domain.User)}
}

func (f *fakeUsers) Create(_ context.Context, u *domain.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return xerrors.ErrEmailAlreadyInUse
	}
	cp := *u
	f.byID[u.ID] = &cp
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, xerrors.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, xerrors.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUsers) Update(_ context.Context, id string, upd repository.UserUpdate) error {
	u, ok := f.byID[id]
	if !ok {
		return nil
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.InvestorType != nil {
		u.InvestorType = *upd.InvestorType
	}
	return nil
}

func (f *fakeUsers) SetVerified(_ context.Context, id string, verified bool) error {
	u, ok := f.byID[id]
	if !ok {
		return xerrors.ErrUserNotFound
	}
	u.IsVerified = verified
	return nil
}

func (f *fakeUsers) ListByType(_ context.Context, userType domain.UserType) ([]*domain.User, error) {
	var out []*domain.User
	for _, u := range f.byID {
		if u.UserType == userType {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fakeWallets struct{ created []string }

func (f *fakeWallets) GetOrCreate(_ context.Context, userID string) (*domain.Wallet, error) {
	f.created = append(f.created, userID)
	return &domain.Wallet{ID: "wlt_" + userID, UserID: userID}, nil
}

type fakeSessions struct {
	active map[string]bool
}

func newFakeSessions() *fakeSessions { return &fakeSessions{active: make(map[string]bool)} }

func (f *fakeSessions) Create(_ context.Context, userID, userType string) (*session.Session, error) {
	s := &session.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		UserType:  userType,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	f.active[s.ID] = true
	return s, nil
}

func (f *fakeSessions) Revoke(_ context.Context, id string) error {
	delete(f.active, id)
	return nil
}

func setup() (*Service, *fakeUsers, *fakeWallets, *fakeSessions) {
	users := newFakeUsers()
	wallets := &fakeWallets{}
	sessions := newFakeSessions()
	svc := New(users, wallets, sessions, testIssuer())
	return svc, users, wallets, sessions
}

func registerInput() RegisterInput {
	return RegisterInput{
		Name:     "Amina B",
		Email:    "amina@example.dz",
		Password: "long-enough-pass",
		UserType: domain.UserTypeInvestor,
	}
}

func TestRegister(t *testing.T) {
	svc, users, wallets, _ := setup()
	ctx := context.Background()

	u, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.NotEqual(t, "long-enough-pass", u.PasswordHash)

	// A wallet is opened alongside the account.
	require.Len(t, wallets.created, 1)
	assert.Equal(t, u.ID, wallets.created[0])

	stored, err := users.GetByEmail(ctx, "amina@example.dz")
	require.NoError(t, err)
	assert.Equal(t, u.ID, stored.ID)
}

func TestRegisterValidation(t *testing.T) {
	svc, _, _, _ := setup()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*RegisterInput)
		wantErr error
	}{
		{"missing name", func(in *RegisterInput) { in.Name = "" }, xerrors.ErrNameRequired},
		{"missing email", func(in *RegisterInput) { in.Email = "" }, xerrors.ErrEmailRequired},
		{"bad email", func(in *RegisterInput) { in.Email = "not-an-email" }, xerrors.ErrInvalidEmailFormat},
		{"missing password", func(in *RegisterInput) { in.Password = "" }, xerrors.ErrPasswordRequired},
		{"short password", func(in *RegisterInput) { in.Password = "seven77" }, xerrors.ErrWeakPassword},
		{"bad user type", func(in *RegisterInput) { in.UserType = "banker" }, xerrors.ErrInvalidUserType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := registerInput()
			tt.mutate(&in)
			_, err := svc.Register(ctx, in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _, _ := setup()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)
	_, err = svc.Register(ctx, registerInput())
	assert.ErrorIs(t, err, xerrors.ErrEmailAlreadyInUse)
}

func TestLogin(t *testing.T) {
	svc, _, _, sessions := setup()
	ctx := context.Background()

	u, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	res, err := svc.Login(ctx, "amina@example.dz", "long-enough-pass")
	require.NoError(t, err)
	assert.Equal(t, u.ID, res.User.ID)
	assert.NotEmpty(t, res.Token)
	assert.Len(t, sessions.active, 1)

	claims, err := testIssuer().Verify(res.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, string(domain.UserTypeInvestor), claims.UserType)
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _, _, _ := setup()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	// Unknown email and wrong password must look the same to the caller.
	_, err = svc.Login(ctx, "nobody@example.dz", "long-enough-pass")
	assert.ErrorIs(t, err, xerrors.ErrInvalidCredentials)
	_, err = svc.Login(ctx, "amina@example.dz", "wrong-password-1")
	assert.ErrorIs(t, err, xerrors.ErrInvalidCredentials)
}

func TestDemoLogin(t *testing.T) {
	svc, _, _, _ := setup()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{
		Name:     "Demo Investor",
		Email:    DemoEmail(domain.UserTypeInvestor),
		Password: DemoPassword,
		UserType: domain.UserTypeInvestor,
	})
	require.NoError(t, err)

	res, err := svc.DemoLogin(ctx, domain.UserTypeInvestor)
	require.NoError(t, err)
	assert.Equal(t, DemoEmail(domain.UserTypeInvestor), res.User.Email)

	_, err = svc.DemoLogin(ctx, "banker")
	assert.ErrorIs(t, err, xerrors.ErrInvalidUserType)
}

func TestUpdateProfile(t *testing.T) {
	svc, users, _, _ := setup()
	ctx := context.Background()

	u, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	name := "Amina Benali"
	invType := domain.InvestorInstitution
	got, err := svc.UpdateProfile(ctx, u.ID, repository.UserUpdate{Name: &name, InvestorType: &invType})
	require.NoError(t, err)
	assert.Equal(t, "Amina Benali", got.Name)
	assert.Equal(t, domain.InvestorInstitution, got.InvestorType)

	// Email is untouched by profile updates.
	stored, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "amina@example.dz", stored.Email)

	empty := ""
	_, err = svc.UpdateProfile(ctx, u.ID, repository.UserUpdate{Name: &empty})
	assert.ErrorIs(t, err, xerrors.ErrNameRequired)

	_, err = svc.UpdateProfile(ctx, "usr_missing", repository.UserUpdate{Name: &name})
	assert.ErrorIs(t, err, xerrors.ErrUserNotFound)
}

func TestListConsultants(t *testing.T) {
	svc, _, _, _ := setup()
	ctx := context.Background()

	_, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)
	consultant, err := svc.Register(ctx, RegisterInput{
		Name:     "Karim T",
		Email:    "karim@example.dz",
		Password: "long-enough-pass",
		UserType: domain.UserTypeConsultant,
	})
	require.NoError(t, err)

	list, err := svc.ListConsultants(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, consultant.ID, list[0].ID)
}

func TestVerifyAndLogout(t *testing.T) {
	svc, users, _, sessions := setup()
	ctx := context.Background()

	u, err := svc.Register(ctx, registerInput())
	require.NoError(t, err)

	require.NoError(t, svc.Verify(ctx, u.ID))
	stored, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsVerified)

	assert.ErrorIs(t, svc.Verify(ctx, "usr_missing"), xerrors.ErrUserNotFound)

	res, err := svc.Login(ctx, "amina@example.dz", "long-enough-pass")
	require.NoError(t, err)
	claims, err := testIssuer().Verify(res.Token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, claims.SessionID))
	assert.Empty(t, sessions.active)
}
