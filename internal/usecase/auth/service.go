package auth

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/SYK3S999/tamweeli-sub001/internal/domain"
	"github.com/SYK3S999/tamweeli-sub001/internal/repository"
	"github.com/SYK3S999/tamweeli-sub001/internal/session"
	"github.com/SYK3S999/tamweeli-sub001/pkg/id"
	"github.com/SYK3S999/tamweeli-sub001/pkg/jwtutil"
	"github.com/SYK3S999/tamweeli-sub001/pkg/xerrors"

	"golang.org/x/crypto/bcrypt"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id string, upd repository.UserUpdate) error
	SetVerified(ctx context.Context, id string, verified bool) error
	ListByType(ctx context.Context, userType domain.UserType) ([]*domain.User, error)
}

// WalletCreator lets registration open a wallet for the new user without
// pulling in the whole wallet service.
type WalletCreator interface {
	GetOrCreate(ctx context.Context, userID string) (*domain.Wallet, error)
}

type SessionStore interface {
	Create(ctx context.Context, userID, userType string) (*session.Session, error)
	Revoke(ctx context.Context, id string) error
}

type Service struct {
	users    UserStore
	wallets  WalletCreator
	sessions SessionStore
	issuer   *jwtutil.Issuer
}

func New(users UserStore, wallets WalletCreator, sessions SessionStore, issuer *jwtutil.Issuer) *Service {
	return &Service{users: users, wallets: wallets, sessions: sessions, issuer: issuer}
}

type RegisterInput struct {
	Name         string              `json:"name"`
	Email        string              `json:"email"`
	Password     string              `json:"password"`
	UserType     domain.UserType     `json:"user_type"`
	InvestorType domain.InvestorType `json:"investor_type"`
}

func (in *RegisterInput) validate() error {
	switch {
	case in.Name == "":
		return xerrors.ErrNameRequired
	case in.Email == "":
		return xerrors.ErrEmailRequired
	case !emailRe.MatchString(in.Email):
		return xerrors.ErrInvalidEmailFormat
	case in.Password == "":
		return xerrors.ErrPasswordRequired
	case len(in.Password) < 8:
		return xerrors.ErrWeakPassword
	case !in.UserType.Valid():
		return xerrors.ErrInvalidUserType
	}
	return nil
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &domain.User{
		ID:           id.New(id.User),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		UserType:     in.UserType,
		InvestorType: in.InvestorType,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	// Every account gets a wallet up front.
	if _, err := s.wallets.GetOrCreate(ctx, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

type LoginResult struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, xerrors.ErrUserNotFound) {
			return nil, xerrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, xerrors.ErrInvalidCredentials
	}

	sess, err := s.sessions.Create(ctx, u.ID, string(u.UserType))
	if err != nil {
		return nil, err
	}
	token, err := s.issuer.Sign(u.ID, string(u.UserType), sess.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{User: u, Token: token}, nil
}

// DemoLogin signs into the seeded demo account for the given role. Demo
// credentials are fixed at seed time; this just routes through Login.
func (s *Service) DemoLogin(ctx context.Context, userType domain.UserType) (*LoginResult, error) {
	if !userType.Valid() {
		return nil, xerrors.ErrInvalidUserType
	}
	return s.Login(ctx, DemoEmail(userType), DemoPassword)
}

func (s *Service) Verify(ctx context.Context, userID string) error {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return err
	}
	return s.users.SetVerified(ctx, userID, true)
}

func (s *Service) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Revoke(ctx, sessionID)
}

func (s *Service) Me(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}

// UpdateProfile edits the caller's own mutable fields (name, investor type).
// Email and role are fixed at registration.
func (s *Service) UpdateProfile(ctx context.Context, userID string, upd repository.UserUpdate) (*domain.User, error) {
	if upd.Name != nil && *upd.Name == "" {
		return nil, xerrors.ErrNameRequired
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.users.Update(ctx, userID, upd); err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, userID)
}

// ListConsultants backs the consultant directory clients browse before
// requesting a service.
func (s *Service) ListConsultants(ctx context.Context) ([]*domain.User, error) {
	return s.users.ListByType(ctx, domain.UserTypeConsultant)
}
