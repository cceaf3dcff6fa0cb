// Package seed provisions the demo accounts and sample projects a fresh
// deployment starts with. Seeding runs once; a redis flag remembers it.
package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SYK3S999/tamweeli-sub001/internal/domain"
	"github.com/SYK3S999/tamweeli-sub001/internal/usecase/auth"
	"github.com/SYK3S999/tamweeli-sub001/pkg/id"
	"github.com/SYK3S999/tamweeli-sub001/pkg/xerrors"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

const initializedKey = "platform:initialized"

// DemoWalletBalance is the amount every demo account starts with.
const DemoWalletBalance = 100000

type UserStore interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ProjectStore interface {
	Create(ctx context.Context, p *domain.Project) error
}

type WalletService interface {
	GetOrCreate(ctx context.Context, userID string) (*domain.Wallet, error)
	Credit(ctx context.Context, userID string, amount float64, txType domain.TransactionType, description string, refID *string) (*domain.Wallet, *domain.Transaction, error)
}

type Deps struct {
	Users    UserStore
	Projects ProjectStore
	Wallets  WalletService
	Flags    *redis.Client
}

// Run seeds demo data on first start. Subsequent runs are no-ops.
func Run(ctx context.Context, d Deps) error {
	done, err := d.Flags.Get(ctx, initializedKey).Bool()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("check initialized flag: %w", err)
	}
	if done {
		return nil
	}

	owner, err := seedUsers(ctx, d)
	if err != nil {
		return err
	}
	if err := seedProjects(ctx, d, owner.ID); err != nil {
		return err
	}

	if err := d.Flags.Set(ctx, initializedKey, true, 0).Err(); err != nil {
		return fmt.Errorf("set initialized flag: %w", err)
	}
	return nil
}

func seedUsers(ctx context.Context, d Deps) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(auth.DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var owner *domain.User
	for _, u := range DemoUsers(string(hash)) {
		fresh := true
		if err := d.Users.Create(ctx, u); err != nil {
			if errors.Is(err, xerrors.ErrEmailAlreadyInUse) {
				existing, getErr := d.Users.GetByEmail(ctx, u.Email)
				if getErr != nil {
					return nil, getErr
				}
				u = existing
				fresh = false
			} else {
				return nil, fmt.Errorf("seed user %s: %w", u.Email, err)
			}
		}
		if _, err := d.Wallets.GetOrCreate(ctx, u.ID); err != nil {
			return nil, err
		}
		// An existing account keeps whatever balance it has. Crediting it
		// again would mint money every time the redis flag is lost.
		if fresh {
			if _, _, err := d.Wallets.Credit(ctx, u.ID, DemoWalletBalance,
				domain.TxDeposit, "demo seed balance", nil); err != nil {
				return nil, err
			}
		}
		if u.UserType == domain.UserTypeProjectOwner {
			owner = u
		}
	}
	return owner, nil
}

// DemoUsers builds the four role accounts sharing the given password hash.
func DemoUsers(passwordHash string) []*domain.User {
	now := time.Now()
	types := []struct {
		name     string
		userType domain.UserType
	}{
		{"Demo Investor", domain.UserTypeInvestor},
		{"Demo Project Owner", domain.UserTypeProjectOwner},
		{"Demo Consultant", domain.UserTypeConsultant},
		{"Demo Admin", domain.UserTypeAdmin},
	}

	users := make([]*domain.User, 0, len(types))
	for _, t := range types {
		u := &domain.User{
			ID:           id.New(id.User),
			Name:         t.name,
			Email:        auth.DemoEmail(t.userType),
			PasswordHash: passwordHash,
			UserType:     t.userType,
			IsVerified:   true,
			IsDemo:       true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if t.userType == domain.UserTypeInvestor {
			u.InvestorType = domain.InvestorIndividual
		}
		users = append(users, u)
	}
	return users
}

func seedProjects(ctx context.Context, d Deps, ownerID string) error {
	fixtures, err := LoadProjectFixtures()
	if err != nil {
		return err
	}

	now := time.Now()
	for _, f := range fixtures {
		p := &domain.Project{
			ID:             id.New(id.Project),
			OwnerID:        ownerID,
			Title:          f.Title,
			Description:    f.Description,
			Sector:         f.Sector,
			ContractType:   f.ContractType,
			FundingGoal:    f.FundingGoal,
			DurationMonths: f.DurationMonths,
			Status:         domain.ProjectApproved,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("invalid fixture %q: %w", f.Title, err)
		}
		if err := d.Projects.Create(ctx, p); err != nil {
			return fmt.Errorf("seed project %q: %w", f.Title, err)
		}
	}
	return nil
}
