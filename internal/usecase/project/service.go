package project

import (
	"context"
	"time"

	"github.com/SYK3S999/tamweeli-sub001/internal/domain"
	"github.com/SYK3S999/tamweeli-sub001/internal/repository"
	"github.com/SYK3S999/tamweeli-sub001/internal/view"
	"github.com/SYK3S999/tamweeli-sub001/pkg/id"
	"github.com/SYK3S999/tamweeli-sub001/pkg/xerrors"
)

type Store interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	Update(ctx context.Context, id string, upd repository.ProjectUpdate) error
	UpdateStatus(ctx context.Context, id string, status domain.ProjectStatus, note string) error
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Project, error)
	ListByStatus(ctx context.Context, status domain.ProjectStatus) ([]*domain.Project, error)
	ListAll(ctx context.Context) ([]*domain.Project, error)
	ListByIDs(ctx context.Context, ids []string) ([]*domain.Project, error)
}

type SavedStore interface {
	Save(ctx context.Context, userID, projectID string) error
	Unsave(ctx context.Context, userID, projectID string) error
	List(ctx context.Context, userID string) ([]string, error)
	IsSaved(ctx context.Context, userID, projectID string) (bool, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID, title, body string, typ domain.NotificationType)
}

type Service struct {
	store    Store
	saved    SavedStore
	notifier Notifier
}

func New(store Store, saved SavedStore, notifier Notifier) *Service {
	return &Service{store: store, saved: saved, notifier: notifier}
}

type CreateInput struct {
	Title          string              `json:"title"`
	Description    string              `json:"description"`
	Sector         domain.Sector       `json:"sector"`
	ContractType   domain.ContractType `json:"contract_type"`
	FundingGoal    float64             `json:"funding_goal"`
	DurationMonths int                 `json:"duration_months"`
}

func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (*domain.Project, error) {
	now := time.Now()
	p := &domain.Project{
		ID:             id.New(id.Project),
		OwnerID:        ownerID,
		Title:          in.Title,
		Description:    in.Description,
		Sector:         in.Sector,
		ContractType:   in.ContractType,
		FundingGoal:    in.FundingGoal,
		DurationMonths: in.DurationMonths,
		Status:         domain.ProjectDraft,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, projectID string) (*domain.Project, error) {
	return s.store.GetByID(ctx, projectID)
}

// Update edits a draft. Only the owner may edit, and only before submission.
func (s *Service) Update(ctx context.Context, ownerID, projectID string, upd repository.ProjectUpdate) (*domain.Project, error) {
	p, err := s.store.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != ownerID {
		return nil, xerrors.ErrNotProjectOwner
	}
	if p.Status != domain.ProjectDraft {
		return nil, xerrors.ErrProjectNotEditable
	}
	if upd.FundingGoal != nil && *upd.FundingGoal < domain.MinFundingGoal {
		return nil, xerrors.ErrFundingGoalTooLow
	}
	if upd.Sector != nil && !upd.Sector.Valid() {
		return nil, xerrors.ErrInvalidSector
	}
	if upd.ContractType != nil && !upd.ContractType.Valid() {
		return nil, xerrors.ErrInvalidContractType
	}
	if err := s.store.Update(ctx, projectID, upd); err != nil {
		return nil, err
	}
	return s.store.GetByID(ctx, projectID)
}

func (s *Service) Delete(ctx context.Context, ownerID, projectID string) error {
	p, err := s.store.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if p.OwnerID != ownerID {
		return xerrors.ErrNotProjectOwner
	}
	if p.Status != domain.ProjectDraft {
		return xerrors.ErrProjectNotEditable
	}
	return s.store.Delete(ctx, projectID)
}

// Submit moves a draft into review.
func (s *Service) Submit(ctx context.Context, ownerID, projectID string) (*domain.Project, error) {
	p, err := s.store.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if p.OwnerID != ownerID {
		return nil, xerrors.ErrNotProjectOwner
	}
	return s.transition(ctx, p, domain.ProjectUnderReview, "")
}

// Review approves or rejects a project under review. Caller is expected to
// have checked the admin role already.
func (s *Service) Review(ctx context.Context, projectID string, approve bool, note string) (*domain.Project, error) {
	p, err := s.store.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	to := domain.ProjectRejected
	title := "Project rejected"
	typ := domain.NotifyWarning
	if approve {
		to = domain.ProjectApproved
		title = "Project approved"
		typ = domain.NotifySuccess
	}

	p, err = s.transition(ctx, p, to, note)
	if err != nil {
		return nil, err
	}
	s.notifier.Notify(ctx, p.OwnerID, title, p.Title, typ)
	return p, nil
}

func (s *Service) transition(ctx context.Context, p *domain.Project, to domain.ProjectStatus, note string) (*domain.Project, error) {
	if !p.Status.CanTransition(to) {
		return nil, xerrors.ErrInvalidStatusChange
	}
	if err := s.store.UpdateStatus(ctx, p.ID, to, note); err != nil {
		return nil, err
	}
	p.Status = to
	p.ReviewNote = note
	p.UpdatedAt = time.Now()
	return p, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Project, error) {
	return s.store.ListByOwner(ctx, ownerID)
}

// Browse returns the approved projects matching the filter, sorted and
// paginated for display.
func (s *Service) Browse(ctx context.Context, f view.ProjectFilter) (*view.Page[*domain.Project], error) {
	projects, err := s.store.ListByStatus(ctx, domain.ProjectApproved)
	if err != nil {
		return nil, err
	}
	return view.FilterProjects(projects, f), nil
}

// ListAll is the admin view over every project regardless of status.
func (s *Service) ListAll(ctx context.Context, f view.ProjectFilter) (*view.Page[*domain.Project], error) {
	projects, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return view.FilterProjects(projects, f), nil
}

func (s *Service) Save(ctx context.Context, userID, projectID string) error {
	if _, err := s.store.GetByID(ctx, projectID); err != nil {
		return err
	}
	return s.saved.Save(ctx, userID, projectID)
}

func (s *Service) Unsave(ctx context.Context, userID, projectID string) error {
	return s.saved.Unsave(ctx, userID, projectID)
}

func (s *Service) IsSaved(ctx context.Context, userID, projectID string) (bool, error) {
	return s.saved.IsSaved(ctx, userID, projectID)
}

func (s *Service) ListSaved(ctx context.Context, userID string) ([]*domain.Project, error) {
	ids, err := s.saved.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return s.store.ListByIDs(ctx, ids)
}
