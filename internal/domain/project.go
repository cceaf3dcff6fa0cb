package domain

import (
	"time"

	"github.com/SYK3S999/tamweeli-sub001/pkg/xerrors"
)

// MinFundingGoal is the platform floor for a project funding goal.
const MinFundingGoal = 1000

type Sector string

const (
	SectorTechnology  Sector = "technology"
	SectorAgriculture Sector = "agriculture"
	SectorRealEstate  Sector = "real-estate"
	SectorHealthcare  Sector = "healthcare"
	SectorEducation   Sector = "education"
	SectorRetail      Sector = "retail"
	SectorIndustry    Sector = "industry"
)

func (s Sector) Valid() bool {
	switch s {
	case SectorTechnology, SectorAgriculture, SectorRealEstate,
		SectorHealthcare, SectorEducation, SectorRetail, SectorIndustry:
		return true
	}
	return false
}

// ContractType is the Islamic finance instrument attached to a project.
type ContractType string

const (
	ContractMurabaha  ContractType = "murabaha"
	ContractMusharaka ContractType = "musharaka"
	ContractMudaraba  ContractType = "mudaraba"
)

func (c ContractType) Valid() bool {
	switch c {
	case ContractMurabaha, ContractMusharaka, ContractMudaraba:
		return true
	}
	return false
}

type ProjectStatus string

const (
	ProjectDraft       ProjectStatus = "draft"
	ProjectUnderReview ProjectStatus = "under-review"
	ProjectApproved    ProjectStatus = "approved"
	ProjectRejected    ProjectStatus = "rejected"
)

// CanTransition enforces the review lifecycle: draft -> under-review,
// under-review -> approved | rejected. Anything else is rejected.
func (s ProjectStatus) CanTransition(to ProjectStatus) bool {
	switch s {
	case ProjectDraft:
		return to == ProjectUnderReview
	case ProjectUnderReview:
		return to == ProjectApproved || to == ProjectRejected
	}
	return false
}

type Project struct {
	ID             string        `json:"id"`
	OwnerID        string        `json:"owner_id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Sector         Sector        `json:"sector"`
	ContractType   ContractType  `json:"contract_type"`
	FundingGoal    float64       `json:"funding_goal"`
	FundingRaised  float64       `json:"funding_raised"`
	DurationMonths int           `json:"duration_months"`
	Status         ProjectStatus `json:"status"`
	ReviewNote     string        `json:"review_note,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// Remaining is the funding capacity still open to investors.
func (p *Project) Remaining() float64 {
	return p.FundingGoal - p.FundingRaised
}

func (p *Project) Validate() error {
	if p.Title == "" {
		return xerrors.ErrTitleRequired
	}
	if !p.Sector.Valid() {
		return xerrors.ErrInvalidSector
	}
	if !p.ContractType.Valid() {
		return xerrors.ErrInvalidContractType
	}
	if p.FundingGoal < MinFundingGoal {
		return xerrors.ErrFundingGoalTooLow
	}
	return nil
}
