package domain

import "time"

type UserType string

const (
	UserTypeInvestor     UserType = "investor"
	UserTypeProjectOwner UserType = "project-owner"
	UserTypeConsultant   UserType = "consultant"
	UserTypeAdmin        UserType = "admin"
)

func (t UserType) Valid() bool {
	switch t {
	case UserTypeInvestor, UserTypeProjectOwner, UserTypeConsultant, UserTypeAdmin:
		return true
	}
	return false
}

type InvestorType string

const (
	InvestorIndividual  InvestorType = "individual"
	InvestorInstitution InvestorType = "institution"
)

type User struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	UserType     UserType     `json:"user_type"`
	InvestorType InvestorType `json:"investor_type,omitempty"`
	IsVerified   bool         `json:"is_verified"`
	IsDemo       bool         `json:"is_demo"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
