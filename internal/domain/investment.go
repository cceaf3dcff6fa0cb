package domain

import "time"

type InvestmentStatus string

const (
	InvestmentPending   InvestmentStatus = "pending"
	InvestmentAccepted  InvestmentStatus = "accepted"
	InvestmentRejected  InvestmentStatus = "rejected"
	InvestmentCompleted InvestmentStatus = "completed"
)

type Investment struct {
	ID         string           `json:"id"`
	InvestorID string           `json:"investor_id"`
	ProjectID  string           `json:"project_id"`
	Amount     float64          `json:"amount"`
	Status     InvestmentStatus `json:"status"`
	Message    string           `json:"message,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}
