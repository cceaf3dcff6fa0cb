package domain

import "time"

// Service is a consultant offering listed on the platform.
type Service struct {
	ID           string    `json:"id"`
	ConsultantID string    `json:"consultant_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	Price        float64   `json:"price"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ServiceRequestStatus string

const (
	RequestPending   ServiceRequestStatus = "pending"
	RequestAccepted  ServiceRequestStatus = "accepted"
	RequestRejected  ServiceRequestStatus = "rejected"
	RequestCompleted ServiceRequestStatus = "completed"
)

type ServiceRequest struct {
	ID           string               `json:"id"`
	ServiceID    string               `json:"service_id"`
	ClientID     string               `json:"client_id"`
	ConsultantID string               `json:"consultant_id"`
	Status       ServiceRequestStatus `json:"status"`
	Details      string               `json:"details,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}
