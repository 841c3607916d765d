package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePackageRequest struct {
	Name         string `json:"name" validate:"required,min=2,max=255"`
	Description  string `json:"description" validate:"omitempty"`
	ServiceID    string `json:"service_id" validate:"omitempty,uuid"`
	SessionCount int    `json:"session_count" validate:"required,min=1,max=1000"`
	Price        string `json:"price" validate:"required"`
	ValidityDays *int   `json:"validity_days" validate:"omitempty,min=1"`
}

type UpdatePackageRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=2,max=255"`
	Description  *string `json:"description" validate:"omitempty"`
	Price        *string `json:"price" validate:"omitempty"`
	ValidityDays *int    `json:"validity_days" validate:"omitempty,min=1"`
	IsActive     *bool   `json:"is_active" validate:"omitempty"`
}

type PurchasePackageRequest struct {
	PackageID string `json:"package_id" validate:"required,uuid"`
}

type ConsumeSessionRequest struct {
	PurchaseID    string `json:"purchase_id" validate:"required,uuid"`
	AppointmentID string `json:"appointment_id" validate:"required,uuid"`
}

type RestoreSessionRequest struct {
	PurchaseID    string `json:"purchase_id" validate:"required,uuid"`
	AppointmentID string `json:"appointment_id" validate:"required,uuid"`
}

// Response DTOs

type PackageResponse struct {
	ID           uuid.UUID  `json:"id"`
	BusinessID   uuid.UUID  `json:"business_id"`
	ServiceID    *uuid.UUID `json:"service_id,omitempty"`
	Name         string     `json:"name"`
	Description  string     `json:"description,omitempty"`
	SessionCount int        `json:"session_count"`
	Price        string     `json:"price"`
	ValidityDays *int       `json:"validity_days,omitempty"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type PackagePurchaseResponse struct {
	ID                uuid.UUID  `json:"id"`
	PackageID         uuid.UUID  `json:"package_id"`
	CustomerID        uuid.UUID  `json:"customer_id"`
	BusinessID        uuid.UUID  `json:"business_id"`
	PackageName       string     `json:"package_name,omitempty"`
	TotalSessions     int        `json:"total_sessions"`
	UsedSessions      int        `json:"used_sessions"`
	RemainingSessions int        `json:"remaining_sessions"`
	Status            string     `json:"status"`
	PaymentStatus     string     `json:"payment_status"`
	PurchaseDate      time.Time  `json:"purchase_date"`
	ExpiryDate        *time.Time `json:"expiry_date,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

type SessionUsageResponse struct {
	ID            uuid.UUID `json:"id"`
	PurchaseID    uuid.UUID `json:"purchase_id"`
	AppointmentID uuid.UUID `json:"appointment_id"`
	SessionNumber int       `json:"session_number"`
	UsedAt        time.Time `json:"used_at"`
}

// ConsumeSessionResponse carries the recorded usage together with the
// purchase's post-decrement counters.
type ConsumeSessionResponse struct {
	SessionUsage *SessionUsageResponse    `json:"session_usage"`
	Purchase     *PackagePurchaseResponse `json:"purchase"`
}
