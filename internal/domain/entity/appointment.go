package entity

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusConfirmed AppointmentStatus = "confirmed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusNoShow    AppointmentStatus = "no_show"
)

// Appointment occupies the half-open interval [StartTime, EndTime) where
// EndTime = StartTime + service duration. Cancelled and no-show appointments
// never block a slot.
type Appointment struct {
	ID                uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BusinessID        uuid.UUID         `gorm:"type:uuid;not null;index:idx_appointments_business_start,priority:1" json:"business_id"`
	CustomerID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"customer_id"`
	ServiceID         uuid.UUID         `gorm:"type:uuid;not null;index" json:"service_id"`
	StaffID           *uuid.UUID        `gorm:"type:uuid;index" json:"staff_id,omitempty"`
	StartTime         time.Time         `gorm:"not null;index:idx_appointments_business_start,priority:2" json:"start_time"`
	EndTime           time.Time         `gorm:"not null" json:"end_time"`
	Status            AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	PackagePurchaseID *uuid.UUID        `gorm:"type:uuid;index" json:"package_purchase_id,omitempty"`
	Notes             string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt         time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Business        Business         `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
	Customer        User             `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Service         Service          `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
	Staff           *Staff           `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
	PackagePurchase *PackagePurchase `gorm:"foreignKey:PackagePurchaseID" json:"package_purchase,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelled checks if the appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// IsCancellable reports whether the appointment can still be cancelled.
func (a *Appointment) IsCancellable() bool {
	return a.Status == AppointmentStatusPending || a.Status == AppointmentStatusConfirmed
}

// BlocksSlot reports whether the appointment occupies its interval for slot
// computation purposes.
func (a *Appointment) BlocksSlot() bool {
	return a.Status != AppointmentStatusCancelled && a.Status != AppointmentStatusNoShow
}

// AppointmentFilter is a domain-level filter for querying appointments.
// Used by the repository layer to avoid coupling with delivery DTOs.
type AppointmentFilter struct {
	From   string // Format: YYYY-MM-DD
	To     string // Format: YYYY-MM-DD
	Status string
}
