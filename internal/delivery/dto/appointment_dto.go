package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type AvailableSlotsRequest struct {
	BusinessSlug string `json:"business_slug" validate:"required"`
	ServiceID    string `json:"service_id" validate:"required,uuid"`
	StaffID      string `json:"staff_id" validate:"omitempty,uuid"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
}

type CreateAppointmentRequest struct {
	BusinessSlug      string `json:"business_slug" validate:"required"`
	ServiceID         string `json:"service_id" validate:"required,uuid"`
	StaffID           string `json:"staff_id" validate:"omitempty,uuid"`
	Date              string `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime         string `json:"start_time" validate:"required,datetime=15:04"`
	Notes             string `json:"notes" validate:"omitempty,max=1000"`
	PackagePurchaseID string `json:"package_purchase_id" validate:"omitempty,uuid"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed completed no_show cancelled"`
}

// Response DTOs

type AvailableSlotsResponse struct {
	BusinessSlug string    `json:"business_slug"`
	ServiceID    uuid.UUID `json:"service_id"`
	Date         string    `json:"date"`
	Timezone     string    `json:"timezone"`
	Slots        []string  `json:"slots"`
}

type AppointmentResponse struct {
	ID                uuid.UUID  `json:"id"`
	BusinessID        uuid.UUID  `json:"business_id"`
	CustomerID        uuid.UUID  `json:"customer_id"`
	ServiceID         uuid.UUID  `json:"service_id"`
	StaffID           *uuid.UUID `json:"staff_id,omitempty"`
	StartTime         time.Time  `json:"start_time"`
	EndTime           time.Time  `json:"end_time"`
	Status            string     `json:"status"`
	PackagePurchaseID *uuid.UUID `json:"package_purchase_id,omitempty"`
	Notes             string     `json:"notes,omitempty"`
	ServiceName       string     `json:"service_name,omitempty"`
	StaffName         string     `json:"staff_name,omitempty"`
	CustomerName      string     `json:"customer_name,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type AppointmentReportResponse struct {
	BusinessID uuid.UUID        `json:"business_id"`
	From       string           `json:"from"`
	To         string           `json:"to"`
	Total      int64            `json:"total"`
	ByStatus   map[string]int64 `json:"by_status"`
	NoShowRate string           `json:"no_show_rate,omitempty"`
	Revenue    string           `json:"revenue"`
}
