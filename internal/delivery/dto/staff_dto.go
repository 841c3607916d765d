package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateStaffRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,min=10,max=20"`
}

type UpdateStaffRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=255"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	IsActive    *bool   `json:"is_active" validate:"omitempty"`
}

type StaffResponse struct {
	ID          uuid.UUID `json:"id"`
	BusinessID  uuid.UUID `json:"business_id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
