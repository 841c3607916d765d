package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateBusinessRequest struct {
	Name                string `json:"name" validate:"required,min=2,max=255"`
	Slug                string `json:"slug" validate:"omitempty,min=2,max=255"`
	Description         string `json:"description" validate:"omitempty"`
	PhoneNumber         string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	Address             string `json:"address" validate:"omitempty"`
	Timezone            string `json:"timezone" validate:"omitempty"`
	SlotDurationMinutes int    `json:"slot_duration_minutes" validate:"omitempty,min=5,max=240"`
}

type UpdateBusinessRequest struct {
	Name                *string `json:"name" validate:"omitempty,min=2,max=255"`
	Description         *string `json:"description" validate:"omitempty"`
	PhoneNumber         *string `json:"phone_number" validate:"omitempty,min=10,max=20"`
	Address             *string `json:"address" validate:"omitempty"`
	Timezone            *string `json:"timezone" validate:"omitempty"`
	SlotDurationMinutes *int    `json:"slot_duration_minutes" validate:"omitempty,min=5,max=240"`
}

type SetBusinessActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// Response DTOs

type BusinessResponse struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Slug                string    `json:"slug"`
	Description         string    `json:"description,omitempty"`
	PhoneNumber         string    `json:"phone_number,omitempty"`
	Address             string    `json:"address,omitempty"`
	Timezone            string    `json:"timezone"`
	SlotDurationMinutes int       `json:"slot_duration_minutes"`
	IsActive            bool      `json:"is_active"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
