package dto

import (
	"time"

	"github.com/google/uuid"
)

type WorkingHourEntry struct {
	StaffID   string `json:"staff_id" validate:"omitempty,uuid"`
	DayOfWeek int    `json:"day_of_week" validate:"min=0,max=6"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
	IsActive  bool   `json:"is_active"`
}

type UpsertWorkingHoursRequest struct {
	Hours []WorkingHourEntry `json:"hours" validate:"required,min=1,dive"`
}

type WorkingHourResponse struct {
	ID        uuid.UUID  `json:"id"`
	StaffID   *uuid.UUID `json:"staff_id,omitempty"`
	DayOfWeek int        `json:"day_of_week"`
	StartTime string     `json:"start_time"`
	EndTime   string     `json:"end_time"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
