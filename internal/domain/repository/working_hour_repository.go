package repository

import (
	"go-booking-platform/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkingHourRepository interface {
	Upsert(db *gorm.DB, hour *entity.WorkingHour) error
	FindByBusinessID(db *gorm.DB, businessID uuid.UUID) ([]entity.WorkingHour, error)
	// FindForDay resolves the active template for a weekday, preferring a
	// staff-specific row over the business-level one when staffID is set.
	FindForDay(db *gorm.DB, businessID uuid.UUID, staffID *uuid.UUID, dayOfWeek int) (*entity.WorkingHour, error)
	Delete(db *gorm.DB, id uuid.UUID) error
}
