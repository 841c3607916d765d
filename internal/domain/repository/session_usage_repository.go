package repository

import (
	"go-booking-platform/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionUsageRepository interface {
	Create(db *gorm.DB, usage *entity.SessionUsage) error
	FindByPurchaseAndAppointment(db *gorm.DB, purchaseID, appointmentID uuid.UUID) (*entity.SessionUsage, error)
	FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.SessionUsage, error)
	FindByPurchaseID(db *gorm.DB, purchaseID uuid.UUID) ([]entity.SessionUsage, error)
	Delete(db *gorm.DB, id uuid.UUID) error
}
