package repository

import (
	"go-booking-platform/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffRepository interface {
	Create(db *gorm.DB, staff *entity.Staff) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Staff, error)
	FindByBusinessID(db *gorm.DB, businessID uuid.UUID) ([]entity.Staff, error)
	Update(db *gorm.DB, staff *entity.Staff) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
