package repository

import (
	"go-booking-platform/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BusinessRepository interface {
	Create(db *gorm.DB, business *entity.Business) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Business, error)
	FindBySlug(db *gorm.DB, slug string) (*entity.Business, error)
	FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) (*entity.Business, error)
	FindAllActive(db *gorm.DB, limit, offset int) ([]entity.Business, int64, error)
	Update(db *gorm.DB, business *entity.Business) error
}
