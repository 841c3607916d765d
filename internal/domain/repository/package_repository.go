package repository

import (
	"go-booking-platform/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PackageRepository interface {
	Create(db *gorm.DB, pkg *entity.Package) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Package, error)
	FindByBusinessID(db *gorm.DB, businessID uuid.UUID, activeOnly bool) ([]entity.Package, error)
	Update(db *gorm.DB, pkg *entity.Package) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
