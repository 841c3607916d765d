package repository

import (
	"go-booking-platform/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PackagePurchaseRepository interface {
	Create(db *gorm.DB, purchase *entity.PackagePurchase) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.PackagePurchase, error)
	// FindByIDForUpdate locks the purchase row for the duration of the
	// surrounding transaction so concurrent consumers serialize on it.
	FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.PackagePurchase, error)
	FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.PackagePurchase, error)
	FindByBusinessID(db *gorm.DB, businessID uuid.UUID) ([]entity.PackagePurchase, error)
	Update(db *gorm.DB, purchase *entity.PackagePurchase) error
	ReassignCustomer(db *gorm.DB, fromCustomerID, toCustomerID uuid.UUID) (int64, error)
	CountByCustomer(db *gorm.DB, customerIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}
