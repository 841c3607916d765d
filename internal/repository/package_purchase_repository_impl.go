package repository

import (
	"errors"

	"go-booking-platform/internal/domain/entity"
	domainRepo "go-booking-platform/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type packagePurchaseRepository struct{}

func NewPackagePurchaseRepository() domainRepo.PackagePurchaseRepository {
	return &packagePurchaseRepository{}
}

func (r *packagePurchaseRepository) Create(db *gorm.DB, purchase *entity.PackagePurchase) error {
	return db.Create(purchase).Error
}

func (r *packagePurchaseRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.PackagePurchase, error) {
	var purchase entity.PackagePurchase
	err := db.Preload("Package").Where("id = ?", id).First(&purchase).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &purchase, nil
}

// FindByIDForUpdate takes a SELECT ... FOR UPDATE row lock. Must be called
// inside a transaction; the lock is what serializes two concurrent consumers
// racing for the last session.
func (r *packagePurchaseRepository) FindByIDForUpdate(db *gorm.DB, id uuid.UUID) (*entity.PackagePurchase, error) {
	var purchase entity.PackagePurchase
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&purchase).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &purchase, nil
}

func (r *packagePurchaseRepository) FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.PackagePurchase, error) {
	var purchases []entity.PackagePurchase
	err := db.Preload("Package").Preload("Business").
		Where("customer_id = ?", customerID).
		Order("purchase_date DESC").
		Find(&purchases).Error
	if err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *packagePurchaseRepository) FindByBusinessID(db *gorm.DB, businessID uuid.UUID) ([]entity.PackagePurchase, error) {
	var purchases []entity.PackagePurchase
	err := db.Preload("Package").Preload("Customer").
		Where("business_id = ?", businessID).
		Order("purchase_date DESC").
		Find(&purchases).Error
	if err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *packagePurchaseRepository) Update(db *gorm.DB, purchase *entity.PackagePurchase) error {
	return db.Save(purchase).Error
}

func (r *packagePurchaseRepository) ReassignCustomer(db *gorm.DB, fromCustomerID, toCustomerID uuid.UUID) (int64, error) {
	result := db.Model(&entity.PackagePurchase{}).
		Where("customer_id = ?", fromCustomerID).
		Update("customer_id", toCustomerID)
	return result.RowsAffected, result.Error
}

func (r *packagePurchaseRepository) CountByCustomer(db *gorm.DB, customerIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	type row struct {
		CustomerID uuid.UUID
		Count      int64
	}
	var rows []row
	err := db.Model(&entity.PackagePurchase{}).
		Select("customer_id, COUNT(*) as count").
		Where("customer_id IN ?", customerIDs).
		Group("customer_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uuid.UUID]int64, len(rows))
	for _, r := range rows {
		counts[r.CustomerID] = r.Count
	}
	return counts, nil
}
