package repository

import (
	"errors"

	"go-booking-platform/internal/domain/entity"
	domainRepo "go-booking-platform/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type businessRepository struct{}

func NewBusinessRepository() domainRepo.BusinessRepository {
	return &businessRepository{}
}

func (r *businessRepository) Create(db *gorm.DB, business *entity.Business) error {
	return db.Create(business).Error
}

func (r *businessRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Business, error) {
	var business entity.Business
	err := db.Where("id = ?", id).First(&business).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &business, nil
}

func (r *businessRepository) FindBySlug(db *gorm.DB, slug string) (*entity.Business, error) {
	var business entity.Business
	err := db.Where("slug = ?", slug).First(&business).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &business, nil
}

func (r *businessRepository) FindByOwnerID(db *gorm.DB, ownerID uuid.UUID) (*entity.Business, error) {
	var business entity.Business
	err := db.Where("owner_id = ?", ownerID).First(&business).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &business, nil
}

func (r *businessRepository) FindAllActive(db *gorm.DB, limit, offset int) ([]entity.Business, int64, error) {
	var businesses []entity.Business
	var total int64

	if err := db.Model(&entity.Business{}).Where("is_active = ?", true).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Where("is_active = ?", true).
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&businesses).Error
	if err != nil {
		return nil, 0, err
	}
	return businesses, total, nil
}

func (r *businessRepository) Update(db *gorm.DB, business *entity.Business) error {
	return db.Save(business).Error
}
