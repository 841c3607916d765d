package repository

import (
	"errors"

	"go-booking-platform/internal/domain/entity"
	domainRepo "go-booking-platform/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type packageRepository struct{}

func NewPackageRepository() domainRepo.PackageRepository {
	return &packageRepository{}
}

func (r *packageRepository) Create(db *gorm.DB, pkg *entity.Package) error {
	return db.Create(pkg).Error
}

func (r *packageRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Package, error) {
	var pkg entity.Package
	err := db.Preload("Service").Where("id = ?", id).First(&pkg).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *packageRepository) FindByBusinessID(db *gorm.DB, businessID uuid.UUID, activeOnly bool) ([]entity.Package, error) {
	var packages []entity.Package
	query := db.Preload("Service").Where("business_id = ?", businessID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("name ASC").Find(&packages).Error
	if err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *packageRepository) Update(db *gorm.DB, pkg *entity.Package) error {
	return db.Save(pkg).Error
}

func (r *packageRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Package{}).Error
}
