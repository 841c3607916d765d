package repository

import (
	"errors"

	"go-booking-platform/internal/domain/entity"
	domainRepo "go-booking-platform/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type sessionUsageRepository struct{}

func NewSessionUsageRepository() domainRepo.SessionUsageRepository {
	return &sessionUsageRepository{}
}

func (r *sessionUsageRepository) Create(db *gorm.DB, usage *entity.SessionUsage) error {
	return db.Create(usage).Error
}

func (r *sessionUsageRepository) FindByPurchaseAndAppointment(db *gorm.DB, purchaseID, appointmentID uuid.UUID) (*entity.SessionUsage, error) {
	var usage entity.SessionUsage
	err := db.Where("purchase_id = ? AND appointment_id = ?", purchaseID, appointmentID).
		First(&usage).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &usage, nil
}

func (r *sessionUsageRepository) FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) (*entity.SessionUsage, error) {
	var usage entity.SessionUsage
	err := db.Where("appointment_id = ?", appointmentID).First(&usage).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &usage, nil
}

func (r *sessionUsageRepository) FindByPurchaseID(db *gorm.DB, purchaseID uuid.UUID) ([]entity.SessionUsage, error) {
	var usages []entity.SessionUsage
	err := db.Where("purchase_id = ?", purchaseID).
		Order("session_number ASC").
		Find(&usages).Error
	if err != nil {
		return nil, err
	}
	return usages, nil
}

func (r *sessionUsageRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.SessionUsage{}).Error
}
