package repository

import (
	"errors"

	"go-booking-platform/internal/domain/entity"
	domainRepo "go-booking-platform/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type workingHourRepository struct{}

func NewWorkingHourRepository() domainRepo.WorkingHourRepository {
	return &workingHourRepository{}
}

// Upsert replaces the template for (business, staff, day), creating it when
// absent. staff_id NULL and a concrete staff_id are distinct templates.
func (r *workingHourRepository) Upsert(db *gorm.DB, hour *entity.WorkingHour) error {
	query := db.Where("business_id = ? AND day_of_week = ?", hour.BusinessID, hour.DayOfWeek)
	if hour.StaffID != nil {
		query = query.Where("staff_id = ?", *hour.StaffID)
	} else {
		query = query.Where("staff_id IS NULL")
	}

	var existing entity.WorkingHour
	err := query.First(&existing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return db.Create(hour).Error
		}
		return err
	}

	existing.StartTime = hour.StartTime
	existing.EndTime = hour.EndTime
	existing.IsActive = hour.IsActive
	if err := db.Save(&existing).Error; err != nil {
		return err
	}
	*hour = existing
	return nil
}

func (r *workingHourRepository) FindByBusinessID(db *gorm.DB, businessID uuid.UUID) ([]entity.WorkingHour, error) {
	var hours []entity.WorkingHour
	err := db.Where("business_id = ?", businessID).
		Order("day_of_week ASC, start_time ASC").
		Find(&hours).Error
	if err != nil {
		return nil, err
	}
	return hours, nil
}

func (r *workingHourRepository) FindForDay(db *gorm.DB, businessID uuid.UUID, staffID *uuid.UUID, dayOfWeek int) (*entity.WorkingHour, error) {
	var hour entity.WorkingHour

	if staffID != nil {
		err := db.Where("business_id = ? AND staff_id = ? AND day_of_week = ? AND is_active = ?",
			businessID, *staffID, dayOfWeek, true).
			First(&hour).Error
		if err == nil {
			return &hour, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		// Fall through to the business-level template.
	}

	err := db.Where("business_id = ? AND staff_id IS NULL AND day_of_week = ? AND is_active = ?",
		businessID, dayOfWeek, true).
		First(&hour).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hour, nil
}

func (r *workingHourRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.WorkingHour{}).Error
}
