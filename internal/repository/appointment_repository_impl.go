package repository

import (
	"errors"
	"time"

	"go-booking-platform/internal/domain/entity"
	domainRepo "go-booking-platform/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Service").Preload("Staff").Preload("Business").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Service").Preload("Business").
		Where("customer_id = ?", customerID).
		Order("start_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByBusiness(db *gorm.DB, businessID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	query := db.Preload("Service").Preload("Customer").Preload("Staff").
		Where("business_id = ?", businessID)

	if filter != nil {
		if filter.From != "" {
			query = query.Where("start_time >= ?", filter.From)
		}
		if filter.To != "" {
			query = query.Where("start_time < ?", filter.To)
		}
		if filter.Status != "" {
			query = query.Where("status = ?", filter.Status)
		}
	}

	var appointments []entity.Appointment
	err := query.Order("start_time ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindBlockingForRange(db *gorm.DB, businessID uuid.UUID, staffID *uuid.UUID, from, to time.Time) ([]entity.Appointment, error) {
	query := db.Where("business_id = ?", businessID).
		Where("status NOT IN ?", []entity.AppointmentStatus{
			entity.AppointmentStatusCancelled,
			entity.AppointmentStatusNoShow,
		}).
		Where("start_time < ? AND end_time > ?", to, from)

	if staffID != nil {
		query = query.Where("staff_id IS NULL OR staff_id = ?", *staffID)
	}

	var appointments []entity.Appointment
	err := query.Order("start_time ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error {
	return db.Model(&entity.Appointment{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *appointmentRepository) SetPackagePurchase(db *gorm.DB, id uuid.UUID, purchaseID *uuid.UUID) error {
	return db.Model(&entity.Appointment{}).
		Where("id = ?", id).
		Update("package_purchase_id", purchaseID).Error
}

func (r *appointmentRepository) ReassignCustomer(db *gorm.DB, fromCustomerID, toCustomerID uuid.UUID) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("customer_id = ?", fromCustomerID).
		Update("customer_id", toCustomerID)
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) CountByStatus(db *gorm.DB, businessID uuid.UUID, from, to time.Time) (map[entity.AppointmentStatus]int64, error) {
	type row struct {
		Status entity.AppointmentStatus
		Count  int64
	}
	var rows []row
	err := db.Model(&entity.Appointment{}).
		Select("status, COUNT(*) as count").
		Where("business_id = ? AND start_time >= ? AND start_time < ?", businessID, from, to).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[entity.AppointmentStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

func (r *appointmentRepository) CompletedRevenue(db *gorm.DB, businessID uuid.UUID, from, to time.Time) (decimal.Decimal, error) {
	var revenue decimal.Decimal
	err := db.Model(&entity.Appointment{}).
		Select("COALESCE(SUM(services.price), 0)").
		Joins("JOIN services ON services.id = appointments.service_id").
		Where("appointments.business_id = ? AND appointments.status = ? AND appointments.start_time >= ? AND appointments.start_time < ?",
			businessID, entity.AppointmentStatusCompleted, from, to).
		Scan(&revenue).Error
	if err != nil {
		return decimal.Zero, err
	}
	return revenue, nil
}

func (r *appointmentRepository) CountByCustomer(db *gorm.DB, customerIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	type row struct {
		CustomerID uuid.UUID
		Count      int64
	}
	var rows []row
	err := db.Model(&entity.Appointment{}).
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
