package repository

import (
	"time"

	"go-booking-platform/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.Appointment, error)
	FindByBusiness(db *gorm.DB, businessID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	// FindBlockingForRange returns appointments that occupy slots within
	// [from, to): every status except cancelled and no_show.
	FindBlockingForRange(db *gorm.DB, businessID uuid.UUID, staffID *uuid.UUID, from, to time.Time) ([]entity.Appointment, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error
	SetPackagePurchase(db *gorm.DB, id uuid.UUID, purchaseID *uuid.UUID) error
	ReassignCustomer(db *gorm.DB, fromCustomerID, toCustomerID uuid.UUID) (int64, error)
	CountByStatus(db *gorm.DB, businessID uuid.UUID, from, to time.Time) (map[entity.AppointmentStatus]int64, error)
	// CompletedRevenue sums the service prices of completed appointments
	// starting within [from, to).
	CompletedRevenue(db *gorm.DB, businessID uuid.UUID, from, to time.Time) (decimal.Decimal, error)
	CountByCustomer(db *gorm.DB, customerIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}
