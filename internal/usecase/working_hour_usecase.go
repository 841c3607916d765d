package usecase

import (
	"context"
	"errors"
	"time"

	"go-booking-platform/internal/delivery/dto"
	"go-booking-platform/internal/domain/entity"
	"go-booking-platform/internal/domain/repository"
	"go-booking-platform/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrWorkingHourNotFound = errors.New("working hour not found")
	ErrInvalidTimeWindow   = errors.New("end time must be after start time")
)

type WorkingHourUsecase interface {
	Upsert(ctx context.Context, ownerID uuid.UUID, req *dto.UpsertWorkingHoursRequest) ([]entity.WorkingHour, error)
	ListOwned(ctx context.Context, ownerID uuid.UUID) ([]entity.WorkingHour, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]entity.WorkingHour, error)
	Delete(ctx context.Context, ownerID, hourID uuid.UUID) error
}

type workingHourUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	workingHourRepo repository.WorkingHourRepository
	businessRepo    repository.BusinessRepository
	staffRepo       repository.StaffRepository
	auditService    service.AuditService
}

func NewWorkingHourUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	workingHourRepo repository.WorkingHourRepository,
	businessRepo repository.BusinessRepository,
	staffRepo repository.StaffRepository,
	auditService service.AuditService,
) WorkingHourUsecase {
	return &workingHourUsecase{
		db:              db,
		log:             log,
		workingHourRepo: workingHourRepo,
		businessRepo:    businessRepo,
		staffRepo:       staffRepo,
		auditService:    auditService,
	}
}

func (u *workingHourUsecase) ownedBusiness(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error) {
	business, err := u.businessRepo.FindByOwnerID(u.db.WithContext(ctx), ownerID)
	if err != nil {
		u.log.Warnf("Failed to find business by owner: %+v", err)
		return nil, err
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}
	return business, nil
}

// Upsert replaces or inserts one weekly template row per (day, staff) entry.
// Each entry's window is validated by materializing it onto an arbitrary date.
func (u *workingHourUsecase) Upsert(ctx context.Context, ownerID uuid.UUID, req *dto.UpsertWorkingHoursRequest) ([]entity.WorkingHour, error) {
	business, err := u.ownedBusiness(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	loc, err := business.Location()
	if err != nil {
		return nil, ErrInvalidTimezone
	}

	hours := make([]entity.WorkingHour, 0, len(req.Hours))
	for _, h := range req.Hours {
		var staffID *uuid.UUID
		if h.StaffID != "" {
			id, err := uuid.Parse(h.StaffID)
			if err != nil {
				return nil, ErrStaffNotFound
			}
			staff, err := u.staffRepo.FindByID(u.db.WithContext(ctx), id)
			if err != nil {
				return nil, err
			}
			if staff == nil || staff.BusinessID != business.ID {
				return nil, ErrStaffNotFound
			}
			staffID = &id
		}

		hour := entity.WorkingHour{
			BusinessID: business.ID,
			StaffID:    staffID,
			DayOfWeek:  h.DayOfWeek,
			StartTime:  h.StartTime,
			EndTime:    h.EndTime,
			IsActive:   h.IsActive,
		}

		anyDate := time.Date(2000, time.January, 2, 0, 0, 0, 0, loc)
		start, end, err := hour.Window(anyDate, loc)
		if err != nil {
			return nil, err
		}
		if !end.After(start) {
			return nil, ErrInvalidTimeWindow
		}
		hours = append(hours, hour)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	for i := range hours {
		if err := u.workingHourRepo.Upsert(tx, &hours[i]); err != nil {
			u.log.Warnf("Failed to upsert working hour: %+v", err)
			return nil, err
		}
	}

	if err := u.auditService.LogEntity(ctx, tx, &ownerID, entity.AuditActionWorkingHourUpdate, "business", business.ID.String(), len(hours)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return hours, nil
}

func (u *workingHourUsecase) ListOwned(ctx context.Context, ownerID uuid.UUID) ([]entity.WorkingHour, error) {
	business, err := u.ownedBusiness(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return u.ListByBusiness(ctx, business.ID)
}

func (u *workingHourUsecase) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]entity.WorkingHour, error) {
	hours, err := u.workingHourRepo.FindByBusinessID(u.db.WithContext(ctx), businessID)
	if err != nil {
		u.log.Warnf("Failed to list working hours: %+v", err)
		return nil, err
	}
	return hours, nil
}

func (u *workingHourUsecase) Delete(ctx context.Context, ownerID, hourID uuid.UUID) error {
	business, err := u.ownedBusiness(ctx, ownerID)
	if err != nil {
		return err
	}

	hours, err := u.workingHourRepo.FindByBusinessID(u.db.WithContext(ctx), business.ID)
	if err != nil {
		u.log.Warnf("Failed to list working hours: %+v", err)
		return err
	}
	found := false
	for _, h := range hours {
		if h.ID == hourID {
			found = true
			break
		}
	}
	if !found {
		return ErrWorkingHourNotFound
	}

	if err := u.workingHourRepo.Delete(u.db.WithContext(ctx), hourID); err != nil {
		u.log.Warnf("Failed to delete working hour: %+v", err)
		return err
	}
	return nil
}
