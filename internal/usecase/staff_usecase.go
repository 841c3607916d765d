package usecase

import (
	"context"
	"errors"

	"go-booking-platform/internal/delivery/dto"
	"go-booking-platform/internal/domain/entity"
	"go-booking-platform/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrStaffNotFound = errors.New("staff not found")

type StaffUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, req *dto.CreateStaffRequest) (*entity.Staff, error)
	ListOwned(ctx context.Context, ownerID uuid.UUID) ([]entity.Staff, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]entity.Staff, error)
	Update(ctx context.Context, ownerID, staffID uuid.UUID, req *dto.UpdateStaffRequest) (*entity.Staff, error)
	Delete(ctx context.Context, ownerID, staffID uuid.UUID) error
}

type staffUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	staffRepo    repository.StaffRepository
	businessRepo repository.BusinessRepository
}

func NewStaffUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	staffRepo repository.StaffRepository,
	businessRepo repository.BusinessRepository,
) StaffUsecase {
	return &staffUsecase{
		db:           db,
		log:          log,
		staffRepo:    staffRepo,
		businessRepo: businessRepo,
	}
}

func (u *staffUsecase) ownedBusiness(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error) {
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

func (u *staffUsecase) Create(ctx context.Context, ownerID uuid.UUID, req *dto.CreateStaffRequest) (*entity.Staff, error) {
	business, err := u.ownedBusiness(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	staff := &entity.Staff{
		BusinessID:  business.ID,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		IsActive:    true,
	}
	if err := u.staffRepo.Create(u.db.WithContext(ctx), staff); err != nil {
		u.log.Warnf("Failed to create staff: %+v", err)
		return nil, err
	}
	return staff, nil
}

func (u *staffUsecase) ListOwned(ctx context.Context, ownerID uuid.UUID) ([]entity.Staff, error) {
	business, err := u.ownedBusiness(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return u.ListByBusiness(ctx, business.ID)
}

func (u *staffUsecase) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]entity.Staff, error) {
	staff, err := u.staffRepo.FindByBusinessID(u.db.WithContext(ctx), businessID)
	if err != nil {
		u.log.Warnf("Failed to list staff: %+v", err)
		return nil, err
	}
	return staff, nil
}

func (u *staffUsecase) Update(ctx context.Context, ownerID, staffID uuid.UUID, req *dto.UpdateStaffRequest) (*entity.Staff, error) {
	business, err := u.ownedBusiness(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	staff, err := u.staffRepo.FindByID(u.db.WithContext(ctx), staffID)
	if err != nil {
		u.log.Warnf("Failed to find staff: %+v", err)
		return nil, err
	}
	if staff == nil || staff.BusinessID != business.ID {
		return nil, ErrStaffNotFound
	}

	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.PhoneNumber != nil {
		staff.PhoneNumber = *req.PhoneNumber
	}
	if req.IsActive != nil {
		staff.IsActive = *req.IsActive
	}

	if err := u.staffRepo.Update(u.db.WithContext(ctx), staff); err != nil {
		u.log.Warnf("Failed to update staff: %+v", err)
		return nil, err
	}
	return staff, nil
}

func (u *staffUsecase) Delete(ctx context.Context, ownerID, staffID uuid.UUID) error {
	business, err := u.ownedBusiness(ctx, ownerID)
	if err != nil {
		return err
	}

	staff, err := u.staffRepo.FindByID(u.db.WithContext(ctx), staffID)
	if err != nil {
		u.log.Warnf("Failed to find staff: %+v", err)
		return err
	}
	if staff == nil || staff.BusinessID != business.ID {
		return ErrStaffNotFound
	}

	if err := u.staffRepo.Delete(u.db.WithContext(ctx), staffID); err != nil {
		u.log.Warnf("Failed to delete staff: %+v", err)
		return err
	}
	return nil
}
