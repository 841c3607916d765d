package usecase

import (
	"context"
	"errors"

	"go-booking-platform/internal/delivery/dto"
	"go-booking-platform/internal/domain/entity"
	"go-booking-platform/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrInvalidPrice    = errors.New("invalid price")
)

type ServiceUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, req *dto.CreateServiceRequest) (*entity.Service, error)
	ListOwned(ctx context.Context, ownerID uuid.UUID) ([]entity.Service, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]entity.Service, error)
	Update(ctx context.Context, ownerID, serviceID uuid.UUID, req *dto.UpdateServiceRequest) (*entity.Service, error)
	Delete(ctx context.Context, ownerID, serviceID uuid.UUID) error
}

type serviceUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	serviceRepo  repository.ServiceRepository
	businessRepo repository.BusinessRepository
}

func NewServiceUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	serviceRepo repository.ServiceRepository,
	businessRepo repository.BusinessRepository,
) ServiceUsecase {
	return &serviceUsecase{
		db:           db,
		log:          log,
		serviceRepo:  serviceRepo,
		businessRepo: businessRepo,
	}
}

func (u *serviceUsecase) ownedBusiness(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error) {
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

func (u *serviceUsecase) Create(ctx context.Context, ownerID uuid.UUID, req *dto.CreateServiceRequest) (*entity.Service, error) {
	business, err := u.ownedBusiness(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	svc := &entity.Service{
		BusinessID:      business.ID,
		Name:            req.Name,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Price:           price,
		IsActive:        true,
	}
	if err := u.serviceRepo.Create(u.db.WithContext(ctx), svc); err != nil {
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, err
	}
	return svc, nil
}

func (u *serviceUsecase) ListOwned(ctx context.Context, ownerID uuid.UUID) ([]entity.Service, error) {
	business, err := u.ownedBusiness(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	services, err := u.serviceRepo.FindByBusinessID(u.db.WithContext(ctx), business.ID, false)
	if err != nil {
		u.log.Warnf("Failed to list services: %+v", err)
		return nil, err
	}
	return services, nil
}

// ListByBusiness returns only active services; it backs the public catalog.
func (u *serviceUsecase) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]entity.Service, error) {
	services, err := u.serviceRepo.FindByBusinessID(u.db.WithContext(ctx), businessID, true)
	if err != nil {
		u.log.Warnf("Failed to list services: %+v", err)
		return nil, err
	}
	return services, nil
}

func (u *serviceUsecase) Update(ctx context.Context, ownerID, serviceID uuid.UUID, req *dto.UpdateServiceRequest) (*entity.Service, error) {
	business, err := u.ownedBusiness(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	svc, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return nil, err
	}
	if svc == nil || svc.BusinessID != business.ID {
		return nil, ErrServiceNotFound
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.DurationMinutes != nil && *req.DurationMinutes > 0 {
		svc.DurationMinutes = *req.DurationMinutes
	}
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil || price.IsNegative() {
			return nil, ErrInvalidPrice
		}
		svc.Price = price
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if err := u.serviceRepo.Update(u.db.WithContext(ctx), svc); err != nil {
		u.log.Warnf("Failed to update service: %+v", err)
		return nil, err
	}
	return svc, nil
}

func (u *serviceUsecase) Delete(ctx context.Context, ownerID, serviceID uuid.UUID) error {
	business, err := u.ownedBusiness(ctx, ownerID)
	if err != nil {
		return err
	}

	svc, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return err
	}
	if svc == nil || svc.BusinessID != business.ID {
		return ErrServiceNotFound
	}

	if err := u.serviceRepo.Delete(u.db.WithContext(ctx), serviceID); err != nil {
		u.log.Warnf("Failed to delete service: %+v", err)
		return err
	}
	return nil
}
