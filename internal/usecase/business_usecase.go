package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"go-booking-platform/internal/delivery/dto"
	"go-booking-platform/internal/domain/entity"
	"go-booking-platform/internal/domain/repository"
	"go-booking-platform/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBusinessNotFound      = errors.New("business not found")
	ErrBusinessAlreadyExists = errors.New("owner already has a business")
	ErrSlugAlreadyExists     = errors.New("business slug already exists")
	ErrInvalidTimezone       = errors.New("invalid timezone")
	ErrNotBusinessOwner      = errors.New("user does not own this business")
)

type BusinessUsecase interface {
	Create(ctx context.Context, ownerID uuid.UUID, req *dto.CreateBusinessRequest) (*entity.Business, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Business, error)
	GetOwned(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error)
	ListActive(ctx context.Context, page, size int) ([]entity.Business, int64, error)
	Update(ctx context.Context, ownerID uuid.UUID, req *dto.UpdateBusinessRequest) (*entity.Business, error)
	SetActive(ctx context.Context, adminID, businessID uuid.UUID, active bool) error
}

type businessUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	businessRepo repository.BusinessRepository
	auditService service.AuditService
}

func NewBusinessUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	businessRepo repository.BusinessRepository,
	auditService service.AuditService,
) BusinessUsecase {
	return &businessUsecase{
		db:           db,
		log:          log,
		businessRepo: businessRepo,
		auditService: auditService,
	}
}

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the name and collapses non-alphanumeric runs to hyphens.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = slugCleaner.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func (u *businessUsecase) Create(ctx context.Context, ownerID uuid.UUID, req *dto.CreateBusinessRequest) (*entity.Business, error) {
	existing, err := u.businessRepo.FindByOwnerID(u.db.WithContext(ctx), ownerID)
	if err != nil {
		u.log.Warnf("Failed to check existing business: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrBusinessAlreadyExists
	}

	if req.Timezone != "" {
		if _, err := entity.LoadTimezone(req.Timezone); err != nil {
			return nil, ErrInvalidTimezone
		}
	}

	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Name)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	business := &entity.Business{
		OwnerID:             ownerID,
		Name:                req.Name,
		Slug:                slug,
		Description:         req.Description,
		PhoneNumber:         req.PhoneNumber,
		Address:             req.Address,
		Timezone:            req.Timezone,
		SlotDurationMinutes: req.SlotDurationMinutes,
		IsActive:            true,
	}
	if business.Timezone == "" {
		business.Timezone = "UTC"
	}
	if business.SlotDurationMinutes <= 0 {
		business.SlotDurationMinutes = entity.DefaultSlotDurationMinutes
	}

	if err := u.businessRepo.Create(tx, business); err != nil {
		if isDuplicateKeyError(err, "slug") {
			return nil, ErrSlugAlreadyExists
		}
		u.log.Warnf("Failed to create business: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogEntity(ctx, tx, &ownerID, entity.AuditActionBusinessCreate, "business", business.ID.String(), business.Slug); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return business, nil
}

func (u *businessUsecase) GetBySlug(ctx context.Context, slug string) (*entity.Business, error) {
	business, err := u.businessRepo.FindBySlug(u.db.WithContext(ctx), slug)
	if err != nil {
		u.log.Warnf("Failed to find business by slug: %+v", err)
		return nil, err
	}
	if business == nil || !business.IsActive {
		return nil, ErrBusinessNotFound
	}
	return business, nil
}

func (u *businessUsecase) GetOwned(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error) {
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

func (u *businessUsecase) ListActive(ctx context.Context, page, size int) ([]entity.Business, int64, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}
	businesses, total, err := u.businessRepo.FindAllActive(u.db.WithContext(ctx), size, (page-1)*size)
	if err != nil {
		u.log.Warnf("Failed to list businesses: %+v", err)
		return nil, 0, err
	}
	return businesses, total, nil
}

func (u *businessUsecase) Update(ctx context.Context, ownerID uuid.UUID, req *dto.UpdateBusinessRequest) (*entity.Business, error) {
	business, err := u.GetOwned(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		business.Name = *req.Name
	}
	if req.Description != nil {
		business.Description = *req.Description
	}
	if req.PhoneNumber != nil {
		business.PhoneNumber = *req.PhoneNumber
	}
	if req.Address != nil {
		business.Address = *req.Address
	}
	if req.Timezone != nil {
		if _, err := entity.LoadTimezone(*req.Timezone); err != nil {
			return nil, ErrInvalidTimezone
		}
		business.Timezone = *req.Timezone
	}
	if req.SlotDurationMinutes != nil {
		if *req.SlotDurationMinutes > 0 {
			business.SlotDurationMinutes = *req.SlotDurationMinutes
		}
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.businessRepo.Update(tx, business); err != nil {
		u.log.Warnf("Failed to update business: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogEntity(ctx, tx, &ownerID, entity.AuditActionBusinessUpdate, "business", business.ID.String(), business.Slug); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return business, nil
}

func (u *businessUsecase) SetActive(ctx context.Context, adminID, businessID uuid.UUID, active bool) error {
	business, err := u.businessRepo.FindByID(u.db.WithContext(ctx), businessID)
	if err != nil {
		u.log.Warnf("Failed to find business: %+v", err)
		return err
	}
	if business == nil {
		return ErrBusinessNotFound
	}

	business.IsActive = active

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.businessRepo.Update(tx, business); err != nil {
		u.log.Warnf("Failed to update business: %+v", err)
		return err
	}

	if err := u.auditService.LogEntity(ctx, tx, &adminID, entity.AuditActionBusinessUpdate, "business", business.ID.String(), active); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}
