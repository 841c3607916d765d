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
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPackageNotFound         = errors.New("package not found")
	ErrPackageNotPurchasable   = errors.New("package is not available for purchase")
	ErrPurchaseNotFound        = errors.New("package purchase not found")
	ErrPurchaseNotOwned        = errors.New("purchase does not belong to this customer")
	ErrPurchaseNotActive       = errors.New("purchase is not active")
	ErrPurchaseExpired         = errors.New("purchase has expired")
	ErrNoRemainingSessions     = errors.New("no remaining sessions on this purchase")
	ErrSessionAlreadyConsumed  = errors.New("a session was already consumed for this appointment")
	ErrNoUsageFound            = errors.New("no session usage found for this appointment")
	ErrPaymentAlreadyConfirmed = errors.New("payment already confirmed")
)

type PackageUsecase interface {
	CreatePackage(ctx context.Context, ownerID uuid.UUID, req *dto.CreatePackageRequest) (*entity.Package, error)
	ListOwnedPackages(ctx context.Context, ownerID uuid.UUID) ([]entity.Package, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]entity.Package, error)
	UpdatePackage(ctx context.Context, ownerID, packageID uuid.UUID, req *dto.UpdatePackageRequest) (*entity.Package, error)
	DeletePackage(ctx context.Context, ownerID, packageID uuid.UUID) error

	Purchase(ctx context.Context, customerID uuid.UUID, req *dto.PurchasePackageRequest) (*entity.PackagePurchase, error)
	ConfirmPayment(ctx context.Context, ownerID, purchaseID uuid.UUID) (*entity.PackagePurchase, error)
	ListMyPurchases(ctx context.Context, customerID uuid.UUID) ([]entity.PackagePurchase, error)
	ListBusinessPurchases(ctx context.Context, ownerID uuid.UUID) ([]entity.PackagePurchase, error)
	GetPurchase(ctx context.Context, actorID, purchaseID uuid.UUID, ownerView bool) (*entity.PackagePurchase, error)

	ConsumeSession(ctx context.Context, customerID uuid.UUID, req *dto.ConsumeSessionRequest) (*entity.SessionUsage, *entity.PackagePurchase, error)
	RestoreSession(ctx context.Context, customerID uuid.UUID, req *dto.RestoreSessionRequest) (*entity.PackagePurchase, error)
}

type packageUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	packageRepo     repository.PackageRepository
	purchaseRepo    repository.PackagePurchaseRepository
	usageRepo       repository.SessionUsageRepository
	appointmentRepo repository.AppointmentRepository
	businessRepo    repository.BusinessRepository
	serviceRepo     repository.ServiceRepository
	auditService    service.AuditService
}

func NewPackageUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	packageRepo repository.PackageRepository,
	purchaseRepo repository.PackagePurchaseRepository,
	usageRepo repository.SessionUsageRepository,
	appointmentRepo repository.AppointmentRepository,
	businessRepo repository.BusinessRepository,
	serviceRepo repository.ServiceRepository,
	auditService service.AuditService,
) PackageUsecase {
	return &packageUsecase{
		db:              db,
		log:             log,
		packageRepo:     packageRepo,
		purchaseRepo:    purchaseRepo,
		usageRepo:       usageRepo,
		appointmentRepo: appointmentRepo,
		businessRepo:    businessRepo,
		serviceRepo:     serviceRepo,
		auditService:    auditService,
	}
}

// checkConsumable evaluates whether a session can be drawn from the purchase.
// When the purchase is past its expiry date but still marked active, its
// status is flipped to expired in place; the caller must persist that
// transition even though the consume itself fails.
func checkConsumable(p *entity.PackagePurchase, now time.Time) error {
	switch p.Status {
	case entity.PurchaseStatusActive:
	case entity.PurchaseStatusExpired:
		return ErrPurchaseExpired
	default:
		return ErrPurchaseNotActive
	}
	if p.IsExpiredAt(now) {
		p.Status = entity.PurchaseStatusExpired
		return ErrPurchaseExpired
	}
	if p.RemainingSessions <= 0 {
		return ErrNoRemainingSessions
	}
	return nil
}

// consumeSessionInTx performs the full consume against a row already locked
// with FOR UPDATE. It mutates the purchase counters, records the usage row
// and links the appointment to the purchase, all on the caller's transaction.
func consumeSessionInTx(
	tx *gorm.DB,
	purchaseRepo repository.PackagePurchaseRepository,
	usageRepo repository.SessionUsageRepository,
	appointmentRepo repository.AppointmentRepository,
	purchase *entity.PackagePurchase,
	appointmentID uuid.UUID,
	now time.Time,
) (*entity.SessionUsage, error) {
	if err := checkConsumable(purchase, now); err != nil {
		return nil, err
	}

	existing, err := usageRepo.FindByPurchaseAndAppointment(tx, purchase.ID, appointmentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSessionAlreadyConsumed
	}

	sessionNumber := purchase.ApplyConsume()
	usage := &entity.SessionUsage{
		PurchaseID:    purchase.ID,
		AppointmentID: appointmentID,
		SessionNumber: sessionNumber,
		UsedAt:        now,
	}
	if err := usageRepo.Create(tx, usage); err != nil {
		// The unique index on (purchase_id, appointment_id) closes the
		// race between the existence check and the insert.
		if isDuplicateKeyError(err, "purchase_appointment") {
			return nil, ErrSessionAlreadyConsumed
		}
		return nil, err
	}

	if err := purchaseRepo.Update(tx, purchase); err != nil {
		return nil, err
	}
	if err := appointmentRepo.SetPackagePurchase(tx, appointmentID, &purchase.ID); err != nil {
		return nil, err
	}
	return usage, nil
}

// restoreSessionInTx undoes a prior consume on the caller's transaction. The
// purchase must already be locked with FOR UPDATE. Restoring always forces
// the purchase back to active, reviving completed and expired purchases
// alike: the returned session is usable again immediately.
func restoreSessionInTx(
	tx *gorm.DB,
	purchaseRepo repository.PackagePurchaseRepository,
	usageRepo repository.SessionUsageRepository,
	appointmentRepo repository.AppointmentRepository,
	purchase *entity.PackagePurchase,
	appointmentID uuid.UUID,
) error {
	usage, err := usageRepo.FindByPurchaseAndAppointment(tx, purchase.ID, appointmentID)
	if err != nil {
		return err
	}
	if usage == nil {
		return ErrNoUsageFound
	}

	if err := usageRepo.Delete(tx, usage.ID); err != nil {
		return err
	}

	purchase.ApplyRestore()
	if err := purchaseRepo.Update(tx, purchase); err != nil {
		return err
	}
	return appointmentRepo.SetPackagePurchase(tx, appointmentID, nil)
}

func (u *packageUsecase) ownedBusiness(ctx context.Context, ownerID uuid.UUID) (*entity.Business, error) {
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

func (u *packageUsecase) CreatePackage(ctx context.Context, ownerID uuid.UUID, req *dto.CreatePackageRequest) (*entity.Package, error) {
	business, err := u.ownedBusiness(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	var serviceID *uuid.UUID
	if req.ServiceID != "" {
		id, err := uuid.Parse(req.ServiceID)
		if err != nil {
			return nil, ErrServiceNotFound
		}
		svc, err := u.serviceRepo.FindByID(u.db.WithContext(ctx), id)
		if err != nil {
			return nil, err
		}
		if svc == nil || svc.BusinessID != business.ID {
			return nil, ErrServiceNotFound
		}
		serviceID = &id
	}

	pkg := &entity.Package{
		BusinessID:   business.ID,
		ServiceID:    serviceID,
		Name:         req.Name,
		Description:  req.Description,
		SessionCount: req.SessionCount,
		Price:        price,
		ValidityDays: req.ValidityDays,
		IsActive:     true,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.packageRepo.Create(tx, pkg); err != nil {
		u.log.Warnf("Failed to create package: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogEntity(ctx, tx, &ownerID, entity.AuditActionPackageCreate, "package", pkg.ID.String(), pkg.Name); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return pkg, nil
}

func (u *packageUsecase) ListOwnedPackages(ctx context.Context, ownerID uuid.UUID) ([]entity.Package, error) {
	business, err := u.ownedBusiness(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	packages, err := u.packageRepo.FindByBusinessID(u.db.WithContext(ctx), business.ID, false)
	if err != nil {
		u.log.Warnf("Failed to list packages: %+v", err)
		return nil, err
	}
	return packages, nil
}

func (u *packageUsecase) ListByBusiness(ctx context.Context, businessID uuid.UUID) ([]entity.Package, error) {
	packages, err := u.packageRepo.FindByBusinessID(u.db.WithContext(ctx), businessID, true)
	if err != nil {
		u.log.Warnf("Failed to list packages: %+v", err)
		return nil, err
	}
	return packages, nil
}

func (u *packageUsecase) UpdatePackage(ctx context.Context, ownerID, packageID uuid.UUID, req *dto.UpdatePackageRequest) (*entity.Package, error) {
	business, err := u.ownedBusiness(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	pkg, err := u.packageRepo.FindByID(u.db.WithContext(ctx), packageID)
	if err != nil {
		u.log.Warnf("Failed to find package: %+v", err)
		return nil, err
	}
	if pkg == nil || pkg.BusinessID != business.ID {
		return nil, ErrPackageNotFound
	}

	if req.Name != nil {
		pkg.Name = *req.Name
	}
	if req.Description != nil {
		pkg.Description = *req.Description
	}
	if req.Price != nil {
		price, err := decimal.NewFromString(*req.Price)
		if err != nil || price.IsNegative() {
			return nil, ErrInvalidPrice
		}
		pkg.Price = price
	}
	if req.ValidityDays != nil {
		pkg.ValidityDays = req.ValidityDays
	}
	if req.IsActive != nil {
		pkg.IsActive = *req.IsActive
	}

	if err := u.packageRepo.Update(u.db.WithContext(ctx), pkg); err != nil {
		u.log.Warnf("Failed to update package: %+v", err)
		return nil, err
	}
	return pkg, nil
}

func (u *packageUsecase) DeletePackage(ctx context.Context, ownerID, packageID uuid.UUID) error {
	business, err := u.ownedBusiness(ctx, ownerID)
	if err != nil {
		return err
	}

	pkg, err := u.packageRepo.FindByID(u.db.WithContext(ctx), packageID)
	if err != nil {
		u.log.Warnf("Failed to find package: %+v", err)
		return err
	}
	if pkg == nil || pkg.BusinessID != business.ID {
		return ErrPackageNotFound
	}

	// Soft delete via deactivation keeps historical purchases resolvable.
	pkg.IsActive = false
	if err := u.packageRepo.Update(u.db.WithContext(ctx), pkg); err != nil {
		u.log.Warnf("Failed to deactivate package: %+v", err)
		return err
	}
	return nil
}

func (u *packageUsecase) Purchase(ctx context.Context, customerID uuid.UUID, req *dto.PurchasePackageRequest) (*entity.PackagePurchase, error) {
	packageID, err := uuid.Parse(req.PackageID)
	if err != nil {
		return nil, ErrPackageNotFound
	}

	pkg, err := u.packageRepo.FindByID(u.db.WithContext(ctx), packageID)
	if err != nil {
		u.log.Warnf("Failed to find package: %+v", err)
		return nil, err
	}
	if pkg == nil {
		return nil, ErrPackageNotFound
	}
	if !pkg.IsActive {
		return nil, ErrPackageNotPurchasable
	}

	business, err := u.businessRepo.FindByID(u.db.WithContext(ctx), pkg.BusinessID)
	if err != nil {
		return nil, err
	}
	if business == nil || !business.IsActive {
		return nil, ErrBusinessNotFound
	}

	purchase := &entity.PackagePurchase{
		PackageID:         pkg.ID,
		CustomerID:        customerID,
		BusinessID:        pkg.BusinessID,
		TotalSessions:     pkg.SessionCount,
		UsedSessions:      0,
		RemainingSessions: pkg.SessionCount,
		Status:            entity.PurchaseStatusPending,
		PaymentStatus:     entity.PaymentStatusPending,
		PurchaseDate:      time.Now(),
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.purchaseRepo.Create(tx, purchase); err != nil {
		if isForeignKeyError(err, "package") {
			return nil, ErrPackageNotFound
		}
		u.log.Warnf("Failed to create purchase: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogEntity(ctx, tx, &customerID, entity.AuditActionPackagePurchase, "package_purchase", purchase.ID.String(), pkg.Name); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return purchase, nil
}

// ConfirmPayment marks the purchase paid and activates it. The validity
// window starts counting from activation, not from the purchase date.
func (u *packageUsecase) ConfirmPayment(ctx context.Context, ownerID, purchaseID uuid.UUID) (*entity.PackagePurchase, error) {
	business, err := u.ownedBusiness(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	purchase, err := u.purchaseRepo.FindByIDForUpdate(tx, purchaseID)
	if err != nil {
		u.log.Warnf("Failed to lock purchase: %+v", err)
		return nil, err
	}
	if purchase == nil || purchase.BusinessID != business.ID {
		return nil, ErrPurchaseNotFound
	}
	if purchase.PaymentStatus == entity.PaymentStatusPaid {
		return nil, ErrPaymentAlreadyConfirmed
	}

	pkg, err := u.packageRepo.FindByID(tx, purchase.PackageID)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, ErrPackageNotFound
	}

	purchase.Activate(time.Now(), pkg.ValidityDays)

	if err := u.purchaseRepo.Update(tx, purchase); err != nil {
		u.log.Warnf("Failed to update purchase: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogEntity(ctx, tx, &ownerID, entity.AuditActionPaymentConfirm, "package_purchase", purchase.ID.String(), nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return purchase, nil
}

func (u *packageUsecase) ListMyPurchases(ctx context.Context, customerID uuid.UUID) ([]entity.PackagePurchase, error) {
	purchases, err := u.purchaseRepo.FindByCustomerID(u.db.WithContext(ctx), customerID)
	if err != nil {
		u.log.Warnf("Failed to list purchases: %+v", err)
		return nil, err
	}
	u.applyLazyExpiry(ctx, purchases)
	return purchases, nil
}

func (u *packageUsecase) ListBusinessPurchases(ctx context.Context, ownerID uuid.UUID) ([]entity.PackagePurchase, error) {
	business, err := u.ownedBusiness(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	purchases, err := u.purchaseRepo.FindByBusinessID(u.db.WithContext(ctx), business.ID)
	if err != nil {
		u.log.Warnf("Failed to list purchases: %+v", err)
		return nil, err
	}
	u.applyLazyExpiry(ctx, purchases)
	return purchases, nil
}

func (u *packageUsecase) GetPurchase(ctx context.Context, actorID, purchaseID uuid.UUID, ownerView bool) (*entity.PackagePurchase, error) {
	purchase, err := u.purchaseRepo.FindByID(u.db.WithContext(ctx), purchaseID)
	if err != nil {
		u.log.Warnf("Failed to find purchase: %+v", err)
		return nil, err
	}
	if purchase == nil {
		return nil, ErrPurchaseNotFound
	}

	if ownerView {
		business, err := u.ownedBusiness(ctx, actorID)
		if err != nil {
			return nil, err
		}
		if purchase.BusinessID != business.ID {
			return nil, ErrPurchaseNotFound
		}
	} else if purchase.CustomerID != actorID {
		return nil, ErrPurchaseNotFound
	}

	if purchase.Status == entity.PurchaseStatusActive && purchase.IsExpiredAt(time.Now()) {
		purchase.Status = entity.PurchaseStatusExpired
		if err := u.purchaseRepo.Update(u.db.WithContext(ctx), purchase); err != nil {
			u.log.Warnf("Failed to persist expiry transition: %+v", err)
		}
	}
	return purchase, nil
}

// applyLazyExpiry flips active purchases whose expiry date has passed to
// expired, persisting the transition. There is no background sweeper; reads
// and consume attempts are the only places expiry materializes.
func (u *packageUsecase) applyLazyExpiry(ctx context.Context, purchases []entity.PackagePurchase) {
	now := time.Now()
	for i := range purchases {
		p := &purchases[i]
		if p.Status != entity.PurchaseStatusActive || !p.IsExpiredAt(now) {
			continue
		}
		p.Status = entity.PurchaseStatusExpired
		if err := u.purchaseRepo.Update(u.db.WithContext(ctx), p); err != nil {
			u.log.Warnf("Failed to persist expiry transition: %+v", err)
		}
	}
}

func (u *packageUsecase) ConsumeSession(ctx context.Context, customerID uuid.UUID, req *dto.ConsumeSessionRequest) (*entity.SessionUsage, *entity.PackagePurchase, error) {
	purchaseID, err := uuid.Parse(req.PurchaseID)
	if err != nil {
		return nil, nil, ErrPurchaseNotFound
	}
	appointmentID, err := uuid.Parse(req.AppointmentID)
	if err != nil {
		return nil, nil, ErrAppointmentNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	purchase, err := u.purchaseRepo.FindByIDForUpdate(tx, purchaseID)
	if err != nil {
		u.log.Warnf("Failed to lock purchase: %+v", err)
		return nil, nil, err
	}
	if purchase == nil {
		return nil, nil, ErrPurchaseNotFound
	}
	if purchase.CustomerID != customerID {
		return nil, nil, ErrPurchaseNotOwned
	}

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		return nil, nil, err
	}
	if appointment == nil || appointment.CustomerID != customerID || appointment.BusinessID != purchase.BusinessID {
		return nil, nil, ErrAppointmentNotFound
	}

	prevStatus := purchase.Status
	now := time.Now()
	usage, err := consumeSessionInTx(tx, u.purchaseRepo, u.usageRepo, u.appointmentRepo, purchase, appointmentID, now)
	if err != nil {
		// The lazy expiry transition outlives the failed consume.
		if errors.Is(err, ErrPurchaseExpired) && purchase.Status != prevStatus {
			if updateErr := u.purchaseRepo.Update(tx, purchase); updateErr == nil {
				if commitErr := tx.Commit().Error; commitErr != nil {
					u.log.Warnf("Failed commit expiry transition: %+v", commitErr)
				}
			}
		}
		return nil, nil, err
	}

	if err := u.auditService.LogEntity(ctx, tx, &customerID, entity.AuditActionSessionConsume, "package_purchase", purchase.ID.String(), usage.SessionNumber); err != nil {
		return nil, nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, nil, err
	}
	return usage, purchase, nil
}

func (u *packageUsecase) RestoreSession(ctx context.Context, customerID uuid.UUID, req *dto.RestoreSessionRequest) (*entity.PackagePurchase, error) {
	purchaseID, err := uuid.Parse(req.PurchaseID)
	if err != nil {
		return nil, ErrPurchaseNotFound
	}
	appointmentID, err := uuid.Parse(req.AppointmentID)
	if err != nil {
		return nil, ErrAppointmentNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	purchase, err := u.purchaseRepo.FindByIDForUpdate(tx, purchaseID)
	if err != nil {
		u.log.Warnf("Failed to lock purchase: %+v", err)
		return nil, err
	}
	if purchase == nil {
		return nil, ErrPurchaseNotFound
	}
	if purchase.CustomerID != customerID {
		return nil, ErrPurchaseNotOwned
	}

	if err := restoreSessionInTx(tx, u.purchaseRepo, u.usageRepo, u.appointmentRepo, purchase, appointmentID); err != nil {
		return nil, err
	}

	if err := u.auditService.LogEntity(ctx, tx, &customerID, entity.AuditActionSessionRestore, "package_purchase", purchase.ID.String(), nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return purchase, nil
}
