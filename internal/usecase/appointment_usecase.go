package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-booking-platform/internal/availability"
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
	ErrAppointmentNotFound      = errors.New("appointment not found")
	ErrSlotUnavailable          = errors.New("requested slot is not available")
	ErrInvalidDate              = errors.New("invalid date")
	ErrInvalidStatusTransition  = errors.New("invalid appointment status transition")
	ErrAppointmentNotCancelable = errors.New("appointment can no longer be cancelled")
	ErrPackageServiceMismatch   = errors.New("package is not valid for this service")
)

type AppointmentUsecase interface {
	GetAvailableSlots(ctx context.Context, req *dto.AvailableSlotsRequest) (*dto.AvailableSlotsResponse, error)
	Create(ctx context.Context, customerID uuid.UUID, req *dto.CreateAppointmentRequest) (*entity.Appointment, error)
	Cancel(ctx context.Context, actorID, appointmentID uuid.UUID, ownerView bool) (*entity.Appointment, error)
	UpdateStatus(ctx context.Context, ownerID, appointmentID uuid.UUID, status entity.AppointmentStatus) (*entity.Appointment, error)
	ListMine(ctx context.Context, customerID uuid.UUID) ([]entity.Appointment, error)
	ListOwned(ctx context.Context, ownerID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	GetByID(ctx context.Context, actorID, appointmentID uuid.UUID, ownerView bool) (*entity.Appointment, error)
	Report(ctx context.Context, ownerID uuid.UUID, from, to time.Time) (*dto.AppointmentReportResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	businessRepo    repository.BusinessRepository
	serviceRepo     repository.ServiceRepository
	staffRepo       repository.StaffRepository
	workingHourRepo repository.WorkingHourRepository
	packageRepo     repository.PackageRepository
	purchaseRepo    repository.PackagePurchaseRepository
	usageRepo       repository.SessionUsageRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	businessRepo repository.BusinessRepository,
	serviceRepo repository.ServiceRepository,
	staffRepo repository.StaffRepository,
	workingHourRepo repository.WorkingHourRepository,
	packageRepo repository.PackageRepository,
	purchaseRepo repository.PackagePurchaseRepository,
	usageRepo repository.SessionUsageRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		businessRepo:    businessRepo,
		serviceRepo:     serviceRepo,
		staffRepo:       staffRepo,
		workingHourRepo: workingHourRepo,
		packageRepo:     packageRepo,
		purchaseRepo:    purchaseRepo,
		usageRepo:       usageRepo,
		auditService:    auditService,
	}
}

// slotContext is everything needed to compute availability for one day.
type slotContext struct {
	business *entity.Business
	svc      *entity.Service
	staffID  *uuid.UUID
	loc      *time.Location
	date     time.Time
}

func (u *appointmentUsecase) resolveSlotContext(ctx context.Context, businessSlug, serviceID, staffID, date string) (*slotContext, error) {
	db := u.db.WithContext(ctx)

	business, err := u.businessRepo.FindBySlug(db, businessSlug)
	if err != nil {
		u.log.Warnf("Failed to find business by slug: %+v", err)
		return nil, err
	}
	if business == nil || !business.IsActive {
		return nil, ErrBusinessNotFound
	}

	loc, err := business.Location()
	if err != nil {
		return nil, ErrInvalidTimezone
	}

	svcID, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, ErrServiceNotFound
	}
	svc, err := u.serviceRepo.FindByID(db, svcID)
	if err != nil {
		return nil, err
	}
	if svc == nil || svc.BusinessID != business.ID || !svc.IsActive {
		return nil, ErrServiceNotFound
	}

	var staffRef *uuid.UUID
	if staffID != "" {
		id, err := uuid.Parse(staffID)
		if err != nil {
			return nil, ErrStaffNotFound
		}
		staff, err := u.staffRepo.FindByID(db, id)
		if err != nil {
			return nil, err
		}
		if staff == nil || staff.BusinessID != business.ID || !staff.IsActive {
			return nil, ErrStaffNotFound
		}
		staffRef = &id
	}

	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, ErrInvalidDate
	}

	return &slotContext{
		business: business,
		svc:      svc,
		staffID:  staffRef,
		loc:      loc,
		date:     day,
	}, nil
}

// computeSlots runs the availability calculation for the resolved context on
// the given DB handle, so booking can re-check on its own transaction.
func (u *appointmentUsecase) computeSlots(db *gorm.DB, sc *slotContext, now time.Time) ([]time.Time, error) {
	hour, err := u.workingHourRepo.FindForDay(db, sc.business.ID, sc.staffID, int(sc.date.Weekday()))
	if err != nil {
		u.log.Warnf("Failed to find working hours: %+v", err)
		return nil, err
	}
	if hour == nil || !hour.IsActive {
		return nil, nil
	}

	windowStart, windowEnd, err := hour.Window(sc.date, sc.loc)
	if err != nil {
		u.log.Warnf("Malformed working hour window: %+v", err)
		return nil, nil
	}

	blocking, err := u.appointmentRepo.FindBlockingForRange(db, sc.business.ID, sc.staffID, windowStart, windowEnd)
	if err != nil {
		u.log.Warnf("Failed to find blocking appointments: %+v", err)
		return nil, err
	}
	busy := make([]availability.Interval, 0, len(blocking))
	for _, a := range blocking {
		busy = append(busy, availability.Interval{Start: a.StartTime, End: a.EndTime})
	}

	return availability.Slots(windowStart, windowEnd, sc.svc.Duration(), sc.business.SlotDuration(), busy, now), nil
}

func (u *appointmentUsecase) GetAvailableSlots(ctx context.Context, req *dto.AvailableSlotsRequest) (*dto.AvailableSlotsResponse, error) {
	sc, err := u.resolveSlotContext(ctx, req.BusinessSlug, req.ServiceID, req.StaffID, req.Date)
	if err != nil {
		return nil, err
	}

	slots, err := u.computeSlots(u.db.WithContext(ctx), sc, time.Now().In(sc.loc))
	if err != nil {
		return nil, err
	}

	return &dto.AvailableSlotsResponse{
		BusinessSlug: req.BusinessSlug,
		ServiceID:    sc.svc.ID,
		Date:         req.Date,
		Timezone:     sc.business.Timezone,
		Slots:        availability.FormatSlots(slots),
	}, nil
}

func (u *appointmentUsecase) Create(ctx context.Context, customerID uuid.UUID, req *dto.CreateAppointmentRequest) (*entity.Appointment, error) {
	sc, err := u.resolveSlotContext(ctx, req.BusinessSlug, req.ServiceID, req.StaffID, req.Date)
	if err != nil {
		return nil, err
	}

	startClock, err := time.ParseInLocation("15:04", req.StartTime, sc.loc)
	if err != nil {
		return nil, ErrInvalidDate
	}
	start := time.Date(sc.date.Year(), sc.date.Month(), sc.date.Day(),
		startClock.Hour(), startClock.Minute(), 0, 0, sc.loc)
	end := start.Add(sc.svc.Duration())

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// Recompute on the transaction so a concurrent booking of the same
	// slot is caught before insert.
	slots, err := u.computeSlots(tx, sc, time.Now().In(sc.loc))
	if err != nil {
		return nil, err
	}
	offered := false
	for _, s := range slots {
		if s.Equal(start) {
			offered = true
			break
		}
	}
	if !offered {
		return nil, ErrSlotUnavailable
	}

	appointment := &entity.Appointment{
		BusinessID: sc.business.ID,
		CustomerID: customerID,
		ServiceID:  sc.svc.ID,
		StaffID:    sc.staffID,
		StartTime:  start,
		EndTime:    end,
		Status:     entity.AppointmentStatusPending,
		Notes:      req.Notes,
	}
	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if req.PackagePurchaseID != "" {
		purchaseID, err := uuid.Parse(req.PackagePurchaseID)
		if err != nil {
			return nil, ErrPurchaseNotFound
		}
		if err := u.consumeForBooking(tx, purchaseID, customerID, appointment); err != nil {
			return nil, err
		}
	}

	if err := u.auditService.LogEntity(ctx, tx, &customerID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), start.Format(time.RFC3339)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return appointment, nil
}

// consumeForBooking draws one session from the purchase as part of the
// booking transaction. Any ledger failure aborts the booking as a whole.
func (u *appointmentUsecase) consumeForBooking(tx *gorm.DB, purchaseID, customerID uuid.UUID, appointment *entity.Appointment) error {
	purchase, err := u.purchaseRepo.FindByIDForUpdate(tx, purchaseID)
	if err != nil {
		u.log.Warnf("Failed to lock purchase: %+v", err)
		return err
	}
	if purchase == nil {
		return ErrPurchaseNotFound
	}
	if purchase.CustomerID != customerID {
		return ErrPurchaseNotOwned
	}
	if purchase.BusinessID != appointment.BusinessID {
		return ErrPackageServiceMismatch
	}

	pkg, err := u.packageRepo.FindByID(tx, purchase.PackageID)
	if err != nil {
		return err
	}
	if pkg != nil && pkg.ServiceID != nil && *pkg.ServiceID != appointment.ServiceID {
		return ErrPackageServiceMismatch
	}

	_, err = consumeSessionInTx(tx, u.purchaseRepo, u.usageRepo, u.appointmentRepo, purchase, appointment.ID, time.Now())
	if err != nil {
		return err
	}
	appointment.PackagePurchaseID = &purchase.ID
	return nil
}

// Cancel releases the slot and, when the appointment was paid with a package
// session, restores that session in the same transaction.
func (u *appointmentUsecase) Cancel(ctx context.Context, actorID, appointmentID uuid.UUID, ownerView bool) (*entity.Appointment, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.findAuthorized(tx, actorID, appointmentID, ownerView)
	if err != nil {
		return nil, err
	}
	if !appointment.IsCancellable() {
		return nil, ErrAppointmentNotCancelable
	}

	if err := u.appointmentRepo.UpdateStatus(tx, appointment.ID, entity.AppointmentStatusCancelled); err != nil {
		u.log.Warnf("Failed to cancel appointment: %+v", err)
		return nil, err
	}
	appointment.Status = entity.AppointmentStatusCancelled

	if appointment.PackagePurchaseID != nil {
		purchase, err := u.purchaseRepo.FindByIDForUpdate(tx, *appointment.PackagePurchaseID)
		if err != nil {
			u.log.Warnf("Failed to lock purchase: %+v", err)
			return nil, err
		}
		if purchase == nil {
			return nil, ErrPurchaseNotFound
		}
		switch restoreErr := restoreSessionInTx(tx, u.purchaseRepo, u.usageRepo, u.appointmentRepo, purchase, appointment.ID); {
		case restoreErr == nil:
			// restoreSessionInTx cleared the stored link; mirror it here.
			appointment.PackagePurchaseID = nil
		case errors.Is(restoreErr, ErrNoUsageFound):
			// Nothing was consumed for this appointment, so the stored
			// link stays and the returned row must agree with it.
		default:
			return nil, restoreErr
		}
	}

	if err := u.auditService.LogEntity(ctx, tx, &actorID, entity.AuditActionAppointmentCancel, "appointment", appointment.ID.String(), nil); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return appointment, nil
}

// validTransitions encodes the appointment lifecycle. Cancelled, completed
// and no-show are terminal.
var validTransitions = map[entity.AppointmentStatus][]entity.AppointmentStatus{
	entity.AppointmentStatusPending:   {entity.AppointmentStatusConfirmed, entity.AppointmentStatusCancelled},
	entity.AppointmentStatusConfirmed: {entity.AppointmentStatusCompleted, entity.AppointmentStatusNoShow, entity.AppointmentStatusCancelled},
}

func canTransition(from, to entity.AppointmentStatus) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (u *appointmentUsecase) UpdateStatus(ctx context.Context, ownerID, appointmentID uuid.UUID, status entity.AppointmentStatus) (*entity.Appointment, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.findAuthorized(tx, ownerID, appointmentID, true)
	if err != nil {
		return nil, err
	}
	if !canTransition(appointment.Status, status) {
		return nil, ErrInvalidStatusTransition
	}

	if err := u.appointmentRepo.UpdateStatus(tx, appointment.ID, status); err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return nil, err
	}
	appointment.Status = status

	action := entity.AuditActionAppointmentStatus
	if status == entity.AppointmentStatusConfirmed {
		action = entity.AuditActionAppointmentConfirm
	}
	if err := u.auditService.LogEntity(ctx, tx, &ownerID, action, "appointment", appointment.ID.String(), string(status)); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return appointment, nil
}

func (u *appointmentUsecase) ListMine(ctx context.Context, customerID uuid.UUID) ([]entity.Appointment, error) {
	appointments, err := u.appointmentRepo.FindByCustomerID(u.db.WithContext(ctx), customerID)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return appointments, nil
}

func (u *appointmentUsecase) ListOwned(ctx context.Context, ownerID uuid.UUID, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	business, err := u.businessRepo.FindByOwnerID(u.db.WithContext(ctx), ownerID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}
	appointments, err := u.appointmentRepo.FindByBusiness(u.db.WithContext(ctx), business.ID, filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}
	return appointments, nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, actorID, appointmentID uuid.UUID, ownerView bool) (*entity.Appointment, error) {
	return u.findAuthorized(u.db.WithContext(ctx), actorID, appointmentID, ownerView)
}

func (u *appointmentUsecase) findAuthorized(db *gorm.DB, actorID, appointmentID uuid.UUID, ownerView bool) (*entity.Appointment, error) {
	appointment, err := u.appointmentRepo.FindByID(db, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if ownerView {
		business, err := u.businessRepo.FindByOwnerID(db, actorID)
		if err != nil {
			return nil, err
		}
		if business == nil || appointment.BusinessID != business.ID {
			return nil, ErrAppointmentNotFound
		}
	} else if appointment.CustomerID != actorID {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}

func (u *appointmentUsecase) Report(ctx context.Context, ownerID uuid.UUID, from, to time.Time) (*dto.AppointmentReportResponse, error) {
	business, err := u.businessRepo.FindByOwnerID(u.db.WithContext(ctx), ownerID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, ErrBusinessNotFound
	}

	counts, err := u.appointmentRepo.CountByStatus(u.db.WithContext(ctx), business.ID, from, to)
	if err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}

	revenue, err := u.appointmentRepo.CompletedRevenue(u.db.WithContext(ctx), business.ID, from, to)
	if err != nil {
		u.log.Warnf("Failed to sum revenue: %+v", err)
		return nil, err
	}

	return buildAppointmentReport(business.ID, from, to, counts, revenue), nil
}

// buildAppointmentReport assembles the owner report from the per-status
// counts and the completed-appointment revenue for the window.
func buildAppointmentReport(businessID uuid.UUID, from, to time.Time, counts map[entity.AppointmentStatus]int64, revenue decimal.Decimal) *dto.AppointmentReportResponse {
	report := &dto.AppointmentReportResponse{
		BusinessID: businessID,
		From:       from.Format("2006-01-02"),
		To:         to.Format("2006-01-02"),
		ByStatus:   make(map[string]int64, len(counts)),
		Revenue:    revenue.StringFixed(2),
	}
	for status, n := range counts {
		report.ByStatus[string(status)] = n
		report.Total += n
	}
	if report.Total > 0 {
		noShow := counts[entity.AppointmentStatusNoShow]
		report.NoShowRate = fmt.Sprintf("%.1f%%", float64(noShow)/float64(report.Total)*100)
	}
	return report
}
