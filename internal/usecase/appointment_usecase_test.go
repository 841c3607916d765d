package usecase

import (
	"errors"
	"io"
	"testing"
	"time"

	"go-booking-platform/internal/domain/entity"
	"go-booking-platform/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type stubWorkingHourRepo struct {
	repository.WorkingHourRepository
	hour *entity.WorkingHour
}

func (s *stubWorkingHourRepo) FindForDay(_ *gorm.DB, _ uuid.UUID, _ *uuid.UUID, _ int) (*entity.WorkingHour, error) {
	return s.hour, nil
}

type stubAppointmentRepo struct {
	repository.AppointmentRepository
	blocking  []entity.Appointment
	linkCalls int
}

func (s *stubAppointmentRepo) FindBlockingForRange(_ *gorm.DB, _ uuid.UUID, _ *uuid.UUID, _, _ time.Time) ([]entity.Appointment, error) {
	return s.blocking, nil
}

func (s *stubAppointmentRepo) SetPackagePurchase(_ *gorm.DB, _ uuid.UUID, _ *uuid.UUID) error {
	s.linkCalls++
	return nil
}

type stubUsageRepo struct {
	repository.SessionUsageRepository
	usage   *entity.SessionUsage
	deletes int
}

func (s *stubUsageRepo) FindByPurchaseAndAppointment(_ *gorm.DB, _, _ uuid.UUID) (*entity.SessionUsage, error) {
	return s.usage, nil
}

func (s *stubUsageRepo) Delete(_ *gorm.DB, _ uuid.UUID) error {
	s.deletes++
	return nil
}

type stubPurchaseRepo struct {
	repository.PackagePurchaseRepository
	updates int
}

func (s *stubPurchaseRepo) Update(_ *gorm.DB, _ *entity.PackagePurchase) error {
	s.updates++
	return nil
}

func slotUsecase(hour *entity.WorkingHour) *appointmentUsecase {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &appointmentUsecase{
		log:             log,
		workingHourRepo: &stubWorkingHourRepo{hour: hour},
		appointmentRepo: &stubAppointmentRepo{},
	}
}

// March 2, 2026 is a Monday.
func mondayContext() *slotContext {
	return &slotContext{
		business: &entity.Business{SlotDurationMinutes: 30},
		svc:      &entity.Service{DurationMinutes: 30},
		loc:      time.UTC,
		date:     time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestComputeSlots_ClosedDay(t *testing.T) {
	u := slotUsecase(nil)

	slots, err := u.computeSlots(nil, mondayContext(), time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots on a day without working hours, got %d", len(slots))
	}
}

func TestComputeSlots_InactiveTemplate(t *testing.T) {
	u := slotUsecase(&entity.WorkingHour{StartTime: "09:00", EndTime: "17:00", IsActive: false})

	slots, err := u.computeSlots(nil, mondayContext(), time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots for an inactive template, got %d", len(slots))
	}
}

func TestComputeSlots_MalformedWindow(t *testing.T) {
	u := slotUsecase(&entity.WorkingHour{StartTime: "9am", EndTime: "17:00", IsActive: true})

	slots, err := u.computeSlots(nil, mondayContext(), time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("malformed window must yield an empty day, got error: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots for a malformed window, got %d", len(slots))
	}
}

func TestComputeSlots_OpenDay(t *testing.T) {
	u := slotUsecase(&entity.WorkingHour{StartTime: "09:00", EndTime: "11:00", IsActive: true})

	slots, err := u.computeSlots(nil, mondayContext(), time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 4 {
		t.Fatalf("expected 4 slots in a two-hour window, got %d", len(slots))
	}
	want := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	if !slots[0].Equal(want) {
		t.Errorf("first slot = %v, want %v", slots[0], want)
	}
}

func TestRestoreSession_NoUsageLeavesPurchaseUntouched(t *testing.T) {
	purchaseRepo := &stubPurchaseRepo{}
	usageRepo := &stubUsageRepo{}
	appointmentRepo := &stubAppointmentRepo{}

	purchase := activePurchase(3)
	err := restoreSessionInTx(nil, purchaseRepo, usageRepo, appointmentRepo, purchase, uuid.New())
	if !errors.Is(err, ErrNoUsageFound) {
		t.Fatalf("expected ErrNoUsageFound, got %v", err)
	}

	if purchase.RemainingSessions != 3 || purchase.UsedSessions != 7 {
		t.Errorf("counters changed: remaining=%d used=%d", purchase.RemainingSessions, purchase.UsedSessions)
	}
	if purchaseRepo.updates != 0 || usageRepo.deletes != 0 || appointmentRepo.linkCalls != 0 {
		t.Error("no writes may happen when there is no usage to restore")
	}
}

func TestBuildAppointmentReport(t *testing.T) {
	businessID := uuid.New()
	from := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	counts := map[entity.AppointmentStatus]int64{
		entity.AppointmentStatusCompleted: 6,
		entity.AppointmentStatusCancelled: 2,
		entity.AppointmentStatusNoShow:    2,
	}

	report := buildAppointmentReport(businessID, from, to, counts, decimal.RequireFromString("450.50"))

	if report.Total != 10 {
		t.Errorf("total = %d, want 10", report.Total)
	}
	if report.ByStatus["completed"] != 6 {
		t.Errorf("completed = %d, want 6", report.ByStatus["completed"])
	}
	if report.NoShowRate != "20.0%" {
		t.Errorf("no-show rate = %q, want 20.0%%", report.NoShowRate)
	}
	if report.Revenue != "450.50" {
		t.Errorf("revenue = %q, want 450.50", report.Revenue)
	}
}

func TestBuildAppointmentReport_Empty(t *testing.T) {
	report := buildAppointmentReport(uuid.New(),
		time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		nil, decimal.Zero)

	if report.Total != 0 {
		t.Errorf("total = %d, want 0", report.Total)
	}
	if report.NoShowRate != "" {
		t.Errorf("no-show rate must be empty, got %q", report.NoShowRate)
	}
	if report.Revenue != "0.00" {
		t.Errorf("revenue = %q, want 0.00", report.Revenue)
	}
}
