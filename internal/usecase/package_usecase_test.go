package usecase

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"go-booking-platform/internal/domain/entity"

	"github.com/jackc/pgx/v5/pgconn"
)

func activePurchase(remaining int) *entity.PackagePurchase {
	total := 10
	return &entity.PackagePurchase{
		Status:            entity.PurchaseStatusActive,
		PaymentStatus:     entity.PaymentStatusPaid,
		TotalSessions:     total,
		UsedSessions:      total - remaining,
		RemainingSessions: remaining,
	}
}

func TestCheckConsumableActive(t *testing.T) {
	p := activePurchase(3)
	if err := checkConsumable(p, time.Now()); err != nil {
		t.Fatalf("expected consumable, got %v", err)
	}
}

func TestCheckConsumablePending(t *testing.T) {
	p := activePurchase(3)
	p.Status = entity.PurchaseStatusPending
	if err := checkConsumable(p, time.Now()); !errors.Is(err, ErrPurchaseNotActive) {
		t.Fatalf("expected ErrPurchaseNotActive, got %v", err)
	}
}

func TestCheckConsumableCompleted(t *testing.T) {
	p := activePurchase(0)
	p.Status = entity.PurchaseStatusCompleted
	if err := checkConsumable(p, time.Now()); !errors.Is(err, ErrPurchaseNotActive) {
		t.Fatalf("expected ErrPurchaseNotActive, got %v", err)
	}
}

func TestCheckConsumableAlreadyExpiredStatus(t *testing.T) {
	p := activePurchase(3)
	p.Status = entity.PurchaseStatusExpired
	if err := checkConsumable(p, time.Now()); !errors.Is(err, ErrPurchaseExpired) {
		t.Fatalf("expected ErrPurchaseExpired, got %v", err)
	}
}

func TestCheckConsumableLazyExpiry(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	expiry := now.Add(-time.Hour)

	p := activePurchase(3)
	p.ExpiryDate = &expiry

	err := checkConsumable(p, now)
	if !errors.Is(err, ErrPurchaseExpired) {
		t.Fatalf("expected ErrPurchaseExpired, got %v", err)
	}
	if p.Status != entity.PurchaseStatusExpired {
		t.Fatalf("expected status flipped to expired, got %s", p.Status)
	}
}

func TestCheckConsumableNotYetExpired(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	expiry := now.Add(time.Hour)

	p := activePurchase(3)
	p.ExpiryDate = &expiry

	if err := checkConsumable(p, now); err != nil {
		t.Fatalf("expected consumable, got %v", err)
	}
}

func TestCheckConsumableExhausted(t *testing.T) {
	p := activePurchase(0)
	if err := checkConsumable(p, time.Now()); !errors.Is(err, ErrNoRemainingSessions) {
		t.Fatalf("expected ErrNoRemainingSessions, got %v", err)
	}
}

func TestCheckConsumableExpiryBeatsExhaustion(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	expiry := now.Add(-time.Hour)

	p := activePurchase(0)
	p.ExpiryDate = &expiry

	if err := checkConsumable(p, now); !errors.Is(err, ErrPurchaseExpired) {
		t.Fatalf("expected ErrPurchaseExpired before exhaustion check, got %v", err)
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to entity.AppointmentStatus
		want     bool
	}{
		{entity.AppointmentStatusPending, entity.AppointmentStatusConfirmed, true},
		{entity.AppointmentStatusPending, entity.AppointmentStatusCancelled, true},
		{entity.AppointmentStatusPending, entity.AppointmentStatusCompleted, false},
		{entity.AppointmentStatusConfirmed, entity.AppointmentStatusCompleted, true},
		{entity.AppointmentStatusConfirmed, entity.AppointmentStatusNoShow, true},
		{entity.AppointmentStatusConfirmed, entity.AppointmentStatusCancelled, true},
		{entity.AppointmentStatusCancelled, entity.AppointmentStatusPending, false},
		{entity.AppointmentStatusCompleted, entity.AppointmentStatusNoShow, false},
		{entity.AppointmentStatusNoShow, entity.AppointmentStatusConfirmed, false},
	}
	for _, c := range cases {
		if got := canTransition(c.from, c.to); got != c.want {
			t.Errorf("canTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Ace Barbershop":      "ace-barbershop",
		"  Glow & Go Spa  ":   "glow-go-spa",
		"Studio-54":           "studio-54",
		"already-a-slug":      "already-a-slug",
		"Trailing Symbols!!!": "trailing-symbols",
		"Multiple   Spaces":   "multiple-spaces",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIsDuplicateKeyError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "idx_session_usages_purchase_appointment"}

	if !isDuplicateKeyError(dup, "purchase_appointment") {
		t.Error("expected match on unique violation with constraint substring")
	}
	if !isDuplicateKeyError(fmt.Errorf("create usage: %w", dup), "purchase_appointment") {
		t.Error("expected match through wrapped error")
	}
	if isDuplicateKeyError(dup, "users_email") {
		t.Error("did not expect match on a different constraint")
	}
	if isDuplicateKeyError(&pgconn.PgError{Code: "23503", ConstraintName: "purchase_appointment"}, "purchase_appointment") {
		t.Error("foreign key violation must not classify as duplicate")
	}
	if isDuplicateKeyError(errors.New("connection reset"), "purchase_appointment") {
		t.Error("plain error must not classify as duplicate")
	}
}

func TestIsForeignKeyError(t *testing.T) {
	fk := &pgconn.PgError{Code: "23503", ConstraintName: "package_purchases_package_id_fkey"}

	if !isForeignKeyError(fk, "package") {
		t.Error("expected match on foreign key violation")
	}
	if isForeignKeyError(fk, "customer") {
		t.Error("did not expect match on a different constraint")
	}
}
