package entity

import (
	"testing"
	"time"
)

func newActivePurchase(total, used int) *PackagePurchase {
	return &PackagePurchase{
		TotalSessions:     total,
		UsedSessions:      used,
		RemainingSessions: total - used,
		Status:            PurchaseStatusActive,
	}
}

func assertInvariant(t *testing.T, p *PackagePurchase) {
	t.Helper()
	if p.UsedSessions+p.RemainingSessions != p.TotalSessions {
		t.Fatalf("invariant broken: used=%d remaining=%d total=%d",
			p.UsedSessions, p.RemainingSessions, p.TotalSessions)
	}
}

func TestApplyConsume_CountersAndSessionNumber(t *testing.T) {
	p := newActivePurchase(5, 2)

	n := p.ApplyConsume()
	if n != 3 {
		t.Fatalf("expected session number 3, got %d", n)
	}
	if p.UsedSessions != 3 || p.RemainingSessions != 2 {
		t.Fatalf("expected used=3 remaining=2, got used=%d remaining=%d", p.UsedSessions, p.RemainingSessions)
	}
	if p.Status != PurchaseStatusActive {
		t.Fatalf("expected status to stay active, got %s", p.Status)
	}
	assertInvariant(t, p)
}

func TestApplyConsume_LastSessionCompletes(t *testing.T) {
	p := newActivePurchase(3, 2)

	n := p.ApplyConsume()
	if n != 3 {
		t.Fatalf("expected session number 3, got %d", n)
	}
	if p.Status != PurchaseStatusCompleted {
		t.Fatalf("expected status completed, got %s", p.Status)
	}
	assertInvariant(t, p)
}

func TestApplyRestore_RoundTrip(t *testing.T) {
	p := newActivePurchase(4, 1)

	p.ApplyConsume()
	p.ApplyRestore()

	if p.UsedSessions != 1 || p.RemainingSessions != 3 {
		t.Fatalf("round trip changed counters: used=%d remaining=%d", p.UsedSessions, p.RemainingSessions)
	}
	if p.Status != PurchaseStatusActive {
		t.Fatalf("expected status active after restore, got %s", p.Status)
	}
	assertInvariant(t, p)
}

func TestApplyRestore_ReactivatesCompletedPurchase(t *testing.T) {
	p := newActivePurchase(2, 1)

	p.ApplyConsume()
	if p.Status != PurchaseStatusCompleted {
		t.Fatalf("expected completed after last consume, got %s", p.Status)
	}

	p.ApplyRestore()
	if p.Status != PurchaseStatusActive {
		t.Fatalf("expected restore to reactivate purchase, got %s", p.Status)
	}
	if p.RemainingSessions != 1 {
		t.Fatalf("expected 1 remaining after restore, got %d", p.RemainingSessions)
	}
	assertInvariant(t, p)
}

func TestIsExpiredAt(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	p := newActivePurchase(5, 0)
	if p.IsExpiredAt(now) {
		t.Fatal("purchase without expiry date must never expire")
	}

	past := now.Add(-time.Hour)
	p.ExpiryDate = &past
	if !p.IsExpiredAt(now) {
		t.Fatal("expected purchase past its expiry date to be expired")
	}

	future := now.Add(time.Hour)
	p.ExpiryDate = &future
	if p.IsExpiredAt(now) {
		t.Fatal("purchase before its expiry date must not be expired")
	}
}

func TestActivate_StampsExpiryFromValidity(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	days := 30

	p := &PackagePurchase{Status: PurchaseStatusPending, PaymentStatus: PaymentStatusPending}
	p.Activate(now, &days)

	if p.Status != PurchaseStatusActive || p.PaymentStatus != PaymentStatusPaid {
		t.Fatalf("expected active/paid, got %s/%s", p.Status, p.PaymentStatus)
	}
	if p.ExpiryDate == nil || !p.ExpiryDate.Equal(now.AddDate(0, 0, 30)) {
		t.Fatalf("expected expiry 30 days out, got %v", p.ExpiryDate)
	}

	unlimited := &PackagePurchase{Status: PurchaseStatusPending}
	unlimited.Activate(now, nil)
	if unlimited.ExpiryDate != nil {
		t.Fatalf("expected no expiry without validity, got %v", unlimited.ExpiryDate)
	}
}
