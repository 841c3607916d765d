package entity

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseStatus represents the lifecycle status of a package purchase
type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "pending"
	PurchaseStatusActive    PurchaseStatus = "active"
	PurchaseStatusExpired   PurchaseStatus = "expired"
	PurchaseStatusCompleted PurchaseStatus = "completed"
)

// PaymentStatus represents the payment state of a package purchase
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// PackagePurchase is a customer's purchased bundle of prepaid sessions.
// Invariant: UsedSessions + RemainingSessions == TotalSessions at all times.
type PackagePurchase struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PackageID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"package_id"`
	CustomerID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"customer_id"`
	BusinessID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"business_id"`
	TotalSessions     int            `gorm:"not null" json:"total_sessions"`
	UsedSessions      int            `gorm:"not null;default:0" json:"used_sessions"`
	RemainingSessions int            `gorm:"not null" json:"remaining_sessions"`
	Status            PurchaseStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	PaymentStatus     PaymentStatus  `gorm:"type:varchar(20);not null;default:'pending'" json:"payment_status"`
	PurchaseDate      time.Time      `gorm:"not null" json:"purchase_date"`
	ExpiryDate        *time.Time     `gorm:"index" json:"expiry_date,omitempty"`
	CreatedAt         time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Package       Package        `gorm:"foreignKey:PackageID" json:"package,omitempty"`
	Customer      User           `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Business      Business       `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
	SessionUsages []SessionUsage `gorm:"foreignKey:PurchaseID" json:"session_usages,omitempty"`
}

func (PackagePurchase) TableName() string {
	return "package_purchases"
}

// IsActive checks if the purchase is in active status
func (p *PackagePurchase) IsActive() bool {
	return p.Status == PurchaseStatusActive
}

// IsExpiredAt reports whether the purchase has passed its expiry date.
// Expiry is detected lazily on read, there is no background sweeper.
func (p *PackagePurchase) IsExpiredAt(now time.Time) bool {
	return p.ExpiryDate != nil && p.ExpiryDate.Before(now)
}

// Activate transitions a pending purchase to active after payment
// confirmation and stamps the expiry date from the package validity.
func (p *PackagePurchase) Activate(now time.Time, validityDays *int) {
	p.Status = PurchaseStatusActive
	p.PaymentStatus = PaymentStatusPaid
	if validityDays != nil {
		expiry := now.AddDate(0, 0, *validityDays)
		p.ExpiryDate = &expiry
	}
}

// ApplyConsume moves one session from remaining to used and returns the
// session number for the usage row. When the last session is consumed the
// purchase transitions to completed. Preconditions (active status, expiry,
// remaining > 0) are the caller's responsibility.
func (p *PackagePurchase) ApplyConsume() int {
	p.UsedSessions++
	p.RemainingSessions--
	if p.RemainingSessions == 0 {
		p.Status = PurchaseStatusCompleted
	}
	return p.UsedSessions
}

// ApplyRestore reverses one prior consumption and forces the purchase back
// to active, even if it had completed or expired by calendar date. The next
// read re-applies lazy expiry.
func (p *PackagePurchase) ApplyRestore() {
	p.UsedSessions--
	p.RemainingSessions++
	p.Status = PurchaseStatusActive
}
