package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionUsage is one consumption event against a package purchase. The pair
// (PurchaseID, AppointmentID) is unique: a single appointment can consume at
// most one session from a given purchase. Deleting this row is the sole
// mechanism for restoring a session.
type SessionUsage struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PurchaseID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_session_usages_purchase_appointment,priority:1" json:"purchase_id"`
	AppointmentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_session_usages_purchase_appointment,priority:2;index" json:"appointment_id"`
	SessionNumber int       `gorm:"not null" json:"session_number"`
	UsedAt        time.Time `gorm:"not null" json:"used_at"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Purchase    PackagePurchase `gorm:"foreignKey:PurchaseID" json:"purchase,omitempty"`
	Appointment Appointment     `gorm:"foreignKey:AppointmentID" json:"appointment,omitempty"`
}

func (SessionUsage) TableName() string {
	return "session_usages"
}
