package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultSlotDurationMinutes is the step interval used for slot enumeration
// when a business has not configured its own.
const DefaultSlotDurationMinutes = 30

// Business represents a tenant: a service provider customers book with.
type Business struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OwnerID             uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name                string    `gorm:"type:varchar(255);not null" json:"name"`
	Slug                string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	Description         string    `gorm:"type:text" json:"description,omitempty"`
	PhoneNumber         string    `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	Address             string    `gorm:"type:text" json:"address,omitempty"`
	Timezone            string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	SlotDurationMinutes int       `gorm:"not null;default:30" json:"slot_duration_minutes"`
	IsActive            bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Owner        User          `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Staff        []Staff       `gorm:"foreignKey:BusinessID" json:"staff,omitempty"`
	Services     []Service     `gorm:"foreignKey:BusinessID" json:"services,omitempty"`
	WorkingHours []WorkingHour `gorm:"foreignKey:BusinessID" json:"working_hours,omitempty"`
	Packages     []Package     `gorm:"foreignKey:BusinessID" json:"packages,omitempty"`
}

func (Business) TableName() string {
	return "businesses"
}

// SlotDuration returns the configured slot step, falling back to the default.
func (b *Business) SlotDuration() time.Duration {
	minutes := b.SlotDurationMinutes
	if minutes <= 0 {
		minutes = DefaultSlotDurationMinutes
	}
	return time.Duration(minutes) * time.Minute
}

// Location resolves the business's IANA timezone. Slot computation must use
// this location so "today" and wall-clock comparisons match the business,
// not the server.
func (b *Business) Location() (*time.Location, error) {
	return LoadTimezone(b.Timezone)
}

// LoadTimezone resolves an IANA timezone name, treating empty as UTC.
func LoadTimezone(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(name)
}
