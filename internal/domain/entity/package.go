package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Package is a prepaid bundle of sessions sold by a business, consumed
// across multiple appointments. ServiceID optionally pins the bundle to a
// single service.
type Package struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BusinessID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"business_id"`
	ServiceID    *uuid.UUID      `gorm:"type:uuid;index" json:"service_id,omitempty"`
	Name         string          `gorm:"type:varchar(255);not null" json:"name"`
	Description  string          `gorm:"type:text" json:"description,omitempty"`
	SessionCount int             `gorm:"not null" json:"session_count"`
	Price        decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ValidityDays *int            `gorm:"" json:"validity_days,omitempty"`
	IsActive     bool            `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Business Business `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
	Service  *Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

func (Package) TableName() string {
	return "packages"
}
