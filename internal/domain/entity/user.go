package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents the centralized authentication table.
// Owners and customers share this table and are distinguished by role.
type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RoleID      int       `gorm:"not null;index" json:"role_id"`
	Email       string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password    string    `gorm:"type:text;not null" json:"-"`
	FullName    string    `gorm:"type:varchar(255);not null" json:"full_name"`
	PhoneNumber string    `gorm:"type:varchar(20);index" json:"phone_number,omitempty"`
	IsActive    bool      `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Role         Role              `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	Businesses   []Business        `gorm:"foreignKey:OwnerID" json:"businesses,omitempty"`
	Appointments []Appointment     `gorm:"foreignKey:CustomerID" json:"appointments,omitempty"`
	Purchases    []PackagePurchase `gorm:"foreignKey:CustomerID" json:"purchases,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// IsOwner reports whether the user holds the business-owner role.
func (u *User) IsOwner() bool {
	return u.RoleID == RoleIDOwner
}

// IsCustomer reports whether the user holds the customer role.
func (u *User) IsCustomer() bool {
	return u.RoleID == RoleIDCustomer
}
