package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// WorkingHour is a recurring weekly availability template for a business or,
// when StaffID is set, for a specific staff member. It is read-only at slot
// computation time.
type WorkingHour struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BusinessID uuid.UUID  `gorm:"type:uuid;not null;index:idx_working_hours_day,priority:1" json:"business_id"`
	StaffID    *uuid.UUID `gorm:"type:uuid;index" json:"staff_id,omitempty"`
	DayOfWeek  int        `gorm:"not null;index:idx_working_hours_day,priority:2" json:"day_of_week"` // 0 = Sunday .. 6 = Saturday
	StartTime  string     `gorm:"type:varchar(5);not null" json:"start_time"`                         // "HH:MM", 24h
	EndTime    string     `gorm:"type:varchar(5);not null" json:"end_time"`                           // "HH:MM", 24h
	IsActive   bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Business Business `gorm:"foreignKey:BusinessID" json:"business,omitempty"`
	Staff    *Staff   `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
}

func (WorkingHour) TableName() string {
	return "working_hours"
}

// Window materializes the "HH:MM" template onto a concrete date in the given
// location, yielding the half-open interval [start, end).
func (w *WorkingHour) Window(date time.Time, loc *time.Location) (start, end time.Time, err error) {
	start, err = timeOnDate(w.StartTime, date, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = timeOnDate(w.EndTime, date, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("working hour window %s-%s is empty", w.StartTime, w.EndTime)
	}
	return start, end, nil
}

func timeOnDate(hhmm string, date time.Time, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", hhmm, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}
