package entity

import (
	"testing"
	"time"
)

func TestWorkingHourWindow(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Istanbul")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	wh := &WorkingHour{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:30"}
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, loc) // a Monday

	start, end, err := wh.Window(date, loc)
	if err != nil {
		t.Fatalf("window: %v", err)
	}
	if start.Hour() != 9 || start.Minute() != 0 {
		t.Fatalf("expected start 09:00, got %02d:%02d", start.Hour(), start.Minute())
	}
	if end.Hour() != 17 || end.Minute() != 30 {
		t.Fatalf("expected end 17:30, got %02d:%02d", end.Hour(), end.Minute())
	}
	if start.Location() != loc || end.Location() != loc {
		t.Fatal("window must be anchored in the business location")
	}
}

func TestWorkingHourWindow_Invalid(t *testing.T) {
	loc := time.UTC
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, loc)

	bad := &WorkingHour{StartTime: "9am", EndTime: "17:00"}
	if _, _, err := bad.Window(date, loc); err == nil {
		t.Fatal("expected error for malformed start time")
	}

	empty := &WorkingHour{StartTime: "17:00", EndTime: "09:00"}
	if _, _, err := empty.Window(date, loc); err == nil {
		t.Fatal("expected error for inverted window")
	}
}
