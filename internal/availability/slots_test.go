package availability

import (
	"testing"
	"time"
)

// Monday 2026-03-09, 09:00-17:00 window in UTC.
func fullDayWindow() (time.Time, time.Time) {
	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	return day.Add(9 * time.Hour), day.Add(17 * time.Hour)
}

func TestSlots_FullOpenDay(t *testing.T) {
	windowStart, windowEnd := fullDayWindow()

	slots := Slots(windowStart, windowEnd, 30*time.Minute, 30*time.Minute, nil, time.Time{})
	if len(slots) != 16 {
		t.Fatalf("expected 16 slots for a 09:00-17:00 day, got %d", len(slots))
	}
	got := FormatSlots(slots)
	if got[0] != "09:00" || got[len(got)-1] != "16:30" {
		t.Fatalf("expected slots 09:00..16:30, got %s..%s", got[0], got[len(got)-1])
	}
	for i := 1; i < len(slots); i++ {
		if !slots[i].After(slots[i-1]) {
			t.Fatalf("slots not ascending at index %d", i)
		}
	}
}

func TestSlots_BookingRemovesExactlyOneSlot(t *testing.T) {
	windowStart, windowEnd := fullDayWindow()
	day := windowStart.Truncate(24 * time.Hour)

	// 10:00-10:30 booked. A 30-minute service exactly abuts the adjacent
	// slots, so only 10:00 disappears.
	busy := []Interval{
		{Start: day.Add(10 * time.Hour), End: day.Add(10*time.Hour + 30*time.Minute)},
	}

	slots := FormatSlots(Slots(windowStart, windowEnd, 30*time.Minute, 30*time.Minute, busy, time.Time{}))
	if len(slots) != 15 {
		t.Fatalf("expected 15 slots, got %d", len(slots))
	}
	for _, s := range slots {
		if s == "10:00" {
			t.Fatal("10:00 should have been excluded")
		}
	}
	has930, has1030 := false, false
	for _, s := range slots {
		if s == "09:30" {
			has930 = true
		}
		if s == "10:30" {
			has1030 = true
		}
	}
	if !has930 || !has1030 {
		t.Fatalf("adjacent slots must survive: 09:30=%v 10:30=%v", has930, has1030)
	}
}

func TestSlots_LongServiceDropsLateStart(t *testing.T) {
	windowStart, windowEnd := fullDayWindow()

	// 45-minute service: 16:30+45m = 17:15 > 17:00, so 16:30 must go even
	// though the 30-minute step would have offered it.
	slots := FormatSlots(Slots(windowStart, windowEnd, 45*time.Minute, 30*time.Minute, nil, time.Time{}))
	last := slots[len(slots)-1]
	if last != "16:00" {
		t.Fatalf("expected last slot 16:00 for a 45-minute service, got %s", last)
	}
	for _, s := range slots {
		if s == "16:30" {
			t.Fatal("16:30 must be excluded for a 45-minute service")
		}
	}
}

func TestSlots_TodayExcludesPastStarts(t *testing.T) {
	windowStart, windowEnd := fullDayWindow()
	day := windowStart.Truncate(24 * time.Hour)

	// Clock reads 11:00: everything up to and including 11:00 is gone.
	now := day.Add(11 * time.Hour)
	slots := FormatSlots(Slots(windowStart, windowEnd, 30*time.Minute, 30*time.Minute, nil, now))
	if len(slots) == 0 {
		t.Fatal("expected afternoon slots to remain")
	}
	if slots[0] != "11:30" {
		t.Fatalf("expected first slot 11:30, got %s", slots[0])
	}
}

func TestSlots_StepContainedInsideLongAppointment(t *testing.T) {
	windowStart, windowEnd := fullDayWindow()
	day := windowStart.Truncate(24 * time.Hour)

	// 10:00-11:30 appointment blocks 10:00, 10:30 and 11:00 starts.
	busy := []Interval{
		{Start: day.Add(10 * time.Hour), End: day.Add(11*time.Hour + 30*time.Minute)},
	}

	slots := FormatSlots(Slots(windowStart, windowEnd, 30*time.Minute, 30*time.Minute, busy, time.Time{}))
	blocked := map[string]bool{"10:00": true, "10:30": true, "11:00": true}
	for _, s := range slots {
		if blocked[s] {
			t.Fatalf("slot %s overlaps the 10:00-11:30 appointment", s)
		}
	}
	if len(slots) != 13 {
		t.Fatalf("expected 13 slots, got %d", len(slots))
	}
}

func TestSlots_DegenerateInputs(t *testing.T) {
	windowStart, windowEnd := fullDayWindow()

	if got := Slots(windowStart, windowEnd, 0, 30*time.Minute, nil, time.Time{}); got != nil {
		t.Fatalf("zero duration must yield no slots, got %d", len(got))
	}
	if got := Slots(windowStart, windowEnd, 30*time.Minute, 0, nil, time.Time{}); got != nil {
		t.Fatalf("zero step must yield no slots, got %d", len(got))
	}
	if got := Slots(windowEnd, windowStart, 30*time.Minute, 30*time.Minute, nil, time.Time{}); got != nil {
		t.Fatalf("inverted window must yield no slots, got %d", len(got))
	}
	// Window shorter than the service.
	if got := Slots(windowStart, windowStart.Add(20*time.Minute), 30*time.Minute, 30*time.Minute, nil, time.Time{}); got != nil {
		t.Fatalf("window shorter than duration must yield no slots, got %d", len(got))
	}
}
