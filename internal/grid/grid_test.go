package grid

import (
	"testing"
	"time"

	"github.com/salonkit/scheduler-api/internal/model"
)

func TestSlotIndex(t *testing.T) {
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		at   time.Time
		want int
	}{
		{"midnight", day, 0},
		{"first half hour", day.Add(29 * time.Minute), 0},
		{"second slot", day.Add(30 * time.Minute), 1},
		{"nine am", day.Add(9 * time.Hour), 18},
		{"nine fifteen", day.Add(9*time.Hour + 15*time.Minute), 18},
		{"last slot", day.Add(23*time.Hour + 30*time.Minute), 47},
		{"next day", day.Add(24 * time.Hour), 48},
		{"before the day", day.Add(-15 * time.Minute), -1},
		{"previous slot boundary", day.Add(-30 * time.Minute), -1},
		{"an hour before", day.Add(-31 * time.Minute), -2},
	}

	for _, tt := range cases {
		if got := SlotIndex(tt.at, day); got != tt.want {
			t.Fatalf("%s: SlotIndex=%d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestSlotIndexMonotonic(t *testing.T) {
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	prev := SlotIndex(day.Add(-2*time.Hour), day)
	for m := -119; m <= 26*60; m++ {
		got := SlotIndex(day.Add(time.Duration(m)*time.Minute), day)
		if got < prev {
			t.Fatalf("SlotIndex not monotonic at %d minutes: %d < %d", m, got, prev)
		}
		prev = got
	}
}

func TestAppointmentLayout(t *testing.T) {
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		start    time.Time
		duration int
		want     Layout
	}{
		{"half hour at nine", day.Add(9 * time.Hour), 30, Layout{18, 1}},
		{"forty-five minutes rounds up", day.Add(10 * time.Hour), 45, Layout{20, 2}},
		{"hour long", day.Add(13*time.Hour + 30*time.Minute), 60, Layout{27, 2}},
		{"short service still one slot", day.Add(9 * time.Hour), 15, Layout{18, 1}},
		{"ninety minutes", day.Add(16 * time.Hour), 90, Layout{32, 3}},
	}

	for _, tt := range cases {
		a := &model.Appointment{StartTime: tt.start, DurationMinutes: tt.duration}
		if got := AppointmentLayout(a, day); got != tt.want {
			t.Fatalf("%s: layout=%+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestWeekStart(t *testing.T) {
	// 2024-01-10 is a Wednesday; its week starts Sunday 2024-01-07.
	wed := time.Date(2024, 1, 10, 14, 45, 0, 0, time.UTC)
	want := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
	if got := WeekStart(wed); !got.Equal(want) {
		t.Fatalf("WeekStart=%v, want %v", got, want)
	}
	// A Sunday is its own week start.
	if got := WeekStart(want.Add(3 * time.Hour)); !got.Equal(want) {
		t.Fatalf("WeekStart(sunday)=%v, want %v", got, want)
	}
}

func TestDayColumn(t *testing.T) {
	week := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
	for d := 0; d < 7; d++ {
		at := week.AddDate(0, 0, d).Add(11 * time.Hour)
		if got := DayColumn(at, week); got != d {
			t.Fatalf("DayColumn day %d = %d", d, got)
		}
	}
}

func TestBusinessHours(t *testing.T) {
	b := BusinessHours{StartHour: 9, EndHour: 18}
	if got := b.FirstSlot(); got != 18 {
		t.Fatalf("FirstSlot=%d, want 18", got)
	}
	if got := b.SlotCount(); got != 18 {
		t.Fatalf("SlotCount=%d, want 18", got)
	}

	full := BusinessHours{StartHour: 0, EndHour: 24}
	if got := full.SlotCount(); got != SlotsPerDay {
		t.Fatalf("full day SlotCount=%d, want %d", got, SlotsPerDay)
	}
}
