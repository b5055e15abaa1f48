package scheduler

import (
	"testing"
	"time"

	"github.com/salonkit/scheduler-api/internal/model"
)

func at(hour, min int) time.Time {
	return time.Date(2024, 1, 10, hour, min, 0, 0, time.UTC)
}

func appt(id, staffID int64, start time.Time, minutes int, status model.AppointmentStatus) *model.Appointment {
	return &model.Appointment{
		ID:              id,
		StaffID:         staffID,
		StartTime:       start,
		DurationMinutes: minutes,
		Status:          status,
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name   string
		s1     time.Time
		d1     time.Duration
		s2     time.Time
		d2     time.Duration
		expect bool
	}{
		{"identical", at(10, 0), 30 * time.Minute, at(10, 0), 30 * time.Minute, true},
		{"partial overlap", at(10, 0), 30 * time.Minute, at(10, 15), 30 * time.Minute, true},
		{"contained", at(10, 0), 60 * time.Minute, at(10, 15), 15 * time.Minute, true},
		{"back to back", at(10, 0), 30 * time.Minute, at(10, 30), 30 * time.Minute, false},
		{"back to back reversed", at(10, 30), 30 * time.Minute, at(10, 0), 30 * time.Minute, false},
		{"disjoint", at(9, 0), 30 * time.Minute, at(11, 0), 30 * time.Minute, false},
		{"one minute overlap", at(10, 0), 31 * time.Minute, at(10, 30), 30 * time.Minute, true},
	}

	for _, tt := range cases {
		if got := Overlaps(tt.s1, tt.d1, tt.s2, tt.d2); got != tt.expect {
			t.Fatalf("%s: Overlaps=%v, want %v", tt.name, got, tt.expect)
		}
	}
}

func TestFindConflict(t *testing.T) {
	existing := []*model.Appointment{
		appt(1, 7, at(9, 0), 30, model.AppointmentStatusScheduled),
		appt(2, 7, at(10, 0), 60, model.AppointmentStatusCheckedIn),
		appt(3, 7, at(12, 0), 30, model.AppointmentStatusCancelled),
		appt(4, 9, at(9, 0), 30, model.AppointmentStatusScheduled),
	}

	t.Run("overlap reported with the colliding appointment", func(t *testing.T) {
		got := FindConflict(existing, 7, at(9, 15), 30, 0)
		if got == nil || got.ID != 1 {
			t.Fatalf("FindConflict=%v, want appointment 1", got)
		}
	})

	t.Run("back to back is free", func(t *testing.T) {
		if got := FindConflict(existing, 7, at(9, 30), 30, 0); got != nil {
			t.Fatalf("FindConflict=%v, want nil", got)
		}
	})

	t.Run("checked-in still holds its slot", func(t *testing.T) {
		got := FindConflict(existing, 7, at(10, 30), 30, 0)
		if got == nil || got.ID != 2 {
			t.Fatalf("FindConflict=%v, want appointment 2", got)
		}
	})

	t.Run("cancelled slot is free", func(t *testing.T) {
		if got := FindConflict(existing, 7, at(12, 0), 30, 0); got != nil {
			t.Fatalf("FindConflict=%v, want nil", got)
		}
	})

	t.Run("other staff never conflicts", func(t *testing.T) {
		if got := FindConflict(existing, 9, at(10, 0), 30, 0); got != nil {
			t.Fatalf("FindConflict=%v, want nil", got)
		}
	})

	t.Run("exclude lets an appointment keep its own slot", func(t *testing.T) {
		if got := FindConflict(existing, 7, at(9, 0), 30, 1); got != nil {
			t.Fatalf("FindConflict=%v, want nil", got)
		}
	})

	t.Run("exclude does not hide other overlaps", func(t *testing.T) {
		got := FindConflict(existing, 7, at(9, 45), 30, 1)
		if got == nil || got.ID != 2 {
			t.Fatalf("FindConflict=%v, want appointment 2", got)
		}
	})
}
