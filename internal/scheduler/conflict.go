package scheduler

import (
	"time"

	"github.com/salonkit/scheduler-api/internal/model"
)

// Overlaps reports whether the half-open intervals [s1, s1+d1) and
// [s2, s2+d2) intersect. Touching intervals (one ends where the other
// starts) do not overlap.
func Overlaps(s1 time.Time, d1 time.Duration, s2 time.Time, d2 time.Duration) bool {
	return s1.Before(s2.Add(d2)) && s2.Before(s1.Add(d1))
}

// FindConflict scans appointments for the first active appointment of staffID
// that overlaps a proposed booking of durationMinutes starting at start.
// Cancelled appointments never conflict. excludeID skips the appointment
// being rescheduled; pass 0 when booking. Returns nil when the slot is free.
func FindConflict(appointments []*model.Appointment, staffID int64, start time.Time, durationMinutes int, excludeID int64) *model.Appointment {
	d := time.Duration(durationMinutes) * time.Minute
	for _, a := range appointments {
		if a.StaffID != staffID || !a.Active() {
			continue
		}
		if excludeID != 0 && a.ID == excludeID {
			continue
		}
		if Overlaps(start, d, a.StartTime, time.Duration(a.DurationMinutes)*time.Minute) {
			return a
		}
	}
	return nil
}

// HasConflict is FindConflict as a predicate.
func HasConflict(appointments []*model.Appointment, staffID int64, start time.Time, durationMinutes int, excludeID int64) bool {
	return FindConflict(appointments, staffID, start, durationMinutes, excludeID) != nil
}
