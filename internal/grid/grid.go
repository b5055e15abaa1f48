// Package grid maps calendar instants onto a fixed 30-minute slot grid for
// day and week views. It is pure layout math: no clamping, no state, no
// storage access. Out-of-range offsets are returned as-is and clipped by the
// renderer.
package grid

import (
	"time"

	"github.com/salonkit/scheduler-api/internal/model"
)

const (
	// SlotMinutes is the calendar granularity. Every layout is expressed in
	// multiples of this unit.
	SlotMinutes = 30

	// SlotsPerDay is the number of slots in a full 24h column.
	SlotsPerDay = 24 * 60 / SlotMinutes
)

// BusinessHours is the visible portion of a day column. The grid itself keeps
// computing offsets from midnight; the renderer subtracts FirstSlot to clip.
type BusinessHours struct {
	StartHour int
	EndHour   int
}

func (b BusinessHours) FirstSlot() int {
	return b.StartHour * 60 / SlotMinutes
}

func (b BusinessHours) SlotCount() int {
	return (b.EndHour - b.StartHour) * 60 / SlotMinutes
}

// Layout is an appointment's placement on the grid, in slots.
type Layout struct {
	OffsetSlots int `json:"offset_slots"`
	SpanSlots   int `json:"span_slots"`
}

// SlotIndex maps t to a zero-based slot offset from dayStart. Instants before
// dayStart yield negative offsets; instants past the last slot yield offsets
// >= SlotsPerDay. Sub-minute precision is ignored (minute granularity).
func SlotIndex(t, dayStart time.Time) int {
	minutes := int(t.Sub(dayStart) / time.Minute)
	if minutes < 0 {
		// floor, not truncate: -15min is slot -1
		return -((-minutes + SlotMinutes - 1) / SlotMinutes)
	}
	return minutes / SlotMinutes
}

// AppointmentLayout computes the slot placement for a within dayStart's
// column. Spans round up to whole slots and are never shorter than one slot.
func AppointmentLayout(a *model.Appointment, dayStart time.Time) Layout {
	span := (a.DurationMinutes + SlotMinutes - 1) / SlotMinutes
	if span < 1 {
		span = 1
	}
	return Layout{
		OffsetSlots: SlotIndex(a.StartTime, dayStart),
		SpanSlots:   span,
	}
}

// DayStart is midnight of t's calendar day, in t's location.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart is midnight of the Sunday on or before t.
func WeekStart(t time.Time) time.Time {
	day := DayStart(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// DayColumn is the zero-based day offset of t within the week starting at
// weekStart. Used for week-view column placement.
func DayColumn(t, weekStart time.Time) int {
	return int(DayStart(t).Sub(weekStart) / (24 * time.Hour))
}
