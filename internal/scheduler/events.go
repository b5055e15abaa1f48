package scheduler

import (
	"time"

	"github.com/google/uuid"

	"github.com/salonkit/scheduler-api/internal/model"
)

// Event types published on the appointments channel.
const (
	EventAppointmentBooked        = "appointment.booked"
	EventAppointmentRescheduled   = "appointment.rescheduled"
	EventAppointmentStatusChanged = "appointment.status_changed"
)

// Event is the message published after a successful commit. Consumers
// (dashboards, reminder workers) are out of scope here.
type Event struct {
	ID          string             `json:"id"`
	Type        string             `json:"type"`
	Appointment *model.Appointment `json:"appointment"`
	OccurredAt  time.Time          `json:"occurred_at"`
}

func NewEvent(eventType string, appointment *model.Appointment) *Event {
	return &Event{
		ID:          uuid.New().String(),
		Type:        eventType,
		Appointment: appointment,
		OccurredAt:  time.Now().UTC(),
	}
}
