package model

import (
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCheckedIn AppointmentStatus = "checked-in"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// Valid reports whether s is one of the defined lifecycle statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCheckedIn,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether s has no outgoing transitions.
func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled
}

type Appointment struct {
	ID              int64             `db:"appointment_id" json:"appointment_id"`
	ClientID        int64             `db:"client_id" json:"client_id"`
	StaffID         int64             `db:"staff_id" json:"staff_id"`
	ServiceID       int64             `db:"service_id" json:"service_id"`
	StartTime       time.Time         `db:"start_time" json:"start_time"`
	DurationMinutes int               `db:"duration_minutes" json:"duration_minutes"`
	Status          AppointmentStatus `db:"status" json:"status"`
	Notes           string            `db:"notes" json:"notes,omitempty"`
	CreatedAt       time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time         `db:"updated_at" json:"updated_at"`
}

// EndTime is the exclusive end of the appointment's interval.
func (a *Appointment) EndTime() time.Time {
	return a.StartTime.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// Active reports whether the appointment still occupies its slot.
// Cancelled appointments free their slot; every other status holds it.
func (a *Appointment) Active() bool {
	return a.Status != AppointmentStatusCancelled
}

type BookAppointmentRequest struct {
	ClientID  int64     `json:"client_id" binding:"required"`
	StaffID   int64     `json:"staff_id" binding:"required"`
	ServiceID int64     `json:"service_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	Notes     string    `json:"notes" binding:"max=1000"`
}

type RescheduleAppointmentRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
}

type ChangeStatusRequest struct {
	Status AppointmentStatus `json:"status" binding:"required"`
}
