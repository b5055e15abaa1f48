package scheduler

import "github.com/salonkit/scheduler-api/internal/model"

// transitions maps each status to the statuses it may move to. Completed and
// cancelled are terminal.
var transitions = map[model.AppointmentStatus][]model.AppointmentStatus{
	model.AppointmentStatusScheduled: {
		model.AppointmentStatusCheckedIn,
		model.AppointmentStatusCancelled,
	},
	model.AppointmentStatusCheckedIn: {
		model.AppointmentStatusCompleted,
		model.AppointmentStatusCancelled,
	},
	model.AppointmentStatusCompleted: nil,
	model.AppointmentStatusCancelled: nil,
}

// CanTransition reports whether the lifecycle permits moving from one status
// to another.
func CanTransition(from, to model.AppointmentStatus) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ValidateTransition returns an *InvalidTransitionError when the move is not
// permitted.
func ValidateTransition(from, to model.AppointmentStatus) error {
	if !CanTransition(from, to) {
		return &InvalidTransitionError{From: from, To: to}
	}
	return nil
}

// CanReschedule reports whether an appointment's start time may still change.
// Only scheduled appointments move; once checked in the client is in the
// chair.
func CanReschedule(status model.AppointmentStatus) bool {
	return status == model.AppointmentStatusScheduled
}
