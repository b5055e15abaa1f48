package scheduler

import (
	"fmt"

	"github.com/salonkit/scheduler-api/internal/model"
)

// DataAccessError wraps a persistence collaborator failure. Nothing local is
// mutated when one is returned; the caller may simply retry the operation.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("%s: data access failed: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// ConflictError reports that a proposed slot overlaps an existing active
// appointment for the same staff member. Conflicting names the appointment
// already holding the slot so the caller can offer another time.
type ConflictError struct {
	StaffID     int64
	Conflicting *model.Appointment
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf(
		"staff %d already has appointment %d at %s for %d minutes",
		e.StaffID,
		e.Conflicting.ID,
		e.Conflicting.StartTime.Format("2006-01-02 15:04"),
		e.Conflicting.DurationMinutes,
	)
}

// InvalidTransitionError reports a status change the lifecycle does not
// permit. From is the appointment's current status, To the attempted target.
type InvalidTransitionError struct {
	From model.AppointmentStatus
	To   model.AppointmentStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot change appointment status from %q to %q", e.From, e.To)
}
