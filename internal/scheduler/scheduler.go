package scheduler

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/salonkit/scheduler-api/internal/model"
	"github.com/salonkit/scheduler-api/internal/repository"
	"github.com/salonkit/scheduler-api/pkg/metrics"
)

// ServiceDirectory resolves services so bookings can freeze the duration at
// booking time.
type ServiceDirectory interface {
	GetService(ctx context.Context, id int64) (*model.Service, error)
}

// EventPublisher receives appointment lifecycle events. Publishing is best
// effort: a publish failure never fails the scheduling operation.
type EventPublisher interface {
	Publish(ctx context.Context, channel string, message interface{}) error
}

// Scheduler validates and commits bookings, reschedules and status changes.
// It never trusts the cached window for conflict decisions: the conflict
// check runs against a fresh read immediately before every commit, since
// other terminals write to the same store. The remaining race between check
// and commit is closed by the unique-slot constraint on the appointments
// table, not retried here.
type Scheduler struct {
	store    *Store
	repo     repository.AppointmentRepository
	services ServiceDirectory
	events   EventPublisher
	channel  string
	metrics  *metrics.Metrics
}

// New creates a Scheduler. events and m may be nil; channel is only used
// when events is set.
func New(store *Store, repo repository.AppointmentRepository, services ServiceDirectory, events EventPublisher, channel string, m *metrics.Metrics) *Scheduler {
	return &Scheduler{
		store:    store,
		repo:     repo,
		services: services,
		events:   events,
		channel:  channel,
		metrics:  m,
	}
}

// Store exposes the window cache for read paths.
func (s *Scheduler) Store() *Store {
	return s.store
}

// Book validates and commits a new appointment. The service's current
// duration is frozen onto the appointment. Fails with *ConflictError when
// the slot is taken and *DataAccessError when a collaborator call fails;
// nothing is committed or cached on failure.
func (s *Scheduler) Book(ctx context.Context, req *model.BookAppointmentRequest) (*model.Appointment, error) {
	start := req.StartTime.Truncate(time.Minute)

	service, err := s.services.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, s.dataAccess("resolve service", err)
	}

	if err := s.ensureFree(ctx, req.StaffID, start, service.DurationMinutes, 0); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &model.Appointment{
		ClientID:        req.ClientID,
		StaffID:         req.StaffID,
		ServiceID:       req.ServiceID,
		StartTime:       start,
		DurationMinutes: service.DurationMinutes,
		Status:          model.AppointmentStatusScheduled,
		Notes:           req.Notes,
	})
	if err != nil {
		return nil, s.dataAccess("book appointment", err)
	}

	s.store.Upsert(created)
	s.publish(ctx, EventAppointmentBooked, created)
	if s.metrics != nil {
		s.metrics.BookingsTotal.Inc()
	}
	return created, nil
}

// Reschedule moves a scheduled appointment to a new start time, keeping its
// frozen duration. Checked-in, completed and cancelled appointments do not
// move.
func (s *Scheduler) Reschedule(ctx context.Context, id int64, newStart time.Time) (*model.Appointment, error) {
	current, err := s.loadCurrent(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanReschedule(current.Status) {
		if s.metrics != nil {
			s.metrics.TransitionsRejected.Inc()
		}
		return nil, &InvalidTransitionError{From: current.Status, To: model.AppointmentStatusScheduled}
	}

	newStart = newStart.Truncate(time.Minute)
	if err := s.ensureFree(ctx, current.StaffID, newStart, current.DurationMinutes, id); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateStartTime(ctx, id, newStart)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, s.dataAccess("reschedule appointment", err)
	}

	s.store.Upsert(updated)
	s.publish(ctx, EventAppointmentRescheduled, updated)
	if s.metrics != nil {
		s.metrics.ReschedulesTotal.Inc()
	}
	return updated, nil
}

// ChangeStatus runs the lifecycle check and commits the new status.
func (s *Scheduler) ChangeStatus(ctx context.Context, id int64, target model.AppointmentStatus) (*model.Appointment, error) {
	current, err := s.loadCurrent(ctx, id)
	if err != nil {
		return nil, err
	}

	if !target.Valid() || ValidateTransition(current.Status, target) != nil {
		if s.metrics != nil {
			s.metrics.TransitionsRejected.Inc()
		}
		return nil, &InvalidTransitionError{From: current.Status, To: target}
	}

	updated, err := s.repo.UpdateStatus(ctx, id, target)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, s.dataAccess("update appointment status", err)
	}

	s.store.Upsert(updated)
	s.publish(ctx, EventAppointmentStatusChanged, updated)
	if s.metrics != nil {
		s.metrics.StatusChanges.WithLabelValues(string(target)).Inc()
	}
	return updated, nil
}

// CheckIn marks a scheduled appointment as checked in.
func (s *Scheduler) CheckIn(ctx context.Context, id int64) (*model.Appointment, error) {
	return s.ChangeStatus(ctx, id, model.AppointmentStatusCheckedIn)
}

// Complete hands a checked-in appointment off to checkout.
func (s *Scheduler) Complete(ctx context.Context, id int64) (*model.Appointment, error) {
	return s.ChangeStatus(ctx, id, model.AppointmentStatusCompleted)
}

// Cancel frees the appointment's slot. The row stays; removal is an
// administrative operation outside the scheduler.
func (s *Scheduler) Cancel(ctx context.Context, id int64) (*model.Appointment, error) {
	return s.ChangeStatus(ctx, id, model.AppointmentStatusCancelled)
}

// ensureFree re-validates the proposed slot against a fresh read of the
// staff member's active appointments.
func (s *Scheduler) ensureFree(ctx context.Context, staffID int64, start time.Time, durationMinutes int, excludeID int64) error {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	existing, err := s.repo.ListStaffActive(ctx, staffID, start, end)
	if err != nil {
		return s.dataAccess("check conflicts", err)
	}
	if conflicting := FindConflict(existing, staffID, start, durationMinutes, excludeID); conflicting != nil {
		if s.metrics != nil {
			s.metrics.ConflictsRejected.Inc()
		}
		return &ConflictError{StaffID: staffID, Conflicting: conflicting}
	}
	return nil
}

// loadCurrent reads the appointment's committed state, bypassing the cache
// so decisions never run against a stale status.
func (s *Scheduler) loadCurrent(ctx context.Context, id int64) (*model.Appointment, error) {
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, s.dataAccess("load appointment", err)
	}
	return current, nil
}

func (s *Scheduler) dataAccess(op string, err error) error {
	if s.metrics != nil {
		s.metrics.DataAccessFailures.WithLabelValues(op).Inc()
	}
	return &DataAccessError{Op: op, Err: err}
}

func (s *Scheduler) publish(ctx context.Context, eventType string, appointment *model.Appointment) {
	if s.events == nil {
		return
	}
	event := NewEvent(eventType, appointment)
	if err := s.events.Publish(ctx, s.channel, event); err != nil {
		if s.metrics != nil {
			s.metrics.EventsFailed.Inc()
		}
		log.Error().Err(err).
			Str("event_type", eventType).
			Int64("appointment_id", appointment.ID).
			Msg("failed to publish appointment event")
		return
	}
	if s.metrics != nil {
		s.metrics.EventsPublished.Inc()
	}
}
