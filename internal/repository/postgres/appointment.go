package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/salonkit/scheduler-api/internal/model"
	"github.com/salonkit/scheduler-api/internal/repository"
)

type appointmentRepository struct {
	db *sqlx.DB
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

const appointmentColumns = `
	appointment_id, client_id, staff_id, service_id,
	start_time, duration_minutes, status, notes,
	created_at, updated_at
`

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) (*model.Appointment, error) {
	query := `
		INSERT INTO bs_appointments (
			client_id, staff_id, service_id,
			start_time, duration_minutes, status, notes,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING ` + appointmentColumns

	var created model.Appointment
	err := r.db.GetContext(ctx, &created, query,
		appointment.ClientID,
		appointment.StaffID,
		appointment.ServiceID,
		appointment.StartTime,
		appointment.DurationMinutes,
		appointment.Status,
		appointment.Notes,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return &created, nil
}

func (r *appointmentRepository) Get(ctx context.Context, id int64) (*model.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM bs_appointments
		WHERE appointment_id = $1
	`
	var appointment model.Appointment
	err := r.db.GetContext(ctx, &appointment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) UpdateStartTime(ctx context.Context, id int64, start time.Time) (*model.Appointment, error) {
	query := `
		UPDATE bs_appointments
		SET start_time = $1, updated_at = NOW()
		WHERE appointment_id = $2
		RETURNING ` + appointmentColumns

	var updated model.Appointment
	err := r.db.GetContext(ctx, &updated, query, start, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to reschedule appointment: %w", err)
	}
	return &updated, nil
}

func (r *appointmentRepository) UpdateStatus(ctx context.Context, id int64, status model.AppointmentStatus) (*model.Appointment, error) {
	query := `
		UPDATE bs_appointments
		SET status = $1, updated_at = NOW()
		WHERE appointment_id = $2
		RETURNING ` + appointmentColumns

	var updated model.Appointment
	err := r.db.GetContext(ctx, &updated, query, status, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}
	return &updated, nil
}

func (r *appointmentRepository) ListRange(ctx context.Context, start, end time.Time) ([]*model.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM bs_appointments
		WHERE start_time >= $1 AND start_time < $2
		ORDER BY start_time ASC
	`
	var appointments []*model.Appointment
	err := r.db.SelectContext(ctx, &appointments, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

// ListStaffActive returns a staff member's non-cancelled appointments whose
// interval intersects [start, end). Used for conflict checks, so it scans by
// interval overlap rather than by start time alone.
func (r *appointmentRepository) ListStaffActive(ctx context.Context, staffID int64, start, end time.Time) ([]*model.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM bs_appointments
		WHERE staff_id = $1
		AND status <> 'cancelled'
		AND start_time < $3
		AND start_time + (duration_minutes * INTERVAL '1 minute') > $2
		ORDER BY start_time ASC
	`
	var appointments []*model.Appointment
	err := r.db.SelectContext(ctx, &appointments, query, staffID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff appointments: %w", err)
	}
	return appointments, nil
}
