package repository

import (
	"context"
	"errors"
	"time"

	"github.com/salonkit/scheduler-api/internal/model"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

type (
	// AppointmentRepository is the persistence collaborator for appointments.
	// Implementations translate transport/database failures into plain errors;
	// callers wrap them into their own taxonomy.
	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) (*model.Appointment, error)
		Get(ctx context.Context, id int64) (*model.Appointment, error)
		UpdateStartTime(ctx context.Context, id int64, start time.Time) (*model.Appointment, error)
		UpdateStatus(ctx context.Context, id int64, status model.AppointmentStatus) (*model.Appointment, error)
		ListRange(ctx context.Context, start, end time.Time) ([]*model.Appointment, error)
		ListStaffActive(ctx context.Context, staffID int64, start, end time.Time) ([]*model.Appointment, error)
	}

	// ServiceRepository looks up the salon's service catalog.
	ServiceRepository interface {
		Get(ctx context.Context, id int64) (*model.Service, error)
		List(ctx context.Context) ([]*model.Service, error)
	}

	// StaffRepository is the staff directory. Staff records are managed
	// elsewhere; the scheduler only reads them.
	StaffRepository interface {
		Get(ctx context.Context, id int64) (*model.StaffMember, error)
		List(ctx context.Context) ([]*model.StaffMember, error)
	}

	// ClientRepository is the client directory.
	ClientRepository interface {
		Get(ctx context.Context, id int64) (*model.Client, error)
		Search(ctx context.Context, query string) ([]*model.Client, error)
	}
)
