package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/salonkit/scheduler-api/internal/model"
	"github.com/salonkit/scheduler-api/internal/repository"
)

// fakeRepo is an in-memory persistence collaborator. Error fields simulate
// transport failures per operation.
type fakeRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]model.Appointment

	listErr   error
	getErr    error
	createErr error
	updateErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: make(map[int64]model.Appointment)}
}

func (f *fakeRepo) seed(a *model.Appointment) *model.Appointment {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a.ID == 0 {
		f.nextID++
		a.ID = f.nextID
	} else if a.ID > f.nextID {
		f.nextID = a.ID
	}
	f.rows[a.ID] = *a
	return a
}

func (f *fakeRepo) Create(_ context.Context, appointment *model.Appointment) (*model.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	row := *appointment
	row.ID = f.nextID
	row.CreatedAt = time.Now()
	row.UpdatedAt = row.CreatedAt
	f.rows[row.ID] = row
	out := row
	return &out, nil
}

func (f *fakeRepo) Get(_ context.Context, id int64) (*model.Appointment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := row
	return &out, nil
}

func (f *fakeRepo) UpdateStartTime(_ context.Context, id int64, start time.Time) (*model.Appointment, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	row.StartTime = start
	row.UpdatedAt = time.Now()
	f.rows[id] = row
	out := row
	return &out, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status model.AppointmentStatus) (*model.Appointment, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	row, ok := f.rows[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	row.Status = status
	row.UpdatedAt = time.Now()
	f.rows[id] = row
	out := row
	return &out, nil
}

func (f *fakeRepo) ListRange(_ context.Context, start, end time.Time) ([]*model.Appointment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.Appointment
	for _, row := range f.rows {
		if !row.StartTime.Before(start) && row.StartTime.Before(end) {
			copied := row
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListStaffActive(_ context.Context, staffID int64, start, end time.Time) ([]*model.Appointment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*model.Appointment
	for _, row := range f.rows {
		if row.StaffID != staffID || row.Status == model.AppointmentStatusCancelled {
			continue
		}
		if row.StartTime.Before(end) && row.EndTime().After(start) {
			copied := row
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeDirectory struct {
	services map[int64]*model.Service
	err      error
}

func (f *fakeDirectory) GetService(_ context.Context, id int64) (*model.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	service, ok := f.services[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return service, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []*Event
	err    error
}

func (f *fakePublisher) Publish(_ context.Context, _ string, message interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if event, ok := message.(*Event); ok {
		f.events = append(f.events, event)
	}
	return nil
}

func (f *fakePublisher) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.events))
	for i, e := range f.events {
		out[i] = e.Type
	}
	return out
}
