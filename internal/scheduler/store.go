package scheduler

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/salonkit/scheduler-api/internal/model"
	"github.com/salonkit/scheduler-api/internal/repository"
	"github.com/salonkit/scheduler-api/pkg/metrics"
)

// Store is the in-memory authoritative view of appointments for the
// currently loaded time window. It mirrors confirmed remote state only:
// every entry was either fetched from or committed to the persistence
// collaborator. The Store never originates writes.
type Store struct {
	repo    repository.AppointmentRepository
	metrics *metrics.Metrics

	mu           sync.RWMutex
	windowStart  time.Time
	windowEnd    time.Time
	loaded       bool
	stale        bool
	appointments map[int64]*model.Appointment
}

// NewStore creates an empty Store. m may be nil.
func NewStore(repo repository.AppointmentRepository, m *metrics.Metrics) *Store {
	return &Store{
		repo:         repo,
		metrics:      m,
		appointments: make(map[int64]*model.Appointment),
	}
}

// LoadWindow fetches all appointments starting in [start, end) and replaces
// the cache for that window. On collaborator failure the previous cache is
// left intact and a *DataAccessError is returned.
func (s *Store) LoadWindow(ctx context.Context, start, end time.Time) ([]*model.Appointment, error) {
	began := time.Now()
	fetched, err := s.repo.ListRange(ctx, start, end)
	if err != nil {
		if s.metrics != nil {
			s.metrics.DataAccessFailures.WithLabelValues("load window").Inc()
		}
		return nil, &DataAccessError{Op: "load window", Err: err}
	}
	if s.metrics != nil {
		s.metrics.WindowLoads.Inc()
		s.metrics.WindowLoadLatency.Observe(time.Since(began).Seconds())
	}

	cache := make(map[int64]*model.Appointment, len(fetched))
	for _, a := range fetched {
		cache[a.ID] = a
	}

	s.mu.Lock()
	s.windowStart = start
	s.windowEnd = end
	s.appointments = cache
	s.loaded = true
	s.stale = false
	s.mu.Unlock()

	return sortedByStart(fetched), nil
}

// Refresh reloads the current window. It is a no-op before the first
// LoadWindow.
func (s *Store) Refresh(ctx context.Context) error {
	s.mu.RLock()
	start, end, loaded := s.windowStart, s.windowEnd, s.loaded
	s.mu.RUnlock()

	if !loaded {
		return nil
	}
	_, err := s.LoadWindow(ctx, start, end)
	return err
}

// Get returns the cached appointment with the given id.
func (s *Store) Get(id int64) (*model.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.appointments[id]
	return a, ok
}

// Appointments returns the cached window contents ordered by start time.
func (s *Store) Appointments() []*model.Appointment {
	s.mu.RLock()
	out := make([]*model.Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		out = append(out, a)
	}
	s.mu.RUnlock()
	return sortedByStart(out)
}

// StaffAppointments returns the cached appointments of one staff member,
// ordered by start time. Cancelled entries are included; callers filter.
func (s *Store) StaffAppointments(staffID int64) []*model.Appointment {
	s.mu.RLock()
	out := make([]*model.Appointment, 0, 8)
	for _, a := range s.appointments {
		if a.StaffID == staffID {
			out = append(out, a)
		}
	}
	s.mu.RUnlock()
	return sortedByStart(out)
}

// Upsert inserts or replaces a cached entry. It must only be called after a
// successful remote commit. Entries outside the loaded window are ignored
// unless they replace an already-cached appointment (a reschedule moving out
// of the window still updates the entry; the next reload drops it).
func (s *Store) Upsert(a *model.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, cached := s.appointments[a.ID]; !cached {
		if !s.loaded || a.StartTime.Before(s.windowStart) || !a.StartTime.Before(s.windowEnd) {
			return
		}
	}
	s.appointments[a.ID] = a
}

// Invalidate marks the cache stale, forcing the next read path that checks
// Stale to reload from the collaborator.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.stale = true
	s.mu.Unlock()
}

// Stale reports whether the cache has been invalidated since the last load.
func (s *Store) Stale() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stale
}

// Window returns the currently loaded range.
func (s *Store) Window() (start, end time.Time, loaded bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.windowStart, s.windowEnd, s.loaded
}

func sortedByStart(appointments []*model.Appointment) []*model.Appointment {
	sort.Slice(appointments, func(i, j int) bool {
		if appointments[i].StartTime.Equal(appointments[j].StartTime) {
			return appointments[i].ID < appointments[j].ID
		}
		return appointments[i].StartTime.Before(appointments[j].StartTime)
	})
	return appointments
}
