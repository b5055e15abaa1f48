package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonkit/scheduler-api/internal/model"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestStoreLoadWindow(t *testing.T) {
	repo := newFakeRepo()
	repo.seed(appt(1, 7, at(9, 0), 30, model.AppointmentStatusScheduled))
	repo.seed(appt(2, 7, at(14, 0), 60, model.AppointmentStatusScheduled))
	repo.seed(appt(3, 9, day(11).Add(10*time.Hour), 30, model.AppointmentStatusScheduled))

	store := NewStore(repo, nil)
	loaded, err := store.LoadWindow(context.Background(), day(10), day(11))
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, int64(1), loaded[0].ID, "window contents ordered by start time")
	assert.Equal(t, int64(2), loaded[1].ID)

	_, ok := store.Get(3)
	assert.False(t, ok, "appointment outside the window must not be cached")

	start, end, isLoaded := store.Window()
	require.True(t, isLoaded)
	assert.Equal(t, day(10), start)
	assert.Equal(t, day(11), end)
}

func TestStoreLoadWindowFailureKeepsCache(t *testing.T) {
	repo := newFakeRepo()
	repo.seed(appt(1, 7, at(9, 0), 30, model.AppointmentStatusScheduled))

	store := NewStore(repo, nil)
	_, err := store.LoadWindow(context.Background(), day(10), day(11))
	require.NoError(t, err)

	repo.listErr = errors.New("connection reset")
	_, err = store.LoadWindow(context.Background(), day(11), day(12))

	var dataErr *DataAccessError
	require.ErrorAs(t, err, &dataErr)

	// Previous window survives, no partial overwrite.
	_, ok := store.Get(1)
	assert.True(t, ok)
	start, _, _ := store.Window()
	assert.Equal(t, day(10), start)
}

func TestStoreUpsert(t *testing.T) {
	repo := newFakeRepo()
	store := NewStore(repo, nil)
	_, err := store.LoadWindow(context.Background(), day(10), day(11))
	require.NoError(t, err)

	inside := appt(5, 7, at(11, 0), 30, model.AppointmentStatusScheduled)
	store.Upsert(inside)
	got, ok := store.Get(5)
	require.True(t, ok)
	assert.Equal(t, model.AppointmentStatusScheduled, got.Status)

	// Replacing a cached entry after a status commit.
	updated := appt(5, 7, at(11, 0), 30, model.AppointmentStatusCheckedIn)
	store.Upsert(updated)
	got, _ = store.Get(5)
	assert.Equal(t, model.AppointmentStatusCheckedIn, got.Status)

	// New entries outside the window are ignored.
	outside := appt(6, 7, day(12).Add(9*time.Hour), 30, model.AppointmentStatusScheduled)
	store.Upsert(outside)
	_, ok = store.Get(6)
	assert.False(t, ok)

	// A cached entry rescheduled out of the window still updates in place.
	moved := appt(5, 7, day(12).Add(9*time.Hour), 30, model.AppointmentStatusCheckedIn)
	store.Upsert(moved)
	got, ok = store.Get(5)
	require.True(t, ok)
	assert.Equal(t, day(12).Add(9*time.Hour), got.StartTime)
}

func TestStoreStaffAppointments(t *testing.T) {
	repo := newFakeRepo()
	repo.seed(appt(1, 7, at(14, 0), 30, model.AppointmentStatusScheduled))
	repo.seed(appt(2, 7, at(9, 0), 30, model.AppointmentStatusCancelled))
	repo.seed(appt(3, 9, at(9, 0), 30, model.AppointmentStatusScheduled))

	store := NewStore(repo, nil)
	_, err := store.LoadWindow(context.Background(), day(10), day(11))
	require.NoError(t, err)

	staff := store.StaffAppointments(7)
	require.Len(t, staff, 2)
	assert.Equal(t, int64(2), staff[0].ID, "ordered by start, cancelled included")
	assert.Equal(t, int64(1), staff[1].ID)
}

func TestStoreInvalidateAndRefresh(t *testing.T) {
	repo := newFakeRepo()
	store := NewStore(repo, nil)

	// Refresh before any load is a no-op.
	require.NoError(t, store.Refresh(context.Background()))

	_, err := store.LoadWindow(context.Background(), day(10), day(11))
	require.NoError(t, err)
	assert.False(t, store.Stale())

	store.Invalidate()
	assert.True(t, store.Stale())

	repo.seed(appt(1, 7, at(9, 0), 30, model.AppointmentStatusScheduled))
	require.NoError(t, store.Refresh(context.Background()))
	assert.False(t, store.Stale())
	_, ok := store.Get(1)
	assert.True(t, ok)
}
