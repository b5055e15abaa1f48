package scheduler

import (
	"errors"
	"testing"

	"github.com/salonkit/scheduler-api/internal/model"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from  model.AppointmentStatus
		to    model.AppointmentStatus
		valid bool
	}{
		{model.AppointmentStatusScheduled, model.AppointmentStatusCheckedIn, true},
		{model.AppointmentStatusScheduled, model.AppointmentStatusCancelled, true},
		{model.AppointmentStatusScheduled, model.AppointmentStatusCompleted, false},
		{model.AppointmentStatusCheckedIn, model.AppointmentStatusCompleted, true},
		{model.AppointmentStatusCheckedIn, model.AppointmentStatusCancelled, true},
		{model.AppointmentStatusCheckedIn, model.AppointmentStatusScheduled, false},
		{model.AppointmentStatusCompleted, model.AppointmentStatusScheduled, false},
		{model.AppointmentStatusCompleted, model.AppointmentStatusCheckedIn, false},
		{model.AppointmentStatusCompleted, model.AppointmentStatusCancelled, false},
		{model.AppointmentStatusCancelled, model.AppointmentStatusScheduled, false},
		{model.AppointmentStatusCancelled, model.AppointmentStatusCheckedIn, false},
		{model.AppointmentStatusCancelled, model.AppointmentStatusCompleted, false},
		{model.AppointmentStatusScheduled, model.AppointmentStatusScheduled, false},
		{"unknown", model.AppointmentStatusScheduled, false},
	}

	for _, tt := range cases {
		if got := CanTransition(tt.from, tt.to); got != tt.valid {
			t.Fatalf("CanTransition(%q, %q)=%v, want %v", tt.from, tt.to, got, tt.valid)
		}
	}
}

func TestValidateTransition(t *testing.T) {
	if err := ValidateTransition(model.AppointmentStatusScheduled, model.AppointmentStatusCheckedIn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := ValidateTransition(model.AppointmentStatusCompleted, model.AppointmentStatusCancelled)
	var invalid *InvalidTransitionError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
	if invalid.From != model.AppointmentStatusCompleted || invalid.To != model.AppointmentStatusCancelled {
		t.Fatalf("error carries %q -> %q", invalid.From, invalid.To)
	}
}

func TestCanReschedule(t *testing.T) {
	if !CanReschedule(model.AppointmentStatusScheduled) {
		t.Fatal("scheduled appointments must be reschedulable")
	}
	for _, status := range []model.AppointmentStatus{
		model.AppointmentStatusCheckedIn,
		model.AppointmentStatusCompleted,
		model.AppointmentStatusCancelled,
	} {
		if CanReschedule(status) {
			t.Fatalf("%q must not be reschedulable", status)
		}
	}
}
