package schedule

import (
	"errors"
	"testing"
	"time"

	apperrors "taskdesk.com/taskdesk/internal/errors"
	model "taskdesk.com/taskdesk/internal/models"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

const grace = 30 * time.Minute

func TestValidate(t *testing.T) {
	cases := []struct {
		name     string
		deadline string
		hour     string
		wantErr  error
	}{
		{"past deadline", "2026-03-09", "18:00", apperrors.ErrDeadlineInPast},
		{"far past deadline", "2025-01-01", "18:00", apperrors.ErrDeadlineInPast},
		{"same day hour inside grace", "2026-03-10", "12:29", apperrors.ErrHourTooSoon},
		{"same day hour in the past", "2026-03-10", "09:00", apperrors.ErrHourTooSoon},
		{"same day hour exactly at grace", "2026-03-10", "12:30", nil},
		{"same day hour after grace", "2026-03-10", "15:00", nil},
		{"future day skips hour check", "2026-03-11", "00:01", nil},
		{"future day early hour", "2026-04-01", "06:00", nil},
		{"malformed deadline", "10-03-2026", "12:00", apperrors.ErrInvalidDeadline},
		{"empty deadline", "", "12:00", apperrors.ErrInvalidDeadline},
		{"malformed hour", "2026-03-11", "9am", apperrors.ErrInvalidHour},
		{"empty hour", "2026-03-11", "", apperrors.ErrInvalidHour},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Validate(tc.deadline, tc.hour, testNow, grace)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Validate(%q, %q) error = %v, want %v", tc.deadline, tc.hour, err, tc.wantErr)
			}
		})
	}
}

func TestValidateReturnsParsedBoundaries(t *testing.T) {
	deadline, hour, err := Validate("2026-03-11", "09:15", testNow, grace)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantDeadline := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	if !deadline.Equal(wantDeadline) {
		t.Errorf("deadline = %v, want %v", deadline, wantDeadline)
	}

	// The hour keeps the current calendar date with the requested time.
	wantHour := time.Date(2026, 3, 10, 9, 15, 0, 0, time.UTC)
	if !hour.Equal(wantHour) {
		t.Errorf("hour = %v, want %v", hour, wantHour)
	}
}

func TestCanEdit(t *testing.T) {
	deadline := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	task := &model.Task{Deadline: deadline}

	if !CanEdit(task, deadline.Add(-time.Hour)) {
		t.Error("expected task to be editable before its deadline")
	}
	if CanEdit(task, deadline) {
		t.Error("expected task not to be editable at its deadline")
	}
	if CanEdit(task, deadline.Add(time.Hour)) {
		t.Error("expected task not to be editable after its deadline")
	}
}
