// Package schedule holds the temporal rules of the task lifecycle:
// when a deadline/hour pair is acceptable at create or edit time, and
// whether a task is still editable.
package schedule

import (
	"time"

	apperrors "taskdesk.com/taskdesk/internal/errors"
	model "taskdesk.com/taskdesk/internal/models"
)

const (
	DeadlineLayout = "2006-01-02"
	HourLayout     = "15:04"
)

// Validate parses the deadline date and the HH:MM hour and checks them
// against now. The deadline must not fall before the start of the
// current day. The hour is a same-day safety margin only: when the
// deadline is today it must be at least grace after now, on future days
// it is not checked. The returned hour timestamp carries now's calendar
// date with the requested time of day.
func Validate(deadlineInput, hourInput string, now time.Time, grace time.Duration) (time.Time, time.Time, error) {
	deadline, err := time.ParseInLocation(DeadlineLayout, deadlineInput, now.Location())
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidDeadline
	}

	parsedHour, err := time.Parse(HourLayout, hourInput)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidHour
	}
	hour := time.Date(now.Year(), now.Month(), now.Day(),
		parsedHour.Hour(), parsedHour.Minute(), 0, 0, now.Location())

	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if deadline.Before(startOfToday) {
		return time.Time{}, time.Time{}, apperrors.ErrDeadlineInPast
	}

	if sameDay(deadline, now) && hour.Before(now.Add(grace)) {
		return time.Time{}, time.Time{}, apperrors.ErrHourTooSoon
	}

	return deadline, hour, nil
}

// CanEdit reports whether the full-field update path may still mutate
// the task. Status-only updates by assignees do not go through this
// check; neither does the expiry sweep.
func CanEdit(task *model.Task, now time.Time) bool {
	return now.Before(task.Deadline)
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
