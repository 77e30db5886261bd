package errors

import "net/http"

var ErrInvalidDeadline = &Exception{
	Message:    "deadline must be a valid date in YYYY-MM-DD format",
	StatusCode: http.StatusBadRequest,
}

var ErrInvalidHour = &Exception{
	Message:    "hour must be a valid time in HH:MM format",
	StatusCode: http.StatusBadRequest,
}

var ErrDeadlineInPast = &Exception{
	Message:    "deadline cannot be in the past",
	StatusCode: http.StatusBadRequest,
}

var ErrHourTooSoon = &Exception{
	Message:    "hour must leave enough lead time after the current time",
	StatusCode: http.StatusBadRequest,
}

var ErrDeadlinePassed = &Exception{
	Message:    "the deadline of this task has passed",
	StatusCode: http.StatusBadRequest,
}
