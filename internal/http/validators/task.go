package validators

import (
	"taskdesk.com/taskdesk/internal/constants"
	dto "taskdesk.com/taskdesk/internal/data_models"
	apperrors "taskdesk.com/taskdesk/internal/errors"
)

func taskFields(title, description, priority, status string, update bool) []Field {
	return []Field{
		{Name: "title", Value: title, Optional: update, Checks: []Check{MinLen(1), MaxLen(150)}},
		{Name: "description", Value: description, Optional: update, Checks: []Check{MinLen(3)}},
		{Name: "priority", Value: priority, Optional: update, Checks: []Check{
			Enum(constants.ValidPriority, "must be one of LOW, NORMAL, HIGH, IMMEDIATE"),
		}},
		// Status defaults to NEW when omitted at creation.
		{Name: "status", Value: status, Optional: true, Checks: []Check{
			Enum(constants.ValidTaskStatus, "must be a valid task status"),
		}},
	}
}

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	fields := taskFields(r.Title, r.Description, r.Priority, r.Status, false)
	violations := Apply(fields)
	if len(r.EmployeeIDs) == 0 {
		violations = append(violations, apperrors.Violation{
			Field:   "employee_ids",
			Message: "employee_ids is required",
		})
	}
	return asError(violations)
}

func ValidateUpdateTaskRequest(r *dto.UpdateTaskRequest) error {
	fields := taskFields(r.Title, r.Description, r.Priority, r.Status, true)
	violations := Apply(fields)
	if len(r.EmployeeIDs) == 0 {
		violations = append(violations, apperrors.Violation{
			Field:   "employee_ids",
			Message: "employee_ids is required",
		})
	}
	return asError(violations)
}

func ValidateUpdateTaskStatusRequest(r *dto.UpdateTaskStatusRequest) error {
	return asError(Apply([]Field{
		{Name: "status", Value: r.Status, Checks: []Check{
			Enum(constants.ValidTaskStatus, "must be a valid task status"),
		}},
	}))
}
