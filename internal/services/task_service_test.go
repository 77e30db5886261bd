package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"taskdesk.com/taskdesk/internal/constants"
	apperrors "taskdesk.com/taskdesk/internal/errors"
	model "taskdesk.com/taskdesk/internal/models"
	repository "taskdesk.com/taskdesk/internal/repositories"
)

func taskParams(employeeIDs ...string) TaskParams {
	return TaskParams{
		Title:       "Release checklist",
		Description: "Prepare the release",
		Deadline:    tomorrow(),
		Hour:        "09:00",
		Priority:    string(constants.PriorityHigh),
		EmployeeIDs: employeeIDs,
	}
}

func TestTaskService_CreateAssignsCompanyEmployees(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	admin := f.newAdminWithCompany(t, "admin@example.com", "Acme", "+994501234567", "28 May street")
	employee := f.newEmployee(t, admin, "emp@example.com")

	task, err := f.task.Create(ctx, admin, taskParams(employee.ID))
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if task.Status != constants.StatusNew {
		t.Errorf("status = %s, want %s", task.Status, constants.StatusNew)
	}
	if task.CreatorID != admin.ID {
		t.Errorf("creator = %s, want %s", task.CreatorID, admin.ID)
	}
	if len(task.Users) != 1 || task.Users[0].ID != employee.ID {
		t.Errorf("assignees = %v, want exactly [%s]", task.Users, employee.ID)
	}
	if task.Hour == nil {
		t.Error("expected the hour boundary to be set")
	}
}

func TestTaskService_CreateFiltersOutOfScopeCandidates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	admin := f.newAdminWithCompany(t, "admin@example.com", "Acme", "+994501234567", "28 May street")
	employee := f.newEmployee(t, admin, "emp@example.com")

	otherAdmin := f.newAdminWithCompany(t, "other@example.com", "Globex", "+994509876543", "Nizami street")
	foreign := f.newEmployee(t, otherAdmin, "foreign@example.com")

	// Foreign employees and admins are dropped; the in-scope employee remains.
	task, err := f.task.Create(ctx, admin, taskParams(employee.ID, foreign.ID, otherAdmin.ID))
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	if len(task.Users) != 1 || task.Users[0].ID != employee.ID {
		t.Errorf("assignees = %v, want exactly [%s]", task.Users, employee.ID)
	}

	// Only out-of-scope candidates resolves to an empty set.
	_, err = f.task.Create(ctx, admin, taskParams(foreign.ID, otherAdmin.ID))
	if !errors.Is(err, apperrors.ErrEmployeesNotFound) {
		t.Errorf("error = %v, want %v", err, apperrors.ErrEmployeesNotFound)
	}
}

func TestTaskService_CreateExcludesDeactivatedEmployees(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	admin := f.newAdminWithCompany(t, "admin@example.com", "Acme", "+994501234567", "28 May street")

	inactive, err := f.company.AddEmployee(ctx, admin, AddEmployeeParams{
		Name:     "Inactive",
		Surname:  "User",
		Email:    "inactive@example.com",
		Username: "inactive",
		Password: "password1",
		Status:   constants.UserDeactive,
	})
	if err != nil {
		t.Fatalf("failed to add employee: %v", err)
	}

	_, err = f.task.Create(ctx, admin, taskParams(inactive.ID))
	if !errors.Is(err, apperrors.ErrEmployeesNotFound) {
		t.Errorf("error = %v, want %v", err, apperrors.ErrEmployeesNotFound)
	}
}

func TestTaskService_CreateRejectsPastDeadline(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	admin := f.newAdminWithCompany(t, "admin@example.com", "Acme", "+994501234567", "28 May street")
	employee := f.newEmployee(t, admin, "emp@example.com")

	params := taskParams(employee.ID)
	params.Deadline = time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	_, err := f.task.Create(ctx, admin, params)
	if !errors.Is(err, apperrors.ErrDeadlineInPast) {
		t.Errorf("error = %v, want %v", err, apperrors.ErrDeadlineInPast)
	}

	// Nothing may be persisted on a schedule violation.
	tasks, _, listErr := f.task.List(ctx, repository.TaskFilter{})
	if listErr != nil {
		t.Fatalf("failed to list tasks: %v", listErr)
	}
	if len(tasks) != 0 {
		t.Errorf("expected no persisted tasks, got %d", len(tasks))
	}
}

func TestTaskService_StatusUpdateByAssignee(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	admin := f.newAdminWithCompany(t, "admin@example.com", "Acme", "+994501234567", "28 May street")
	employee := f.newEmployee(t, admin, "emp@example.com")

	task, err := f.task.Create(ctx, admin, taskParams(employee.ID))
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	updated, err := f.task.UpdateStatus(ctx, employee, task.ID, constants.StatusInProgress)
	if err != nil {
		t.Fatalf("failed to update status: %v", err)
	}
	if updated.Status != constants.StatusInProgress {
		t.Errorf("status = %s, want %s", updated.Status, constants.StatusInProgress)
	}
}

func TestTaskService_StatusUpdateByNonAssigneeForbidden(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	admin := f.newAdminWithCompany(t, "admin@example.com", "Acme", "+994501234567", "28 May street")
	employee := f.newEmployee(t, admin, "emp@example.com")
	outsider := f.newEmployee(t, admin, "outsider@example.com")

	task, err := f.task.Create(ctx, admin, taskParams(employee.ID))
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	_, err = f.task.UpdateStatus(ctx, outsider, task.ID, constants.StatusTested)
	if !errors.Is(err, apperrors.ErrNotAssigned) {
		t.Errorf("error = %v, want %v", err, apperrors.ErrNotAssigned)
	}

	// The task must be left untouched.
	unchanged, err := f.tasks.FindByID(ctx, task.ID)
	if err != nil {
		t.Fatalf("failed to reload task: %v", err)
	}
	if unchanged.Status != constants.StatusNew {
		t.Errorf("status = %s, want %s", unchanged.Status, constants.StatusNew)
	}
}

func TestTaskService_GetByIDVisibility(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	admin := f.newAdminWithCompany(t, "admin@example.com", "Acme", "+994501234567", "28 May street")
	employee := f.newEmployee(t, admin, "emp@example.com")
	outsider := f.newEmployee(t, admin, "outsider@example.com")

	task, err := f.task.Create(ctx, admin, taskParams(employee.ID))
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if _, err := f.task.GetByID(ctx, employee, task.ID); err != nil {
		t.Errorf("assignee read failed: %v", err)
	}
	if _, err := f.task.GetByID(ctx, admin, task.ID); err != nil {
		t.Errorf("creator read failed: %v", err)
	}
	if _, err := f.task.GetByID(ctx, outsider, task.ID); !errors.Is(err, apperrors.ErrNotAssigned) {
		t.Errorf("outsider read: error = %v, want %v", err, apperrors.ErrNotAssigned)
	}

	// An admin who neither created nor is assigned to the task is
	// rejected on the detail path as well.
	otherAdmin := f.newAdminWithCompany(t, "other@example.com", "Globex", "+994509876543", "Nizami street")
	if _, err := f.task.GetByID(ctx, otherAdmin, task.ID); !errors.Is(err, apperrors.ErrNotAssigned) {
		t.Errorf("foreign admin read: error = %v, want %v", err, apperrors.ErrNotAssigned)
	}
}

func TestTaskService_AdminUpdateAfterDeadline(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	admin := f.newAdminWithCompany(t, "admin@example.com", "Acme", "+994501234567", "28 May street")
	employee := f.newEmployee(t, admin, "emp@example.com")

	// Seed an already-expired task through the repository; the service
	// would rightly refuse to create one.
	expired, err := f.tasks.Create(ctx, repository.CreateTaskParams{
		Title:       "Old task",
		Description: "Past its deadline",
		Deadline:    time.Now().AddDate(0, 0, -1),
		Priority:    constants.PriorityLow,
		Status:      constants.StatusNew,
		CreatorID:   admin.ID,
		Users:       []model.User{*employee},
	})
	if err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}

	_, err = f.task.AdminUpdate(ctx, admin, expired.ID, taskParams(employee.ID))
	if !errors.Is(err, apperrors.ErrDeadlinePassed) {
		t.Errorf("error = %v, want %v", err, apperrors.ErrDeadlinePassed)
	}

	// Status-only updates by assignees bypass the deadline gate.
	if _, err := f.task.UpdateStatus(ctx, employee, expired.ID, constants.StatusDeveloped); err != nil {
		t.Errorf("status update near deadline failed: %v", err)
	}
}

func TestTaskService_AdminUpdateReplacesFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	admin := f.newAdminWithCompany(t, "admin@example.com", "Acme", "+994501234567", "28 May street")
	employee := f.newEmployee(t, admin, "emp@example.com")
	second := f.newEmployee(t, admin, "second@example.com")

	task, err := f.task.Create(ctx, admin, taskParams(employee.ID))
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	params := taskParams(second.ID)
	params.Title = "Reworked checklist"
	params.Priority = string(constants.PriorityImmediate)
	params.Status = string(constants.StatusOnHold)

	updated, err := f.task.AdminUpdate(ctx, admin, task.ID, params)
	if err != nil {
		t.Fatalf("failed to update task: %v", err)
	}

	if updated.Title != "Reworked checklist" {
		t.Errorf("title = %s, want Reworked checklist", updated.Title)
	}
	if updated.Priority != constants.PriorityImmediate {
		t.Errorf("priority = %s, want %s", updated.Priority, constants.PriorityImmediate)
	}
	if updated.Status != constants.StatusOnHold {
		t.Errorf("status = %s, want %s", updated.Status, constants.StatusOnHold)
	}
	if len(updated.Users) != 1 || updated.Users[0].ID != second.ID {
		t.Errorf("assignees = %v, want exactly [%s]", updated.Users, second.ID)
	}
}

func TestTaskService_AdminUpdatePartialPayloadKeepsFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	admin := f.newAdminWithCompany(t, "admin@example.com", "Acme", "+994501234567", "28 May street")
	employee := f.newEmployee(t, admin, "emp@example.com")

	task, err := f.task.Create(ctx, admin, taskParams(employee.ID))
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	// Only the schedule and the assignee set; everything else omitted.
	updated, err := f.task.AdminUpdate(ctx, admin, task.ID, TaskParams{
		Deadline:    tomorrow(),
		Hour:        "10:00",
		EmployeeIDs: []string{employee.ID},
	})
	if err != nil {
		t.Fatalf("failed to update task: %v", err)
	}

	if updated.Title != task.Title {
		t.Errorf("title = %q, want %q", updated.Title, task.Title)
	}
	if updated.Description != task.Description {
		t.Errorf("description = %q, want %q", updated.Description, task.Description)
	}
	if updated.Priority != task.Priority {
		t.Errorf("priority = %q, want %q", updated.Priority, task.Priority)
	}
	if updated.Status != task.Status {
		t.Errorf("status = %q, want %q", updated.Status, task.Status)
	}
	if !constants.ValidTaskStatus(string(updated.Status)) {
		t.Errorf("status %q is not a valid enum value", updated.Status)
	}
}

func TestTaskService_ListFilters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	admin := f.newAdminWithCompany(t, "admin@example.com", "Acme", "+994501234567", "28 May street")
	employee := f.newEmployee(t, admin, "emp@example.com")

	params := taskParams(employee.ID)
	params.Title = "Deploy the gateway"
	if _, err := f.task.Create(ctx, admin, params); err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	params = taskParams(employee.ID)
	params.Title = "Write the report"
	params.Priority = string(constants.PriorityLow)
	if _, err := f.task.Create(ctx, admin, params); err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	tasks, total, err := f.task.List(ctx, repository.TaskFilter{Title: "gateway"})
	if err != nil {
		t.Fatalf("failed to list by title: %v", err)
	}
	if total != 1 || len(tasks) != 1 || tasks[0].Title != "Deploy the gateway" {
		t.Errorf("title filter returned %d/%d tasks", len(tasks), total)
	}

	tasks, total, err = f.task.List(ctx, repository.TaskFilter{Priority: string(constants.PriorityLow)})
	if err != nil {
		t.Fatalf("failed to list by priority: %v", err)
	}
	if total != 1 || len(tasks) != 1 || tasks[0].Title != "Write the report" {
		t.Errorf("priority filter returned %d/%d tasks", len(tasks), total)
	}

	tasks, total, err = f.task.List(ctx, repository.TaskFilter{AssigneeIDs: []string{employee.ID}})
	if err != nil {
		t.Fatalf("failed to list by assignee: %v", err)
	}
	if total != 2 {
		t.Errorf("assignee filter total = %d, want 2", total)
	}

	_, total, err = f.task.List(ctx, repository.TaskFilter{Status: string(constants.StatusTested)})
	if err != nil {
		t.Fatalf("failed to list by status: %v", err)
	}
	if total != 0 {
		t.Errorf("status filter total = %d, want 0", total)
	}
}
