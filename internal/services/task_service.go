package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"taskdesk.com/taskdesk/internal/constants"
	apperrors "taskdesk.com/taskdesk/internal/errors"
	model "taskdesk.com/taskdesk/internal/models"
	repository "taskdesk.com/taskdesk/internal/repositories"
	"taskdesk.com/taskdesk/internal/schedule"
)

type TaskService struct {
	logger zerolog.Logger
	tasks  *repository.TaskRepository
	users  *repository.UserRepository
	grace  time.Duration
}

func NewTaskService(
	logger zerolog.Logger,
	tasks *repository.TaskRepository,
	users *repository.UserRepository,
	grace time.Duration,
) *TaskService {
	return &TaskService{
		logger: logger,
		tasks:  tasks,
		users:  users,
		grace:  grace,
	}
}

type TaskParams struct {
	Title       string
	Description string
	Deadline    string
	Hour        string
	Priority    string
	Status      string
	EmployeeIDs []string
}

// Create validates the schedule, resolves assignees within the acting
// admin's company scope and persists the task.
func (s *TaskService) Create(ctx context.Context, actor *model.User, params TaskParams) (*model.Task, error) {
	assignees, err := s.resolveAssignees(ctx, actor, params.EmployeeIDs)
	if err != nil {
		return nil, err
	}

	deadline, hour, err := schedule.Validate(params.Deadline, params.Hour, time.Now(), s.grace)
	if err != nil {
		return nil, err
	}

	status := constants.TaskStatus(params.Status)
	if params.Status == "" {
		status = constants.StatusNew
	}

	task, err := s.tasks.Create(ctx, repository.CreateTaskParams{
		Title:       params.Title,
		Description: params.Description,
		Deadline:    deadline,
		Hour:        &hour,
		Priority:    constants.Priority(params.Priority),
		Status:      status,
		CreatorID:   actor.ID,
		Users:       assignees,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().
		Str("task_id", task.ID).
		Str("creator_id", actor.ID).
		Int("assignees", len(assignees)).
		Msg("created task")
	return task, nil
}

// AdminUpdate is the full-field edit path, available only while the
// task's deadline has not passed.
func (s *TaskService) AdminUpdate(ctx context.Context, actor *model.User, taskID string, params TaskParams) (*model.Task, error) {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !schedule.CanEdit(task, time.Now()) {
		return nil, apperrors.ErrDeadlinePassed
	}

	// The edit payload may be sparse; absent fields keep their stored
	// values so a partial update never blanks the task.
	if params.Title == "" {
		params.Title = task.Title
	}
	if params.Description == "" {
		params.Description = task.Description
	}
	if params.Priority == "" {
		params.Priority = string(task.Priority)
	}
	if params.Status == "" {
		params.Status = string(task.Status)
	}

	assignees, err := s.resolveAssignees(ctx, actor, params.EmployeeIDs)
	if err != nil {
		return nil, err
	}

	deadline, hour, err := schedule.Validate(params.Deadline, params.Hour, time.Now(), s.grace)
	if err != nil {
		return nil, err
	}

	err = s.tasks.Update(ctx, task, repository.UpdateTaskParams{
		Title:       params.Title,
		Description: params.Description,
		Deadline:    deadline,
		Hour:        &hour,
		Priority:    constants.Priority(params.Priority),
		Status:      constants.TaskStatus(params.Status),
		Users:       assignees,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to update task")
		return nil, err
	}

	s.logger.Info().
		Str("task_id", task.ID).
		Msg("updated task")
	return s.findTask(ctx, taskID)
}

// UpdateStatus is the assignee-facing path: status only, no deadline
// gate, any status value in the enum.
func (s *TaskService) UpdateStatus(ctx context.Context, actor *model.User, taskID string, status constants.TaskStatus) (*model.Task, error) {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !isAssignee(task, actor) {
		return nil, apperrors.ErrNotAssigned
	}

	if err := s.tasks.UpdateStatus(ctx, task.ID, status); err != nil {
		s.logger.Error().Err(err).Msg("failed to update task status")
		return nil, err
	}

	s.logger.Info().
		Str("task_id", task.ID).
		Str("status", string(status)).
		Msg("updated task status")
	return s.findTask(ctx, taskID)
}

// GetByID returns the task detail for assignees, or for the admin who
// created the task. Other callers, admin or not, are rejected.
func (s *TaskService) GetByID(ctx context.Context, actor *model.User, taskID string) (*model.Task, error) {
	task, err := s.findTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !isAssignee(task, actor) && task.CreatorID != actor.ID {
		return nil, apperrors.ErrNotAssigned
	}

	return task, nil
}

func (s *TaskService) List(ctx context.Context, filter repository.TaskFilter) ([]model.Task, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 5
	}

	tasks, total, err := s.tasks.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list tasks")
		return nil, 0, err
	}
	return tasks, total, nil
}

func (s *TaskService) findTask(ctx context.Context, taskID string) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		s.logger.Error().Err(err).Msg("failed to select task")
		return nil, err
	}
	return task, nil
}

func (s *TaskService) resolveAssignees(ctx context.Context, actor *model.User, ids []string) ([]model.User, error) {
	if actor.CompanyID == nil {
		return nil, apperrors.ErrCompanyNotFound
	}

	assignees, err := s.users.FindEmployeesInCompany(ctx, ids, *actor.CompanyID)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to resolve assignees")
		return nil, err
	}
	if len(assignees) == 0 {
		return nil, apperrors.ErrEmployeesNotFound
	}

	return assignees, nil
}

func isAssignee(task *model.Task, user *model.User) bool {
	for _, u := range task.Users {
		if u.ID == user.ID {
			return true
		}
	}
	return false
}
