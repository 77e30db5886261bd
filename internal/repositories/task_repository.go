package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskdesk.com/taskdesk/internal/constants"
	model "taskdesk.com/taskdesk/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

type CreateTaskParams struct {
	Title       string
	Description string
	Deadline    time.Time
	Hour        *time.Time
	Priority    constants.Priority
	Status      constants.TaskStatus
	CreatorID   string
	Users       []model.User
}

func (r *TaskRepository) Create(ctx context.Context, params CreateTaskParams) (*model.Task, error) {
	task := &model.Task{
		ID:          uuid.NewString(),
		Title:       params.Title,
		Description: params.Description,
		Deadline:    params.Deadline,
		Hour:        params.Hour,
		Priority:    params.Priority,
		Status:      params.Status,
		CreatorID:   params.CreatorID,
		Users:       params.Users,
		CreatedAt:   time.Now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return nil, err
	}

	return task, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Preload("Users").First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

type UpdateTaskParams struct {
	Title       string
	Description string
	Deadline    time.Time
	Hour        *time.Time
	Priority    constants.Priority
	Status      constants.TaskStatus
	Users       []model.User
}

// Update replaces all mutable fields and the assignee set; the admin
// full-edit path.
func (r *TaskRepository) Update(ctx context.Context, task *model.Task, params UpdateTaskParams) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(task).Updates(map[string]interface{}{
			"title":       params.Title,
			"description": params.Description,
			"deadline":    params.Deadline,
			"hour":        params.Hour,
			"priority":    params.Priority,
			"status":      params.Status,
		}).Error
		if err != nil {
			return err
		}
		return tx.Model(task).Association("Users").Replace(params.Users)
	})
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, taskID string, status constants.TaskStatus) error {
	return r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", taskID).
		Update("status", status).Error
}

type TaskFilter struct {
	Status      string
	Priority    string
	Title       string
	From        *time.Time
	To          *time.Time
	AssigneeIDs []string
	Page        int
	Limit       int
}

func (r *TaskRepository) List(ctx context.Context, filter TaskFilter) ([]model.Task, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Task{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.Title != "" {
		query = query.Where("title LIKE ?", "%"+filter.Title+"%")
	}
	if filter.From != nil {
		query = query.Where("deadline >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("deadline <= ?", *filter.To)
	}
	if len(filter.AssigneeIDs) > 0 {
		query = query.
			Joins("JOIN employees_tasks ON employees_tasks.task_id = tasks.id").
			Where("employees_tasks.user_id IN ?", filter.AssigneeIDs).
			Distinct()
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var tasks []model.Task
	err := query.
		Order("created_at desc").
		Offset((filter.Page - 1) * filter.Limit).
		Limit(filter.Limit).
		Preload("Users").
		Find(&tasks).Error
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// ListExpired returns tasks past deadline that the sweep still owes a
// terminal status: those whose hour has also elapsed, and those with no
// hour at all (deadline alone governs). Tasks already TEST_FAILED are
// excluded, which makes the sweep idempotent.
func (r *TaskRepository) ListExpired(ctx context.Context, now time.Time) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Where("deadline < ? AND status <> ?", now, constants.StatusTestFailed).
		Where("hour < ? OR hour IS NULL", now).
		Order("deadline asc").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) MarkFailed(ctx context.Context, taskID string) error {
	return r.UpdateStatus(ctx, taskID, constants.StatusTestFailed)
}
