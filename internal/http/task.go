package http

import (
	"math"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"taskdesk.com/taskdesk/internal/constants"
	dto "taskdesk.com/taskdesk/internal/data_models"
	"taskdesk.com/taskdesk/internal/http/validators"
	repository "taskdesk.com/taskdesk/internal/repositories"
	"taskdesk.com/taskdesk/internal/schedule"
	"taskdesk.com/taskdesk/internal/services"
)

func (h *Handler) CreateTask(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return respondError(c, err)
	}

	task, err := h.taskService.Create(c.Request().Context(), user, services.TaskParams{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
		Hour:        req.Hour,
		Priority:    req.Priority,
		Status:      req.Status,
		EmployeeIDs: req.EmployeeIDs,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, task)
}

// UpdateTask is the admin full-edit path; pre-deadline only.
func (h *Handler) UpdateTask(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return respondError(c, err)
	}

	task, err := h.taskService.AdminUpdate(c.Request().Context(), user, id, services.TaskParams{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
		Hour:        req.Hour,
		Priority:    req.Priority,
		Status:      req.Status,
		EmployeeIDs: req.EmployeeIDs,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "task updated successfully",
		"data":    task,
	})
}

// UpdateTaskStatus is the assignee-facing status-only path.
func (h *Handler) UpdateTaskStatus(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateTaskStatusRequest(&req); err != nil {
		return respondError(c, err)
	}

	task, err := h.taskService.UpdateStatus(c.Request().Context(), user, id, constants.TaskStatus(req.Status))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "task updated successfully",
		"data":    task,
	})
}

func (h *Handler) GetTask(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "task id is required")
	}

	task, err := h.taskService.GetByID(c.Request().Context(), user, id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	var query dto.ListTasksQuery
	if err := c.Bind(&query); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}

	filter := repository.TaskFilter{
		Status:      query.Status,
		Priority:    query.Priority,
		Title:       query.Title,
		AssigneeIDs: query.AssigneeIDs,
		Page:        query.Page,
		Limit:       query.Limit,
	}

	if query.From != "" {
		from, err := time.Parse(schedule.DeadlineLayout, query.From)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "deadline_from must be in YYYY-MM-DD format")
		}
		filter.From = &from
	}
	if query.To != "" {
		to, err := time.Parse(schedule.DeadlineLayout, query.To)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "deadline_to must be in YYYY-MM-DD format")
		}
		filter.To = &to
	}

	tasks, total, err := h.taskService.List(c.Request().Context(), filter)
	if err != nil {
		return respondError(c, err)
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 5
	}

	return c.JSON(http.StatusOK, echo.Map{
		"data": tasks,
		"pagination": echo.Map{
			"total":         total,
			"page":          filter.Page,
			"items_on_page": len(tasks),
			"total_pages":   int(math.Ceil(float64(total) / float64(filter.Limit))),
		},
	})
}
