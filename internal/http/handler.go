package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "taskdesk.com/taskdesk/internal/errors"
	middleware "taskdesk.com/taskdesk/internal/http/middlewares"
	model "taskdesk.com/taskdesk/internal/models"
	"taskdesk.com/taskdesk/internal/services"
)

type Handler struct {
	authService    *services.AuthService
	companyService *services.CompanyService
	taskService    *services.TaskService
}

func NewHandler(
	authService *services.AuthService,
	companyService *services.CompanyService,
	taskService *services.TaskService,
) *Handler {
	return &Handler{
		authService:    authService,
		companyService: companyService,
		taskService:    taskService,
	}
}

// currentUser returns the user placed on the context by the auth
// middleware. Routes behind the middleware always have one.
func currentUser(c echo.Context) (*model.User, error) {
	user, ok := c.Get(middleware.UserContextKey).(*model.User)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrTokenNotFound.Message)
	}
	return user, nil
}

// respondError maps service faults to the response taxonomy: field
// violations become a 422 list, Exceptions keep their status, anything
// else is a 500 with the message passed through.
func respondError(c echo.Context, err error) error {
	var validationErr *apperrors.ValidationException
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"errors": validationErr.Violations,
		})
	}

	return c.JSON(apperrors.StatusCode(err), echo.Map{
		"message": err.Error(),
	})
}
