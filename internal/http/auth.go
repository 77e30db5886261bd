package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	dto "taskdesk.com/taskdesk/internal/data_models"
	"taskdesk.com/taskdesk/internal/http/validators"
	model "taskdesk.com/taskdesk/internal/models"
	"taskdesk.com/taskdesk/internal/services"
)

type profileResponse struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Email     string    `json:"email"`
	Username  string    `json:"username,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func newProfileResponse(user *model.User) profileResponse {
	return profileResponse{
		ID:        user.ID,
		Name:      user.Name,
		Surname:   user.Surname,
		Email:     user.Email,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}

func (h *Handler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateRegisterRequest(&req); err != nil {
		return respondError(c, err)
	}

	user, err := h.authService.Register(c.Request().Context(), services.RegisterParams{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, newProfileResponse(user))
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateLoginRequest(&req); err != nil {
		return respondError(c, err)
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"access_token": token,
	})
}

func (h *Handler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	resp := newProfileResponse(user)
	resp.ID = ""
	return c.JSON(http.StatusOK, resp)
}
