package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"taskdesk.com/taskdesk/internal/constants"
	dto "taskdesk.com/taskdesk/internal/data_models"
	"taskdesk.com/taskdesk/internal/http/validators"
	"taskdesk.com/taskdesk/internal/services"
)

func (h *Handler) CreateCompany(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.CreateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateCompanyRequest(&req); err != nil {
		return respondError(c, err)
	}

	company, err := h.companyService.Create(c.Request().Context(), user, req.Name, req.Phone, req.Address)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, company)
}

func (h *Handler) AddEmployee(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req dto.AddEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateAddEmployeeRequest(&req); err != nil {
		return respondError(c, err)
	}

	employee, err := h.companyService.AddEmployee(c.Request().Context(), user, services.AddEmployeeParams{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		Status:   constants.UserStatus(req.Status),
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, newProfileResponse(employee))
}
