package http

import (
	"time"

	"github.com/labstack/echo/v4"

	"taskdesk.com/taskdesk/internal/constants"
	middleware "taskdesk.com/taskdesk/internal/http/middlewares"
	"taskdesk.com/taskdesk/internal/services"
)

func Register(e *echo.Echo, h *Handler, authService *services.AuthService, rateLimitPerMinute int) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	api := e.Group("/api/v1")

	authMW := middleware.Auth(authService)
	adminMW := middleware.RequireRole(constants.RoleAdmin)

	auth := api.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.GET("/me", h.Me, authMW)

	company := api.Group("/company", authMW, adminMW)
	company.POST("/create", h.CreateCompany)

	admin := api.Group("/admin", authMW, adminMW)
	admin.POST("/add/employee", h.AddEmployee)
	admin.PUT("/task/update/:id", h.UpdateTask)
	admin.GET("/list", h.ListTasks)

	task := api.Group("/task", authMW)
	task.POST("/create", h.CreateTask, adminMW)
	task.PUT("/update/:id", h.UpdateTaskStatus)
	task.GET("/get/by/:id", h.GetTask)
}
