package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"taskdesk.com/taskdesk/internal/constants"
	apperrors "taskdesk.com/taskdesk/internal/errors"
	model "taskdesk.com/taskdesk/internal/models"
	"taskdesk.com/taskdesk/internal/services"
)

// UserContextKey is where the authenticated user is stored on the echo
// context for downstream handlers.
const UserContextKey = "user"

func Auth(auth *services.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(apperrors.ErrTokenNotFound.StatusCode, apperrors.ErrTokenNotFound.Message)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				return echo.NewHTTPError(apperrors.ErrTokenNotFound.StatusCode, apperrors.ErrTokenNotFound.Message)
			}

			user, err := auth.Authenticate(c.Request().Context(), parts[1])
			if err != nil {
				return echo.NewHTTPError(apperrors.StatusCode(err), err.Error())
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

func RequireRole(roles ...constants.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(UserContextKey).(*model.User)
			if !ok {
				return echo.NewHTTPError(apperrors.ErrTokenNotFound.StatusCode, apperrors.ErrTokenNotFound.Message)
			}

			for _, role := range roles {
				if user.Role == role {
					return next(c)
				}
			}

			return echo.NewHTTPError(apperrors.ErrPermissionDenied.StatusCode, apperrors.ErrPermissionDenied.Message)
		}
	}
}
