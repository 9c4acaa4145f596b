package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"com.hawanagroup.socialbridge/internal/model"
)

type AuthService interface {
	Login(params *model.LoginParams) (string, error)
	Verify(token string) (model.OperatorID, error)
}

func Login(authService AuthService) echo.HandlerFunc {
	return func(c echo.Context) error {
		params := &model.LoginParams{}
		if err := c.Bind(params); err != nil {
			return err
		}

		token, err := authService.Login(params)
		if err != nil {
			if errors.Is(err, model.ErrorInvalidCredentials) {
				return c.NoContent(http.StatusUnauthorized)
			}
			return err
		}

		return c.JSON(http.StatusOK, map[string]string{"token": token})
	}
}

// RequireOperator gates the façade routes behind a bearer token issued by
// the auth service.
func RequireOperator(authService AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			const prefix = "Bearer "
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, prefix) {
				return c.NoContent(http.StatusUnauthorized)
			}

			operatorID, err := authService.Verify(strings.TrimPrefix(header, prefix))
			if err != nil {
				return c.NoContent(http.StatusUnauthorized)
			}

			c.Set("operatorID", string(operatorID))
			return next(c)
		}
	}
}
