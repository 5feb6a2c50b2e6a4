package service

import (
	"errors"
	"net/http"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/airenas/revy/internal/pkg/auth"
	"github.com/airenas/revy/internal/pkg/persistence"
	"github.com/labstack/echo/v4"
)

type loginInput struct {
	Username string `json:"username"`
}

type loginResult struct {
	Token string            `json:"token"`
	User  *persistence.User `json:"user"`
}

func login(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		defer goapp.Estimate("login method")()

		var in loginInput
		if err := bind(c, &in); err != nil {
			return err
		}
		token, u, err := data.Sessions.Login(in.Username)
		if err != nil {
			if errors.Is(err, auth.ErrEmptyName) {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}
			goapp.Log.Error().Err(err).Send()
			return echo.NewHTTPError(http.StatusInternalServerError, "service error")
		}
		c.Response().Header().Set(SessionHeader, token)
		return c.JSON(http.StatusOK, loginResult{Token: token, User: u})
	}
}

func logout(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		data.Sessions.Logout(c.Request().Header.Get(SessionHeader))
		return c.NoContent(http.StatusNoContent)
	}
}

func user(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		u := data.Sessions.User(c.Request().Header.Get(SessionHeader))
		if u == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "no session")
		}
		return c.JSON(http.StatusOK, u)
	}
}
