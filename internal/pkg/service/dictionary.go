package service

import (
	"net/http"
	"strconv"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/airenas/revy/internal/pkg/dictionary"
	"github.com/labstack/echo/v4"
)

type termInput struct {
	Description *string `json:"description"`
}

func listTerms(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		defer goapp.Estimate("dictionary method")()

		q := dictionary.Query{Search: c.QueryParam("search"), SubCollection: c.QueryParam("subCollection"), Page: 1}
		if s := c.QueryParam("page"); s != "" {
			p, err := strconv.Atoi(s)
			if err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "wrong page")
			}
			q.Page = p
		}
		return c.JSON(http.StatusOK, data.Dictionary.List(q))
	}
}

func getTerm(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		res := data.Dictionary.Get(c.Param("id"))
		if res == nil {
			return echo.NewHTTPError(http.StatusNotFound, "term not found")
		}
		return c.JSON(http.StatusOK, res)
	}
}

func updateTerm(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		defer goapp.Estimate("update term method")()

		var in termInput
		if err := bind(c, &in); err != nil {
			return err
		}
		if in.Description == nil {
			return echo.NewHTTPError(http.StatusBadRequest, "no description")
		}
		id := c.Param("id")
		if !data.Dictionary.UpdateDescription(id, *in.Description) {
			return echo.NewHTTPError(http.StatusNotFound, "term not found")
		}
		return c.JSON(http.StatusOK, data.Dictionary.Get(id))
	}
}
