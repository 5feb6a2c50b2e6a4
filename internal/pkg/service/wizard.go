package service

import (
	"errors"
	"net/http"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/airenas/revy/internal/pkg/persistence"
	"github.com/airenas/revy/internal/pkg/review"
	"github.com/labstack/echo/v4"
)

type startInput struct {
	Flow   review.Flow `json:"flow"`
	FileID string      `json:"fileId,omitempty"`
}

type replaceInput struct {
	Phrase      string `json:"phrase"`
	Replacement string `json:"replacement"`
}

func startWizard(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		defer goapp.Estimate("start wizard method")()

		var in startInput
		if err := bind(c, &in); err != nil {
			return err
		}
		switch in.Flow {
		case review.FlowUpload:
			return c.JSON(http.StatusOK, data.Wizards.StartUpload(uploader(c, data)))
		case review.FlowReview:
			res, err := data.Wizards.StartReview(in.FileID)
			if err != nil {
				return mapWizardErr(err)
			}
			return c.JSON(http.StatusOK, res)
		}
		return echo.NewHTTPError(http.StatusBadRequest, "no flow")
	}
}

func getWizard(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		res, err := data.Wizards.Get(c.Param("id"))
		if err != nil {
			return mapWizardErr(err)
		}
		return c.JSON(http.StatusOK, res)
	}
}

func nextStep(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		defer goapp.Estimate("next method")()

		var in persistence.FilePatch
		if err := bind(c, &in); err != nil {
			return err
		}
		res, err := data.Wizards.Next(c.Param("id"), &in)
		if err != nil {
			return mapWizardErr(err)
		}
		return c.JSON(http.StatusOK, res)
	}
}

func backStep(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		res, err := data.Wizards.Back(c.Param("id"))
		if err != nil {
			return mapWizardErr(err)
		}
		return c.JSON(http.StatusOK, res)
	}
}

func replacePhrase(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		var in replaceInput
		if err := bind(c, &in); err != nil {
			return err
		}
		res, err := data.Wizards.Replace(c.Param("id"), in.Phrase, in.Replacement)
		if err != nil {
			return mapWizardErr(err)
		}
		return c.JSON(http.StatusOK, res)
	}
}

func finishWizard(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		defer goapp.Estimate("finish method")()

		var in persistence.FilePatch
		if err := bind(c, &in); err != nil {
			return err
		}
		res, err := data.Wizards.Finish(c.Param("id"), &in)
		if err != nil {
			return mapWizardErr(err)
		}
		return c.JSON(http.StatusOK, res)
	}
}

func mapWizardErr(err error) error {
	if errors.Is(err, review.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "wizard not found")
	}
	if errors.Is(err, review.ErrFileNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "file not found")
	}
	if errors.Is(err, review.ErrNoName) {
		return echo.NewHTTPError(http.StatusBadRequest, "no name")
	}
	goapp.Log.Error().Err(err).Send()
	return echo.NewHTTPError(http.StatusInternalServerError, "service error")
}
