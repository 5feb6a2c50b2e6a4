package service

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/airenas/revy/internal/pkg/dashboard"
	"github.com/airenas/revy/internal/pkg/persistence"
	"github.com/airenas/revy/internal/pkg/review"
	"github.com/airenas/revy/internal/pkg/status"
	"github.com/airenas/revy/internal/pkg/upload"
	"github.com/airenas/revy/internal/pkg/utils"
	"github.com/labstack/echo/v4"
)

type uploadResult struct {
	ID       string `json:"id"`
	Redirect string `json:"redirect"`
}

type listResult struct {
	Files   []*persistence.FileRecord `json:"files"`
	Stats   dashboard.Stats           `json:"stats"`
	Filters dashboard.FilterOptions   `json:"filters"`
}

func uploadFile(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		defer goapp.Estimate("upload method")()

		var form upload.Form
		if err := bind(c, &form); err != nil {
			return err
		}
		if err := form.Validate(); err != nil {
			goapp.Log.Warn().Err(err).Send()
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		rec := data.Maker.Make(form.Patch(), uploader(c, data))
		data.Files.AddFile(rec)
		goapp.Log.Info().Str("ID", rec.ID).Str("uploader", goapp.Sanitize(rec.Uploader)).Msg("uploaded")
		return c.JSON(http.StatusOK, uploadResult{ID: rec.ID, Redirect: review.DashboardPath})
	}
}

func listFiles(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		defer goapp.Estimate("list method")()

		q, err := parseQuery(c)
		if err != nil {
			return err
		}
		all := data.Files.ListFiles()
		res := listResult{Files: dashboard.Filter(all, q), Stats: dashboard.MakeStats(all),
			Filters: dashboard.MakeFilterOptions(all)}
		if res.Files == nil {
			res.Files = []*persistence.FileRecord{}
		}
		return c.JSON(http.StatusOK, res)
	}
}

func parseQuery(c echo.Context) (dashboard.Query, error) {
	res := dashboard.Query{Search: strings.TrimSpace(c.QueryParam("search")), Type: c.QueryParam("type"),
		SubCollection: c.QueryParam("subCollection")}
	if s := c.QueryParam("status"); s != "" {
		res.Status = status.From(strings.ToUpper(s))
		if res.Status == 0 {
			return res, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown status '%s'", s))
		}
	}
	var ok bool
	res.Sort, ok = dashboard.ParseSort(c.QueryParam("sort"))
	if !ok {
		return res, echo.NewHTTPError(http.StatusBadRequest, "unknown sort")
	}
	return res, nil
}

func getFile(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		defer goapp.Estimate("get file method")()

		f, err := loadFile(c, data)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, f)
	}
}

func rejectFile(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		defer goapp.Estimate("reject method")()

		f, err := loadFile(c, data)
		if err != nil {
			return err
		}
		if !status.CanTransit(f.Status, status.Rejected) {
			return echo.NewHTTPError(http.StatusConflict, fmt.Sprintf("file is %s", f.Status.String()))
		}
		data.Files.UpdateFile(f.ID, persistence.StatusPatch(status.Rejected))
		return c.JSON(http.StatusOK, data.Files.GetFileByID(f.ID))
	}
}

func download(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		defer goapp.Estimate("download method")()

		f, err := loadFile(c, data)
		if err != nil {
			return err
		}
		if f.Status != status.Approved {
			return echo.NewHTTPError(http.StatusConflict, "file is not approved")
		}
		if utils.ParamTrue(c.QueryParam("attachment")) {
			c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", f.ID+".txt"))
		}
		return c.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, []byte(f.EditedText))
	}
}

func loadFile(c echo.Context, data *Data) (*persistence.FileRecord, error) {
	id := c.Param("id")
	if id == "" {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "no ID")
	}
	f := data.Files.GetFileByID(id)
	if f == nil {
		goapp.Log.Info().Str("ID", goapp.Sanitize(id)).Msg("no file")
		return nil, echo.NewHTTPError(http.StatusNotFound, "file not found")
	}
	return f, nil
}
