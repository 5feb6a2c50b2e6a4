package service

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/airenas/revy/internal/pkg/dictionary"
	"github.com/airenas/revy/internal/pkg/persistence"
	"github.com/airenas/revy/internal/pkg/review"
	"github.com/airenas/revy/internal/pkg/statusservice"
	"github.com/facebookgo/grace/gracehttp"
	"github.com/labstack/echo-contrib/prometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SessionHeader keeps the session token
const SessionHeader = "x-review-session"

type (
	// FileStore keeps file records
	FileStore interface {
		AddFile(rec *persistence.FileRecord)
		GetFileByID(id string) *persistence.FileRecord
		UpdateFile(id string, patch *persistence.FilePatch)
		ListFiles() []*persistence.FileRecord
	}

	// RecordMaker prepares new records
	RecordMaker interface {
		Make(data *persistence.FilePatch, uploader string) *persistence.FileRecord
	}

	// Wizards keeps live review wizards
	Wizards interface {
		StartUpload(uploader string) *review.State
		StartReview(fileID string) (*review.State, error)
		Get(id string) (*review.State, error)
		Next(id string, data *persistence.FilePatch) (*review.State, error)
		Back(id string) (*review.State, error)
		Replace(id, phrase, replacement string) (*review.State, error)
		Finish(id string, data *persistence.FilePatch) (*review.Result, error)
	}

	// Dictionary keeps glossary terms
	Dictionary interface {
		List(q dictionary.Query) *dictionary.Page
		Get(id string) *persistence.DictionaryTerm
		UpdateDescription(id, description string) bool
	}

	// Sessions keeps logged in users
	Sessions interface {
		Login(name string) (string, *persistence.User, error)
		Logout(token string) bool
		User(token string) *persistence.User
	}
)

// Data keeps data required for service work
type Data struct {
	Port        int
	DefaultUser string

	Files      FileStore
	Maker      RecordMaker
	Wizards    Wizards
	Dictionary Dictionary
	Sessions   Sessions
	Status     *statusservice.Data
}

// StartWebServer starts echo web service
func StartWebServer(data *Data) error {
	goapp.Log.Info().Msgf("Starting HTTP review service at %d", data.Port)
	if err := validate(data); err != nil {
		return err
	}

	portStr := strconv.Itoa(data.Port)

	e, err := initRoutes(data)
	if err != nil {
		return err
	}

	e.Server.Addr = ":" + portStr
	e.Server.ReadHeaderTimeout = 5 * time.Second
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 10 * time.Second

	gracehttp.SetLogger(log.New(goapp.Log, "", 0))

	return gracehttp.Serve(e.Server)
}

var promMdlw *prometheus.Prometheus

func init() {
	promMdlw = prometheus.NewPrometheus("revy_review", nil)
}

func initRoutes(data *Data) (*echo.Echo, error) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	promMdlw.Use(e)

	e.GET("/live", live(data))

	e.POST("/login", login(data))
	e.POST("/logout", logout(data))
	e.GET("/user", user(data))

	e.POST("/upload", uploadFile(data))
	e.GET("/files", listFiles(data))
	e.GET("/files/:id", getFile(data))
	e.POST("/files/:id/reject", rejectFile(data))
	e.GET("/files/:id/download", download(data))

	e.POST("/wizards", startWizard(data))
	e.GET("/wizards/:id", getWizard(data))
	e.POST("/wizards/:id/next", nextStep(data))
	e.POST("/wizards/:id/back", backStep(data))
	e.POST("/wizards/:id/replace", replacePhrase(data))
	e.POST("/wizards/:id/finish", finishWizard(data))

	e.GET("/dictionary", listTerms(data))
	e.GET("/dictionary/:id", getTerm(data))
	e.PATCH("/dictionary/:id", updateTerm(data))

	if err := statusservice.InitRoutes(e, data.Status); err != nil {
		return nil, fmt.Errorf("can't init status routes: %w", err)
	}

	goapp.Log.Info().Msg("Routes:")
	for _, r := range e.Routes() {
		goapp.Log.Info().Msgf("  %s %s", r.Method, r.Path)
	}
	return e, nil
}

func live(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		return c.JSONBlob(http.StatusOK, []byte(`{"service":"OK"}`))
	}
}

func validate(data *Data) error {
	if data.Files == nil {
		return fmt.Errorf("no files")
	}
	if data.Maker == nil {
		return fmt.Errorf("no record maker")
	}
	if data.Wizards == nil {
		return fmt.Errorf("no wizards")
	}
	if data.Dictionary == nil {
		return fmt.Errorf("no dictionary")
	}
	if data.Sessions == nil {
		return fmt.Errorf("no sessions")
	}
	if data.Status == nil {
		return fmt.Errorf("no status data")
	}
	if data.DefaultUser == "" {
		return fmt.Errorf("no default user")
	}
	return nil
}

// uploader returns the session user name or the default one
func uploader(c echo.Context, data *Data) string {
	if u := data.Sessions.User(c.Request().Header.Get(SessionHeader)); u != nil {
		return u.Name
	}
	return data.DefaultUser
}

func bind(c echo.Context, v interface{}) error {
	if err := c.Bind(v); err != nil {
		goapp.Log.Warn().Err(err).Send()
		return echo.NewHTTPError(http.StatusBadRequest, "can't decode request")
	}
	return nil
}
