package statusservice

import (
	"fmt"
	"net/http"

	"github.com/airenas/go-app/pkg/goapp"
	"github.com/airenas/revy/internal/pkg/persistence"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// FileGetter provides file records
type FileGetter interface {
	GetFileByID(id string) *persistence.FileRecord
}

// WSConnHandler WebSocket connection wrapper
type WSConnHandler interface {
	HandleConnection(WsConn) error
	GetConnections(id string) ([]WsConn, bool)
}

// Data keeps data required for the status routes
type Data struct {
	Files     FileGetter
	WSHandler WSConnHandler
}

// InitRoutes adds status routes to echo
func InitRoutes(e *echo.Echo, data *Data) error {
	if err := validate(data); err != nil {
		return err
	}
	e.GET("/status/:id", statusHandler(data))
	e.GET("/subscribe", subscribeHandler(data))
	return nil
}

type result struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Label  string `json:"label,omitempty"`
	Error  string `json:"error,omitempty"`
}

func statusHandler(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		defer goapp.Estimate("status method")()

		id := c.Param("id")
		if id == "" {
			return echo.NewHTTPError(http.StatusBadRequest, "No ID")
		}
		f := data.Files.GetFileByID(id)
		if f == nil {
			return c.JSON(http.StatusOK, result{ID: id, Status: "NOT_FOUND", Error: "NOT_FOUND"})
		}
		return c.JSON(http.StatusOK, result{ID: id, Status: f.Status.String(), Label: f.Status.Label()})
	}
}

func validate(data *Data) error {
	if data.Files == nil {
		return fmt.Errorf("no files")
	}
	if data.WSHandler == nil {
		return fmt.Errorf("no WSHandler")
	}
	return nil
}

var wsUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	}}

func subscribeHandler(data *Data) func(echo.Context) error {
	return func(c echo.Context) error {
		ws, err := wsUpgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			goapp.Log.Error().Err(err).Send()
			return err
		}
		defer ws.Close()

		return data.WSHandler.HandleConnection(ws)
	}
}
