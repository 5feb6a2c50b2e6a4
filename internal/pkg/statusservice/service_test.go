package statusservice

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/airenas/revy/internal/pkg/persistence"
	"github.com/airenas/revy/internal/pkg/status"
	"github.com/airenas/revy/internal/pkg/test"
	"github.com/airenas/revy/internal/pkg/test/mocks"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	wsHandlerMock *mockWSConnHandler
	filesMock     *mocks.FileStore
	tData         *Data
	tEcho         *echo.Echo
)

func initTest(t *testing.T) {
	t.Helper()
	wsHandlerMock = &mockWSConnHandler{}
	filesMock = &mocks.FileStore{}
	tData = &Data{Files: filesMock, WSHandler: wsHandlerMock}
	tEcho = echo.New()
	require.Nil(t, InitRoutes(tEcho, tData))
	filesMock.On("GetFileByID", "1").Return(&persistence.FileRecord{ID: "1", Status: status.Approved})
	filesMock.On("GetFileByID", mock.Anything).Return(nil)
}

func TestWrongMethod(t *testing.T) {
	initTest(t)
	req := httptest.NewRequest(http.MethodPost, "/status/1", nil)
	test.Code(t, tEcho, req, http.StatusMethodNotAllowed)
}

func Test_Status_Returns(t *testing.T) {
	initTest(t)
	req := httptest.NewRequest(http.MethodGet, "/status/1", nil)
	resp := test.Code(t, tEcho, req, http.StatusOK)
	res := test.Decode[result](t, resp.Result())
	assert.Equal(t, result{ID: "1", Status: "APPROVED", Label: status.Approved.Label()}, res)
}

func Test_Status_Empty(t *testing.T) {
	initTest(t)
	req := httptest.NewRequest(http.MethodGet, "/status/2", nil)
	resp := test.Code(t, tEcho, req, http.StatusOK)
	res := test.Decode[result](t, resp.Result())
	assert.Equal(t, result{ID: "2", Status: "NOT_FOUND", Error: "NOT_FOUND"}, res)
}

func Test_Subscribe_NoUpgrade(t *testing.T) {
	initTest(t)
	req := httptest.NewRequest(http.MethodGet, "/subscribe", nil)
	test.Code(t, tEcho, req, http.StatusBadRequest)
	wsHandlerMock.AssertNotCalled(t, "HandleConnection", mock.Anything)
}

func Test_validate(t *testing.T) {
	initTest(t)
	tests := []struct {
		name    string
		data    *Data
		wantErr bool
	}{
		{name: "OK", data: &Data{Files: filesMock, WSHandler: wsHandlerMock}, wantErr: false},
		{name: "Fail Handler", data: &Data{Files: filesMock}, wantErr: true},
		{name: "Fail Files", data: &Data{WSHandler: wsHandlerMock}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(tt.data)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

type mockWSConnHandler struct{ mock.Mock }

func (m *mockWSConnHandler) HandleConnection(wc WsConn) error {
	args := m.Called(wc)
	return args.Error(0)
}

func (m *mockWSConnHandler) GetConnections(id string) ([]WsConn, bool) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).([]WsConn), args.Bool(1)
}
