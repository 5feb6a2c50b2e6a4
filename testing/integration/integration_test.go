//go:build integration
// +build integration

package integration

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/airenas/revy/internal/pkg/dictionary"
	"github.com/airenas/revy/internal/pkg/persistence"
	"github.com/airenas/revy/internal/pkg/review"
	"github.com/airenas/revy/internal/pkg/test"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type config struct {
	url        string
	httpclient *http.Client
}

var cfg config

func TestMain(m *testing.M) {
	cfg.url = GetEnvOrFail("REVIEW_URL")
	cfg.httpclient = &http.Client{Timeout: time.Second * 30}

	tCtx, cf := context.WithTimeout(context.Background(), time.Second*20)
	defer cf()
	WaitForOpenOrFail(tCtx, cfg.url)

	os.Exit(m.Run())
}

type uploadResponse struct {
	ID       string `json:"id"`
	Redirect string `json:"redirect"`
}

type statusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Label  string `json:"label"`
	Error  string `json:"error"`
}

func TestLive(t *testing.T) {
	t.Parallel()
	test.CheckCode(t, test.Invoke(t, cfg.httpclient, NewRequest(t, http.MethodGet, cfg.url, "/live", nil)), http.StatusOK)
}

func TestUpload_Fail_NoName(t *testing.T) {
	t.Parallel()
	req := NewRequest(t, http.MethodPost, cfg.url, "/upload", map[string]string{"type": "صورت جلسه"})
	test.CheckCode(t, test.Invoke(t, cfg.httpclient, req), http.StatusBadRequest)
}

func TestStatus_Check_None(t *testing.T) {
	t.Parallel()
	st := getStatus(t, "10")
	assert.Equal(t, "NOT_FOUND", st.Error)
	assert.Equal(t, "10", st.ID)
}

func TestUpload_BecomesPending(t *testing.T) {
	t.Parallel()
	id := uploadFile(t)
	assert.Equal(t, "PROCESSING", getStatus(t, id).Status)

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(t, cfg.url), nil)
	require.Nil(t, err)
	defer conn.Close()
	require.Nil(t, conn.WriteMessage(websocket.TextMessage, []byte(id)))
	require.Nil(t, conn.SetReadDeadline(time.Now().Add(15*time.Second)))
	var st statusResponse
	require.Nil(t, conn.ReadJSON(&st))
	assert.Equal(t, id, st.ID)
	assert.Equal(t, "PENDING", st.Status)
	assert.Equal(t, "PENDING", getStatus(t, id).Status)
}

func TestReview_Approves(t *testing.T) {
	t.Parallel()
	id := uploadFile(t)
	resp := test.Invoke(t, cfg.httpclient, NewRequest(t, http.MethodPost, cfg.url, "/wizards",
		map[string]string{"flow": "review", "fileId": id}))
	test.CheckCode(t, resp, http.StatusOK)
	st := test.Decode[review.State](t, resp)

	resp = test.Invoke(t, cfg.httpclient, NewRequest(t, http.MethodPost, cfg.url, "/wizards/"+st.ID+"/next",
		map[string]string{"editedText": "final text"}))
	test.CheckCode(t, resp, http.StatusOK)

	resp = test.Invoke(t, cfg.httpclient, NewRequest(t, http.MethodPost, cfg.url, "/wizards/"+st.ID+"/finish", nil))
	test.CheckCode(t, resp, http.StatusOK)
	res := test.Decode[review.Result](t, resp)
	assert.Equal(t, "/dashboard", res.Redirect)

	resp = test.Invoke(t, cfg.httpclient, NewRequest(t, http.MethodGet, cfg.url, "/files/"+id, nil))
	test.CheckCode(t, resp, http.StatusOK)
	f := test.Decode[persistence.FileRecord](t, resp)
	assert.Equal(t, "final text", f.EditedText)
	assert.Equal(t, "APPROVED", getStatus(t, id).Status)

	resp = test.Invoke(t, cfg.httpclient, NewRequest(t, http.MethodGet, cfg.url, "/files/"+id+"/download", nil))
	test.CheckCode(t, resp, http.StatusOK)
	assert.Equal(t, "final text", test.RStr(t, resp.Body))
}

func TestDictionary(t *testing.T) {
	t.Parallel()
	resp := test.Invoke(t, cfg.httpclient, NewRequest(t, http.MethodGet, cfg.url, "/dictionary", nil))
	test.CheckCode(t, resp, http.StatusOK)
	p := test.Decode[dictionary.Page](t, resp)
	assert.Equal(t, 1, p.Page)
	assert.True(t, len(p.Terms) <= p.PageSize)
}

func uploadFile(t *testing.T) string {
	t.Helper()
	resp := test.Invoke(t, cfg.httpclient, NewRequest(t, http.MethodPost, cfg.url, "/upload",
		map[string]string{"name": "audio.wav", "audioFileName": "audio.wav"}))
	test.CheckCode(t, resp, http.StatusOK)
	ur := test.Decode[uploadResponse](t, resp)
	require.NotEmpty(t, ur.ID)
	return ur.ID
}

func getStatus(t *testing.T, id string) statusResponse {
	t.Helper()
	resp := test.Invoke(t, cfg.httpclient, NewRequest(t, http.MethodGet, cfg.url, "status/"+id, nil))
	test.CheckCode(t, resp, http.StatusOK)
	return test.Decode[statusResponse](t, resp)
}
