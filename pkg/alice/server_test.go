package alice

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRouterWebhookRoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := newTestHandler(&fakeDays{})
	router := NewRouter(h, zap.NewNop())

	body, err := json.Marshal(request("помощь", false, 0))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/alice", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, textHelp, resp.Response.Text)
	assert.False(t, resp.Response.EndSession)
}

func TestRouterRejectsMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := NewRouter(newTestHandler(&fakeDays{}), zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/alice", bytes.NewReader([]byte("not json")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouterHealthz(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := NewRouter(newTestHandler(&fakeDays{}), zap.NewNop())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
