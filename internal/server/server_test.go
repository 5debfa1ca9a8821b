package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/njchilds90/allometry"
	"github.com/njchilds90/allometry/internal/config"
)

func newTestServer(t *testing.T) (*Server, *observer.ObservedLogs) {
	t.Helper()
	reg, err := allometry.NewDefaultRegistry()
	require.NoError(t, err)
	core, logs := observer.New(zapcore.DebugLevel)
	srv, err := New(reg, zap.New(core), 1<<10)
	require.NoError(t, err)
	return srv, logs
}

func postTool(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/tool", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestNew_RequiresFrozenRegistry(t *testing.T) {
	_, err := New(allometry.NewRegistry(), zap.NewNop(), 0)
	assert.Error(t, err)
}

func TestTool_Predict(t *testing.T) {
	srv, logs := newTestServer(t)
	rec := postTool(t, srv.Handler(), `{"tool":"predict","params":{"species":"ACRU","independent":"dbh","dependent":"age","value":20}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp allometry.ToolResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Empty(t, resp.Error)
	assert.InDelta(t, 13.04201, resp.Result.(float64), 1e-9)

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, 1, logs.FilterMessage("request").Len())
}

func TestTool_DomainErrorIsReported(t *testing.T) {
	srv, logs := newTestServer(t)
	rec := postTool(t, srv.Handler(), `{"tool":"predict","params":{"species":"ACRU","independent":"dbh","dependent":"leaf area","value":-1}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp allometry.ToolResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "domain", resp.Kind)
	assert.Equal(t, 1, logs.FilterMessage("tool call failed").Len())
}

func TestTool_RejectsBadRequests(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Handler()

	cases := map[string]string{
		"malformed":     `{"tool":`,
		"unknown field": `{"tool":"predict","extra":1}`,
		"trailing data": `{"tool":"list_species"} {}`,
		"too large":     `{"tool":"list_species","params":{"pad":"` + strings.Repeat("x", 2048) + `"}}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := postTool(t, h, body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestTool_BodyLimitReported(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := postTool(t, srv.Handler(), `{"tool":"list_species","params":{"pad":"`+strings.Repeat("x", 2048)+`"}}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp allometry.ToolResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "request", resp.Kind)
	assert.Equal(t, "request body exceeds 1024 bytes", resp.Error)
}

func TestTool_MethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tool", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}

func TestRequestIDIsPropagated(t *testing.T) {
	srv, _ := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestSchemaAndHealth(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schema", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, allometry.ToolSpec(), rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var health map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&health))
	assert.Equal(t, "ok", health["status"])
	assert.Equal(t, 28.0, health["species"])
}

func TestMetrics(t *testing.T) {
	srv, _ := newTestServer(t)
	h := srv.Handler()
	postTool(t, h, `{"tool":"predict","params":{"species":"ACRU","independent":"dbh","dependent":"age","value":20}}`)
	postTool(t, h, `{"tool":"predict","params":{"species":"NOPE","independent":"dbh","dependent":"age","value":20}}`)
	postTool(t, h, `{"tool":"bogus"}`)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `allometry_tool_calls_total{outcome="ok",tool="predict"} 1`)
	assert.Contains(t, body, `allometry_tool_calls_total{outcome="lookup",tool="predict"} 1`)
	assert.Contains(t, body, `allometry_tool_calls_total{outcome="request",tool="unknown"} 1`)
	assert.Contains(t, body, `allometry_http_requests_total{code="200",path="/tool"} 3`)
}

func TestServe_GracefulShutdown(t *testing.T) {
	defer goleak.VerifyNone(t)

	srv, _ := newTestServer(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln, config.DefaultConfig().Server) }()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}, Timeout: 5 * time.Second}
	body := bytes.NewBufferString(`{"tool":"list_species"}`)
	resp, err := client.Post("http://"+ln.Addr().String()+"/tool", "application/json", body)
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	client.CloseIdleConnections()
}
