package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hieuduy1751/paio/config"
	"github.com/hieuduy1751/paio/pkg/errorx"
	"github.com/hieuduy1751/paio/pkg/logger"
	"github.com/stretchr/testify/require"
)

type echoRequest struct {
	Message string `json:"message"`
}

type echoResponse struct {
	Message string `json:"message"`
}

func newTestRouter() *Router {
	cfg := config.Configs{LogLevel: "silence"}
	return New(nil, cfg, logger.NewLogger(logger.Level(cfg.LogLevel)))
}

func doRequest(t *testing.T, handler http.Handler, req *http.Request) (int64, string, json.RawMessage) {
	t.Helper()

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	var envelope struct {
		Code  int64           `json:"code"`
		Error string          `json:"error"`
		Data  json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	require.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	return envelope.Code, envelope.Error, envelope.Data
}

func TestRouter_GetBindsQuery(t *testing.T) {
	r := newTestRouter()
	GET(r, "/echo", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{Message: req.Message}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/echo?message=hello", nil)
	code, errMsg, data := doRequest(t, r.Handler(), req)
	require.Zero(t, code)
	require.Empty(t, errMsg)

	var resp echoResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	require.Equal(t, "hello", resp.Message)
}

func TestRouter_PostBindsBody(t *testing.T) {
	r := newTestRouter()
	POST(r, "/echo", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{Message: req.Message}, nil
	})

	body, err := json.Marshal(echoRequest{Message: "hello"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/echo", bytes.NewReader(body))
	code, _, data := doRequest(t, r.Handler(), req)
	require.Zero(t, code)

	var resp echoResponse
	require.NoError(t, json.Unmarshal(data, &resp))
	require.Equal(t, "hello", resp.Message)

	// An empty body binds the zero request instead of failing.
	req = httptest.NewRequest(http.MethodPost, "/echo", nil)
	code, _, _ = doRequest(t, r.Handler(), req)
	require.Zero(t, code)
}

func TestRouter_HandlerError(t *testing.T) {
	r := newTestRouter()
	GET(r, "/fail", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return nil, errorx.New(errorx.NotFound, "Not found thing")
	})

	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	code, errMsg, _ := doRequest(t, r.Handler(), req)
	require.Equal(t, int64(errorx.NotFound), code)
	require.Equal(t, "Not found thing", errMsg)
}

func TestRouter_UnknownErrorIsMasked(t *testing.T) {
	r := newTestRouter()
	GET(r, "/fail", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return nil, errorx.Unknown
	})

	req := httptest.NewRequest(http.MethodGet, "/fail", nil)
	code, errMsg, _ := doRequest(t, r.Handler(), req)
	require.Equal(t, int64(errorx.Unknown.Code), code)
	require.Equal(t, errorx.Unknown.Message, errMsg)
}

func TestRouter_MethodMismatch(t *testing.T) {
	r := newTestRouter()
	POST(r, "/echo", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/echo", nil)
	code, _, _ := doRequest(t, r.Handler(), req)
	require.Equal(t, int64(errorx.BadRequest), code)
}

func TestRouter_BeforeMiddlewareRejects(t *testing.T) {
	r := newTestRouter()

	branch := r.Branch()
	branch.Before(func(ctx context.Context) (context.Context, error) {
		return nil, errorx.New(errorx.Unauthenticated, "You need to authenticate")
	})

	called := false
	GET(branch, "/private", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		called = true
		return &echoResponse{}, nil
	})

	// The branch keeps its own chain, the root stays open.
	GET(r, "/public", func(ctx context.Context, req *echoRequest) (*echoResponse, error) {
		return &echoResponse{Message: "ok"}, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	code, _, _ := doRequest(t, r.Handler(), req)
	require.Equal(t, int64(errorx.Unauthenticated), code)
	require.False(t, called)

	req = httptest.NewRequest(http.MethodGet, "/public", nil)
	code, _, _ = doRequest(t, r.Handler(), req)
	require.Zero(t, code)
}
