package jsonrpc_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mentessaas/a2a-protocol/errors"
	"github.com/mentessaas/a2a-protocol/internal/mylog"
	"github.com/mentessaas/a2a-protocol/jsonrpc"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*jsonrpc.Server, *httptest.Server) {
	t.Helper()

	rpcServer := jsonrpc.NewServer(mylog.NewLogger("error", "default"))
	rpcServer.Register("echo/upper", func(ctx context.Context, params json.RawMessage) (any, error) {
		var p struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, errors.Wrapf(errors.ErrInvalidParams, "%v", err)
		}
		if p.Text == "" {
			return nil, errors.Wrapf(errors.ErrInvalidParams, "text is required")
		}
		return map[string]any{"text": strings.ToUpper(p.Text)}, nil
	})
	rpcServer.Register("echo/panic", func(ctx context.Context, params json.RawMessage) (any, error) {
		panic("unreachable input")
	})

	server := httptest.NewServer(jsonrpc.Recovery(mylog.NewLogger("error", "default"))(rpcServer))
	t.Cleanup(server.Close)
	return rpcServer, server
}

func TestServerDispatch(t *testing.T) {
	_, server := newTestServer(t)

	client := jsonrpc.NewClient(jsonrpc.WithHTTPClient(server.Client()))

	var out struct {
		Text string `json:"text"`
	}
	require.NoError(t, client.Call(context.TODO(), server.URL, "echo/upper", map[string]any{"text": "hi"}, &out))
	require.Equal(t, "HI", out.Text)
}

func TestServerMethodNotFound(t *testing.T) {
	_, server := newTestServer(t)

	client := jsonrpc.NewClient(jsonrpc.WithHTTPClient(server.Client()))
	err := client.Call(context.TODO(), server.URL, "echo/lower", nil, nil)

	var rpcErr *jsonrpc.Error
	require.ErrorAs(t, err, &rpcErr)
	require.Equal(t, jsonrpc.CodeMethodNotFound, rpcErr.Code)
}

func TestServerInvalidParams(t *testing.T) {
	_, server := newTestServer(t)

	client := jsonrpc.NewClient(jsonrpc.WithHTTPClient(server.Client()))
	err := client.Call(context.TODO(), server.URL, "echo/upper", map[string]any{"text": ""}, nil)

	var rpcErr *jsonrpc.Error
	require.ErrorAs(t, err, &rpcErr)
	require.Equal(t, jsonrpc.CodeInvalidParams, rpcErr.Code)
}

func TestServerParseError(t *testing.T) {
	_, server := newTestServer(t)

	resp, err := server.Client().Post(server.URL, "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope jsonrpc.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.NotNil(t, envelope.Error)
	require.Equal(t, jsonrpc.CodeParse, envelope.Error.Code)
}

func TestServerInvalidRequest(t *testing.T) {
	_, server := newTestServer(t)

	resp, err := server.Client().Post(server.URL, "application/json",
		strings.NewReader(`{"jsonrpc":"1.0","id":"1","method":"echo/upper"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope jsonrpc.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.NotNil(t, envelope.Error)
	require.Equal(t, jsonrpc.CodeInvalidRequest, envelope.Error.Code)
}

func TestServerRecoversFromPanic(t *testing.T) {
	_, server := newTestServer(t)

	resp, err := server.Client().Post(server.URL, "application/json",
		strings.NewReader(`{"jsonrpc":"2.0","id":"1","method":"echo/panic"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
