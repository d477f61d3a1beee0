package jsonrpc_test

import (
	"encoding/json"
	"testing"

	"github.com/mentessaas/a2a-protocol/errors"
	"github.com/mentessaas/a2a-protocol/jsonrpc"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	req1, err := jsonrpc.NewRequest("a2a/register", map[string]any{"agentId": "calc-1"})
	require.NoError(t, err)
	req2, err := jsonrpc.NewRequest("a2a/register", map[string]any{"agentId": "calc-1"})
	require.NoError(t, err)

	require.Equal(t, "2.0", req1.Version)
	require.Equal(t, "a2a/register", req1.Method)
	require.NotEmpty(t, req1.Id)
	require.NotEqual(t, req1.Id, req2.Id, "each request must carry a fresh id")
	require.JSONEq(t, `{"agentId":"calc-1"}`, string(req1.Params))
}

func TestNewRequestWithoutParams(t *testing.T) {
	req, err := jsonrpc.NewRequest("a2a/discover", nil)
	require.NoError(t, err)
	require.Nil(t, req.Params)

	data, err := json.Marshal(req)
	require.NoError(t, err)
	require.NotContains(t, string(data), `"params"`)
}

func TestDecodeResult(t *testing.T) {
	var resp jsonrpc.Response
	require.NoError(t, json.Unmarshal([]byte(`{"jsonrpc":"2.0","id":"1","result":{"status":"registered","agentId":"calc-1"}}`), &resp))

	var out map[string]any
	require.NoError(t, resp.Decode(&out))
	require.Equal(t, "registered", out["status"])
	require.Equal(t, "calc-1", out["agentId"])
}

func TestDecodeErrorMember(t *testing.T) {
	var resp jsonrpc.Response
	require.NoError(t, json.Unmarshal([]byte(`{"jsonrpc":"2.0","id":"1","error":{"code":-32601,"message":"Method not found"}}`), &resp))

	err := resp.Decode(nil)
	require.Error(t, err)

	var rpcErr *jsonrpc.Error
	require.ErrorAs(t, err, &rpcErr)
	require.Equal(t, jsonrpc.CodeMethodNotFound, rpcErr.Code)
	require.Equal(t, "Method not found", rpcErr.Message)
}

func TestDecodeMissingResult(t *testing.T) {
	var resp jsonrpc.Response
	require.NoError(t, json.Unmarshal([]byte(`{"jsonrpc":"2.0","id":"1"}`), &resp))

	err := resp.Decode(nil)
	require.ErrorIs(t, err, errors.ErrMissingResult)
}

func TestDecodeShapeMismatch(t *testing.T) {
	var resp jsonrpc.Response
	require.NoError(t, json.Unmarshal([]byte(`{"jsonrpc":"2.0","id":"1","result":"not an object"}`), &resp))

	var out struct {
		TaskId string `json:"taskId"`
	}
	err := resp.Decode(&out)
	require.ErrorIs(t, err, errors.ErrDecode)
}
