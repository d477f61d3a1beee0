package agent_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	a2a "github.com/mentessaas/a2a-protocol"
	"github.com/mentessaas/a2a-protocol/agent"
	directorytest "github.com/mentessaas/a2a-protocol/directory/test"
	"github.com/mentessaas/a2a-protocol/jsonrpc"
)

func newServingAgent(t *testing.T) *httptest.Server {
	receiver, err := agent.NewAgent(
		"agent-echo",
		agent.WithName("Echo"),
		agent.WithCapabilities("echo"),
		agent.WithEndpoint("http://localhost:9100/"),
		agent.WithDirectoryClient(&directorytest.ClientMock{}),
		agent.WithTaskHandler(a2a.TaskHandlerFunc(func(_ context.Context, _ string, input map[string]any, _ string) (map[string]any, error) {
			return map[string]any{"echo": input["text"]}, nil
		})),
	)
	require.NoError(t, err)

	server := httptest.NewServer(agent.NewHandler(receiver))
	t.Cleanup(server.Close)

	return server
}

func TestWellKnownCard(t *testing.T) {
	server := newServingAgent(t)

	resp, err := http.Get(server.URL + "/.well-known/agent.json")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var card a2a.AgentInfo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&card))
	require.Equal(t, "agent-echo", card.AgentId)
	require.Equal(t, []string{"echo"}, card.Capabilities)
	require.Equal(t, "http://localhost:9100/", card.Endpoint)
}

func TestAgentAnswersDiscoverWithOwnCard(t *testing.T) {
	server := newServingAgent(t)
	client := jsonrpc.NewClient()

	var result a2a.DiscoverResult
	require.NoError(t, client.Call(context.Background(), server.URL+"/rpc", a2a.MethodDiscover, nil, &result))
	require.Len(t, result.Agents, 1)
	require.Equal(t, "agent-echo", result.Agents[0].AgentId)
}

func TestTaskAcceptedOnAnyMount(t *testing.T) {
	server := newServingAgent(t)
	client := jsonrpc.NewClient()

	for _, path := range []string{"", "/rpc", "/a2a/task"} {
		var result a2a.TaskResult
		err := client.Call(context.Background(), server.URL+path, a2a.MethodTask, &a2a.TaskParams{
			TaskId: "t-1",
			Action: "echo",
			Sender: "agent-test",
			Input:  map[string]any{"text": "hi"},
		}, &result)
		require.NoError(t, err, "path %q", path)
		require.Equal(t, "t-1", result.TaskId)
		require.Equal(t, a2a.TaskStatusCompleted, result.Status)
		require.Equal(t, "hi", result.Output["echo"])
	}
}

func TestAgentRejectsUnknownMethod(t *testing.T) {
	server := newServingAgent(t)
	client := jsonrpc.NewClient()

	err := client.Call(context.Background(), server.URL+"/rpc", "a2a/subscribe", nil, nil)

	var rpcErr *jsonrpc.Error
	require.ErrorAs(t, err, &rpcErr)
	require.Equal(t, jsonrpc.CodeMethodNotFound, rpcErr.Code)
}
