package a2a_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	a2a "github.com/mentessaas/a2a-protocol"
)

func TestTaskMuxRoutesByAction(t *testing.T) {
	mux := a2a.NewTaskMux()
	mux.HandleFunc("greet", func(_ context.Context, action string, input map[string]any, sender string) (map[string]any, error) {
		return map[string]any{
			"message": "hello " + input["name"].(string),
			"action":  action,
			"sender":  sender,
		}, nil
	})

	output, err := mux.HandleTask(context.Background(), "greet", map[string]any{"name": "amy"}, "agent-caller")
	require.NoError(t, err)
	require.Equal(t, map[string]any{
		"message": "hello amy",
		"action":  "greet",
		"sender":  "agent-caller",
	}, output)
}

func TestTaskMuxReplacesHandler(t *testing.T) {
	mux := a2a.NewTaskMux()
	mux.HandleFunc("greet", func(context.Context, string, map[string]any, string) (map[string]any, error) {
		return map[string]any{"version": "old"}, nil
	})
	mux.HandleFunc("greet", func(context.Context, string, map[string]any, string) (map[string]any, error) {
		return map[string]any{"version": "new"}, nil
	})

	output, err := mux.HandleTask(context.Background(), "greet", nil, "")
	require.NoError(t, err)
	require.Equal(t, map[string]any{"version": "new"}, output)
}

func TestTaskMuxFallback(t *testing.T) {
	mux := a2a.NewTaskMux()
	mux.Fallback(a2a.TaskHandlerFunc(func(_ context.Context, action string, _ map[string]any, _ string) (map[string]any, error) {
		return map[string]any{"caught": action}, nil
	}))

	output, err := mux.HandleTask(context.Background(), "anything", nil, "agent-caller")
	require.NoError(t, err)
	require.Equal(t, map[string]any{"caught": "anything"}, output)
}

func TestTaskMuxUnknownAction(t *testing.T) {
	mux := a2a.NewTaskMux()

	_, err := mux.HandleTask(context.Background(), "missing", nil, "")
	require.ErrorContains(t, err, `unsupported action "missing"`)
}
