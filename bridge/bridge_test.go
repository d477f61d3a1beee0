package bridge_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mentessaas/a2a-protocol/bridge"
	"github.com/mentessaas/a2a-protocol/config"
	"github.com/mentessaas/a2a-protocol/errors"
)

func newBridge(t *testing.T, actions map[string]config.BridgeAction) *bridge.Bridge {
	b, err := bridge.NewBridge(config.BridgeConfig{Actions: actions}, slog.Default())
	require.NoError(t, err)

	return b
}

func TestHandleTaskRunsCommand(t *testing.T) {
	b := newBridge(t, map[string]config.BridgeAction{
		"greet": {Command: []string{"echo", "hello {{.name}}"}},
	})

	output, err := b.HandleTask(context.Background(), "greet", map[string]any{"name": "amy"}, "agent-caller")
	require.NoError(t, err)
	require.Equal(t, "hello amy", output["stdout"])
	require.Equal(t, 0, output["exitCode"])
}

func TestHandleTaskTemplateFunctions(t *testing.T) {
	b := newBridge(t, map[string]config.BridgeAction{
		"shout": {Command: []string{"echo", "{{.name | upper}}"}},
	})

	output, err := b.HandleTask(context.Background(), "shout", map[string]any{"name": "amy"}, "")
	require.NoError(t, err)
	require.Equal(t, "AMY", output["stdout"])
}

func TestHandleTaskReportsExitCode(t *testing.T) {
	b := newBridge(t, map[string]config.BridgeAction{
		"fail": {Command: []string{"sh", "-c", "echo oops >&2; exit 3"}},
	})

	output, err := b.HandleTask(context.Background(), "fail", nil, "")
	require.NoError(t, err)
	require.Equal(t, 3, output["exitCode"])
	require.Equal(t, "oops", output["stderr"])
}

func TestHandleTaskUnknownAction(t *testing.T) {
	b := newBridge(t, map[string]config.BridgeAction{
		"greet": {Command: []string{"echo", "hi"}},
	})

	_, err := b.HandleTask(context.Background(), "transcode", nil, "")
	require.ErrorContains(t, err, `unsupported action "transcode"`)
}

func TestNewBridgeRejectsEmptyCommand(t *testing.T) {
	_, err := bridge.NewBridge(config.BridgeConfig{
		Actions: map[string]config.BridgeAction{"noop": {}},
	}, slog.Default())
	require.ErrorIs(t, err, errors.ErrInvalidConfig)
}

func TestActions(t *testing.T) {
	b := newBridge(t, map[string]config.BridgeAction{
		"greet": {Command: []string{"echo", "hi"}},
		"shout": {Command: []string{"echo", "HI"}},
	})

	require.ElementsMatch(t, []string{"greet", "shout"}, b.Actions())
}
