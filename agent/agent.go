// Package agent is the peer-side of the protocol: one Agent value holds
// an identity card, talks to a directory for registration and discovery,
// and dispatches tasks straight to other agents' endpoints. NewHandler
// builds the matching inbound listener.
package agent

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	a2a "github.com/mentessaas/a2a-protocol"
	"github.com/mentessaas/a2a-protocol/config"
	"github.com/mentessaas/a2a-protocol/directory"
	"github.com/mentessaas/a2a-protocol/errors"
	"github.com/mentessaas/a2a-protocol/internal/mylog"
	"github.com/mentessaas/a2a-protocol/jsonrpc"
)

type (
	Agent struct {
		logger     *mylog.Logger
		info       a2a.AgentInfo
		dir        directory.Client
		rpc        *jsonrpc.Client
		httpClient *http.Client
		handler    a2a.TaskHandler

		logConfig    *config.LogConfig
		directoryUrl string
	}
	Option func(*Agent)
)

func WithName(name string) func(a *Agent) {
	return func(a *Agent) {
		a.info.Name = name
	}
}

func WithCapabilities(capabilities ...string) func(a *Agent) {
	return func(a *Agent) {
		a.info.Capabilities = capabilities
	}
}

// WithEndpoint presets the endpoint the agent will advertise when it
// registers.
func WithEndpoint(endpoint string) func(a *Agent) {
	return func(a *Agent) {
		a.info.Endpoint = endpoint
	}
}

func WithDirectoryUrl(directoryUrl string) func(a *Agent) {
	return func(a *Agent) {
		a.directoryUrl = directoryUrl
	}
}

func WithDirectoryClient(client directory.Client) func(a *Agent) {
	return func(a *Agent) {
		a.dir = client
	}
}

func WithHttpClient(httpClient *http.Client) func(a *Agent) {
	return func(a *Agent) {
		a.httpClient = httpClient
	}
}

func WithLogger(logger *mylog.Logger) func(a *Agent) {
	return func(a *Agent) {
		a.logger = logger
	}
}

func WithLogConfig(logConfig *config.LogConfig) func(a *Agent) {
	return func(a *Agent) {
		a.logConfig = logConfig
	}
}

func WithTaskHandler(handler a2a.TaskHandler) func(a *Agent) {
	return func(a *Agent) {
		a.handler = handler
	}
}

func NewAgent(agentId string, optionFuncs ...Option) (*Agent, error) {
	a := &Agent{
		info:         a2a.AgentInfo{AgentId: agentId},
		httpClient:   http.DefaultClient,
		logConfig:    config.NewLogConfig(),
		directoryUrl: "http://127.0.0.1:9080",
	}
	for _, f := range optionFuncs {
		f(a)
	}

	if a.info.AgentId == "" {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "agent id is required")
	}

	if a.logger == nil {
		a.logger = mylog.NewLogger(a.logConfig.LogLevel, a.logConfig.LogHandler)
	}
	if a.rpc == nil {
		a.rpc = jsonrpc.NewClient(jsonrpc.WithHTTPClient(a.httpClient))
	}
	if a.dir == nil {
		a.dir = directory.NewClientWithHttpClient(a.directoryUrl, a.httpClient)
	}

	return a, nil
}

// Info returns a snapshot of the agent's card.
func (a *Agent) Info() a2a.AgentInfo {
	return a.info
}

// Register announces the agent to the directory under the given endpoint.
// The endpoint becomes part of the local card only once the directory
// accepted it. Failures report to the caller; nothing is retried.
func (a *Agent) Register(ctx context.Context, endpoint string) error {
	ack, err := a.dir.Register(ctx, &a2a.RegisterParams{
		AgentId:      a.info.AgentId,
		Name:         a.info.Name,
		Capabilities: a.info.Capabilities,
		Endpoint:     endpoint,
	})
	if err != nil {
		return err
	}

	a.info.Endpoint = endpoint

	a.logger.Info("registered with directory", "agent_id", ack.AgentId, "status", ack.Status)

	return nil
}

// Discover returns the first agent matching any of the wanted
// capabilities, or nil when nothing matches. No match is not an error.
func (a *Agent) Discover(ctx context.Context, capabilities []string) (*a2a.AgentInfo, error) {
	agents, err := a.dir.Discover(ctx, capabilities)
	if err != nil {
		return nil, err
	}
	if len(agents) == 0 {
		return nil, nil
	}

	return &agents[0], nil
}

// DiscoverAll returns every match in the directory's order.
func (a *Agent) DiscoverAll(ctx context.Context, capabilities []string) ([]a2a.AgentInfo, error) {
	return a.dir.Discover(ctx, capabilities)
}

// SendTask resolves the target's endpoint through the directory, then
// posts the task straight to that endpoint. One resolution call and one
// delivery call per dispatch; no caching, no retry.
func (a *Agent) SendTask(ctx context.Context, targetAgentId, action string, input map[string]any) (*a2a.TaskResult, error) {
	target, err := a.dir.GetAgent(ctx, targetAgentId)
	if err != nil {
		return nil, err
	}

	params := &a2a.TaskParams{
		TaskId: uuid.NewString(),
		Action: action,
		Sender: a.info.AgentId,
		Input:  input,
	}

	a.logger.Info("send task", "task_id", params.TaskId, "target", targetAgentId, "action", action)

	var result a2a.TaskResult
	if err := a.rpc.Call(ctx, target.Endpoint, a2a.MethodTask, params, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

func (a *Agent) Deregister(ctx context.Context) error {
	if _, err := a.dir.Deregister(ctx, a.info.AgentId); err != nil {
		return err
	}

	a.logger.Info("deregistered from directory", "agent_id", a.info.AgentId)

	return nil
}

func (a *Agent) Heartbeat(ctx context.Context) error {
	_, err := a.dir.Heartbeat(ctx, a.info.AgentId)
	return err
}
