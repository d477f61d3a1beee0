package directorytest

import (
	"context"

	"github.com/stretchr/testify/mock"

	a2a "github.com/mentessaas/a2a-protocol"
	"github.com/mentessaas/a2a-protocol/directory"
)

type ClientMock struct {
	mock.Mock
}

// Register implements directory.Client.
func (m *ClientMock) Register(ctx context.Context, params *a2a.RegisterParams) (*a2a.Ack, error) {
	args := m.Called(ctx, params)
	ack, _ := args.Get(0).(*a2a.Ack)
	return ack, args.Error(1)
}

// Discover implements directory.Client.
func (m *ClientMock) Discover(ctx context.Context, capabilities []string) ([]a2a.AgentInfo, error) {
	args := m.Called(ctx, capabilities)
	agents, _ := args.Get(0).([]a2a.AgentInfo)
	return agents, args.Error(1)
}

// GetAgent implements directory.Client.
func (m *ClientMock) GetAgent(ctx context.Context, agentId string) (*a2a.AgentInfo, error) {
	args := m.Called(ctx, agentId)
	info, _ := args.Get(0).(*a2a.AgentInfo)
	return info, args.Error(1)
}

// ListAgents implements directory.Client.
func (m *ClientMock) ListAgents(ctx context.Context) ([]a2a.AgentInfo, error) {
	args := m.Called(ctx)
	agents, _ := args.Get(0).([]a2a.AgentInfo)
	return agents, args.Error(1)
}

// Deregister implements directory.Client.
func (m *ClientMock) Deregister(ctx context.Context, agentId string) (*a2a.Ack, error) {
	args := m.Called(ctx, agentId)
	ack, _ := args.Get(0).(*a2a.Ack)
	return ack, args.Error(1)
}

// Heartbeat implements directory.Client.
func (m *ClientMock) Heartbeat(ctx context.Context, agentId string) (*a2a.Ack, error) {
	args := m.Called(ctx, agentId)
	ack, _ := args.Get(0).(*a2a.Ack)
	return ack, args.Error(1)
}

var (
	_ directory.Client = (*ClientMock)(nil)
)
