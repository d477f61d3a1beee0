package directory_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	a2a "github.com/mentessaas/a2a-protocol"
	"github.com/mentessaas/a2a-protocol/directory"
	"github.com/mentessaas/a2a-protocol/errors"
	"github.com/mentessaas/a2a-protocol/internal/mytesting"
	"github.com/mentessaas/a2a-protocol/jsonrpc"
)

type ServerTestSuite struct {
	mytesting.Suite

	server *httptest.Server
	client directory.Client
}

func (s *ServerTestSuite) SetupTest() {
	s.Suite.SetupTest()

	handler, err := directory.NewHandler(s.Container)
	s.Require().NoError(err)

	s.server = httptest.NewServer(handler)
	s.client = directory.NewClient(s.server.URL)
}

func (s *ServerTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
	s.Suite.TearDownTest()
}

func (s *ServerTestSuite) TestRegisterAndDiscover() {
	// Given
	params := &a2a.RegisterParams{
		AgentId:      "agent-translator",
		Name:         "Translator",
		Capabilities: []string{"translate"},
		Endpoint:     "http://localhost:9100/",
	}

	// When
	ack, err := s.client.Register(s, params)

	// Then
	s.Require().NoError(err)
	s.Require().Equal(a2a.StatusRegistered, ack.Status)
	s.Require().Equal("agent-translator", ack.AgentId)

	agents, err := s.client.Discover(s, []string{"translate"})
	s.Require().NoError(err)
	s.Require().Len(agents, 1)
	s.Require().Equal("agent-translator", agents[0].AgentId)

	registeredAt, err := time.Parse(time.RFC3339, agents[0].RegisteredAt)
	s.Require().NoError(err)
	s.Require().Equal(time.UTC, registeredAt.Location())
}

func (s *ServerTestSuite) TestDiscoverWithoutCapabilities() {
	// When
	_, err := s.client.Discover(s, nil)

	// Then
	var rpcErr *jsonrpc.Error
	s.Require().ErrorAs(err, &rpcErr)
	s.Require().Equal(jsonrpc.CodeInvalidParams, rpcErr.Code)
}

func (s *ServerTestSuite) TestResolveAgent() {
	// Given
	_, err := s.client.Register(s, &a2a.RegisterParams{
		AgentId:      "agent-a",
		Name:         "A",
		Capabilities: []string{"translate"},
		Endpoint:     "http://localhost:9100/",
	})
	s.Require().NoError(err)

	// When
	info, err := s.client.GetAgent(s, "agent-a")

	// Then
	s.Require().NoError(err)
	s.Require().Equal("http://localhost:9100/", info.Endpoint)
}

func (s *ServerTestSuite) TestResolveUnknownAgent() {
	_, err := s.client.GetAgent(s, "agent-ghost")
	s.Require().ErrorIs(err, errors.ErrAgentNotFound)
}

func (s *ServerTestSuite) TestHeartbeatAndDeregister() {
	// Given
	_, err := s.client.Register(s, &a2a.RegisterParams{
		AgentId:      "agent-a",
		Name:         "A",
		Capabilities: []string{"translate"},
		Endpoint:     "http://localhost:9100/",
	})
	s.Require().NoError(err)

	// When
	ack, err := s.client.Heartbeat(s, "agent-a")
	s.Require().NoError(err)
	s.Require().Equal(a2a.StatusAlive, ack.Status)

	ack, err = s.client.Deregister(s, "agent-a")
	s.Require().NoError(err)
	s.Require().Equal(a2a.StatusDeregistered, ack.Status)

	// Then
	_, err = s.client.GetAgent(s, "agent-a")
	s.Require().ErrorIs(err, errors.ErrAgentNotFound)

	_, err = s.client.Heartbeat(s, "agent-a")
	var rpcErr *jsonrpc.Error
	s.Require().ErrorAs(err, &rpcErr)
	s.Require().Equal(jsonrpc.CodeApplication, rpcErr.Code)
}

func (s *ServerTestSuite) TestListAgents() {
	// Given
	for _, agentId := range []string{"agent-a", "agent-b"} {
		_, err := s.client.Register(s, &a2a.RegisterParams{
			AgentId:      agentId,
			Name:         agentId,
			Capabilities: []string{"translate"},
			Endpoint:     "http://localhost:9100/" + agentId,
		})
		s.Require().NoError(err)
	}

	// When
	agents, err := s.client.ListAgents(s)

	// Then
	s.Require().NoError(err)
	s.Require().Len(agents, 2)
	s.Require().Equal("agent-a", agents[0].AgentId)
	s.Require().Equal("agent-b", agents[1].AgentId)
}

func TestServer(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}
