package directory

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/jcooky/go-din"

	a2a "github.com/mentessaas/a2a-protocol"
	"github.com/mentessaas/a2a-protocol/config"
	"github.com/mentessaas/a2a-protocol/errors"
	"github.com/mentessaas/a2a-protocol/jsonrpc"
)

type (
	// Client talks to one directory: envelope calls for the protocol
	// methods, plain GETs for browsing and resolving records.
	Client interface {
		Register(ctx context.Context, params *a2a.RegisterParams) (*a2a.Ack, error)
		Discover(ctx context.Context, capabilities []string) ([]a2a.AgentInfo, error)
		GetAgent(ctx context.Context, agentId string) (*a2a.AgentInfo, error)
		ListAgents(ctx context.Context) ([]a2a.AgentInfo, error)
		Deregister(ctx context.Context, agentId string) (*a2a.Ack, error)
		Heartbeat(ctx context.Context, agentId string) (*a2a.Ack, error)
	}

	client struct {
		baseUrl    string
		rpc        *jsonrpc.Client
		httpClient *http.Client
	}
)

var (
	_ Client = (*client)(nil)
)

func NewClient(baseUrl string) Client {
	return NewClientWithHttpClient(baseUrl, http.DefaultClient)
}

func NewClientWithHttpClient(baseUrl string, httpClient *http.Client) Client {
	return &client{
		baseUrl:    strings.TrimRight(baseUrl, "/"),
		rpc:        jsonrpc.NewClient(jsonrpc.WithHTTPClient(httpClient)),
		httpClient: httpClient,
	}
}

func (c *client) Register(ctx context.Context, params *a2a.RegisterParams) (*a2a.Ack, error) {
	var ack a2a.Ack
	if err := c.rpc.Call(ctx, c.baseUrl+"/a2a/register", a2a.MethodRegister, params, &ack); err != nil {
		return nil, err
	}

	return &ack, nil
}

// Discover forwards the wanted capabilities as-is; the directory is the
// one that rejects an empty list.
func (c *client) Discover(ctx context.Context, capabilities []string) ([]a2a.AgentInfo, error) {
	params := &a2a.DiscoverParams{Capabilities: capabilities}

	var result a2a.DiscoverResult
	if err := c.rpc.Call(ctx, c.baseUrl+"/a2a/discover", a2a.MethodDiscover, params, &result); err != nil {
		return nil, err
	}

	return result.Agents, nil
}

// GetAgent resolves one record by id. Any non-2xx answer means the record
// could not be resolved and reports as ErrAgentNotFound.
func (c *client) GetAgent(ctx context.Context, agentId string) (*a2a.AgentInfo, error) {
	endpoint := c.baseUrl + "/a2a/agents/" + url.PathEscape(agentId)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrTransport, "get %s: %v", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, errors.Wrapf(errors.ErrAgentNotFound, "agent %q: %d from %s: %s",
			agentId, resp.StatusCode, endpoint, strings.TrimSpace(string(body)))
	}

	var info a2a.AgentInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, errors.Wrapf(errors.ErrDecode, "invalid agent record from %s: %v", endpoint, err)
	}

	return &info, nil
}

func (c *client) ListAgents(ctx context.Context) ([]a2a.AgentInfo, error) {
	endpoint := c.baseUrl + "/a2a/agents"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrTransport, "get %s: %v", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, errors.Wrapf(errors.ErrHTTPStatus, "%d from %s: %s",
			resp.StatusCode, endpoint, strings.TrimSpace(string(body)))
	}

	var result a2a.DiscoverResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Wrapf(errors.ErrDecode, "invalid agent list from %s: %v", endpoint, err)
	}

	return result.Agents, nil
}

func (c *client) Deregister(ctx context.Context, agentId string) (*a2a.Ack, error) {
	params := &a2a.DeregisterParams{AgentId: agentId}

	var ack a2a.Ack
	if err := c.rpc.Call(ctx, c.baseUrl+"/a2a/deregister", a2a.MethodDeregister, params, &ack); err != nil {
		return nil, err
	}

	return &ack, nil
}

func (c *client) Heartbeat(ctx context.Context, agentId string) (*a2a.Ack, error) {
	params := &a2a.HeartbeatParams{AgentId: agentId}

	var ack a2a.Ack
	if err := c.rpc.Call(ctx, c.baseUrl+"/a2a/heartbeat", a2a.MethodHeartbeat, params, &ack); err != nil {
		return nil, err
	}

	return &ack, nil
}

func init() {
	din.RegisterT(func(c *din.Container) (Client, error) {
		conf, err := din.GetT[*config.AgentConfig](c)
		if err != nil {
			return nil, err
		}

		return NewClient(conf.DirectoryUrl), nil
	})
}
