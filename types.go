// Package a2a defines the wire surface of the agent-to-agent protocol:
// the directory record describing one agent, the payloads of the protocol
// methods, and the task handler contract a serving agent plugs in.
//
// All calls ride on JSON-RPC 2.0 envelopes over HTTP; see the jsonrpc
// package for the framing itself.
package a2a

// Protocol method names. Dispatch keys on the envelope method, so these
// double as the canonical mount paths on the directory.
const (
	MethodRegister   = "a2a/register"
	MethodDiscover   = "a2a/discover"
	MethodTask       = "a2a/task"
	MethodDeregister = "a2a/deregister"
	MethodHeartbeat  = "a2a/heartbeat"
)

const (
	// TaskStatusCompleted is what a serving agent reports once its handler
	// returned. Handlers signal domain-level failure inside the output
	// value, not through this status.
	TaskStatusCompleted = "completed"

	StatusRegistered   = "registered"
	StatusDeregistered = "deregistered"
	StatusAlive        = "alive"
)

type (
	// AgentInfo is the directory record for one agent. AgentId and
	// Endpoint must be non-empty for the record to be dispatchable.
	// RegisteredAt is stamped by the directory (UTC, RFC 3339) and stays
	// empty on records that were never persisted.
	AgentInfo struct {
		AgentId      string   `json:"agentId"`
		Name         string   `json:"name"`
		Capabilities []string `json:"capabilities"`
		Endpoint     string   `json:"endpoint"`
		RegisteredAt string   `json:"registeredAt,omitempty"`
	}

	RegisterParams struct {
		AgentId      string   `json:"agentId"`
		Name         string   `json:"name"`
		Capabilities []string `json:"capabilities"`
		Endpoint     string   `json:"endpoint"`
	}

	DiscoverParams struct {
		Capabilities []string `json:"capabilities"`
	}

	DiscoverResult struct {
		Agents []AgentInfo `json:"agents"`
	}

	DeregisterParams struct {
		AgentId string `json:"agentId"`
	}

	HeartbeatParams struct {
		AgentId string `json:"agentId"`
	}

	// Ack answers register, deregister and heartbeat calls.
	Ack struct {
		Status  string `json:"status"`
		AgentId string `json:"agentId"`
	}

	// TaskParams carries one unit of work agent to agent. TaskId is fresh
	// per dispatch and echoed back in the result.
	TaskParams struct {
		TaskId string         `json:"taskId"`
		Action string         `json:"action"`
		Sender string         `json:"sender"`
		Input  map[string]any `json:"input"`
	}

	TaskResult struct {
		TaskId string         `json:"taskId"`
		Status string         `json:"status"`
		Output map[string]any `json:"output,omitempty"`
	}
)
