package directory

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/jcooky/go-din"
	"github.com/mokiat/gog"

	a2a "github.com/mentessaas/a2a-protocol"
	"github.com/mentessaas/a2a-protocol/entity"
	"github.com/mentessaas/a2a-protocol/errors"
	"github.com/mentessaas/a2a-protocol/internal/mylog"
	"github.com/mentessaas/a2a-protocol/jsonrpc"
)

// toAgentInfo renders a stored record in wire form.
func toAgentInfo(agent entity.Agent) a2a.AgentInfo {
	return a2a.AgentInfo{
		AgentId:      agent.AgentId,
		Name:         agent.Name,
		Capabilities: agent.Capabilities,
		Endpoint:     agent.Endpoint,
		RegisteredAt: agent.RegisteredAt.UTC().Format(time.RFC3339),
	}
}

// NewHandler builds the directory's HTTP surface: the JSON-RPC endpoints
// for register, discover, deregister and heartbeat, plus plain GET routes
// for browsing and resolving records. Every RPC mount serves the same
// dispatcher, so the envelope method decides the operation, not the path.
func NewHandler(c *din.Container) (http.Handler, error) {
	logger, err := din.Get[*mylog.Logger](c, mylog.Key)
	if err != nil {
		return nil, err
	}
	svc, err := din.GetT[Service](c)
	if err != nil {
		return nil, err
	}

	rpc := jsonrpc.NewServer(logger)
	rpc.Register(a2a.MethodRegister, func(ctx context.Context, params json.RawMessage) (any, error) {
		var req a2a.RegisterParams
		if err := jsonrpc.DecodeParams(params, &req); err != nil {
			return nil, err
		}

		agent, err := svc.Register(ctx, &req)
		if err != nil {
			return nil, err
		}

		return &a2a.Ack{Status: a2a.StatusRegistered, AgentId: agent.AgentId}, nil
	})
	rpc.Register(a2a.MethodDiscover, func(ctx context.Context, params json.RawMessage) (any, error) {
		var req a2a.DiscoverParams
		if err := jsonrpc.DecodeParams(params, &req); err != nil {
			return nil, err
		}

		agents, err := svc.Discover(ctx, req.Capabilities)
		if err != nil {
			return nil, err
		}

		return &a2a.DiscoverResult{Agents: gog.Map(agents, toAgentInfo)}, nil
	})
	rpc.Register(a2a.MethodDeregister, func(ctx context.Context, params json.RawMessage) (any, error) {
		var req a2a.DeregisterParams
		if err := jsonrpc.DecodeParams(params, &req); err != nil {
			return nil, err
		}

		if err := svc.Deregister(ctx, req.AgentId); err != nil {
			return nil, err
		}

		return &a2a.Ack{Status: a2a.StatusDeregistered, AgentId: req.AgentId}, nil
	})
	rpc.Register(a2a.MethodHeartbeat, func(ctx context.Context, params json.RawMessage) (any, error) {
		var req a2a.HeartbeatParams
		if err := jsonrpc.DecodeParams(params, &req); err != nil {
			return nil, err
		}

		if err := svc.Heartbeat(ctx, req.AgentId); err != nil {
			return nil, err
		}

		return &a2a.Ack{Status: a2a.StatusAlive, AgentId: req.AgentId}, nil
	})

	router := mux.NewRouter()
	for _, path := range []string{
		"/rpc",
		"/a2a/register",
		"/a2a/discover",
		"/a2a/deregister",
		"/a2a/heartbeat",
	} {
		router.Handle(path, rpc).Methods("POST")
	}

	router.HandleFunc("/a2a/agents", func(w http.ResponseWriter, r *http.Request) {
		agents, err := svc.ListAgents(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(&a2a.DiscoverResult{Agents: gog.Map(agents, toAgentInfo)}); err != nil {
			logger.Warn("failed to write agents response", "err", err)
		}
	}).Methods("GET")

	router.HandleFunc("/a2a/agents/{agentId}", func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)

		agent, err := svc.GetAgent(r.Context(), vars["agentId"])
		if err != nil {
			if errors.Is(err, errors.ErrNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
			} else {
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(toAgentInfo(*agent)); err != nil {
			logger.Warn("failed to write agent response", "err", err)
		}
	}).Methods("GET")

	router.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods("GET")

	return router, nil
}
