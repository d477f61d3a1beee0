package agent

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	a2a "github.com/mentessaas/a2a-protocol"
	"github.com/mentessaas/a2a-protocol/errors"
	"github.com/mentessaas/a2a-protocol/jsonrpc"
)

// NewHandler builds the agent's inbound HTTP surface. Tasks are posted to
// whatever endpoint the agent registered, so the dispatcher answers on
// "/" as well as the conventional mount points; the envelope method picks
// the operation.
func NewHandler(agent *Agent) http.Handler {
	rpc := jsonrpc.NewServer(agent.logger)
	rpc.Register(a2a.MethodTask, func(ctx context.Context, params json.RawMessage) (any, error) {
		var req a2a.TaskParams
		if err := jsonrpc.DecodeParams(params, &req); err != nil {
			return nil, err
		}

		if agent.handler == nil {
			return nil, errors.Wrapf(errors.ErrNoTaskHandler, "agent %q accepts no tasks", agent.info.AgentId)
		}

		output, err := agent.handler.HandleTask(ctx, req.Action, req.Input, req.Sender)
		if err != nil {
			return nil, &jsonrpc.Error{Code: jsonrpc.CodeApplication, Message: err.Error()}
		}

		return &a2a.TaskResult{
			TaskId: req.TaskId,
			Status: a2a.TaskStatusCompleted,
			Output: output,
		}, nil
	})
	// Discovery against a single agent answers with its own card.
	rpc.Register(a2a.MethodDiscover, func(context.Context, json.RawMessage) (any, error) {
		return &a2a.DiscoverResult{Agents: []a2a.AgentInfo{agent.info}}, nil
	})

	router := mux.NewRouter()
	for _, path := range []string{
		"/",
		"/rpc",
		"/a2a/task",
	} {
		router.Handle(path, rpc).Methods("POST")
	}

	router.HandleFunc("/.well-known/agent.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(agent.Info()); err != nil {
			agent.logger.Warn("failed to write agent card", "err", err)
		}
	}).Methods("GET")

	router.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods("GET")

	return router
}
