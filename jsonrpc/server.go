package jsonrpc

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/mentessaas/a2a-protocol/errors"
	"github.com/mentessaas/a2a-protocol/internal/mylog"
)

type (
	// HandlerFunc serves one method: raw params in, result value out.
	HandlerFunc func(ctx context.Context, params json.RawMessage) (any, error)

	// Server dispatches framed requests to registered method handlers.
	// Dispatch keys on the envelope method, not the request path, so one
	// server can back any number of mount points.
	Server struct {
		logger   *mylog.Logger
		handlers map[string]HandlerFunc
	}
)

func NewServer(logger *mylog.Logger) *Server {
	return &Server{
		logger:   logger,
		handlers: map[string]HandlerFunc{},
	}
}

// Register binds a method name to its handler. Registration happens at
// construction time; the map is read-only once the server is serving.
func (s *Server) Register(method string, handler HandlerFunc) {
	s.handlers[method] = handler
}

// DecodeParams unmarshals a request's params into out. Handlers use it so
// that absent or malformed params always answer as an invalid-params error.
func DecodeParams(params json.RawMessage, out any) error {
	if len(params) == 0 {
		return errors.Wrapf(errors.ErrInvalidParams, "params are required")
	}
	if err := json.Unmarshal(params, out); err != nil {
		return errors.Wrapf(errors.ErrInvalidParams, "malformed params: %v", err)
	}

	return nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()

	var req Request
	resp := s.serve(r, &req)

	logger := s.logger.WithGroup("jsonrpc").With(slog.Duration("duration", time.Since(startTime)))
	if resp.Error != nil {
		logger = logger.With(slog.Int("code", resp.Error.Code))
	}
	logger.Info("[JSON-RPC] call",
		slog.String("method", req.Method),
		slog.Bool("error", resp.Error != nil),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Warn("failed to write jsonrpc response", "err", err)
	}
}

func (s *Server) serve(r *http.Request, req *Request) *Response {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return NewErrorResponse("", &Error{Code: CodeParse, Message: "Parse error"})
	}

	if req.Version != Version || req.Method == "" {
		return NewErrorResponse(req.Id, &Error{Code: CodeInvalidRequest, Message: "Invalid request"})
	}

	handler, ok := s.handlers[req.Method]
	if !ok {
		return NewErrorResponse(req.Id, &Error{Code: CodeMethodNotFound, Message: "Method not found"})
	}

	result, err := handler(r.Context(), req.Params)
	if err != nil {
		return NewErrorResponse(req.Id, s.mapError(err))
	}

	resp, err := NewResponse(req.Id, result)
	if err != nil {
		return NewErrorResponse(req.Id, s.mapError(errors.Wrapf(errors.ErrInternal, "%v", err)))
	}
	return resp
}

func (s *Server) mapError(err error) *Error {
	s.logger.Error("[JSON-RPC] error", mylog.Err(err))

	var rpcErr *Error
	if errors.As(err, &rpcErr) {
		return rpcErr
	}

	e := &Error{Message: err.Error()}
	if errors.Is(err, errors.ErrInvalidParams) {
		e.Code = CodeInvalidParams
	} else if errors.Is(err, errors.ErrInvalidRequest) {
		e.Code = CodeInvalidRequest
	} else if errors.Is(err, errors.ErrNoTaskHandler) ||
		errors.Is(err, errors.ErrAgentNotFound) ||
		errors.Is(err, errors.ErrNotFound) {
		e.Code = CodeApplication
	} else {
		e.Code = CodeInternal
	}

	return e
}
