package a2a

import (
	"context"

	"github.com/mentessaas/a2a-protocol/errors"
)

type (
	// TaskHandler processes one inbound task. The action namespace is the
	// handler's own; rejecting an unknown action is the handler's call,
	// and any error it returns surfaces to the caller as an application
	// error on the wire.
	TaskHandler interface {
		HandleTask(ctx context.Context, action string, input map[string]any, sender string) (map[string]any, error)
	}

	// TaskHandlerFunc adapts a plain function to TaskHandler.
	TaskHandlerFunc func(ctx context.Context, action string, input map[string]any, sender string) (map[string]any, error)

	// TaskMux routes tasks to per-action handlers, with an optional
	// fallback for everything unlisted.
	TaskMux struct {
		handlers map[string]TaskHandler
		fallback TaskHandler
	}
)

var (
	_ TaskHandler = (TaskHandlerFunc)(nil)
	_ TaskHandler = (*TaskMux)(nil)
)

func (f TaskHandlerFunc) HandleTask(ctx context.Context, action string, input map[string]any, sender string) (map[string]any, error) {
	return f(ctx, action, input, sender)
}

func NewTaskMux() *TaskMux {
	return &TaskMux{
		handlers: make(map[string]TaskHandler),
	}
}

// Handle registers the handler for one action, replacing any previous one.
func (m *TaskMux) Handle(action string, handler TaskHandler) {
	m.handlers[action] = handler
}

func (m *TaskMux) HandleFunc(action string, handler TaskHandlerFunc) {
	m.Handle(action, handler)
}

// Fallback installs the handler for actions no Handle call claimed.
func (m *TaskMux) Fallback(handler TaskHandler) {
	m.fallback = handler
}

func (m *TaskMux) HandleTask(ctx context.Context, action string, input map[string]any, sender string) (map[string]any, error) {
	handler, ok := m.handlers[action]
	if !ok {
		handler = m.fallback
	}
	if handler == nil {
		return nil, errors.Errorf("unsupported action %q", action)
	}

	return handler.HandleTask(ctx, action, input, sender)
}
