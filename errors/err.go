package errors

import (
	"fmt"
)

var (
	ErrInvalidConfig  = fmt.Errorf("a2a: invalid config")
	ErrNotFound       = fmt.Errorf("a2a: not found")
	ErrInvalidParams  = fmt.Errorf("a2a: invalid params")
	ErrInvalidRequest = fmt.Errorf("a2a: invalid request")
	ErrInternal       = fmt.Errorf("a2a: internal error")

	// Client-side failure taxonomy. Each layer of a protocol exchange
	// reports through exactly one of these so callers can tell a dead
	// connection from a bad status from a bad body.
	ErrTransport     = fmt.Errorf("a2a: transport failure")
	ErrHTTPStatus    = fmt.Errorf("a2a: unexpected http status")
	ErrDecode        = fmt.Errorf("a2a: malformed response")
	ErrMissingResult = fmt.Errorf("a2a: response has neither result nor error")

	ErrAgentNotFound = fmt.Errorf("a2a: agent not found")
	ErrNoTaskHandler = fmt.Errorf("a2a: no task handler registered")
)
