// Package jsonrpc implements the JSON-RPC 2.0 framing all protocol calls
// ride on: a request/response envelope, an HTTP client posting framed
// calls, and an HTTP server dispatching them by method name.
package jsonrpc

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/mentessaas/a2a-protocol/errors"
)

const Version = "2.0"

// Wire error codes.
const (
	CodeParse          = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternal       = -32603

	// CodeApplication reports application-level failures from the serving
	// side, e.g. a missing or failed task handler.
	CodeApplication = -32001
)

type (
	Request struct {
		Version string          `json:"jsonrpc"`
		Id      string          `json:"id"`
		Method  string          `json:"method"`
		Params  json.RawMessage `json:"params,omitempty"`
	}

	Response struct {
		Version string          `json:"jsonrpc"`
		Id      string          `json:"id"`
		Result  json.RawMessage `json:"result,omitempty"`
		Error   *Error          `json:"error,omitempty"`
	}

	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Data    any    `json:"data,omitempty"`
	}
)

func (e *Error) Error() string {
	return fmt.Sprintf("jsonrpc error %d: %s", e.Code, e.Message)
}

// NewRequest frames a method call with a fresh random id. Ids are never
// reused, so concurrent calls from one process cannot collide.
func NewRequest(method string, params any) (*Request, error) {
	req := &Request{
		Version: Version,
		Id:      uuid.NewString(),
		Method:  method,
	}
	if params != nil {
		raw, err := json.Marshal(params)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal params for %s", method)
		}
		req.Params = raw
	}
	return req, nil
}

func NewResponse(id string, result any) (*Response, error) {
	raw, err := json.Marshal(result)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal result")
	}
	return &Response{Version: Version, Id: id, Result: raw}, nil
}

func NewErrorResponse(id string, rpcErr *Error) *Response {
	return &Response{Version: Version, Id: id, Error: rpcErr}
}

// Decode unpacks the envelope into out. A remote error member comes back
// as *Error; an envelope carrying neither result nor error reports
// errors.ErrMissingResult.
//
// The response id is not checked against the request id: every exchange
// here is a single-shot HTTP round trip, so there is nothing to
// correlate. A multiplexing transport would have to add that check.
func (r *Response) Decode(out any) error {
	if r.Error != nil {
		return r.Error
	}
	if len(r.Result) == 0 {
		return errors.WithStack(errors.ErrMissingResult)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(r.Result, out); err != nil {
		return errors.Wrapf(errors.ErrDecode, "result does not match %T: %v", out, err)
	}
	return nil
}
