package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/mentessaas/a2a-protocol/errors"
)

type (
	// Client posts framed calls over HTTP. It is safe for concurrent use;
	// calls share only the underlying connection pool.
	Client struct {
		httpClient *http.Client
		headers    http.Header
	}

	ClientOption func(*Client)
)

func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func WithHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		headers:    http.Header{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Call posts one framed request to url and decodes the result into out.
// Each failure layer is distinguishable to the caller: errors.ErrTransport
// for connection faults, errors.ErrHTTPStatus for a non-2xx answer,
// errors.ErrDecode for a body that is not a valid envelope, and *Error for
// a remote error member. Nothing is retried; timeouts belong to the
// injected *http.Client and the caller's context.
func (c *Client) Call(ctx context.Context, url, method string, params any, out any) error {
	req, err := NewRequest(method, params)
	if err != nil {
		return err
	}

	body, err := json.Marshal(req)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal request for %s", method)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrapf(err, "failed to build request for %s", url)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for key, values := range c.headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return errors.Wrapf(errors.ErrTransport, "post %s: %v", url, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		b, _ := io.ReadAll(httpResp.Body)
		return errors.Wrapf(errors.ErrHTTPStatus, "%d from %s: %s", httpResp.StatusCode, url, string(b))
	}

	var resp Response
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return errors.Wrapf(errors.ErrDecode, "invalid envelope from %s: %v", url, err)
	}

	return resp.Decode(out)
}
