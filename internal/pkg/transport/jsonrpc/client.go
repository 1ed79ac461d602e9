// Package jsonrpc implements a generic JSON-RPC 2.0 client over HTTP, suited
// for full-node RPC surfaces. Requests carry positional parameters and a UUID
// id; responses are decoded into either a raw result or a typed provider
// error.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrProviderReturnedError indicates that the remote JSON-RPC server answered
// with an error envelope instead of a result.
var ErrProviderReturnedError = errors.New("provider error")

// ErrUnexpectedStatusCode indicates a non-2xx HTTP status from the provider.
var ErrUnexpectedStatusCode = errors.New("unexpected status code")

// response represents a standard JSON-RPC 2.0 response.
type response struct {
	JsonRPC string `json:"jsonrpc"` // protocol version, usually "2.0"
	Error   *struct {
		Code    int    `json:"code"`    // JSON-RPC error code
		Message string `json:"message"` // human-readable error message
	} `json:"error"`
	Result json.RawMessage `json:"result"` // raw result payload
}

// Err returns an error when the response carries a JSON-RPC error object,
// wrapping ErrProviderReturnedError with the code and message.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return fmt.Errorf("%w: [%d] - %s", ErrProviderReturnedError, r.Error.Code, r.Error.Message)
}

// Client abstracts a JSON-RPC connection so callers can swap implementations
// in tests.
type Client interface {
	// Fetch sends a JSON-RPC request with the given method name and positional
	// parameters, returning the raw result or an error when the transport or
	// the server fails.
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

// client is the default Client implementation. It posts requests to the
// configured provider endpoint using the injected HTTP client.
type client struct {
	providerEndpoint string       // URL of the remote JSON-RPC server
	httpClient       *http.Client // HTTP client used to perform requests
}

// Compile-time assertion that client implements the Client interface.
var _ Client = (*client)(nil)

// Fetch sends a JSON-RPC request to the remote server with the given method
// and parameters. The request id is a fresh UUID string. It fails on
// transport errors, non-2xx statuses, undecodable bodies, and JSON-RPC error
// envelopes.
func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatusCode, res.StatusCode)
	}

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}

	return data.Result, data.Err()
}

// NewClient returns a Client that sends JSON-RPC requests to the given
// provider endpoint through the supplied HTTP client.
func NewClient(httpClient *http.Client, providerEndpoint string) *client {
	return &client{
		providerEndpoint: providerEndpoint,
		httpClient:       httpClient,
	}
}
