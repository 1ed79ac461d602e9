// Package sui implements the walletview.Ledger interface against a Sui
// full-node JSON-RPC endpoint.
//
// Every query has two explicit outcomes: live data from the node, or the
// deterministic substitute dataset when the node cannot be reached or answers
// with something unusable. The substitute branch is logged but never surfaced
// as an error, trading data freshness for UI resilience. An offline option
// forces the substitute branch unconditionally, skipping the transport.
package sui

import (
	"context"
	"encoding/json"

	"github.com/gabapcia/suitrack/internal/pkg/logger"
	"github.com/gabapcia/suitrack/internal/pkg/resilience/retry"
	"github.com/gabapcia/suitrack/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/suitrack/internal/walletview"
)

// JSON-RPC method names exposed by the Sui full node.
const (
	methodGetBalance        = "suix_getBalance"
	methodGetAllBalances    = "suix_getAllBalances"
	methodGetOwnedObjects   = "suix_getOwnedObjects"
	methodQueryTransactions = "suix_queryTransactionBlocks"
)

// Default page sizes applied when the caller does not cap a query.
const (
	defaultObjectPageLimit      = 50
	defaultTransactionPageLimit = 20
)

// client implements walletview.Ledger over a JSON-RPC connection.
type client struct {
	conn    jsonrpc.Client // underlying JSON-RPC client
	retry   retry.Retry    // envelope-level re-attempts before falling back
	offline bool           // serve substitute data without touching the network
}

// Compile-time check that *client implements walletview.Ledger.
var _ walletview.Ledger = (*client)(nil)

// config holds construction options for the client.
type config struct {
	retry   retry.Retry
	offline bool
}

// Option customizes the client during construction.
type Option func(*config)

// WithRetry replaces the default retry policy used for each RPC fetch.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithOfflineMode forces every query onto the substitute dataset, bypassing
// the network entirely. Used for offline and demo operation.
func WithOfflineMode() Option {
	return func(c *config) {
		c.offline = true
	}
}

// NewClient creates a Sui ledger client on top of the given JSON-RPC
// connection.
func NewClient(conn jsonrpc.Client, opts ...Option) *client {
	cfg := config{
		retry: retry.New(retry.WithAttempts(2)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		conn:    conn,
		retry:   cfg.retry,
		offline: cfg.offline,
	}
}

// fetch issues one JSON-RPC call under the retry policy and decodes the raw
// result into out. Transport faults, provider error envelopes, and
// undecodable payloads all come back as errors for the caller's fallback
// branch to absorb.
func (c *client) fetch(ctx context.Context, out any, method string, params ...any) error {
	var raw json.RawMessage

	err := c.retry.Execute(ctx, func() error {
		res, err := c.conn.Fetch(ctx, method, params...)
		if err != nil {
			return err
		}

		raw = res
		return nil
	})
	if err != nil {
		return err
	}

	return json.Unmarshal(raw, out)
}

// logSubstitute records that a query was answered from the substitute
// dataset and why.
func logSubstitute(ctx context.Context, method string, err error) {
	if err == nil {
		logger.Debug(ctx, "serving substitute ledger data", "method", method, "reason", "offline mode")
		return
	}

	logger.Warn(ctx, "ledger query failed, serving substitute data", "method", method, "error", err)
}
