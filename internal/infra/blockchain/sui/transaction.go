package sui

import (
	"context"

	"github.com/gabapcia/suitrack/internal/pkg/types"
	"github.com/gabapcia/suitrack/internal/walletview"
)

type (
	// transactionEventResponse is one event emitted by a transaction. Only
	// the type tag is consumed; the rest of the event body is ignored.
	transactionEventResponse struct {
		Type string `json:"type"`
	}

	// transactionEffectsResponse groups the effect data of a transaction.
	transactionEffectsResponse struct {
		Events []transactionEventResponse `json:"events"`
	}

	// transactionResponse is one transaction block as returned by
	// suix_queryTransactionBlocks.
	transactionResponse struct {
		Digest      string                      `json:"digest"`
		TimestampMs int64                       `json:"timestampMs"`
		Effects     *transactionEffectsResponse `json:"effects"`
	}

	// transactionPageResponse is one page of transaction blocks.
	transactionPageResponse struct {
		Data        []transactionResponse `json:"data"`
		NextCursor  *string               `json:"nextCursor"`
		HasNextPage bool                  `json:"hasNextPage"`
	}
)

// toViewTransaction converts a raw transaction into the walletview domain type.
func (t transactionResponse) toViewTransaction() walletview.Transaction {
	tx := walletview.Transaction{
		Digest:      t.Digest,
		TimestampMs: t.TimestampMs,
	}

	if t.Effects != nil {
		effects := &walletview.TransactionEffects{
			Events: make([]walletview.TransactionEvent, len(t.Effects.Events)),
		}
		for i, event := range t.Effects.Events {
			effects.Events[i] = walletview.TransactionEvent{Type: event.Type}
		}
		tx.Effects = effects
	}

	return tx
}

// toViewPage converts a raw transaction page into the walletview domain type.
func (p transactionPageResponse) toViewPage() walletview.TransactionPage {
	transactions := make([]walletview.Transaction, len(p.Data))
	for i, tx := range p.Data {
		transactions[i] = tx.toViewTransaction()
	}

	return walletview.TransactionPage{
		Data:        transactions,
		NextCursor:  p.NextCursor,
		HasNextPage: p.HasNextPage,
	}
}

// RecentTransactions returns one page of the address's transactions, newest
// first, falling back to the substitute transactions when the node cannot
// provide them.
func (c *client) RecentTransactions(ctx context.Context, address types.Address, cursor *string, limit int) (walletview.TransactionPage, error) {
	if limit <= 0 {
		limit = defaultTransactionPageLimit
	}

	if c.offline {
		logSubstitute(ctx, methodQueryTransactions, nil)
		return substituteTransactionPage(), nil
	}

	query := map[string]any{
		"filter": map[string]any{
			"FromAddress": address.String(),
		},
		"options": map[string]any{
			"showInput":   true,
			"showEffects": true,
			"showEvents":  true,
		},
	}

	var res transactionPageResponse
	if err := c.fetch(ctx, &res, methodQueryTransactions, query, cursor, limit, "descending"); err != nil {
		logSubstitute(ctx, methodQueryTransactions, err)
		return substituteTransactionPage(), nil
	}

	return res.toViewPage(), nil
}
