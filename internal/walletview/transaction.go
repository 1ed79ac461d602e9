package walletview

import (
	"strings"
	"time"
)

// Category labels what kind of activity a transaction represents, inferred
// from its emitted events.
type Category string

const (
	// CategoryTransfer marks transactions that moved coin balances.
	CategoryTransfer Category = "Transfer"

	// CategoryContractCall marks transactions that invoked a contract.
	CategoryContractCall Category = "ContractCall"

	// CategoryGeneric marks transactions with no recognizable event.
	CategoryGeneric Category = "Generic"
)

const (
	// balanceChangeMarker appears in event type tags emitted by coin
	// balance changes.
	balanceChangeMarker = "CoinBalanceChange"

	// contractCallMarker appears in event type tags emitted by generic
	// contract invocations.
	contractCallMarker = "MoveEvent"
)

// timestampLayout renders transaction times. A library has no client locale
// to consult, so the layout is fixed and times are kept in UTC.
const timestampLayout = time.DateTime

// TransactionView is the display-ready form of one transaction.
type TransactionView struct {
	Digest    string   `json:"digest"`
	Category  Category `json:"category"`
	Timestamp string   `json:"timestamp"`
}

// classifyTransaction converts a raw transaction into its display-ready view,
// inferring the category from the transaction's events.
//
// A balance-change event anywhere in the set means Transfer, otherwise a
// contract-call event means ContractCall, otherwise the transaction is
// Generic. Transfer wins when both markers are present.
func classifyTransaction(tx Transaction) TransactionView {
	return TransactionView{
		Digest:    tx.Digest,
		Category:  categorize(tx),
		Timestamp: time.UnixMilli(tx.TimestampMs).UTC().Format(timestampLayout),
	}
}

// categorize applies the event-marker rules, scanning for balance changes
// before contract calls so Transfer takes precedence.
func categorize(tx Transaction) Category {
	if tx.Effects == nil {
		return CategoryGeneric
	}

	for _, event := range tx.Effects.Events {
		if strings.Contains(event.Type, balanceChangeMarker) {
			return CategoryTransfer
		}
	}

	for _, event := range tx.Effects.Events {
		if strings.Contains(event.Type, contractCallMarker) {
			return CategoryContractCall
		}
	}

	return CategoryGeneric
}
