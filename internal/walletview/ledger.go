package walletview

import (
	"context"

	"github.com/gabapcia/suitrack/internal/pkg/types"
)

// CoinMetadata carries the optional descriptive data a node may attach to a
// coin balance. Decimals defines how many places of the smallest unit make up
// one display unit; Price, when known, is the USD price of one display unit.
type CoinMetadata struct {
	Symbol   string   // ticker symbol, e.g. "SUI"
	Name     string   // human-readable coin name
	Decimals int      // smallest-unit decimal places
	Price    *float64 // USD price per display unit, nil when unknown
}

// Balance is one coin position held by an address, as reported by the ledger.
// TotalBalance is integer-denominated in the coin's smallest unit and kept as
// a string so it never loses precision. Metadata is nil when the node does
// not report any.
type Balance struct {
	CoinType        string        // fully-qualified coin type tag
	TotalBalance    string        // total held amount, smallest-unit integer
	CoinObjectCount int           // number of coin objects backing the balance
	Metadata        *CoinMetadata // optional descriptive metadata
}

// ObjectDisplay is the standardized display block an object may expose.
// Every field is optional on chain; absent fields decode to the empty string.
type ObjectDisplay struct {
	Name        string // display name
	Description string // display description
	ImageURL    string // display image URL
	Creator     string // creator / collection attribution
}

// ObjectAttribute is a single trait attached to an object's content.
type ObjectAttribute struct {
	TraitType string // attribute label, e.g. "Background"
	Value     string // attribute value, e.g. "Blue"
}

// ObjectFields is the subset of an object's on-chain content fields that the
// view layer cares about. Objects carry arbitrary field mappings; anything
// outside this subset is ignored.
type ObjectFields struct {
	Name        string            // content-level name
	Description string            // content-level description
	URL         string            // content-level image URL
	Attributes  []ObjectAttribute // ordered trait list
}

// OwnedObject is one on-chain object held by an address. Display and Content
// vary per object and are nil when the node omits them.
type OwnedObject struct {
	ObjectID string         // unique object id
	Type     string         // fully-qualified type tag
	Display  *ObjectDisplay // optional display block
	Content  *ObjectFields  // optional content fields
}

// ObjectPage is one page of owned objects together with its continuation
// cursor.
type ObjectPage struct {
	Data        []OwnedObject
	NextCursor  *string
	HasNextPage bool
}

// TransactionEvent is a single event emitted by a transaction. Only the type
// tag matters for classification.
type TransactionEvent struct {
	Type string
}

// TransactionEffects groups the effect data attached to a transaction.
// Events may be empty even when effects are present.
type TransactionEffects struct {
	Events []TransactionEvent
}

// Transaction is one ledger transaction involving an address. Effects is nil
// when the node reports none.
type Transaction struct {
	Digest      string              // transaction digest
	TimestampMs int64               // execution time, epoch milliseconds
	Effects     *TransactionEffects // optional effect data
}

// TransactionPage is one page of transactions together with its continuation
// cursor.
type TransactionPage struct {
	Data        []Transaction
	NextCursor  *string
	HasNextPage bool
}

// Ledger is the remote ledger surface this service aggregates from.
//
// Implementations absorb transport and protocol failures internally,
// answering with deterministic substitute data instead of an error, so the
// view layer never renders an "unavailable" state caused by network issues.
// Errors are reserved for true defects.
type Ledger interface {
	// NativeBalance returns the address's native-coin balance.
	NativeBalance(ctx context.Context, address types.Address) (Balance, error)

	// AllBalances returns every coin balance held by the address.
	AllBalances(ctx context.Context, address types.Address) ([]Balance, error)

	// OwnedObjects returns one page of objects held by the address. A nil
	// cursor starts from the beginning; limit caps the page size.
	OwnedObjects(ctx context.Context, address types.Address, cursor *string, limit int) (ObjectPage, error)

	// RecentTransactions returns one page of the address's transactions,
	// newest first. A nil cursor starts from the beginning; limit caps the
	// page size.
	RecentTransactions(ctx context.Context, address types.Address, cursor *string, limit int) (TransactionPage, error)
}
