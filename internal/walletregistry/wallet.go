package walletregistry

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/suitrack/internal/pkg/types"
	"github.com/gabapcia/suitrack/internal/pkg/validator"

	"github.com/google/uuid"
)

// ErrWalletAlreadyRegistered is returned when the address is already watched.
// Address comparison is case-insensitive.
var ErrWalletAlreadyRegistered = errors.New("wallet already registered")

// ErrWalletNotFound is returned when no watched wallet has the given id.
var ErrWalletNotFound = errors.New("wallet not found")

// WatchedWallet is a read-only reference to a ledger address the user tracks.
// The address never changes once the record exists; only the label is
// user-editable at the storage level.
type WatchedWallet struct {
	ID        string        // opaque unique record id
	Address   types.Address // validated ledger address
	Label     string        // user-facing wallet name
	CreatedAt time.Time     // registration time, UTC
}

// WalletStorage persists watched-wallet records.
//
// Implementations enforce address uniqueness case-insensitively: SaveWallet
// must fail with ErrWalletAlreadyRegistered when another record already holds
// the same address in any casing, without mutating the store.
type WalletStorage interface {
	// SaveWallet stores a new watched wallet record.
	SaveWallet(ctx context.Context, wallet WatchedWallet) error

	// DeleteWallet removes the record with the given id. It fails with
	// ErrWalletNotFound when no such record exists.
	DeleteWallet(ctx context.Context, id string) error

	// GetWallet returns the record with the given id, or ErrWalletNotFound.
	GetWallet(ctx context.Context, id string) (WatchedWallet, error)

	// ListWallets returns every watched wallet record, oldest first.
	ListWallets(ctx context.Context) ([]WatchedWallet, error)
}

// registration is the validated input for adding a watched wallet. The label
// is optional; an empty one gets a positional default.
type registration struct {
	Address string `validate:"required"` // ledger address to watch
	Label   string // optional wallet name
}

// buildWatchedWallet validates the registration input and constructs a fresh
// record with a generated id. walletCount feeds the default label ("Wallet
// N") when none is given.
func buildWatchedWallet(address, label string, walletCount int) (WatchedWallet, error) {
	reg := registration{
		Address: address,
		Label:   label,
	}

	if err := validator.Validate(reg); err != nil {
		return WatchedWallet{}, err
	}

	addr, err := types.AddressFromString(reg.Address)
	if err != nil {
		return WatchedWallet{}, err
	}

	if reg.Label == "" {
		reg.Label = fmt.Sprintf("Wallet %d", walletCount+1)
	}

	return WatchedWallet{
		ID:        uuid.NewString(),
		Address:   addr,
		Label:     reg.Label,
		CreatedAt: time.Now().UTC(),
	}, nil
}
