// Package walletregistry manages the user's list of watched wallets:
// read-only references to ledger addresses, validated on entry and persisted
// through a pluggable WalletStorage backend.
package walletregistry

import "context"

// Service registers, lists, and removes watched wallets.
type Service interface {
	// Watch validates the address, builds a watched-wallet record, and
	// persists it. An empty label defaults to "Wallet N" based on the
	// current wallet count.
	//
	// It fails with types.ErrInvalidAddress on a malformed address and with
	// ErrWalletAlreadyRegistered when the address is already watched
	// (case-insensitive); neither failure mutates the store.
	Watch(ctx context.Context, address, label string) (WatchedWallet, error)

	// Unwatch removes the watched wallet with the given id. It fails with
	// ErrWalletNotFound when the id is unknown.
	Unwatch(ctx context.Context, id string) error

	// Get returns the watched wallet with the given id, or ErrWalletNotFound.
	Get(ctx context.Context, id string) (WatchedWallet, error)

	// List returns every watched wallet, oldest first.
	List(ctx context.Context) ([]WatchedWallet, error)
}

// service is the concrete Service implementation backed by a WalletStorage.
type service struct {
	walletStorage WalletStorage
}

// Compile-time check that *service implements the Service interface.
var _ Service = (*service)(nil)

// Watch validates the input, assembles the record, and hands it to storage,
// which enforces address uniqueness.
func (s *service) Watch(ctx context.Context, address, label string) (WatchedWallet, error) {
	wallets, err := s.walletStorage.ListWallets(ctx)
	if err != nil {
		return WatchedWallet{}, err
	}

	wallet, err := buildWatchedWallet(address, label, len(wallets))
	if err != nil {
		return WatchedWallet{}, err
	}

	if err := s.walletStorage.SaveWallet(ctx, wallet); err != nil {
		return WatchedWallet{}, err
	}

	return wallet, nil
}

// Unwatch removes the record with the given id.
func (s *service) Unwatch(ctx context.Context, id string) error {
	return s.walletStorage.DeleteWallet(ctx, id)
}

// Get returns the record with the given id.
func (s *service) Get(ctx context.Context, id string) (WatchedWallet, error) {
	return s.walletStorage.GetWallet(ctx, id)
}

// List returns every watched wallet record.
func (s *service) List(ctx context.Context) ([]WatchedWallet, error) {
	return s.walletStorage.ListWallets(ctx)
}

// New creates a walletregistry service using the provided storage backend.
// Intended for dependency injection during application wiring.
func New(ws WalletStorage) *service {
	return &service{
		walletStorage: ws,
	}
}
