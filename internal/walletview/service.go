// Package walletview aggregates and normalizes everything a wallet screen
// needs: coin balances, collectible holdings, and recent transactions for one
// ledger address, fetched concurrently and reduced to display-ready view
// models.
package walletview

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/suitrack/internal/pkg/types"

	"golang.org/x/sync/errgroup"
)

// ErrSnapshotFailed wraps any unexpected failure while assembling a wallet
// snapshot. Transport faults never reach this point; the ledger absorbs them
// into substitute data, so this error always signals a defect worth surfacing.
var ErrSnapshotFailed = errors.New("wallet snapshot failed")

const (
	// defaultObjectPageLimit caps the owned-object page requested per snapshot.
	defaultObjectPageLimit = 50

	// defaultTransactionPageLimit caps the transaction page requested per snapshot.
	defaultTransactionPageLimit = 20
)

// WalletSnapshot is the consolidated, display-ready view of one wallet at
// fetch time. It is built fresh per request and owned by the caller; nothing
// here is shared between concurrent fetches.
type WalletSnapshot struct {
	Coins        []CoinView        `json:"coins"`
	Collectibles []CollectibleView `json:"collectibles"`
	Transactions []TransactionView `json:"transactions"`
}

// Service produces consolidated wallet snapshots.
type Service interface {
	// Snapshot fetches balances, owned objects, and recent transactions for
	// the given address and reduces them to one WalletSnapshot.
	//
	// The three ledger queries run concurrently; there is no ordering
	// dependency between them. The result is all-or-nothing: if any leg
	// fails unexpectedly, Snapshot returns an error wrapping
	// ErrSnapshotFailed and no partial snapshot.
	//
	// A malformed address fails with types.ErrInvalidAddress before any
	// query is issued.
	Snapshot(ctx context.Context, address string) (WalletSnapshot, error)

	// NativeCoin fetches only the native-coin balance of the given address
	// and reduces it to one display-ready CoinView. A malformed address
	// fails with types.ErrInvalidAddress; an unexpected ledger failure wraps
	// ErrSnapshotFailed.
	NativeCoin(ctx context.Context, address string) (CoinView, error)
}

// service is the concrete Service implementation, backed by an injected
// Ledger.
type service struct {
	ledger Ledger
}

// Compile-time check that *service implements the Service interface.
var _ Service = (*service)(nil)

// Snapshot fans out the three ledger queries, normalizes each raw result, and
// joins them into one snapshot.
func (s *service) Snapshot(ctx context.Context, address string) (WalletSnapshot, error) {
	addr, err := types.AddressFromString(address)
	if err != nil {
		return WalletSnapshot{}, err
	}

	var (
		coins        []CoinView
		collectibles []CollectibleView
		transactions []TransactionView
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		balances, err := s.ledger.AllBalances(gctx, addr)
		if err != nil {
			return err
		}

		coins, err = normalizeCoins(balances)
		return err
	})

	g.Go(func() error {
		page, err := s.ledger.OwnedObjects(gctx, addr, nil, defaultObjectPageLimit)
		if err != nil {
			return err
		}

		collectibles = normalizeCollectibles(page.Data)
		return nil
	})

	g.Go(func() error {
		page, err := s.ledger.RecentTransactions(gctx, addr, nil, defaultTransactionPageLimit)
		if err != nil {
			return err
		}

		transactions = make([]TransactionView, len(page.Data))
		for i, tx := range page.Data {
			transactions[i] = classifyTransaction(tx)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return WalletSnapshot{}, fmt.Errorf("%w: %w", ErrSnapshotFailed, err)
	}

	return WalletSnapshot{
		Coins:        coins,
		Collectibles: collectibles,
		Transactions: transactions,
	}, nil
}

// NativeCoin fetches and normalizes the native-coin balance alone, for
// callers that do not need the full snapshot.
func (s *service) NativeCoin(ctx context.Context, address string) (CoinView, error) {
	addr, err := types.AddressFromString(address)
	if err != nil {
		return CoinView{}, err
	}

	balance, err := s.ledger.NativeBalance(ctx, addr)
	if err != nil {
		return CoinView{}, fmt.Errorf("%w: %w", ErrSnapshotFailed, err)
	}

	coins, err := normalizeCoins([]Balance{balance})
	if err != nil {
		return CoinView{}, fmt.Errorf("%w: %w", ErrSnapshotFailed, err)
	}

	return coins[0], nil
}

// New creates a walletview service backed by the given ledger. Intended for
// dependency injection during application wiring.
func New(ledger Ledger) *service {
	return &service{
		ledger: ledger,
	}
}
