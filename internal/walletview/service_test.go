package walletview

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gabapcia/suitrack/internal/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ledgerFake implements the Ledger interface with overridable functions.
type ledgerFake struct {
	nativeBalanceFunc      func(ctx context.Context, address types.Address) (Balance, error)
	allBalancesFunc        func(ctx context.Context, address types.Address) ([]Balance, error)
	ownedObjectsFunc       func(ctx context.Context, address types.Address, cursor *string, limit int) (ObjectPage, error)
	recentTransactionsFunc func(ctx context.Context, address types.Address, cursor *string, limit int) (TransactionPage, error)
}

var _ Ledger = (*ledgerFake)(nil)

func (f *ledgerFake) NativeBalance(ctx context.Context, address types.Address) (Balance, error) {
	if f.nativeBalanceFunc == nil {
		return Balance{}, nil
	}
	return f.nativeBalanceFunc(ctx, address)
}

func (f *ledgerFake) AllBalances(ctx context.Context, address types.Address) ([]Balance, error) {
	if f.allBalancesFunc == nil {
		return nil, nil
	}
	return f.allBalancesFunc(ctx, address)
}

func (f *ledgerFake) OwnedObjects(ctx context.Context, address types.Address, cursor *string, limit int) (ObjectPage, error) {
	if f.ownedObjectsFunc == nil {
		return ObjectPage{}, nil
	}
	return f.ownedObjectsFunc(ctx, address, cursor, limit)
}

func (f *ledgerFake) RecentTransactions(ctx context.Context, address types.Address, cursor *string, limit int) (TransactionPage, error) {
	if f.recentTransactionsFunc == nil {
		return TransactionPage{}, nil
	}
	return f.recentTransactionsFunc(ctx, address, cursor, limit)
}

func testAddress() string {
	return "0x" + strings.Repeat("a", 64)
}

func TestNew(t *testing.T) {
	t.Run("creates service with the provided ledger", func(t *testing.T) {
		ledger := &ledgerFake{}

		svc := New(ledger)
		require.NotNil(t, svc)
		assert.Equal(t, Ledger(ledger), svc.ledger)
	})
}

func TestService_Snapshot(t *testing.T) {
	t.Run("should assemble coins, collectibles, and transactions", func(t *testing.T) {
		ledger := &ledgerFake{
			allBalancesFunc: func(ctx context.Context, address types.Address) ([]Balance, error) {
				return []Balance{{
					CoinType:     "0x2::sui::SUI",
					TotalBalance: "10000000000",
					Metadata:     &CoinMetadata{Symbol: "SUI", Name: "Sui Token", Decimals: 9},
				}}, nil
			},
			ownedObjectsFunc: func(ctx context.Context, address types.Address, cursor *string, limit int) (ObjectPage, error) {
				assert.Nil(t, cursor)
				assert.Equal(t, defaultObjectPageLimit, limit)
				return ObjectPage{Data: []OwnedObject{
					{ObjectID: "0x1", Type: "0xabc::capy::Capy", Content: &ObjectFields{Name: "Capy #1234"}},
					{ObjectID: "0x2", Type: "0x2::coin::Coin<0x2::sui::SUI>"},
				}}, nil
			},
			recentTransactionsFunc: func(ctx context.Context, address types.Address, cursor *string, limit int) (TransactionPage, error) {
				assert.Nil(t, cursor)
				assert.Equal(t, defaultTransactionPageLimit, limit)
				return TransactionPage{Data: []Transaction{{
					Digest:      "0xaaa",
					TimestampMs: 1700000000000,
					Effects: &TransactionEffects{
						Events: []TransactionEvent{{Type: "0x2::coin::CoinBalanceChange"}},
					},
				}}}, nil
			},
		}

		s := New(ledger)

		snapshot, err := s.Snapshot(t.Context(), testAddress())
		require.NoError(t, err)

		require.Len(t, snapshot.Coins, 1)
		assert.Equal(t, "SUI", snapshot.Coins[0].Symbol)

		require.Len(t, snapshot.Collectibles, 1)
		assert.Equal(t, "Capy #1234", snapshot.Collectibles[0].Name)

		require.Len(t, snapshot.Transactions, 1)
		assert.Equal(t, CategoryTransfer, snapshot.Transactions[0].Category)
	})

	t.Run("should fail fast on a malformed address", func(t *testing.T) {
		called := false
		ledger := &ledgerFake{
			allBalancesFunc: func(ctx context.Context, address types.Address) ([]Balance, error) {
				called = true
				return nil, nil
			},
		}

		s := New(ledger)

		_, err := s.Snapshot(t.Context(), "0xnope")
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrInvalidAddress)
		assert.False(t, called)
	})

	t.Run("should wrap a balance query defect in ErrSnapshotFailed", func(t *testing.T) {
		expectedErr := errors.New("decode defect")
		ledger := &ledgerFake{
			allBalancesFunc: func(ctx context.Context, address types.Address) ([]Balance, error) {
				return nil, expectedErr
			},
		}

		s := New(ledger)

		_, err := s.Snapshot(t.Context(), testAddress())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSnapshotFailed)
		assert.ErrorIs(t, err, expectedErr)
	})

	t.Run("should never return a partial snapshot", func(t *testing.T) {
		ledger := &ledgerFake{
			allBalancesFunc: func(ctx context.Context, address types.Address) ([]Balance, error) {
				return []Balance{{CoinType: "0x2::sui::SUI", TotalBalance: "1"}}, nil
			},
			recentTransactionsFunc: func(ctx context.Context, address types.Address, cursor *string, limit int) (TransactionPage, error) {
				return TransactionPage{}, errors.New("late defect")
			},
		}

		s := New(ledger)

		snapshot, err := s.Snapshot(t.Context(), testAddress())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSnapshotFailed)
		assert.Empty(t, snapshot.Coins)
		assert.Empty(t, snapshot.Collectibles)
		assert.Empty(t, snapshot.Transactions)
	})

	t.Run("should surface a malformed balance as a snapshot failure", func(t *testing.T) {
		ledger := &ledgerFake{
			allBalancesFunc: func(ctx context.Context, address types.Address) ([]Balance, error) {
				return []Balance{{CoinType: "0x2::sui::SUI", TotalBalance: "garbage"}}, nil
			},
		}

		s := New(ledger)

		_, err := s.Snapshot(t.Context(), testAddress())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSnapshotFailed)
		assert.ErrorIs(t, err, types.ErrInvalidAmount)
	})
}

func TestService_NativeCoin(t *testing.T) {
	t.Run("should normalize the native balance alone", func(t *testing.T) {
		ledger := &ledgerFake{
			nativeBalanceFunc: func(ctx context.Context, address types.Address) (Balance, error) {
				return Balance{
					CoinType:     "0x2::sui::SUI",
					TotalBalance: "10000000000",
					Metadata:     &CoinMetadata{Symbol: "SUI", Name: "Sui Token", Decimals: 9},
				}, nil
			},
		}

		s := New(ledger)

		coin, err := s.NativeCoin(t.Context(), testAddress())
		require.NoError(t, err)
		assert.Equal(t, "SUI", coin.Symbol)
		assert.Equal(t, "10", coin.FormattedBalance)
	})

	t.Run("should fail fast on a malformed address", func(t *testing.T) {
		s := New(&ledgerFake{})

		_, err := s.NativeCoin(t.Context(), "0xnope")
		assert.ErrorIs(t, err, types.ErrInvalidAddress)
	})

	t.Run("should wrap a ledger defect in ErrSnapshotFailed", func(t *testing.T) {
		expectedErr := errors.New("decode defect")
		ledger := &ledgerFake{
			nativeBalanceFunc: func(ctx context.Context, address types.Address) (Balance, error) {
				return Balance{}, expectedErr
			},
		}

		s := New(ledger)

		_, err := s.NativeCoin(t.Context(), testAddress())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrSnapshotFailed)
		assert.ErrorIs(t, err, expectedErr)
	})
}
