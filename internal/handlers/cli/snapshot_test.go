package cli

import (
	"context"
	"testing"

	"github.com/gabapcia/suitrack/internal/pkg/types"
	"github.com/gabapcia/suitrack/internal/walletview"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

type snapshotterFake struct {
	snapshotFunc   func(ctx context.Context, address string) (walletview.WalletSnapshot, error)
	nativeCoinFunc func(ctx context.Context, address string) (walletview.CoinView, error)
}

func (f *snapshotterFake) Snapshot(ctx context.Context, address string) (walletview.WalletSnapshot, error) {
	return f.snapshotFunc(ctx, address)
}

func (f *snapshotterFake) NativeCoin(ctx context.Context, address string) (walletview.CoinView, error) {
	return f.nativeCoinFunc(ctx, address)
}

func TestShowSnapshotCommand(t *testing.T) {
	t.Run("should create command with correct metadata", func(t *testing.T) {
		cmd := showSnapshotCommand(&snapshotterFake{})

		assert.Equal(t, "show", cmd.Name)
		require.Len(t, cmd.Flags, 1)

		addressFlag := cmd.Flags[0].(*cli.StringFlag)
		assert.Equal(t, "address", addressFlag.Name)
		assert.True(t, addressFlag.Required)
	})

	t.Run("should fetch the snapshot for the given address", func(t *testing.T) {
		var gotAddress string

		service := &snapshotterFake{
			snapshotFunc: func(ctx context.Context, address string) (walletview.WalletSnapshot, error) {
				gotAddress = address
				return walletview.WalletSnapshot{
					Coins: []walletview.CoinView{
						{Symbol: "SUI", DisplayName: "Sui Token", FormattedBalance: "10", USDValue: "$12.30"},
					},
					Collectibles: []walletview.CollectibleView{
						{ObjectID: "0x1", Name: "Capy #1234", Collection: "Sui Frens"},
					},
					Transactions: []walletview.TransactionView{
						{Digest: "0x2", Category: walletview.CategoryTransfer, Timestamp: "2023-11-14 22:13:20"},
					},
				}, nil
			},
		}

		app := &cli.Command{Commands: []*cli.Command{showSnapshotCommand(service)}}

		err := app.Run(t.Context(), []string{"test", "show", "--address", testAddress()})
		require.NoError(t, err)
		assert.Equal(t, testAddress(), gotAddress)
	})

	t.Run("should return error when the address is malformed", func(t *testing.T) {
		service := &snapshotterFake{
			snapshotFunc: func(ctx context.Context, address string) (walletview.WalletSnapshot, error) {
				return walletview.WalletSnapshot{}, types.ErrInvalidAddress
			},
		}

		app := &cli.Command{Commands: []*cli.Command{showSnapshotCommand(service)}}

		err := app.Run(t.Context(), []string{"test", "show", "--address", "not-an-address"})
		assert.ErrorIs(t, err, types.ErrInvalidAddress)
	})
}

func TestShowNativeBalanceCommand(t *testing.T) {
	t.Run("should create command with correct metadata", func(t *testing.T) {
		cmd := showNativeBalanceCommand(&snapshotterFake{})

		assert.Equal(t, "balance", cmd.Name)
		require.Len(t, cmd.Flags, 1)

		addressFlag := cmd.Flags[0].(*cli.StringFlag)
		assert.Equal(t, "address", addressFlag.Name)
		assert.True(t, addressFlag.Required)
	})

	t.Run("should fetch the native coin for the given address", func(t *testing.T) {
		var gotAddress string

		service := &snapshotterFake{
			nativeCoinFunc: func(ctx context.Context, address string) (walletview.CoinView, error) {
				gotAddress = address
				return walletview.CoinView{Symbol: "SUI", FormattedBalance: "10", USDValue: "$12.30"}, nil
			},
		}

		app := &cli.Command{Commands: []*cli.Command{showNativeBalanceCommand(service)}}

		err := app.Run(t.Context(), []string{"test", "balance", "--address", testAddress()})
		require.NoError(t, err)
		assert.Equal(t, testAddress(), gotAddress)
	})

	t.Run("should return error when the service fails", func(t *testing.T) {
		service := &snapshotterFake{
			nativeCoinFunc: func(ctx context.Context, address string) (walletview.CoinView, error) {
				return walletview.CoinView{}, walletview.ErrSnapshotFailed
			},
		}

		app := &cli.Command{Commands: []*cli.Command{showNativeBalanceCommand(service)}}

		err := app.Run(t.Context(), []string{"test", "balance", "--address", testAddress()})
		assert.ErrorIs(t, err, walletview.ErrSnapshotFailed)
	})
}
