package cli

import (
	"context"
	"os"

	"github.com/gabapcia/suitrack/internal/snapshotstream"
	"github.com/gabapcia/suitrack/internal/walletregistry"
	"github.com/gabapcia/suitrack/internal/walletview"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the suitrack CLI application.
//
// It registers all available commands, including:
//
//   - `watch`: Registers a wallet address for tracking.
//   - `unwatch`: Removes a wallet from the watched list.
//   - `list`: Prints every watched wallet.
//   - `show`: Prints the aggregated snapshot of one address.
//   - `balance`: Prints the native-coin balance of one address.
//   - `track`: Streams periodic snapshot refreshes for all watched wallets.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - wr: The walletregistry service implementation used by wallet commands.
//   - wv: The walletview service implementation used by the show command.
//   - ss: The snapshotstream service implementation used by the track command.
//
// This function sets up shell completion and invokes the CLI framework to parse and run commands.
func Run(ctx context.Context, wr walletregistry.Service, wv walletview.Service, ss snapshotstream.Service) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "suitrack",
		Description:           "Command-line interface for tracking Sui wallet balances, collectibles, and transactions.",
		Usage:                 "suitrack [command] [flags]",
		Commands: []*cli.Command{
			startWatchingWalletCommand(wr),
			stopWatchingWalletCommand(wr),
			listWatchedWalletsCommand(wr),
			showSnapshotCommand(wv),
			showNativeBalanceCommand(wv),
			trackWalletsCommand(ss),
		},
	}

	return app.Run(ctx, os.Args)
}
