package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/suitrack/internal/snapshotstream"

	"github.com/urfave/cli/v3"
)

// trackWalletsCommand returns a CLI command that streams periodic snapshot
// refreshes for every watched wallet.
//
// Usage example:
//
//	suitrack track
//
// The process runs indefinitely until it receives an interrupt (SIGINT or SIGTERM).
func trackWalletsCommand(ss snapshotstream.Service) *cli.Command {
	return &cli.Command{
		Name:        "track",
		Description: "Continuously refresh and print the snapshot of every watched wallet.",
		Usage:       "Streams snapshot refreshes. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			defer close(quit)

			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			updateCh, err := ss.Start(ctx)
			if err != nil {
				return err
			}
			defer ss.Close()

			for {
				select {
				case <-quit:
					return nil
				case update, open := <-updateCh:
					if !open {
						return nil
					}

					fmt.Printf("%s (%s): %d coins, %d collectibles, %d transactions\n",
						update.Wallet.Label,
						update.Wallet.Address.Short(),
						len(update.Snapshot.Coins),
						len(update.Snapshot.Collectibles),
						len(update.Snapshot.Transactions),
					)
				}
			}
		},
	}
}
