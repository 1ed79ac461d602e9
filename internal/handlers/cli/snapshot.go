package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/suitrack/internal/pkg/types"
	"github.com/gabapcia/suitrack/internal/walletview"

	"github.com/urfave/cli/v3"
)

// showSnapshotCommand returns a CLI command that aggregates and prints the
// snapshot of one wallet address.
//
// Usage example:
//
//	suitrack show --address 0xABC123...
func showSnapshotCommand(wv walletview.Service) *cli.Command {
	return &cli.Command{
		Name:        "show",
		Description: "Fetch and print the coins, collectibles, and recent transactions of one address.",
		Usage:       "Prints the aggregated snapshot of the given wallet address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to inspect",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			address := c.String("address")

			snapshot, err := wv.Snapshot(ctx, address)
			if err != nil {
				return err
			}

			printSnapshot(types.ShortenID(address), snapshot)
			return nil
		},
	}
}

// showNativeBalanceCommand returns a CLI command that prints only the
// native-coin balance of one wallet address.
//
// Usage example:
//
//	suitrack balance --address 0xABC123...
func showNativeBalanceCommand(wv walletview.Service) *cli.Command {
	return &cli.Command{
		Name:        "balance",
		Description: "Fetch and print the native-coin balance of one address.",
		Usage:       "Prints the native-coin balance of the given wallet address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to inspect",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			coin, err := wv.NativeCoin(ctx, c.String("address"))
			if err != nil {
				return err
			}

			line := fmt.Sprintf("%s %s", coin.FormattedBalance, coin.Symbol)
			if coin.USDValue != "" {
				line += "  " + coin.USDValue
			}
			fmt.Println(line)
			return nil
		},
	}
}

// printSnapshot writes a human-readable rendering of the snapshot to stdout.
func printSnapshot(address string, snapshot walletview.WalletSnapshot) {
	fmt.Printf("wallet %s\n\n", address)

	fmt.Printf("coins (%d)\n", len(snapshot.Coins))
	for _, coin := range snapshot.Coins {
		line := fmt.Sprintf("  %-8s %s", coin.Symbol, coin.FormattedBalance)
		if coin.USDValue != "" {
			line += "  " + coin.USDValue
		}
		fmt.Println(line)
	}

	fmt.Printf("\ncollectibles (%d)\n", len(snapshot.Collectibles))
	for _, collectible := range snapshot.Collectibles {
		fmt.Printf("  %s  %s (%s)\n", types.ShortenID(collectible.ObjectID), collectible.Name, collectible.Collection)
	}

	fmt.Printf("\ntransactions (%d)\n", len(snapshot.Transactions))
	for _, tx := range snapshot.Transactions {
		fmt.Printf("  %s  %-12s %s\n", types.ShortenID(tx.Digest), tx.Category, tx.Timestamp)
	}
}
