package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/suitrack/internal/walletregistry"

	"github.com/urfave/cli/v3"
)

// startWatchingWalletCommand returns a CLI command that registers a wallet
// address for tracking.
//
// Usage example:
//
//	suitrack watch --address 0xABC123... --label "Main wallet"
func startWatchingWalletCommand(wr walletregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "watch",
		Description: "Register a wallet address so its balances, collectibles, and transactions are tracked.",
		Usage:       "Registers a wallet address for tracking. The label is optional and defaults to a positional name.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to start tracking",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "label",
				Usage: "Human-friendly name for the wallet",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				address = c.String("address")
				label   = c.String("label")
			)

			wallet, err := wr.Watch(ctx, address, label)
			if err != nil {
				return err
			}

			fmt.Printf("watching %s (%s) id=%s\n", wallet.Label, wallet.Address.Short(), wallet.ID)
			return nil
		},
	}
}

// stopWatchingWalletCommand returns a CLI command that removes a wallet from
// the watched list.
//
// Usage example:
//
//	suitrack unwatch --id 9c5b94b1-35ad-49bb-b118-8e8fc24abf80
func stopWatchingWalletCommand(wr walletregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "unwatch",
		Description: "Remove a wallet from the watched list.",
		Usage:       "Stops tracking the wallet with the given id.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "id",
				Usage:    "Id of the watched wallet to remove",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return wr.Unwatch(ctx, c.String("id"))
		},
	}
}

// listWatchedWalletsCommand returns a CLI command that prints every watched
// wallet, oldest first.
//
// Usage example:
//
//	suitrack list
func listWatchedWalletsCommand(wr walletregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "list",
		Description: "Print every watched wallet with its id, label, and shortened address.",
		Usage:       "Lists the watched wallets, oldest first.",
		Action: func(ctx context.Context, c *cli.Command) error {
			wallets, err := wr.List(ctx)
			if err != nil {
				return err
			}

			if len(wallets) == 0 {
				fmt.Println("no wallets are being watched")
				return nil
			}

			for _, wallet := range wallets {
				fmt.Printf("%s  %s  %s  added %s\n",
					wallet.ID,
					wallet.Label,
					wallet.Address.Short(),
					wallet.CreatedAt.Format("2006-01-02"),
				)
			}
			return nil
		},
	}
}
