package sui

import (
	"context"

	"github.com/gabapcia/suitrack/internal/pkg/types"
	"github.com/gabapcia/suitrack/internal/walletview"
)

type (
	// coinMetadataResponse is the optional metadata block a node may attach
	// to a balance entry.
	coinMetadataResponse struct {
		Symbol   string   `json:"symbol"`
		Name     string   `json:"name"`
		Decimals int      `json:"decimals"`
		Price    *float64 `json:"price"`
	}

	// balanceResponse is one coin balance as returned by suix_getBalance and
	// suix_getAllBalances.
	balanceResponse struct {
		CoinType        string                `json:"coinType"`
		CoinObjectCount int                   `json:"coinObjectCount"`
		TotalBalance    string                `json:"totalBalance"`
		Metadata        *coinMetadataResponse `json:"metadata"`
	}
)

// toViewBalance converts a raw balance into the walletview domain type.
func (b balanceResponse) toViewBalance() walletview.Balance {
	balance := walletview.Balance{
		CoinType:        b.CoinType,
		TotalBalance:    b.TotalBalance,
		CoinObjectCount: b.CoinObjectCount,
	}

	if b.Metadata != nil {
		balance.Metadata = &walletview.CoinMetadata{
			Symbol:   b.Metadata.Symbol,
			Name:     b.Metadata.Name,
			Decimals: b.Metadata.Decimals,
			Price:    b.Metadata.Price,
		}
	}

	return balance
}

// NativeBalance returns the address's native-coin balance, falling back to
// the substitute balance when the node cannot provide one.
func (c *client) NativeBalance(ctx context.Context, address types.Address) (walletview.Balance, error) {
	if c.offline {
		logSubstitute(ctx, methodGetBalance, nil)
		return substituteNativeBalance(), nil
	}

	var res balanceResponse
	if err := c.fetch(ctx, &res, methodGetBalance, address.String(), nil); err != nil {
		logSubstitute(ctx, methodGetBalance, err)
		return substituteNativeBalance(), nil
	}

	return res.toViewBalance(), nil
}

// AllBalances returns every coin balance held by the address, falling back
// to the substitute balances when the node cannot provide them.
func (c *client) AllBalances(ctx context.Context, address types.Address) ([]walletview.Balance, error) {
	if c.offline {
		logSubstitute(ctx, methodGetAllBalances, nil)
		return substituteBalances(), nil
	}

	var res []balanceResponse
	if err := c.fetch(ctx, &res, methodGetAllBalances, address.String()); err != nil {
		logSubstitute(ctx, methodGetAllBalances, err)
		return substituteBalances(), nil
	}

	balances := make([]walletview.Balance, len(res))
	for i, balance := range res {
		balances[i] = balance.toViewBalance()
	}

	return balances, nil
}
