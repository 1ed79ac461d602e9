package walletview

import (
	"strconv"
	"strings"

	"github.com/gabapcia/suitrack/internal/pkg/types"
)

// CoinView is the display-ready form of one coin balance. USDValue is empty
// when no price is known for the coin.
type CoinView struct {
	Symbol           string `json:"symbol"`
	DisplayName      string `json:"displayName"`
	FormattedBalance string `json:"formattedBalance"`
	USDValue         string `json:"usdValue,omitempty"`
}

// normalizeCoins converts raw balances into display-ready coin views.
//
// When a balance carries metadata, its symbol, name, and decimals drive the
// formatting, and a USD value is computed whenever a price is present. With
// no metadata the symbol falls back to the last "::" segment of the coin type
// tag, the coin type itself becomes the display name, and the native decimal
// count is assumed.
//
// An empty input yields an empty output. A malformed balance string is a
// defect and surfaces as an error.
func normalizeCoins(balances []Balance) ([]CoinView, error) {
	coins := make([]CoinView, 0, len(balances))

	for _, balance := range balances {
		if balance.Metadata == nil {
			formatted, err := types.FormatAmount(balance.TotalBalance, types.NativeDecimals)
			if err != nil {
				return nil, err
			}

			coins = append(coins, CoinView{
				Symbol:           symbolFromCoinType(balance.CoinType),
				DisplayName:      balance.CoinType,
				FormattedBalance: formatted,
			})
			continue
		}

		meta := balance.Metadata

		formatted, err := types.FormatAmount(balance.TotalBalance, meta.Decimals)
		if err != nil {
			return nil, err
		}

		view := CoinView{
			Symbol:           meta.Symbol,
			DisplayName:      meta.Name,
			FormattedBalance: formatted,
		}

		if meta.Price != nil {
			amount, err := strconv.ParseFloat(formatted, 64)
			if err != nil {
				return nil, err
			}
			view.USDValue = formatUSD(amount * *meta.Price)
		}

		coins = append(coins, view)
	}

	return coins, nil
}

// symbolFromCoinType derives a ticker symbol from a fully-qualified coin type
// tag by taking its last "::" segment, e.g. "0x2::sui::SUI" -> "SUI".
func symbolFromCoinType(coinType string) string {
	parts := strings.Split(coinType, "::")
	return parts[len(parts)-1]
}

// formatUSD renders a dollar value with exactly two decimal places, comma
// thousands separators, and a "$" prefix, e.g. 1234.5 -> "$1,234.50".
func formatUSD(value float64) string {
	fixed := strconv.FormatFloat(value, 'f', 2, 64)

	whole, frac, _ := strings.Cut(fixed, ".")

	var sb strings.Builder
	sb.WriteByte('$')
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(digit)
	}
	sb.WriteByte('.')
	sb.WriteString(frac)

	return sb.String()
}
