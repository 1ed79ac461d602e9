package types

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrInvalidAmount indicates that a string does not encode a valid
// non-negative integer amount.
var ErrInvalidAmount = errors.New("invalid amount")

// NativeDecimals is the number of decimal places of the native coin's
// smallest unit (1 SUI = 10^9 MIST).
const NativeDecimals = 9

// FormatAmount converts a raw token amount, integer-denominated in the coin's
// smallest unit, into a decimal string using the given number of decimals.
//
// The raw amount is handled as an arbitrary-precision integer: balances
// routinely exceed what a float64 can represent without precision loss, so it
// is never parsed as a floating value. Trailing zeros are stripped from the
// fractional part, and a bare whole part is returned when the fraction is all
// zeros.
//
// An empty raw string is treated as zero. A raw string that is not a valid
// non-negative integer, or a negative decimals count, yields ErrInvalidAmount.
func FormatAmount(raw string, decimals int) (string, error) {
	if raw == "" {
		return "0", nil
	}
	if decimals < 0 {
		return "", fmt.Errorf("%w: negative decimals %d", ErrInvalidAmount, decimals)
	}

	amount, ok := new(big.Int).SetString(raw, 10)
	if !ok || amount.Sign() < 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}

	if decimals == 0 {
		return amount.String(), nil
	}

	divisor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)

	whole, frac := new(big.Int).QuoRem(amount, divisor, new(big.Int))

	fracStr := frac.String()
	if len(fracStr) < decimals {
		fracStr = strings.Repeat("0", decimals-len(fracStr)) + fracStr
	}

	fracPart := strings.TrimRight(fracStr, "0")
	if fracPart == "" {
		return whole.String(), nil
	}

	return whole.String() + "." + fracPart, nil
}
