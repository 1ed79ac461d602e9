package walletregistry

import (
	"strings"
	"testing"

	"github.com/gabapcia/suitrack/internal/pkg/types"
	"github.com/gabapcia/suitrack/internal/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress() string {
	return "0x" + strings.Repeat("a", 64)
}

func TestBuildWatchedWallet(t *testing.T) {
	validator.Init()

	t.Run("should build a record with id, label, and creation time", func(t *testing.T) {
		wallet, err := buildWatchedWallet(validAddress(), "Savings", 0)
		require.NoError(t, err)

		assert.NotEmpty(t, wallet.ID)
		assert.Equal(t, types.Address(validAddress()), wallet.Address)
		assert.Equal(t, "Savings", wallet.Label)
		assert.False(t, wallet.CreatedAt.IsZero())
	})

	t.Run("should default the label from the wallet count", func(t *testing.T) {
		wallet, err := buildWatchedWallet(validAddress(), "", 2)
		require.NoError(t, err)
		assert.Equal(t, "Wallet 3", wallet.Label)
	})

	t.Run("should return a validation error when the address is empty", func(t *testing.T) {
		_, err := buildWatchedWallet("", "Savings", 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidation)
	})

	t.Run("should reject a malformed address", func(t *testing.T) {
		_, err := buildWatchedWallet("0x123", "Savings", 0)
		require.Error(t, err)
		assert.ErrorIs(t, err, types.ErrInvalidAddress)
	})

	t.Run("should generate unique ids", func(t *testing.T) {
		a, err := buildWatchedWallet(validAddress(), "A", 0)
		require.NoError(t, err)

		b, err := buildWatchedWallet(validAddress(), "B", 1)
		require.NoError(t, err)

		assert.NotEqual(t, a.ID, b.ID)
	})
}
