package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidAddress(t *testing.T) {
	t.Run("accepts a canonical lowercase address", func(t *testing.T) {
		assert.True(t, IsValidAddress("0x"+strings.Repeat("a", 64)))
	})

	t.Run("accepts mixed-case hex digits", func(t *testing.T) {
		assert.True(t, IsValidAddress("0x"+strings.Repeat("Ab3F", 16)))
	})

	t.Run("rejects a missing prefix", func(t *testing.T) {
		assert.False(t, IsValidAddress(strings.Repeat("a", 66)))
	})

	t.Run("rejects a short body", func(t *testing.T) {
		assert.False(t, IsValidAddress("0x"+strings.Repeat("a", 63)))
	})

	t.Run("rejects a long body", func(t *testing.T) {
		assert.False(t, IsValidAddress("0x"+strings.Repeat("a", 65)))
	})

	t.Run("rejects non-hex characters", func(t *testing.T) {
		assert.False(t, IsValidAddress("0x"+strings.Repeat("g", 64)))
	})

	t.Run("rejects surrounding whitespace", func(t *testing.T) {
		assert.False(t, IsValidAddress(" 0x"+strings.Repeat("a", 64)))
		assert.False(t, IsValidAddress("0x"+strings.Repeat("a", 64)+" "))
	})

	t.Run("rejects the empty string", func(t *testing.T) {
		assert.False(t, IsValidAddress(""))
	})
}

func TestAddressFromString(t *testing.T) {
	t.Run("returns the address when valid", func(t *testing.T) {
		raw := "0x" + strings.Repeat("1", 64)

		addr, err := AddressFromString(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, addr.String())
	})

	t.Run("returns ErrInvalidAddress when malformed", func(t *testing.T) {
		_, err := AddressFromString("0x123")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidAddress)
	})
}

func TestAddress_JSON(t *testing.T) {
	t.Run("round-trips a valid address", func(t *testing.T) {
		raw := "0x" + strings.Repeat("2", 64)

		data, err := json.Marshal(Address(raw))
		require.NoError(t, err)

		var decoded Address
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, Address(raw), decoded)
	})

	t.Run("rejects a malformed address on unmarshal", func(t *testing.T) {
		var decoded Address
		err := json.Unmarshal([]byte(`"0xnope"`), &decoded)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidAddress)
	})
}

func TestShortenID(t *testing.T) {
	t.Run("returns short strings unchanged", func(t *testing.T) {
		assert.Equal(t, "", ShortenID(""))
		assert.Equal(t, "0x1234", ShortenID("0x1234"))
		assert.Equal(t, "123456789012", ShortenID("123456789012"))
	})

	t.Run("truncates long strings to 13 characters", func(t *testing.T) {
		full := "0x" + strings.Repeat("a", 64)

		short := ShortenID(full)
		assert.Len(t, short, 13)
		assert.Equal(t, "0xaaaa...aaaa", short)
	})

	t.Run("Short on Address matches ShortenID", func(t *testing.T) {
		addr := Address("0x" + strings.Repeat("b", 64))
		assert.Equal(t, ShortenID(addr.String()), addr.Short())
	})
}
