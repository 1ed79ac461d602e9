package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidAddress indicates that a string is not a well-formed ledger
// address.
var ErrInvalidAddress = errors.New("invalid ledger address")

// addressPattern matches a canonical Sui account address: the "0x" prefix
// followed by exactly 64 hexadecimal digits, nothing else.
var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// Address represents a ledger account address as a validated hexadecimal
// string (e.g. "0x1a2b...ff"). It provides validation, JSON
// marshaling/unmarshaling, and display truncation.
type Address string

// AddressFromString validates the input and returns an Address when it is a
// canonical 0x-prefixed 64-hex-digit string.
func AddressFromString(s string) (Address, error) {
	if !IsValidAddress(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return Address(s), nil
}

// IsValidAddress reports whether s is a canonical ledger address. Hex digits
// may use either case; surrounding whitespace is rejected.
func IsValidAddress(s string) bool {
	return addressPattern.MatchString(s)
}

// MarshalJSON encodes the Address as a JSON string.
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(a))
}

// UnmarshalJSON parses and validates a JSON-encoded ledger address.
func (a *Address) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	addr, err := AddressFromString(s)
	if err != nil {
		return err
	}

	*a = addr
	return nil
}

// String returns the full address string.
func (a Address) String() string {
	return string(a)
}

// Short returns a truncated form suitable for display: strings of 12
// characters or fewer come back unchanged, anything longer becomes the first
// six characters, an ellipsis, and the last four.
func (a Address) Short() string {
	return ShortenID(string(a))
}

// ShortenID truncates any long identifier (address, digest, object id) the
// same way Short does. It is total: every input produces a value.
func ShortenID(s string) string {
	if len(s) <= 12 {
		return s
	}
	return s[:6] + "..." + s[len(s)-4:]
}
