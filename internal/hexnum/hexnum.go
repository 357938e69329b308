// Package hexnum converts between the big-endian hex string representation
// used by the JSON-RPC wire protocol and fixed-width unsigned integers.
// Chain quantities (block numbers, gas, wei amounts) are 256-bit on the wire;
// derived metrics use uint64.
package hexnum

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// ParseQuantity converts a hex-encoded string (with or without "0x" prefix)
// into a 256-bit unsigned integer.
//
// Examples:
//   - "0x172721e" -> 24277534
//   - "0x0" -> 0
//   - "" -> 0 (empty string treated as zero)
func ParseQuantity(hex string) (*uint256.Int, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "0x")

	// Empty string after prefix removal means zero
	if hex == "" {
		return uint256.NewInt(0), nil
	}

	// big.Int.SetString accepts a leading sign; quantities are unsigned,
	// so only hex digits may appear.
	for _, c := range hex {
		if !isHexDigit(c) {
			return nil, fmt.Errorf("invalid hex quantity: %q", hex)
		}
	}

	val, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		return nil, fmt.Errorf("invalid hex quantity: %q", hex)
	}

	out, overflow := uint256.FromBig(val)
	if overflow {
		return nil, fmt.Errorf("hex quantity exceeds 256 bits: %q", hex)
	}
	return out, nil
}

// ParseUint64 converts a hex-encoded string to uint64. Used for values that
// are defined to fit in 64 bits, such as block heights and chain IDs.
func ParseUint64(hex string) (uint64, error) {
	v, err := ParseQuantity(hex)
	if err != nil {
		return 0, err
	}
	if !v.IsUint64() {
		return 0, fmt.Errorf("hex quantity exceeds uint64: %q", hex)
	}
	return v.Uint64(), nil
}

func isHexDigit(c rune) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// FormatQuantity returns the minimal "0x"-prefixed hex encoding of v.
// A nil value encodes as "0x0".
func FormatQuantity(v *uint256.Int) string {
	if v == nil {
		return "0x0"
	}
	return v.Hex()
}

// FormatUint64 converts n to the "0x"-prefixed hex form expected by RPC params.
func FormatUint64(n uint64) string {
	return fmt.Sprintf("0x%x", n)
}
