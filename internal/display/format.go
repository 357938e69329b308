// Package display contains terminal rendering for the CLI commands.
//
// Commands keep fetching and business logic separate from presentation by
// delegating all human-readable output to this package. Formatting here is
// cosmetic only; it consumes the typed entities produced by the rpc layer.
package display

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/holiman/uint256"
)

var (
	headerFmt = color.New(color.FgCyan, color.Underline).SprintfFunc()
	bold      = color.New(color.Bold).SprintFunc()
	green     = color.New(color.FgGreen).SprintFunc()
	red       = color.New(color.FgRed).SprintFunc()
	yellow    = color.New(color.FgYellow).SprintFunc()
)

// FormatWei renders a wei amount in ETH with magnitude-dependent precision.
func FormatWei(wei *uint256.Int) string {
	if wei == nil {
		return "0.000000000 ETH"
	}
	eth, _ := new(big.Float).Quo(
		new(big.Float).SetInt(wei.ToBig()),
		big.NewFloat(1e18),
	).Float64()

	switch {
	case eth >= 1.0:
		return fmt.Sprintf("%.4f ETH", eth)
	case eth >= 0.001:
		return fmt.Sprintf("%.6f ETH", eth)
	default:
		return fmt.Sprintf("%.9f ETH", eth)
	}
}

// FormatGasPrice renders a wei-denominated gas price in gwei.
func FormatGasPrice(wei *uint256.Int) string {
	if wei == nil {
		return "0.00 Gwei"
	}
	gwei, _ := new(big.Float).Quo(
		new(big.Float).SetInt(wei.ToBig()),
		big.NewFloat(1e9),
	).Float64()
	return fmt.Sprintf("%.2f Gwei", gwei)
}

// FormatHash shows the first 10 and last 4 characters of a hash.
func FormatHash(h common.Hash) string {
	s := h.Hex()
	return s[:10] + "..." + s[len(s)-4:]
}

// FormatAddress shows the first 6 and last 4 characters of an address.
func FormatAddress(a common.Address) string {
	s := a.Hex()
	return s[:6] + "..." + s[len(s)-4:]
}

// FormatNumber adds thousand separators for readability.
func FormatNumber(n uint64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var result []byte
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, byte(c))
	}
	return string(result)
}

// FormatQuantityNumber renders a 256-bit quantity with thousand separators,
// falling back to the full decimal string when it exceeds uint64.
func FormatQuantityNumber(v *uint256.Int) string {
	if v == nil {
		return "0"
	}
	if !v.IsUint64() {
		return v.Dec()
	}
	return FormatNumber(v.Uint64())
}

// FormatTimestamp renders a Unix timestamp as absolute UTC time.
func FormatTimestamp(ts uint64) string {
	return time.Unix(int64(ts), 0).UTC().Format("2006-01-02 15:04:05 UTC")
}

// TimeAgo phrases how long ago a Unix timestamp was.
func TimeAgo(ts uint64) string {
	now := uint64(time.Now().Unix())
	if now <= ts {
		return "just now"
	}
	diff := now - ts
	switch {
	case diff < 60:
		return fmt.Sprintf("%d sec ago", diff)
	case diff < 3600:
		return fmt.Sprintf("%d min ago", diff/60)
	case diff < 86400:
		return fmt.Sprintf("%d hr ago", diff/3600)
	default:
		return fmt.Sprintf("%d days ago", diff/86400)
	}
}

// FormatStatus renders a receipt status: 0 = failed, nonzero = success,
// absent = pending.
func FormatStatus(status *uint64) string {
	switch {
	case status == nil:
		return yellow("Pending")
	case *status == 0:
		return red("Failed")
	default:
		return green("Success")
	}
}
