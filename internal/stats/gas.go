// Package stats reduces a range of recent blocks into aggregate gas metrics.
package stats

import (
	"context"
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/rethlabs/reth-explorer/internal/rpc"
)

// ErrNoBlocks is returned when every block fetch in the requested window
// failed, leaving nothing to aggregate. Callers can distinguish "no data"
// from a reduced sample, which is reported via BlocksAnalyzed.
var ErrNoBlocks = errors.New("no blocks available for gas statistics")

// gasPriceEstimateWei approximates the per-block average gas price (25 gwei).
// Deriving the real figure would require fetching every transaction in each
// block, multiplying RPC load by the per-block transaction count.
const gasPriceEstimateWei = 25_000_000_000

// referenceGasLimit is the mainnet block gas limit used as the utilization
// denominator.
const referenceGasLimit = 30_000_000

// BlockReader is the slice of the RPC client the aggregator needs.
type BlockReader interface {
	GetLatestBlockNumber(ctx context.Context) (uint64, error)
	GetBlockByNumber(ctx context.Context, n uint64) (*rpc.Block, error)
}

// GasStatistics summarizes gas usage over a window of blocks ending at the
// chain head.
type GasStatistics struct {
	AvgGasUsed     uint64
	AvgGasPrice    uint64 // wei
	MaxGasUsed     uint64
	MinGasUsed     uint64
	GasUtilization float64 // percent of referenceGasLimit
	BlocksAnalyzed int
}

// Collect reduces the window [max(0, head-blockCount), head] into summary
// metrics. Blocks are fetched sequentially to bound load on the node; an
// individual fetch failure shrinks the sample instead of aborting the
// aggregation.
func Collect(ctx context.Context, reader BlockReader, blockCount uint64, log *zap.Logger) (*GasStatistics, error) {
	head, err := reader.GetLatestBlockNumber(ctx)
	if err != nil {
		return nil, err
	}

	start := uint64(0)
	if head > blockCount {
		start = head - blockCount
	}

	log.Info("analyzing gas statistics",
		zap.Uint64("from", start),
		zap.Uint64("to", head))

	var (
		totalGasUsed  uint64
		totalGasPrice uint64
		maxGasUsed    uint64
		minGasUsed    uint64 = math.MaxUint64
		processed     int
	)

	for n := start; n <= head; n++ {
		block, err := reader.GetBlockByNumber(ctx, n)
		if err != nil {
			log.Warn("skipping block",
				zap.Uint64("number", n),
				zap.Error(err))
			continue
		}

		if !block.GasUsed.IsUint64() {
			log.Warn("skipping block",
				zap.Uint64("number", n),
				zap.String("reason", "gas used exceeds uint64"))
			continue
		}

		gasUsed := block.GasUsed.Uint64()
		totalGasUsed += gasUsed
		if gasUsed > maxGasUsed {
			maxGasUsed = gasUsed
		}
		if gasUsed < minGasUsed {
			minGasUsed = gasUsed
		}
		totalGasPrice += gasPriceEstimateWei
		processed++
	}

	if processed == 0 {
		return nil, ErrNoBlocks
	}

	avgGasUsed := totalGasUsed / uint64(processed)
	return &GasStatistics{
		AvgGasUsed:     avgGasUsed,
		AvgGasPrice:    totalGasPrice / uint64(processed),
		MaxGasUsed:     maxGasUsed,
		MinGasUsed:     minGasUsed,
		GasUtilization: float64(avgGasUsed) / float64(referenceGasLimit) * 100,
		BlocksAnalyzed: processed,
	}, nil
}

// Utilization returns gas used as a percentage of the gas limit. A zero
// limit yields 0 rather than dividing by zero.
func Utilization(gasUsed, gasLimit uint64) float64 {
	if gasLimit == 0 {
		return 0
	}
	return float64(gasUsed) / float64(gasLimit) * 100
}
