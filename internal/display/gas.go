package display

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/rodaine/table"

	"github.com/rethlabs/reth-explorer/internal/stats"
)

// RenderGasStatistics prints the aggregated gas metrics for a block window.
func RenderGasStatistics(gs *stats.GasStatistics) {
	fmt.Println()
	fmt.Println(bold("Gas Statistics") + fmt.Sprintf(" (last %d blocks)", gs.BlocksAnalyzed))

	tbl := table.New("Metric", "Value")
	tbl.WithHeaderFormatter(headerFmt)
	tbl.AddRow("Average Gas Used", FormatNumber(gs.AvgGasUsed))
	tbl.AddRow("Max Gas Used", FormatNumber(gs.MaxGasUsed))
	tbl.AddRow("Min Gas Used", FormatNumber(gs.MinGasUsed))
	tbl.AddRow("Average Gas Price", FormatGasPrice(uint256.NewInt(gs.AvgGasPrice)))
	tbl.AddRow("Gas Utilization", fmt.Sprintf("%.1f%%", gs.GasUtilization))
	tbl.AddRow("Blocks Analyzed", FormatNumber(uint64(gs.BlocksAnalyzed)))
	tbl.Print()
	fmt.Println()
}
