package display

import (
	"fmt"

	"github.com/rodaine/table"

	"github.com/rethlabs/reth-explorer/internal/rpc"
	"github.com/rethlabs/reth-explorer/internal/stats"
)

// RenderBlock prints a property/value table for one block.
func RenderBlock(b *rpc.Block) {
	fmt.Println()
	fmt.Println(bold("Block Information"))

	gasUsed := b.GasUsed.Uint64()
	gasLimit := b.GasLimit.Uint64()

	tbl := table.New("Property", "Value")
	tbl.WithHeaderFormatter(headerFmt)
	tbl.AddRow("Number", FormatQuantityNumber(b.Number))
	tbl.AddRow("Hash", b.Hash.Hex())
	tbl.AddRow("Parent Hash", b.ParentHash.Hex())
	tbl.AddRow("Timestamp", fmt.Sprintf("%s (%s)", FormatTimestamp(b.Timestamp.Uint64()), TimeAgo(b.Timestamp.Uint64())))
	tbl.AddRow("Gas Used", FormatNumber(gasUsed))
	tbl.AddRow("Gas Limit", FormatNumber(gasLimit))
	tbl.AddRow("Gas Utilization", fmt.Sprintf("%.1f%%", stats.Utilization(gasUsed, gasLimit)))
	tbl.AddRow("Transactions", len(b.Transactions))
	tbl.AddRow("Miner", b.Miner.Hex())
	tbl.AddRow("Difficulty", FormatQuantityNumber(b.Difficulty))
	tbl.AddRow("Size", FormatQuantityNumber(b.Size)+" bytes")
	tbl.Print()
	fmt.Println()
}

// RenderLatestBlocks prints a summary row per block, newest first.
func RenderLatestBlocks(blocks []*rpc.Block) {
	fmt.Println()
	fmt.Println(bold(fmt.Sprintf("Latest %d Blocks", len(blocks))))

	tbl := table.New("Block", "Hash", "Txs", "Gas Used", "Age")
	tbl.WithHeaderFormatter(headerFmt)
	for _, b := range blocks {
		tbl.AddRow(
			FormatQuantityNumber(b.Number),
			FormatHash(b.Hash),
			len(b.Transactions),
			FormatNumber(b.GasUsed.Uint64()),
			TimeAgo(b.Timestamp.Uint64()),
		)
	}
	tbl.Print()
	fmt.Println()
}
