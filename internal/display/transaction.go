package display

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/rodaine/table"

	"github.com/rethlabs/reth-explorer/internal/rpc"
)

// RenderTransaction prints a property/value table for one transaction,
// including receipt-derived fields when a receipt exists.
func RenderTransaction(tx *rpc.Transaction) {
	fmt.Println()
	fmt.Println(bold("Transaction Details"))

	tbl := table.New("Property", "Value")
	tbl.WithHeaderFormatter(headerFmt)
	tbl.AddRow("Hash", tx.Hash.Hex())

	if tx.BlockNumber != nil {
		tbl.AddRow("Block Number", FormatQuantityNumber(tx.BlockNumber))
	} else {
		tbl.AddRow("Block Number", yellow("pending"))
	}

	tbl.AddRow("From", tx.From.Hex())
	if tx.To != nil {
		tbl.AddRow("To", tx.To.Hex())
	} else {
		tbl.AddRow("To", "(contract creation)")
	}

	tbl.AddRow("Value", FormatWei(tx.Value))
	tbl.AddRow("Gas Price", FormatGasPrice(tx.GasPrice))
	tbl.AddRow("Gas Limit", FormatQuantityNumber(tx.Gas))

	if tx.GasUsed != nil {
		tbl.AddRow("Gas Used", FormatQuantityNumber(tx.GasUsed))
		fee := new(uint256.Int).Mul(tx.GasUsed, tx.GasPrice)
		tbl.AddRow("Transaction Fee", FormatWei(fee))
	}

	tbl.AddRow("Status", FormatStatus(tx.Status))
	tbl.Print()
	fmt.Println()
}
