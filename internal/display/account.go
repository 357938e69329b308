package display

import (
	"fmt"

	"github.com/rodaine/table"

	"github.com/rethlabs/reth-explorer/internal/rpc"
)

// RenderAccount prints a property/value table for an account state query.
// blockTag is the tag the state was read at ("latest" or a block number).
func RenderAccount(acct *rpc.Account, blockTag string) {
	fmt.Println()
	fmt.Println(bold("Account Details") + " (at " + blockTag + ")")

	tbl := table.New("Property", "Value")
	tbl.WithHeaderFormatter(headerFmt)
	tbl.AddRow("Address", acct.Address.Hex())
	tbl.AddRow("Balance", FormatWei(acct.Balance))
	tbl.AddRow("Nonce", FormatQuantityNumber(acct.Nonce))
	if acct.IsContract() {
		tbl.AddRow("Type", green("Smart Contract"))
		tbl.AddRow("Code Size", FormatNumber(acct.CodeSize)+" bytes")
	} else {
		tbl.AddRow("Type", "Externally Owned Account")
	}
	tbl.Print()
	fmt.Println()
}
