package rpc

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testHashA = "0x9b83c12c69edb74f6c8dd5d052765c1adf940e320bd1291696e6fa07829eee71"
	testHashB = "0x4e3a3754410177e6937ef1f84bba68ea139e8d1a2258c5f85db9f1cd715a1bdd"
	testAddr  = "0x742d35cc622c1e0532f7fd0e7c0e6f7d8f2b2b6f"
)

func TestDecodeBlock(t *testing.T) {
	raw := json.RawMessage(`{
		"number": "0x1444f3b",
		"hash": "` + testHashA + `",
		"parentHash": "` + testHashB + `",
		"timestamp": "0x67830f1f",
		"gasUsed": "0xe4e1c0",
		"gasLimit": "0x1c9c380",
		"transactions": ["` + testHashB + `"],
		"miner": "` + testAddr + `",
		"difficulty": "0x0",
		"size": "0xb0e6"
	}`)

	block, err := decodeBlock(raw)
	require.NoError(t, err)

	assert.Equal(t, uint64(21253947), block.Number.Uint64())
	assert.Equal(t, common.HexToHash(testHashA), block.Hash)
	assert.Equal(t, common.HexToHash(testHashB), block.ParentHash)
	assert.Equal(t, uint64(0x67830f1f), block.Timestamp.Uint64())
	assert.Equal(t, uint64(15000000), block.GasUsed.Uint64())
	assert.Equal(t, uint64(30000000), block.GasLimit.Uint64())
	require.Len(t, block.Transactions, 1)
	assert.Equal(t, common.HexToHash(testHashB), block.Transactions[0])
	assert.Equal(t, common.HexToAddress(testAddr), block.Miner)
	assert.Equal(t, uint64(0xb0e6), block.Size.Uint64())
}

func TestDecodeBlockDefaultsMissingFields(t *testing.T) {
	block, err := decodeBlock(json.RawMessage(`{"number": "0x10"}`))
	require.NoError(t, err)

	assert.Equal(t, uint64(16), block.Number.Uint64())
	assert.Equal(t, common.Hash{}, block.Hash)
	assert.Equal(t, common.Address{}, block.Miner)
	assert.True(t, block.GasUsed.IsZero())
	assert.True(t, block.GasLimit.IsZero())
	assert.Empty(t, block.Transactions)
}

func TestDecodeBlockDefaultsMalformedFields(t *testing.T) {
	// Wrong JSON types and broken hex both fall back to zero values
	// instead of failing the decode.
	block, err := decodeBlock(json.RawMessage(`{
		"number": 12345,
		"gasUsed": "0xnothex",
		"hash": "0xdeadbeef",
		"miner": true
	}`))
	require.NoError(t, err)

	assert.True(t, block.Number.IsZero())
	assert.True(t, block.GasUsed.IsZero())
	assert.Equal(t, common.Hash{}, block.Hash)
	assert.Equal(t, common.Address{}, block.Miner)
}

func TestDecodeBlockTransactionShapes(t *testing.T) {
	// Nodes return either bare hash strings or full transaction objects
	// depending on the include-full-transactions flag; both normalize to
	// a hash list.
	raw := json.RawMessage(`{
		"number": "0x1",
		"transactions": [
			"` + testHashA + `",
			{"hash": "` + testHashB + `", "from": "` + testAddr + `"},
			{"gasPrice": "0x5"},
			42
		]
	}`)

	block, err := decodeBlock(raw)
	require.NoError(t, err)

	require.Len(t, block.Transactions, 2)
	assert.Equal(t, common.HexToHash(testHashA), block.Transactions[0])
	assert.Equal(t, common.HexToHash(testHashB), block.Transactions[1])
}

func TestDecodeBlockBadShape(t *testing.T) {
	for _, raw := range []string{`null`, `"0x1"`, `[1,2]`, `17`} {
		_, err := decodeBlock(json.RawMessage(raw))

		var decodeErr *DecodeError
		require.ErrorAs(t, err, &decodeErr, "input %s", raw)
		assert.Equal(t, "block", decodeErr.What)
	}
}

func TestDecodeTransactionWithReceipt(t *testing.T) {
	txRaw := json.RawMessage(`{
		"hash": "` + testHashA + `",
		"blockNumber": "0x1162e12",
		"from": "` + testAddr + `",
		"to": "` + testAddr + `",
		"value": "0x14d1120d7b160000",
		"gas": "0x5208",
		"gasPrice": "0x4a817c800"
	}`)
	receiptRaw := json.RawMessage(`{"gasUsed": "0x5208", "status": "0x1"}`)

	tx, err := decodeTransaction(txRaw, receiptRaw)
	require.NoError(t, err)

	assert.Equal(t, common.HexToHash(testHashA), tx.Hash)
	require.NotNil(t, tx.BlockNumber)
	assert.Equal(t, uint64(0x1162e12), tx.BlockNumber.Uint64())
	require.NotNil(t, tx.To)
	assert.Equal(t, common.HexToAddress(testAddr), *tx.To)
	assert.Equal(t, uint64(21000), tx.Gas.Uint64())
	require.NotNil(t, tx.GasUsed)
	assert.Equal(t, uint64(21000), tx.GasUsed.Uint64())
	require.NotNil(t, tx.Status)
	assert.Equal(t, uint64(1), *tx.Status)
	assert.False(t, tx.Pending())
}

func TestDecodeTransactionFailedStatus(t *testing.T) {
	tx, err := decodeTransaction(
		json.RawMessage(`{"hash": "`+testHashA+`"}`),
		json.RawMessage(`{"gasUsed": "0x5208", "status": "0x0"}`),
	)
	require.NoError(t, err)

	require.NotNil(t, tx.Status)
	assert.Equal(t, uint64(0), *tx.Status)
}

func TestDecodeTransactionMissingReceiptIsPending(t *testing.T) {
	txRaw := json.RawMessage(`{"hash": "` + testHashA + `", "from": "` + testAddr + `"}`)

	for _, receipt := range []json.RawMessage{nil, json.RawMessage(`null`)} {
		tx, err := decodeTransaction(txRaw, receipt)
		require.NoError(t, err)

		assert.Nil(t, tx.GasUsed)
		assert.Nil(t, tx.Status)
		assert.Nil(t, tx.BlockNumber)
		assert.True(t, tx.Pending())
	}
}

func TestDecodeTransactionContractCreation(t *testing.T) {
	tx, err := decodeTransaction(
		json.RawMessage(`{"hash": "`+testHashA+`", "to": null}`),
		nil,
	)
	require.NoError(t, err)
	assert.Nil(t, tx.To, "absent recipient means contract creation")
}

func TestDecodeTransactionBadShape(t *testing.T) {
	_, err := decodeTransaction(json.RawMessage(`null`), nil)
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "transaction", decodeErr.What)

	_, err = decodeTransaction(json.RawMessage(`{}`), json.RawMessage(`"not an object"`))
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "transaction receipt", decodeErr.What)
}
