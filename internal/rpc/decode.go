package rpc

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"github.com/rethlabs/reth-explorer/internal/hexnum"
)

// Field decoding policy: a field that is missing, not a string, or not valid
// hex decodes to its zero value ("0x0" for quantities, the all-zero digest
// for hashes, the all-zero address for addresses). Only a top-level shape
// problem fails the decode. This trades strictness for availability: one
// malformed optional field should not abort an otherwise-usable view.

func quantityField(obj map[string]interface{}, name string) *uint256.Int {
	s, ok := obj[name].(string)
	if !ok {
		return uint256.NewInt(0)
	}
	v, err := hexnum.ParseQuantity(s)
	if err != nil {
		return uint256.NewInt(0)
	}
	return v
}

// optionalQuantityField returns nil when the field is absent, marking values
// that only exist in some lifecycle states (e.g. blockNumber of a pending
// transaction).
func optionalQuantityField(obj map[string]interface{}, name string) *uint256.Int {
	if _, present := obj[name]; !present {
		return nil
	}
	if obj[name] == nil {
		return nil
	}
	return quantityField(obj, name)
}

func hashField(obj map[string]interface{}, name string) common.Hash {
	s, ok := obj[name].(string)
	if !ok {
		return common.Hash{}
	}
	return parseHash(s)
}

func addressField(obj map[string]interface{}, name string) common.Address {
	s, ok := obj[name].(string)
	if !ok {
		return common.Address{}
	}
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil || len(b) != common.AddressLength {
		return common.Address{}
	}
	return common.BytesToAddress(b)
}

// optionalAddressField returns nil when the field is absent or null, which
// for a transaction recipient means contract creation.
func optionalAddressField(obj map[string]interface{}, name string) *common.Address {
	if obj[name] == nil {
		return nil
	}
	addr := addressField(obj, name)
	return &addr
}

// decodeBlock converts the raw eth_getBlockByNumber/Hash result into a Block.
// The transactions list may contain bare hash strings or full transaction
// objects carrying a "hash" field; both shapes normalize to a hash list.
func decodeBlock(raw json.RawMessage) (*Block, error) {
	var obj map[string]interface{}
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return nil, &DecodeError{What: "block"}
	}

	var txs []common.Hash
	if list, ok := obj["transactions"].([]interface{}); ok {
		txs = make([]common.Hash, 0, len(list))
		for _, item := range list {
			switch tx := item.(type) {
			case string:
				if h := parseHash(tx); h != (common.Hash{}) {
					txs = append(txs, h)
				}
			case map[string]interface{}:
				if s, ok := tx["hash"].(string); ok {
					if h := parseHash(s); h != (common.Hash{}) {
						txs = append(txs, h)
					}
				}
			}
		}
	}

	return &Block{
		Number:       quantityField(obj, "number"),
		Hash:         hashField(obj, "hash"),
		ParentHash:   hashField(obj, "parentHash"),
		Timestamp:    quantityField(obj, "timestamp"),
		GasUsed:      quantityField(obj, "gasUsed"),
		GasLimit:     quantityField(obj, "gasLimit"),
		Transactions: txs,
		Miner:        addressField(obj, "miner"),
		Difficulty:   quantityField(obj, "difficulty"),
		Size:         quantityField(obj, "size"),
	}, nil
}

// decodeTransaction merges a transaction body with its receipt. A null or
// absent receipt classifies the transaction as pending rather than failing
// the decode; the receipt-derived fields stay nil.
func decodeTransaction(txRaw, receiptRaw json.RawMessage) (*Transaction, error) {
	var obj map[string]interface{}
	if err := json.Unmarshal(txRaw, &obj); err != nil || obj == nil {
		return nil, &DecodeError{What: "transaction"}
	}

	tx := &Transaction{
		Hash:        hashField(obj, "hash"),
		BlockNumber: optionalQuantityField(obj, "blockNumber"),
		From:        addressField(obj, "from"),
		To:          optionalAddressField(obj, "to"),
		Value:       quantityField(obj, "value"),
		Gas:         quantityField(obj, "gas"),
		GasPrice:    quantityField(obj, "gasPrice"),
	}

	if len(receiptRaw) == 0 || string(receiptRaw) == "null" {
		return tx, nil
	}

	var receipt map[string]interface{}
	if err := json.Unmarshal(receiptRaw, &receipt); err != nil || receipt == nil {
		return nil, &DecodeError{What: "transaction receipt"}
	}

	tx.GasUsed = optionalQuantityField(receipt, "gasUsed")
	if status := optionalQuantityField(receipt, "status"); status != nil {
		v := status.Uint64()
		tx.Status = &v
	}

	return tx, nil
}

func parseHash(s string) common.Hash {
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil || len(b) != common.HashLength {
		return common.Hash{}
	}
	return common.BytesToHash(b)
}
